package proof

import (
	"strings"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
)

// Provider method names for the proof-chain family.
const (
	methodSendTransaction = "proof_sendTransaction"
	methodGetReceipt      = "proof_getTransactionReceipt"
)

// codec implements the proof-chain family codec. Proof chains require a
// client-side proving stage before broadcast; the codec itself only covers
// validation and formatting, proving is driven by the transaction manager.
type codec struct{}

// NewCodec creates a new proof-chain codec instance.
//
// Returns:
// - commontypes.Codec: the proof-chain codec.
func NewCodec() commontypes.Codec {
	return &codec{}
}

// ChainType returns the chain family this codec serves.
func (c *codec) ChainType() commontypes.ChainType {
	return commontypes.PROOF
}

// Methods returns the provider method names for the proof-chain family.
func (c *codec) Methods() commontypes.Methods {
	return commontypes.Methods{
		Send:    methodSendTransaction,
		Receipt: methodGetReceipt,
	}
}

// FormatHash strips the 0x prefix from a proof-chain transaction hash.
// Idempotent.
func (c *codec) FormatHash(hash string) string {
	return strings.TrimPrefix(hash, "0x")
}

// FormatReceiptParams builds the receipt-fetch parameter list.
func (c *codec) FormatReceiptParams(hash string) interface{} {
	return []interface{}{c.FormatHash(hash)}
}
