package solana

import (
	"strings"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/gagliardetto/solana-go/rpc"
)

// Provider method names for the account-model family.
const (
	methodSendTransaction     = "sendTransaction"
	methodGetTransaction      = "getTransaction"
	methodSimulateTransaction = "simulateTransaction"
)

// receiptCommitment is the commitment level attached to receipt lookups.
const receiptCommitment = rpc.CommitmentConfirmed

// codec implements the account-model chain family codec.
type codec struct{}

// NewCodec creates a new account-model codec instance.
//
// Returns:
// - commontypes.Codec: the account-model codec.
func NewCodec() commontypes.Codec {
	return &codec{}
}

// ChainType returns the chain family this codec serves.
func (c *codec) ChainType() commontypes.ChainType {
	return commontypes.SOLANA
}

// Methods returns the provider method names for the account-model family.
func (c *codec) Methods() commontypes.Methods {
	return commontypes.Methods{
		Send:     methodSendTransaction,
		Receipt:  methodGetTransaction,
		Simulate: methodSimulateTransaction,
	}
}

// FormatHash strips the 0x prefix from a transaction signature. Idempotent.
func (c *codec) FormatHash(hash string) string {
	return strings.TrimPrefix(hash, "0x")
}

// FormatReceiptParams builds the getTransaction parameter list with the
// commitment-level option object appended.
func (c *codec) FormatReceiptParams(hash string) interface{} {
	return []interface{}{
		c.FormatHash(hash),
		map[string]interface{}{"commitment": string(receiptCommitment)},
	}
}
