package evm

import (
	"strings"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
)

// Provider method names for the EVM family.
const (
	methodSendTransaction = "eth_sendTransaction"
	methodGetReceipt      = "eth_getTransactionReceipt"
	methodEstimateGas     = "eth_estimateGas"
	methodFeeHistory      = "eth_feeHistory"
)

// codec implements the EVM chain family codec.
type codec struct{}

// NewCodec creates a new EVM codec instance.
//
// Returns:
// - commontypes.Codec: the EVM codec.
func NewCodec() commontypes.Codec {
	return &codec{}
}

// ChainType returns the chain family this codec serves.
func (c *codec) ChainType() commontypes.ChainType {
	return commontypes.EVM
}

// Methods returns the provider method names for the EVM family.
func (c *codec) Methods() commontypes.Methods {
	return commontypes.Methods{
		Send:        methodSendTransaction,
		Receipt:     methodGetReceipt,
		EstimateGas: methodEstimateGas,
		FeeHistory:  methodFeeHistory,
	}
}

// FormatHash guarantees the 0x prefix on an EVM transaction hash. Idempotent.
func (c *codec) FormatHash(hash string) string {
	if strings.HasPrefix(hash, "0x") {
		return hash
	}
	return "0x" + hash
}

// FormatReceiptParams builds the eth_getTransactionReceipt parameter list.
func (c *codec) FormatReceiptParams(hash string) interface{} {
	return []interface{}{c.FormatHash(hash)}
}
