package proof

import (
	"fmt"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/ethereum/go-ethereum/common"
)

// Validate validates proof-chain contract interaction parameters before
// anything is sent. Contract addresses are checked against the EVM address
// pattern, a placeholder approximation until the family settles on a final
// address format.
//
// Parameters:
// - req: the chain-agnostic request carrying the proof-chain variant.
//
// Returns:
// - commontypes.ValidationResult: the validation outcome.
func (c *codec) Validate(req *commontypes.Request) commontypes.ValidationResult {
	result := commontypes.ValidationResult{Valid: true}

	if req == nil || req.Proof == nil {
		result.AddError("proof-chain transaction parameters are required")
		return result
	}
	params := req.Proof

	if params.ContractAddress == "" {
		result.AddError("contract address is required")
	} else if !common.IsHexAddress(params.ContractAddress) {
		result.AddError(fmt.Sprintf("invalid contract address: %s", params.ContractAddress))
	}

	if params.FunctionName == "" {
		result.AddError("function name is required")
	}

	if params.Args == nil {
		result.AddError("arguments must be a list, use an empty list for no arguments")
	}

	if fee := params.Fee; fee != nil {
		switch fee.Method {
		case commontypes.FeeMethodSelfPaid:
		case commontypes.FeeMethodSponsored:
			if fee.PayerAddress == "" {
				result.AddError("sponsored fee payment requires a payer address")
			} else if !common.IsHexAddress(fee.PayerAddress) {
				result.AddError(fmt.Sprintf("invalid fee payer address: %s", fee.PayerAddress))
			}
		default:
			result.AddError(fmt.Sprintf("invalid fee payment method: %s", fee.Method))
		}
	}

	return result
}
