package evm

import (
	"fmt"
	"math/big"
	"strings"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// maxUint256Bits bounds numeric fields to 256-bit unsigned values.
const maxUint256Bits = 256

// Validate validates EVM transaction parameters before anything is sent.
// Pure and synchronous; problems are reported through the result object,
// never as an error.
//
// Parameters:
// - req: the chain-agnostic request carrying the EVM variant.
//
// Returns:
// - commontypes.ValidationResult: the validation outcome.
func (c *codec) Validate(req *commontypes.Request) commontypes.ValidationResult {
	result := commontypes.ValidationResult{Valid: true}

	if req == nil || req.EVM == nil {
		result.AddError("evm transaction parameters are required")
		return result
	}
	params := req.EVM

	if params.To == "" {
		result.AddError("recipient address is required")
	} else if !common.IsHexAddress(params.To) {
		result.AddError(fmt.Sprintf("invalid recipient address: %s", params.To))
	}

	if params.From != "" && !common.IsHexAddress(params.From) {
		result.AddError(fmt.Sprintf("invalid sender address: %s", params.From))
	}

	validateUint256Field(&result, "value", params.Value)
	validateUint256Field(&result, "gas", params.Gas)
	validateUint256Field(&result, "maxFeePerGas", params.MaxFeePerGas)
	validateUint256Field(&result, "maxPriorityFeePerGas", params.MaxPriorityFeePerGas)

	if params.Nonce != "" {
		if _, ok := parseDecimalUint256(params.Nonce); !ok {
			result.AddError(fmt.Sprintf("nonce must be a non-negative integer: %s", params.Nonce))
		}
	}

	if params.Data != "" {
		if err := validateCallData(params.Data); err != nil {
			result.AddError(err.Error())
		}
	}

	return result
}

// validateUint256Field checks an optional numeric field for being a
// non-negative decimal integer representable in 256 bits.
func validateUint256Field(result *commontypes.ValidationResult, name, value string) {
	if value == "" {
		return
	}
	if _, ok := parseDecimalUint256(value); !ok {
		result.AddError(fmt.Sprintf("%s must be a non-negative 256-bit decimal integer: %s", name, value))
	}
}

// parseDecimalUint256 parses a decimal string into a non-negative integer
// bounded to 256 bits.
func parseDecimalUint256(value string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 || n.BitLen() > maxUint256Bits {
		return nil, false
	}
	return n, true
}

// validateCallData checks that call data is an even-length 0x-prefixed hex string.
func validateCallData(data string) error {
	if !strings.HasPrefix(data, "0x") {
		return fmt.Errorf("call data must be 0x-prefixed: %s", data)
	}
	if len(data)%2 != 0 {
		return fmt.Errorf("call data must have an even number of hex digits: %s", data)
	}
	if _, err := hexutil.Decode(data); err != nil {
		return fmt.Errorf("call data is not valid hex: %s", data)
	}
	return nil
}
