package evm

import (
	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// FormatCall converts an EVM request into the eth_sendTransaction parameter
// shape. Numeric decimal-string fields are converted to 0x-hex quantities;
// call data passes through unchanged.
//
// Parameters:
// - req: the chain-agnostic request carrying the EVM variant.
//
// Returns:
// - interface{}: a single-element parameter list holding the call object.
// - error: an error if a numeric field cannot be converted.
func (c *codec) FormatCall(req *commontypes.Request) (interface{}, error) {
	if req == nil || req.EVM == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidChainType, "evm transaction parameters are required")
	}
	params := req.EVM

	call := map[string]interface{}{
		"to": params.To,
	}

	if params.From != "" {
		call["from"] = params.From
	}

	for name, value := range map[string]string{
		"value":                params.Value,
		"gas":                  params.Gas,
		"maxFeePerGas":         params.MaxFeePerGas,
		"maxPriorityFeePerGas": params.MaxPriorityFeePerGas,
		"nonce":                params.Nonce,
	} {
		if value == "" {
			continue
		}
		encoded, err := encodeDecimalQuantity(value)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s", name)
		}
		call[name] = encoded
	}

	if params.Data != "" {
		call["data"] = params.Data
	}

	return []interface{}{call}, nil
}

// encodeDecimalQuantity converts a non-negative decimal string into a
// 0x-hex quantity.
func encodeDecimalQuantity(value string) (string, error) {
	n, ok := parseDecimalUint256(value)
	if !ok {
		return "", errors.Errorf("not a non-negative 256-bit decimal integer: %s", value)
	}
	return hexutil.EncodeBig(n), nil
}
