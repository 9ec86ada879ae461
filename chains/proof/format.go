package proof

import (
	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
)

// FormatCall converts a proof-chain request into the send parameter shape.
// Contract address, function name, arguments, and fee descriptor pass
// through unchanged as a single-element parameter list.
//
// Parameters:
// - req: the chain-agnostic request carrying the proof-chain variant.
//
// Returns:
// - interface{}: the send parameter list.
// - error: an error if the variant is missing.
func (c *codec) FormatCall(req *commontypes.Request) (interface{}, error) {
	if req == nil || req.Proof == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidChainType, "proof-chain transaction parameters are required")
	}
	params := req.Proof

	call := map[string]interface{}{
		"contractAddress": params.ContractAddress,
		"functionName":    params.FunctionName,
		"args":            params.Args,
	}

	if fee := params.Fee; fee != nil {
		feeObj := map[string]interface{}{
			"method": string(fee.Method),
		}
		if fee.PayerAddress != "" {
			feeObj["payerAddress"] = fee.PayerAddress
		}
		call["fee"] = feeObj
	}

	return []interface{}{call}, nil
}
