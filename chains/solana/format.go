package solana

import (
	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
)

// FormatCall converts an account-model request into the sendTransaction
// parameter shape. The pre-serialized transaction blob and send options
// pass through unchanged as object parameters.
//
// Parameters:
// - req: the chain-agnostic request carrying the account-model variant.
//
// Returns:
// - interface{}: the sendTransaction parameter object.
// - error: an error if the variant is missing.
func (c *codec) FormatCall(req *commontypes.Request) (interface{}, error) {
	if req == nil || req.Solana == nil {
		return nil, errors.Wrap(commonerrors.ErrInvalidChainType, "solana transaction parameters are required")
	}
	params := req.Solana

	call := map[string]interface{}{
		"transaction": params.Transaction,
	}

	if opts := params.SendOptions; opts != nil {
		options := map[string]interface{}{}
		if opts.SkipPreflight {
			options["skipPreflight"] = true
		}
		if opts.PreflightCommitment != "" {
			options["preflightCommitment"] = opts.PreflightCommitment
		}
		if opts.MaxRetries != nil {
			options["maxRetries"] = *opts.MaxRetries
		}
		if len(options) > 0 {
			call["options"] = options
		}
	}

	return call, nil
}
