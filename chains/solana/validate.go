package solana

import (
	"encoding/base64"
	"fmt"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	bin "github.com/gagliardetto/binary"
	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// validCommitments enumerates the accepted preflight commitment levels.
var validCommitments = map[string]struct{}{
	string(rpc.CommitmentProcessed): {},
	string(rpc.CommitmentConfirmed): {},
	string(rpc.CommitmentFinalized): {},
}

// Validate validates account-model transaction parameters before anything
// is sent. The transaction blob must be present and valid base64; a blob
// that decodes but does not deserialize as a transaction only produces a
// warning, since some wallets accept partially signed payloads the local
// decoder rejects.
//
// Parameters:
// - req: the chain-agnostic request carrying the account-model variant.
//
// Returns:
// - commontypes.ValidationResult: the validation outcome.
func (c *codec) Validate(req *commontypes.Request) commontypes.ValidationResult {
	result := commontypes.ValidationResult{Valid: true}

	if req == nil || req.Solana == nil {
		result.AddError("solana transaction parameters are required")
		return result
	}
	params := req.Solana

	if params.Transaction == "" {
		result.AddError("serialized transaction is required")
		return result
	}

	decoded, err := base64.StdEncoding.DecodeString(params.Transaction)
	if err != nil {
		result.AddError(fmt.Sprintf("transaction is not valid base64: %v", err))
		return result
	}

	if _, err := sol.TransactionFromDecoder(bin.NewBinDecoder(decoded)); err != nil {
		result.AddWarning(fmt.Sprintf("transaction bytes do not deserialize: %v", err))
	}

	if params.SendOptions != nil {
		if commitment := params.SendOptions.PreflightCommitment; commitment != "" {
			if _, ok := validCommitments[commitment]; !ok {
				result.AddError(fmt.Sprintf("invalid preflight commitment: %s", commitment))
			}
		}
	}

	return result
}
