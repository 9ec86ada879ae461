package txservice

import (
	"context"
	"encoding/json"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
)

// SimulateTransaction simulates an account-model transaction without
// broadcasting it. Provider errors surface as simulation_failed.
//
// Parameters:
// - ctx: the context for managing the request.
// - req: the chain-agnostic request carrying the account-model variant.
// - provider: the provider to simulate through.
//
// Returns:
// - json.RawMessage: the raw simulation result.
// - error: a simulation_failed error if the simulation fails.
func (s *Service) SimulateTransaction(ctx context.Context, req *commontypes.Request, provider commontypes.Provider) (json.RawMessage, error) {
	if req.ChainType != commontypes.SOLANA {
		return nil, commonerrors.WrapTxError(commonerrors.ErrUnsupportedOperation,
			commonerrors.StagePreparation,
			commonerrors.KindSimulationFailed,
			"simulation is only supported for account-model chains",
		)
	}

	codec, err := s.codecs.CodecFor(commontypes.SOLANA)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindSimulationFailed,
			"solana codec not available",
		)
	}

	call, err := codec.FormatCall(req)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindSimulationFailed,
			"failed to format simulation call",
		)
	}

	raw, err := provider.Request(ctx, codec.Methods().Simulate, call)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindSimulationFailed,
			"transaction simulation failed",
		)
	}

	return raw, nil
}
