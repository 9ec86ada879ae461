package txservice

import (
	"context"
	"encoding/json"
	"math/big"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// rewardPercentile is the fee-history percentile used to derive the
// priority fee from the most recent block.
const rewardPercentile = 50

// GasEstimate represents the gas data for an EIP-1559 transaction.
type GasEstimate struct {
	GasLimit             *big.Int // The buffered gas limit.
	MaxFeePerGas         *big.Int // The maximum fee per gas.
	MaxPriorityFeePerGas *big.Int // The maximum priority fee per gas.
}

// feeHistoryResult mirrors the eth_feeHistory response fields the
// estimator needs.
type feeHistoryResult struct {
	BaseFeePerGas []string   `json:"baseFeePerGas"`
	Reward        [][]string `json:"reward"`
}

// EstimateGas estimates the gas required for an EVM transaction, applies
// the configured multiplier as an integer-arithmetic buffer, and derives
// EIP-1559 fees from the most recent block: maxFeePerGas is twice the base
// fee plus the 50th-percentile priority fee. Chains without a base fee are
// rejected.
//
// Parameters:
// - ctx: the context for managing the request.
// - req: the chain-agnostic request carrying the EVM variant.
// - provider: the provider to estimate through.
//
// Returns:
// - *GasEstimate: the buffered gas limit and EIP-1559 fees.
// - error: a gas_estimation_failed error if the estimation fails.
func (s *Service) EstimateGas(ctx context.Context, req *commontypes.Request, provider commontypes.Provider) (*GasEstimate, error) {
	if req.ChainType != commontypes.EVM {
		return nil, commonerrors.WrapTxError(commonerrors.ErrUnsupportedOperation,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"gas estimation is only supported for EVM chains",
		)
	}
	if req.EVM == nil || req.EVM.To == "" {
		return nil, commonerrors.NewTxError(
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"recipient address is required for gas estimation",
		)
	}

	codec, err := s.codecs.CodecFor(commontypes.EVM)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"evm codec not available",
		)
	}

	call, err := codec.FormatCall(req)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"failed to format estimation call",
		)
	}

	raw, err := provider.Request(ctx, codec.Methods().EstimateGas, call)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"gas estimation call failed",
		)
	}

	gas, err := decodeHexQuantity(raw)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"failed to decode gas estimate",
		)
	}

	// Apply the configured buffer with integer arithmetic.
	config := s.currentConfig()
	gasLimit := new(big.Int).Mul(gas, big.NewInt(config.GasMultiplierPercent))
	gasLimit = gasLimit.Div(gasLimit, big.NewInt(100))

	maxFee, tip, err := s.deriveFees(ctx, codec, provider)
	if err != nil {
		return nil, err
	}

	return &GasEstimate{
		GasLimit:             gasLimit,
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: tip,
	}, nil
}

// deriveFees fetches one block of fee history and computes the EIP-1559
// fee fields.
func (s *Service) deriveFees(ctx context.Context, codec commontypes.Codec, provider commontypes.Provider) (*big.Int, *big.Int, error) {
	raw, err := provider.Request(ctx, codec.Methods().FeeHistory, []interface{}{
		"0x1",
		"latest",
		[]interface{}{rewardPercentile},
	})
	if err != nil {
		return nil, nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"fee history call failed",
		)
	}

	var history feeHistoryResult
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"failed to decode fee history",
		)
	}

	if len(history.BaseFeePerGas) == 0 {
		return nil, nil, commonerrors.WrapTxError(commonerrors.ErrNoBaseFee,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"target chain does not support EIP-1559",
		)
	}

	baseFee, err := hexutil.DecodeBig(history.BaseFeePerGas[len(history.BaseFeePerGas)-1])
	if err != nil {
		return nil, nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"failed to decode base fee",
		)
	}
	if baseFee.Sign() == 0 {
		return nil, nil, commonerrors.WrapTxError(commonerrors.ErrNoBaseFee,
			commonerrors.StagePreparation,
			commonerrors.KindGasEstimation,
			"target chain does not support EIP-1559",
		)
	}

	tip := big.NewInt(0)
	if len(history.Reward) > 0 && len(history.Reward[0]) > 0 {
		tip, err = hexutil.DecodeBig(history.Reward[0][0])
		if err != nil {
			return nil, nil, commonerrors.WrapTxError(err,
				commonerrors.StagePreparation,
				commonerrors.KindGasEstimation,
				"failed to decode priority fee reward",
			)
		}
	}

	maxFee := new(big.Int).Mul(baseFee, big.NewInt(2))
	maxFee = maxFee.Add(maxFee, tip)

	return maxFee, tip, nil
}

// decodeHexQuantity decodes a JSON-encoded 0x-hex quantity response.
func decodeHexQuantity(raw json.RawMessage) (*big.Int, error) {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, errors.Wrap(err, "response is not a hex quantity string")
	}
	return hexutil.DecodeBig(encoded)
}
