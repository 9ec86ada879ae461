package txservice

import (
	"context"
	"encoding/json"
	"time"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SendTransaction validates, formats, and sends a transaction through the
// provider, registers a result record, and launches confirmation
// monitoring.
//
// Validation failures are rejected before the record becomes externally
// visible, so a validation-failed transaction never carries a chain hash.
// Provider failures during send are recorded on the transaction as failed
// and returned to the caller. Confirmation-phase failures are delivered
// through Wait, not through this call.
//
// Parameters:
// - ctx: the context for managing the send.
// - req: the chain-agnostic transaction request.
// - provider: the provider to send through.
// - walletID: the identifier of the owning wallet.
// - from: the sender address.
//
// Returns:
// - *commontypes.Transaction: a snapshot of the result record, including
//   its Wait accessor.
// - error: a stage-tagged error if the send fails.
func (s *Service) SendTransaction(
	ctx context.Context,
	req *commontypes.Request,
	provider commontypes.Provider,
	walletID string,
	from string,
) (*commontypes.Transaction, error) {
	codec, err := s.codecs.CodecFor(req.ChainType)
	if err != nil {
		return nil, commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			"",
			"unrecognized chain type",
		)
	}

	validation := codec.Validate(req)
	for _, warning := range validation.Warnings {
		s.logger.WithFields(logrus.Fields{
			"chainType": req.ChainType,
			"warning":   warning,
		}).Warn("Transaction parameter warning")
	}
	if !validation.Valid {
		return nil, commonerrors.NewTxError(
			commonerrors.StageValidation,
			commonerrors.KindValidationFailed,
			joinMessages(validation.Errors),
		)
	}

	trackingID := uuid.NewString()

	tx := &commontypes.Transaction{
		TrackingID: trackingID,
		Status:     commontypes.StatusIdle,
		ChainType:  req.ChainType,
		ChainID:    req.ChainID,
		WalletID:   walletID,
		From:       from,
		Request:    req,
		StartTime:  time.Now(),
	}
	tx.SetWaitFunc(s.waitFuncFor(trackingID))

	s.mutex.Lock()
	s.transactions[trackingID] = tx
	initial := commontypes.StatusSending
	if req.ChainType == commontypes.PROOF {
		initial = commontypes.StatusProving
	}
	_ = s.setStatusLocked(trackingID, initial)
	s.mutex.Unlock()

	call, err := codec.FormatCall(req)
	if err != nil {
		prepErr := commonerrors.WrapTxError(err,
			commonerrors.StagePreparation,
			"",
			"failed to format provider call",
		).WithTransaction(trackingID, "")
		s.FailTransaction(trackingID, prepErr)
		return nil, prepErr
	}

	raw, err := provider.Request(ctx, codec.Methods().Send, call)
	if err != nil {
		sendErr := commonerrors.WrapTxError(err,
			commonerrors.StageSigning,
			"",
			"wallet rejected or failed to send transaction",
		).WithTransaction(trackingID, "")
		s.FailTransaction(trackingID, sendErr)
		return nil, sendErr
	}

	// The provider must answer the send with a string hash; anything else
	// is treated as a signing failure.
	var rawHash string
	if err := json.Unmarshal(raw, &rawHash); err != nil || rawHash == "" {
		shapeErr := commonerrors.NewTxError(
			commonerrors.StageSigning,
			commonerrors.KindUnexpectedPayload,
			"provider response is not a transaction hash",
		).WithTransaction(trackingID, "")
		s.FailTransaction(trackingID, shapeErr)
		return nil, shapeErr
	}

	hash := codec.FormatHash(rawHash)

	s.mutex.Lock()
	if req.ChainType == commontypes.PROOF {
		_ = s.setStatusLocked(trackingID, commontypes.StatusSending)
	}
	s.transactions[trackingID].Hash = hash
	_ = s.setStatusLocked(trackingID, commontypes.StatusPending)
	s.mutex.Unlock()

	s.logger.WithFields(logrus.Fields{
		"trackingId": trackingID,
		"txHash":     hash,
		"chainType":  req.ChainType,
	}).Info("Transaction sent")

	s.startConfirmationMonitoring(trackingID, hash, provider, codec)
	s.pruneTransactionHistory()

	snapshot, _ := s.GetTransaction(trackingID)
	return snapshot, nil
}

// joinMessages flattens validation errors into one message.
func joinMessages(messages []string) string {
	if len(messages) == 0 {
		return "invalid transaction parameters"
	}
	result := messages[0]
	for _, msg := range messages[1:] {
		result += "; " + msg
	}
	return result
}
