package proofmanager

import (
	"context"
	"time"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ExecuteSync proves, sends, and waits for a proof-chain interaction.
// A placeholder record is inserted before the wallet is invoked so callers
// can render a blocking overlay during proof generation and approval.
//
// Parameters:
// - ctx: the context for managing the execution.
// - req: the chain-agnostic request carrying the proof-chain variant.
//
// Returns:
// - *commontypes.Receipt: the normalized receipt on completion.
// - error: a stage-tagged error if proving, sending, or completion fails.
func (m *Manager) ExecuteSync(ctx context.Context, req *commontypes.Request) (*commontypes.Receipt, error) {
	placeholderID := m.insertPlaceholder(req)

	sent, err := m.sender.Execute(ctx, req)
	if err != nil {
		provingErr := commonerrors.WrapTxError(err,
			commonerrors.StageProving,
			"",
			"proof-chain execution failed",
		).WithTransaction(placeholderID, "")
		m.service.FailTransaction(placeholderID, provingErr)
		return nil, provingErr
	}

	trackingID := m.reconcileIdentity(placeholderID, sent)

	receipt, err := sent.Wait(ctx)
	if err != nil {
		waitErr := commonerrors.WrapTxError(err,
			commonerrors.StageConfirmation,
			"",
			"proof-chain transaction failed",
		).WithTransaction(trackingID, sent.Hash)
		m.service.FailTransaction(trackingID, waitErr)
		return nil, waitErr
	}

	if err := m.service.CompleteTransaction(trackingID, receipt); err != nil {
		m.logger.WithField("trackingId", trackingID).WithError(err).Warn("Failed to complete proof-chain transaction")
	}

	return receipt, nil
}

// ExecuteAsync proves and sends a proof-chain interaction in the
// background. The temporary tracking id is returned immediately; the
// record it names may be replaced once the wallet assigns its own
// identifier.
//
// Parameters:
// - ctx: the context for managing the execution.
// - req: the chain-agnostic request carrying the proof-chain variant.
// - callbacks: completion callbacks, may be nil.
//
// Returns:
// - string: the temporary tracking id.
func (m *Manager) ExecuteAsync(ctx context.Context, req *commontypes.Request, callbacks *Callbacks) string {
	placeholderID := m.insertPlaceholder(req)

	go func() {
		sent, err := m.sender.Execute(ctx, req)
		if err != nil {
			provingErr := commonerrors.WrapTxError(err,
				commonerrors.StageProving,
				"",
				"proof-chain execution failed",
			).WithTransaction(placeholderID, "")
			m.service.FailTransaction(placeholderID, provingErr)
			if callbacks != nil && callbacks.OnError != nil {
				callbacks.OnError(provingErr)
			}
			return
		}

		trackingID := m.reconcileIdentity(placeholderID, sent)

		receipt, err := sent.Wait(ctx)
		if err != nil {
			waitErr := commonerrors.WrapTxError(err,
				commonerrors.StageConfirmation,
				"",
				"proof-chain transaction failed",
			).WithTransaction(trackingID, sent.Hash)
			m.service.FailTransaction(trackingID, waitErr)
			if callbacks != nil && callbacks.OnError != nil {
				callbacks.OnError(waitErr)
			}
			return
		}

		if err := m.service.CompleteTransaction(trackingID, receipt); err != nil {
			m.logger.WithField("trackingId", trackingID).WithError(err).Warn("Failed to complete proof-chain transaction")
		}
		if callbacks != nil && callbacks.OnSuccess != nil {
			callbacks.OnSuccess(receipt)
		}
	}()

	return placeholderID
}

// insertPlaceholder registers the provisional record shown while proving
// is in progress.
func (m *Manager) insertPlaceholder(req *commontypes.Request) string {
	placeholderID := uuid.NewString()

	m.service.RegisterExternal(&commontypes.Transaction{
		TrackingID: placeholderID,
		Status:     commontypes.StatusProving,
		ChainType:  commontypes.PROOF,
		ChainID:    req.ChainID,
		WalletID:   m.walletID,
		Request:    req,
		StartTime:  time.Now(),
	})

	return placeholderID
}

// reconcileIdentity adopts the canonical identifier for a sent
// transaction: the wallet-assigned identifier when the wallet returned
// one, otherwise the active-transaction pointer an earlier notification
// may have set, otherwise a freshly generated identifier. When the
// canonical identifier differs from the placeholder, the placeholder
// record is removed so no duplicate or orphaned entry remains.
func (m *Manager) reconcileIdentity(placeholderID string, sent *SentTransaction) string {
	trackingID := sent.TrackingID
	if trackingID == "" {
		trackingID = m.sink.ActiveTransactionID()
	}
	if trackingID == "" {
		trackingID = uuid.NewString()
	}

	if trackingID != placeholderID {
		placeholder, _ := m.service.GetTransaction(placeholderID)
		m.service.RemoveTransaction(placeholderID)

		record := &commontypes.Transaction{
			TrackingID: trackingID,
			Status:     commontypes.StatusSending,
			ChainType:  commontypes.PROOF,
			WalletID:   m.walletID,
		}
		if placeholder != nil {
			record.ChainID = placeholder.ChainID
			record.Request = placeholder.Request
			record.StartTime = placeholder.StartTime
		}
		// Find-or-create on the canonical key: a record created by an
		// earlier notification is kept as is.
		m.service.RegisterExternal(record)
	}

	if sent.Hash != "" {
		if err := m.service.SetTransactionHash(trackingID, sent.Hash); err != nil {
			m.logger.WithFields(logrus.Fields{
				"trackingId": trackingID,
				"txHash":     sent.Hash,
			}).WithError(err).Warn("Failed to set proof-chain transaction hash")
		}
	}

	m.sink.SetActiveTransactionID(trackingID)

	return trackingID
}
