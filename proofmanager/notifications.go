package proofmanager

import (
	"time"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/sirupsen/logrus"
)

// StatusUpdate is a lifecycle notification pushed by the wallet for a
// proof-chain transaction, keyed by the wallet-assigned identifier.
type StatusUpdate struct {
	TransactionID string
	Status        commontypes.TxStatus
	Hash          string
	Receipt       *commontypes.Receipt
	Failure       error
}

// HandleStatusUpdate applies a wallet push notification to the registry.
// The record is created when the notification arrives before the local
// send call has registered one; that race is expected for this family.
// Status moves through the same forward-only state machine as locally
// polled transactions.
//
// Parameters:
// - update: the wallet notification.
func (m *Manager) HandleStatusUpdate(update StatusUpdate) {
	if update.TransactionID == "" {
		m.logger.Warn("Dropping proof-chain status update without transaction id")
		return
	}

	m.sink.SetActiveTransactionID(update.TransactionID)

	m.service.RegisterExternal(&commontypes.Transaction{
		TrackingID: update.TransactionID,
		Status:     commontypes.StatusProving,
		ChainType:  commontypes.PROOF,
		WalletID:   m.walletID,
		StartTime:  time.Now(),
	})

	if update.Hash != "" {
		if err := m.service.SetTransactionHash(update.TransactionID, update.Hash); err != nil {
			m.logger.WithField("trackingId", update.TransactionID).WithError(err).Warn("Failed to set hash from notification")
		}
	}

	switch {
	case update.Status == commontypes.StatusConfirmed:
		receipt := update.Receipt
		if receipt == nil {
			receipt = &commontypes.Receipt{Hash: update.Hash, Status: commontypes.ReceiptStatusSuccessful}
		}
		if err := m.service.CompleteTransaction(update.TransactionID, receipt); err != nil {
			m.logger.WithField("trackingId", update.TransactionID).WithError(err).Warn("Failed to confirm from notification")
		}

	case update.Status == commontypes.StatusFailed:
		failure := commonerrors.WrapTxError(update.Failure,
			commonerrors.StageConfirmation,
			"",
			"wallet reported transaction failure",
		).WithTransaction(update.TransactionID, update.Hash)
		m.service.FailTransaction(update.TransactionID, failure)

	default:
		if err := m.service.UpdateTransactionStatus(update.TransactionID, update.Status); err != nil {
			m.logger.WithFields(logrus.Fields{
				"trackingId": update.TransactionID,
				"status":     update.Status,
			}).WithError(err).Debug("Ignoring regressive status notification")
		}
	}
}
