package txservice

import (
	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
)

// activeStatuses are the statuses force-failed on session teardown.
var activeStatuses = map[commontypes.TxStatus]struct{}{
	commontypes.StatusPending:    {},
	commontypes.StatusSending:    {},
	commontypes.StatusConfirming: {},
}

// FailAllActiveTransactions fails every in-flight transaction with a
// connection-failure error, rejecting their waiters and clearing their
// timers. Used when the owning wallet session terminates, to prevent
// orphaned timers.
//
// Parameters:
// - walletID: restrict the teardown to one wallet; empty fails all.
// - reason: a human-readable teardown reason.
func (s *Service) FailAllActiveTransactions(walletID, reason string) {
	if reason == "" {
		reason = "wallet session terminated"
	}

	s.mutex.Lock()
	affected := make([]*commontypes.Transaction, 0)
	for _, tx := range s.transactions {
		if walletID != "" && tx.WalletID != walletID {
			continue
		}
		if _, active := activeStatuses[tx.Status]; active {
			affected = append(affected, tx)
		}
	}
	s.mutex.Unlock()

	for _, tx := range affected {
		connErr := commonerrors.NewTxError(
			commonerrors.StageConfirmation,
			commonerrors.KindConnectionFailed,
			reason,
		).WithTransaction(tx.TrackingID, tx.Hash)

		s.FailTransaction(tx.TrackingID, connErr)

		s.mutex.Lock()
		waiter := s.waiters[tx.Hash]
		delete(s.waiters, tx.Hash)
		s.mutex.Unlock()

		if waiter != nil {
			waiter.cancel()
		}
	}

	if len(affected) > 0 {
		s.logger.WithField("count", len(affected)).Warn("Active transactions failed due to session teardown")
	}
}
