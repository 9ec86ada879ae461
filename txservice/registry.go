package txservice

import (
	"context"
	"time"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// RegisterExternal inserts a record driven by an external lifecycle source
// (the proof-chain manager or wallet notifications). If a record with the
// same tracking id already exists, the existing record is kept and a
// snapshot of it is returned: the check happens-before creation so a
// notification handler and a local call racing for the same logical
// transaction never produce duplicate records.
//
// Parameters:
// - tx: the record to insert.
//
// Returns:
// - *commontypes.Transaction: a snapshot of the registered (or existing) record.
func (s *Service) RegisterExternal(tx *commontypes.Transaction) *commontypes.Transaction {
	s.mutex.Lock()
	if existing, exists := s.transactions[tx.TrackingID]; exists {
		snapshot := existing.Clone()
		s.mutex.Unlock()
		return snapshot
	}

	if tx.StartTime.IsZero() {
		tx.StartTime = time.Now()
	}
	if tx.Status == "" {
		tx.Status = commontypes.StatusIdle
	}
	tx.SetWaitFunc(s.waitFuncFor(tx.TrackingID))
	s.transactions[tx.TrackingID] = tx
	snapshot := tx.Clone()
	s.mutex.Unlock()

	if snapshot.Status.IsTerminal() {
		s.pruneTransactionHistory()
	}
	return snapshot
}

// RemoveTransaction removes a record from the registry, rejecting any
// blocked waiters with a not-found error. Used by the proof-chain manager
// to discard a placeholder once the wallet-assigned identifier is known.
//
// Parameters:
// - trackingID: the tracking id of the record to remove.
func (s *Service) RemoveTransaction(trackingID string) {
	s.mutex.Lock()
	delete(s.transactions, trackingID)
	s.notifyWaitersLocked(trackingID, nil,
		errors.Wrapf(commonerrors.ErrTransactionNotFound, "tracking id %s", trackingID))
	s.mutex.Unlock()
}

// UpdateTransactionStatus moves a record to a new status. Transitions must
// respect the forward-only state machine; a regressing update is rejected.
// A transition into a terminal status releases blocked waiters and prunes
// the terminal history.
//
// Parameters:
// - trackingID: the tracking id of the record.
// - status: the status to move to.
//
// Returns:
// - error: an error if the record is missing or the transition regresses.
func (s *Service) UpdateTransactionStatus(trackingID string, status commontypes.TxStatus) error {
	s.mutex.Lock()
	err := s.setStatusLocked(trackingID, status)
	if err == nil && status.IsTerminal() {
		tx := s.transactions[trackingID]
		var failure error
		if tx.Err != nil {
			failure = tx.Err
		}
		s.notifyWaitersLocked(trackingID, tx.Receipt, failure)
	}
	s.mutex.Unlock()

	if err == nil && status.IsTerminal() {
		s.pruneTransactionHistory()
	}
	return err
}

// setStatusLocked performs a status transition. Caller must hold s.mutex.
func (s *Service) setStatusLocked(trackingID string, status commontypes.TxStatus) error {
	tx, exists := s.transactions[trackingID]
	if !exists {
		return errors.Wrapf(commonerrors.ErrTransactionNotFound, "tracking id %s", trackingID)
	}

	if tx.Status == status {
		return nil
	}
	if !tx.Status.CanTransitionTo(status) {
		return errors.Errorf("invalid status transition %s -> %s for transaction %s", tx.Status, status, trackingID)
	}

	tx.Status = status
	if status.IsTerminal() {
		tx.EndTime = time.Now()
	}
	return nil
}

// SetTransactionHash records the on-chain hash of a transaction. The hash
// is set at most once; a second call with a different hash is rejected.
//
// Parameters:
// - trackingID: the tracking id of the record.
// - hash: the canonical on-chain hash.
//
// Returns:
// - error: an error if the record is missing or the hash is already set.
func (s *Service) SetTransactionHash(trackingID, hash string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, exists := s.transactions[trackingID]
	if !exists {
		return errors.Wrapf(commonerrors.ErrTransactionNotFound, "tracking id %s", trackingID)
	}
	if tx.Hash != "" && tx.Hash != hash {
		return errors.Errorf("transaction %s already has hash %s", trackingID, tx.Hash)
	}

	tx.Hash = hash
	return nil
}

// CompleteTransaction moves a record to the confirmed status with its
// normalized receipt, releases blocked waiters, flushes the record to the
// history store, and prunes the terminal history.
//
// Parameters:
// - trackingID: the tracking id of the record.
// - receipt: the normalized receipt.
//
// Returns:
// - error: an error if the record is missing or already terminal.
func (s *Service) CompleteTransaction(trackingID string, receipt *commontypes.Receipt) error {
	s.mutex.Lock()
	tx, exists := s.transactions[trackingID]
	if !exists {
		s.mutex.Unlock()
		return errors.Wrapf(commonerrors.ErrTransactionNotFound, "tracking id %s", trackingID)
	}
	if err := s.setStatusLocked(trackingID, commontypes.StatusConfirmed); err != nil {
		s.mutex.Unlock()
		return err
	}
	tx.Receipt = receipt
	s.notifyWaitersLocked(trackingID, receipt, nil)
	snapshot := tx.Clone()
	s.mutex.Unlock()

	s.flushHistory(snapshot)
	s.pruneTransactionHistory()

	s.logger.WithFields(logrus.Fields{
		"trackingId": trackingID,
		"txHash":     snapshot.Hash,
	}).Info("Transaction confirmed")
	return nil
}

// FailTransaction moves a record to the failed status with a stage-tagged
// error, releases blocked waiters, flushes the record to the history
// store, and prunes the terminal history. Failing an already terminal
// record is a no-op.
//
// Parameters:
// - trackingID: the tracking id of the record.
// - txErr: the stage-tagged error describing the failure.
func (s *Service) FailTransaction(trackingID string, txErr *commonerrors.TxError) {
	s.mutex.Lock()
	tx, exists := s.transactions[trackingID]
	if !exists || tx.Status.IsTerminal() {
		s.mutex.Unlock()
		return
	}

	tx.Status = commontypes.StatusFailed
	tx.EndTime = time.Now()
	tx.Err = txErr
	s.notifyWaitersLocked(trackingID, nil, txErr)
	snapshot := tx.Clone()
	s.mutex.Unlock()

	s.flushHistory(snapshot)
	s.pruneTransactionHistory()

	s.logger.WithFields(logrus.Fields{
		"trackingId": trackingID,
		"txHash":     snapshot.Hash,
		"stage":      txErr.Stage,
	}).WithError(txErr).Warn("Transaction failed")
}

// flushHistory persists a terminal record to the history store, if one is
// attached. Best effort.
func (s *Service) flushHistory(tx *commontypes.Transaction) {
	if s.history == nil {
		return
	}
	if err := s.history.SaveTransaction(context.Background(), tx); err != nil {
		s.logger.WithField("trackingId", tx.TrackingID).WithError(err).Warn("Failed to persist transaction history")
	}
}
