package txservice

import (
	"context"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
)

// waitOutcome carries a terminal result to a blocked waiter.
type waitOutcome struct {
	receipt *commontypes.Receipt
	err     error
}

// WaitForConfirmation blocks until a transaction reaches a terminal status.
// A terminal record resolves or rejects immediately from its recorded
// receipt or error. Any number of callers may wait on the same transaction
// concurrently; the outcome is broadcast to all of them.
//
// Parameters:
// - ctx: the context for managing the wait.
// - trackingID: the tracking id of the transaction.
// - confirmations: the number of confirmations to wait for (advisory).
//
// Returns:
// - *commontypes.Receipt: the normalized receipt on success.
// - error: the stage-tagged error the transaction failed with, or a
//   context error if the wait was cancelled.
func (s *Service) WaitForConfirmation(ctx context.Context, trackingID string, confirmations uint64) (*commontypes.Receipt, error) {
	_ = confirmations

	s.mutex.Lock()
	tx, exists := s.transactions[trackingID]
	if !exists {
		s.mutex.Unlock()
		return nil, errors.Wrapf(commonerrors.ErrTransactionNotFound, "tracking id %s", trackingID)
	}
	if tx.Status.IsTerminal() {
		receipt := tx.Receipt
		txErr := tx.Err
		s.mutex.Unlock()
		if txErr != nil {
			return nil, txErr
		}
		return receipt, nil
	}

	// Register for the terminal broadcast before releasing the lock, so a
	// transition between the check and the select cannot be missed.
	outcome := make(chan waitOutcome, 1)
	s.watchers[trackingID] = append(s.watchers[trackingID], outcome)
	s.mutex.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-outcome:
		return result.receipt, result.err
	}
}

// notifyWaitersLocked broadcasts a terminal outcome to every waiter
// registered for a transaction. Caller must hold s.mutex. Outcome channels
// are buffered, so delivery never blocks even when a waiter already gave
// up on its context.
func (s *Service) notifyWaitersLocked(trackingID string, receipt *commontypes.Receipt, err error) {
	for _, outcome := range s.watchers[trackingID] {
		outcome <- waitOutcome{receipt: receipt, err: err}
	}
	delete(s.watchers, trackingID)
}

// waitFuncFor builds the Wait accessor wired into a transaction record.
func (s *Service) waitFuncFor(trackingID string) commontypes.WaitFunc {
	return func(ctx context.Context, confirmations uint64) (*commontypes.Receipt, error) {
		return s.WaitForConfirmation(ctx, trackingID, confirmations)
	}
}
