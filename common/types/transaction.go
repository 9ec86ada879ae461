package types

import (
	"context"
	"time"

	txerrors "github.com/WalletMesh/txengine-lib/common/errors"
)

// WaitFunc blocks until the owning transaction reaches a terminal status.
type WaitFunc func(ctx context.Context, confirmations uint64) (*Receipt, error)

// Transaction is the mutable record the engine owns per transaction.
// It is created when a send is initiated and mutated only by the owning
// orchestrator; callers must treat it as read-only.
//
// Fields:
// - TrackingID: client-generated identifier assigned before any network
//   call, used to correlate asynchronous notifications. Never sent on-chain
//   and never reused.
// - Hash: the on-chain transaction identifier. Empty until broadcast
//   succeeds, permanent once set.
// - Status: the current lifecycle stage.
// - ChainType: the chain family of the transaction.
// - ChainID: the target chain identifier.
// - WalletID: the identifier of the wallet that sent the transaction.
// - From: the sender address.
// - Request: the original chain-agnostic request.
// - StartTime: when the record was created.
// - EndTime: when the record entered a terminal status.
// - Receipt: the normalized receipt, set on confirmation.
// - Err: the stage-tagged error, set on failure.
type Transaction struct {
	TrackingID string
	Hash       string
	Status     TxStatus
	ChainType  ChainType
	ChainID    string
	WalletID   string
	From       string
	Request    *Request
	StartTime  time.Time
	EndTime    time.Time
	Receipt    *Receipt
	Err        *txerrors.TxError

	waitFn WaitFunc
}

// SetWaitFunc wires the confirmation-wait accessor. Called by the owning
// orchestrator when the record is registered.
func (t *Transaction) SetWaitFunc(fn WaitFunc) {
	t.waitFn = fn
}

// Wait blocks until the transaction reaches a terminal status and returns
// the normalized receipt, or the stage-tagged error it failed with.
//
// Parameters:
// - ctx: the context for managing the wait.
// - confirmations: the number of confirmations to wait for (advisory).
//
// Returns:
// - *Receipt: the normalized receipt on success.
// - error: the stage-tagged error on failure.
func (t *Transaction) Wait(ctx context.Context, confirmations uint64) (*Receipt, error) {
	if t.waitFn == nil {
		if t.Err != nil {
			return nil, t.Err
		}
		if t.Receipt != nil {
			return t.Receipt, nil
		}
		return nil, txerrors.ErrTransactionNotFound
	}
	return t.waitFn(ctx, confirmations)
}

// Clone returns a shallow copy of the record safe to hand to callers while
// the original keeps being mutated under the orchestrator's lock.
func (t *Transaction) Clone() *Transaction {
	cp := *t
	return &cp
}
