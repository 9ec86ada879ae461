package txservice

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/sirupsen/logrus"
)

// confirmationWaiter is the cancellation handle for one transaction's
// confirmation monitoring. It owns the timeout timer and the poll loop;
// cancel tears both down exactly once. Terminal results reach blocked
// callers through the registry broadcast, not through this handle.
type confirmationWaiter struct {
	hash       string
	trackingID string

	timeout  *time.Timer
	stopPoll chan struct{}

	once sync.Once
}

// cancel stops the timeout timer and the poll loop. Safe to call from the
// timer callback, the poll loop, and service teardown concurrently; only
// the first call does the teardown.
func (w *confirmationWaiter) cancel() {
	w.once.Do(func() {
		if w.timeout != nil {
			w.timeout.Stop()
		}
		close(w.stopPoll)
	})
}

// startConfirmationMonitoring registers the cancellation handle, moves the
// transaction to confirming, arms the confirmation timeout, and launches
// receipt polling. The waiter is stored and the timer armed under the same
// lock hold, so a timeout firing immediately still finds its own entry to
// remove instead of leaving a settled handle in the map.
//
// Parameters:
// - trackingID: the tracking id of the transaction.
// - hash: the canonical on-chain hash.
// - provider: the provider used for receipt polling.
// - codec: the chain family codec.
func (s *Service) startConfirmationMonitoring(trackingID, hash string, provider commontypes.Provider, codec commontypes.Codec) {
	config := s.currentConfig()

	waiter := &confirmationWaiter{
		hash:       hash,
		trackingID: trackingID,
		stopPoll:   make(chan struct{}),
	}

	s.mutex.Lock()
	stale := s.waiters[hash]
	s.waiters[hash] = waiter
	_ = s.setStatusLocked(trackingID, commontypes.StatusConfirming)
	waiter.timeout = time.AfterFunc(config.ConfirmationTimeout, func() {
		timeoutErr := commonerrors.NewTxError(
			commonerrors.StageConfirmation,
			commonerrors.KindTimeout,
			"transaction confirmation timed out",
		).WithTransaction(trackingID, hash)

		s.FailTransaction(trackingID, timeoutErr)
		s.removeWaiter(hash, waiter)
		waiter.cancel()
	})
	s.mutex.Unlock()

	if stale != nil {
		stale.cancel()
		s.FailTransaction(stale.trackingID, commonerrors.NewTxError(
			commonerrors.StageConfirmation,
			commonerrors.KindCleanup,
			"confirmation monitoring replaced",
		).WithTransaction(stale.trackingID, hash))
	}

	go s.pollReceipt(waiter, provider, codec, config.PollingInterval)
}

// pollReceipt polls the receipt-fetch method until a receipt is observed,
// a session error is detected, or the waiter is cancelled. Ticks for one
// hash run in this single goroutine, so no two ticks overlap even when
// request latency exceeds the interval.
func (s *Service) pollReceipt(waiter *confirmationWaiter, provider commontypes.Provider, codec commontypes.Codec, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-waiter.stopPoll:
			return

		case <-ticker.C:
			if done := s.pollReceiptOnce(waiter, provider, codec); done {
				return
			}
		}
	}
}

// pollReceiptOnce performs one receipt poll tick. Returns true when
// monitoring should stop.
func (s *Service) pollReceiptOnce(waiter *confirmationWaiter, provider commontypes.Provider, codec commontypes.Codec) bool {
	raw, err := provider.Request(context.Background(), codec.Methods().Receipt, codec.FormatReceiptParams(waiter.hash))
	if err != nil {
		// A dead session cannot become alive again, so session errors are
		// never retried.
		if commonerrors.IsSessionError(err) {
			sessionErr := commonerrors.WrapTxError(err,
				commonerrors.StageConfirmation,
				commonerrors.KindConnectionFailed,
				"wallet session lost during confirmation",
			).WithTransaction(waiter.trackingID, waiter.hash)

			s.FailTransaction(waiter.trackingID, sessionErr)
			s.removeWaiter(waiter.hash, waiter)
			waiter.cancel()
			return true
		}

		s.logger.WithFields(logrus.Fields{
			"txHash": waiter.hash,
			"error":  err,
		}).Debug("Receipt not yet available")
		return false
	}

	rawReceipt, ok := decodeRawReceipt(raw)
	if !ok {
		return false
	}

	if codec.ChainType() == commontypes.EVM && isRevertedReceipt(rawReceipt) {
		revertErr := commonerrors.NewTxError(
			commonerrors.StageConfirmation,
			commonerrors.KindReverted,
			"transaction reverted on-chain",
		).WithTransaction(waiter.trackingID, waiter.hash)

		s.FailTransaction(waiter.trackingID, revertErr)
		s.removeWaiter(waiter.hash, waiter)
		waiter.cancel()
		return true
	}

	receipt, err := codec.FormatReceipt(rawReceipt)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"txHash": waiter.hash,
			"error":  err,
		}).Warn("Failed to normalize receipt")
		return false
	}

	if receipt.Hash == "" {
		receipt.Hash = waiter.hash
	}

	if err := s.CompleteTransaction(waiter.trackingID, receipt); err != nil {
		s.logger.WithField("txHash", waiter.hash).WithError(err).Warn("Failed to complete transaction")
	}
	s.removeWaiter(waiter.hash, waiter)
	waiter.cancel()
	return true
}

// removeWaiter removes the waiter entry for a hash if it is still the
// registered one.
func (s *Service) removeWaiter(hash string, waiter *confirmationWaiter) {
	s.mutex.Lock()
	if current, exists := s.waiters[hash]; exists && current == waiter {
		delete(s.waiters, hash)
	}
	s.mutex.Unlock()
}

// decodeRawReceipt decodes a raw provider response into a receipt object.
// A null or non-object response means the receipt is not yet available.
func decodeRawReceipt(raw json.RawMessage) (map[string]interface{}, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var rawReceipt map[string]interface{}
	if err := json.Unmarshal(raw, &rawReceipt); err != nil {
		return nil, false
	}
	return rawReceipt, true
}

// isRevertedReceipt reports whether an EVM receipt carries a revert status.
func isRevertedReceipt(raw map[string]interface{}) bool {
	switch status := raw["status"].(type) {
	case string:
		return status == "0x0" || status == "0x00" || status == "0"
	case float64:
		return status == 0
	default:
		return false
	}
}
