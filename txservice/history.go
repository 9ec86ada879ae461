package txservice

import (
	"sort"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
)

// pruneTransactionHistory removes the oldest terminal records once the
// registry holds more terminal transactions than MaxHistorySize, sorted by
// start time ascending. Non-terminal transactions are never pruned,
// regardless of count.
func (s *Service) pruneTransactionHistory() {
	config := s.currentConfig()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	terminal := make([]*commontypes.Transaction, 0)
	for _, tx := range s.transactions {
		if tx.Status.IsTerminal() {
			terminal = append(terminal, tx)
		}
	}

	excess := len(terminal) - config.MaxHistorySize
	if excess <= 0 {
		return
	}

	sort.Slice(terminal, func(i, j int) bool {
		return terminal[i].StartTime.Before(terminal[j].StartTime)
	})

	for _, tx := range terminal[:excess] {
		delete(s.transactions, tx.TrackingID)
	}
}

// ClearHistory removes all terminal records from the registry. In-flight
// transactions are retained.
func (s *Service) ClearHistory() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for trackingID, tx := range s.transactions {
		if tx.Status.IsTerminal() {
			delete(s.transactions, trackingID)
		}
	}
}
