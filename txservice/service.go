package txservice

import (
	"context"
	"sync"

	"github.com/WalletMesh/txengine-lib/chains"
	commonerrors "github.com/WalletMesh/txengine-lib/common/errors"
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/sirupsen/logrus"
)

// HistoryStore receives terminal transaction records for durable storage.
// Persistence is best effort; failures never affect engine state.
type HistoryStore interface {
	// SaveTransaction persists a terminal transaction record.
	//
	// Parameters:
	// - ctx: the context for managing the request.
	// - tx: the terminal transaction record.
	//
	// Returns:
	// - error: an error if the persistence fails.
	SaveTransaction(ctx context.Context, tx *commontypes.Transaction) error
}

// Service is the transaction orchestrator. It owns the in-memory registry
// of transactions, runs the send, poll, confirm-or-timeout pipeline, owns
// gas estimation and simulation, enforces history bounds, and exposes bulk
// failure for session teardown.
//
// Each Service instance owns independent state and timers; create separate
// instances for independent lifecycles.
type Service struct {
	logger *logrus.Logger
	codecs chains.CodecFactory

	config      Config
	configMutex sync.RWMutex

	// transactions is the registry, keyed by tracking id. waiters holds
	// the active monitoring cancellation handle per chain hash; at most
	// one exists per hash at a time. watchers holds the outcome channels
	// of callers blocked in WaitForConfirmation, keyed by tracking id.
	// All three are guarded by mutex.
	transactions map[string]*commontypes.Transaction
	waiters      map[string]*confirmationWaiter
	watchers     map[string][]chan waitOutcome
	mutex        sync.Mutex

	history HistoryStore
}

// New creates a new transaction service instance.
//
// Parameters:
// - codecs: the chain codec factory.
// - logger: the logger for logging events.
//
// Returns:
// - *Service: the new transaction service instance.
func New(codecs chains.CodecFactory, logger *logrus.Logger) *Service {
	return &Service{
		logger:       logger,
		codecs:       codecs,
		config:       DefaultConfig(),
		transactions: make(map[string]*commontypes.Transaction),
		waiters:      make(map[string]*confirmationWaiter),
		watchers:     make(map[string][]chan waitOutcome),
	}
}

// WithHistoryStore attaches a durable sink for terminal records.
//
// Parameters:
// - store: the history store implementation.
//
// Returns:
// - *Service: the service instance for chaining.
func (s *Service) WithHistoryStore(store HistoryStore) *Service {
	s.history = store
	return s
}

// GetTransaction returns a snapshot of a transaction record by tracking id.
//
// Parameters:
// - trackingID: the tracking id of the transaction.
//
// Returns:
// - *commontypes.Transaction: a copy of the record.
// - bool: whether the record exists.
func (s *Service) GetTransaction(trackingID string) (*commontypes.Transaction, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, exists := s.transactions[trackingID]
	if !exists {
		return nil, false
	}
	return tx.Clone(), true
}

// TransactionByHash returns a snapshot of a transaction record by its
// on-chain hash.
//
// Parameters:
// - hash: the on-chain transaction hash.
//
// Returns:
// - *commontypes.Transaction: a copy of the record.
// - bool: whether the record exists.
func (s *Service) TransactionByHash(hash string) (*commontypes.Transaction, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, tx := range s.transactions {
		if tx.Hash == hash {
			return tx.Clone(), true
		}
	}
	return nil, false
}

// Transactions returns a snapshot of every record in the registry.
func (s *Service) Transactions() []*commontypes.Transaction {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	result := make([]*commontypes.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		result = append(result, tx.Clone())
	}
	return result
}

// Cleanup rejects every blocked waiter with a cleanup error, clears all
// timers and poll loops, and empties the registry. Intended for service
// teardown.
func (s *Service) Cleanup() {
	s.mutex.Lock()
	for _, waiter := range s.waiters {
		waiter.cancel()
	}
	s.waiters = make(map[string]*confirmationWaiter)

	for trackingID := range s.watchers {
		s.notifyWaitersLocked(trackingID, nil, commonerrors.NewTxError(
			commonerrors.StageConfirmation,
			commonerrors.KindCleanup,
			"transaction service cleaned up",
		).WithTransaction(trackingID, ""))
	}
	s.transactions = make(map[string]*commontypes.Transaction)
	s.mutex.Unlock()

	s.logger.Info("Transaction service cleaned up")
}
