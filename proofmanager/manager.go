package proofmanager

import (
	"context"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/WalletMesh/txengine-lib/txservice"
	"github.com/sirupsen/logrus"
)

// SentTransaction is what the underlying proof-chain send primitive yields
// once the wallet accepts an interaction.
//
// Fields:
// - Hash: the on-chain hash, when already known.
// - TrackingID: the wallet-assigned transaction identifier, when available.
// - Wait: blocks until the wallet reports completion.
type SentTransaction struct {
	Hash       string
	TrackingID string
	Wait       func(ctx context.Context) (*commontypes.Receipt, error)
}

// Sender is the external send primitive the manager drives. It covers
// proof generation, wallet approval, and broadcast; the manager only
// orchestrates records around it.
type Sender interface {
	// Execute proves and sends a proof-chain interaction.
	//
	// Parameters:
	// - ctx: the context for managing the request.
	// - req: the chain-agnostic request carrying the proof-chain variant.
	//
	// Returns:
	// - *SentTransaction: the send outcome.
	// - error: an error if proving, approval, or broadcast fails.
	Execute(ctx context.Context, req *commontypes.Request) (*SentTransaction, error)
}

// NotificationSink is the narrow view of the wallet session store the
// manager needs: the pointer to the transaction the wallet currently
// reports status for. Incoming wallet notifications may set it before the
// local send call returns.
type NotificationSink interface {
	// ActiveTransactionID returns the wallet-assigned identifier of the
	// transaction currently being driven, or empty.
	ActiveTransactionID() string

	// SetActiveTransactionID records the wallet-assigned identifier of the
	// transaction currently being driven.
	SetActiveTransactionID(id string)
}

// Callbacks holds the completion callbacks for asynchronous execution.
type Callbacks struct {
	OnSuccess func(receipt *commontypes.Receipt)
	OnError   func(err error)
}

// Manager orchestrates proof-chain transactions. The chain family needs an
// explicit client-side proving stage before sending, and the wallet, not
// the local poller, is the primary source of lifecycle notifications; the
// manager reconciles locally-generated placeholder identifiers with
// wallet-assigned ones without producing duplicate or orphaned records.
type Manager struct {
	service  *txservice.Service
	sender   Sender
	sink     NotificationSink
	logger   *logrus.Logger
	walletID string
}

// NewManager creates a new proof-chain transaction manager.
//
// Parameters:
// - service: the transaction service owning the registry.
// - sender: the external send primitive.
// - sink: the wallet notification sink.
// - logger: the logger for logging events.
// - walletID: the identifier of the owning wallet.
//
// Returns:
// - *Manager: the new manager instance.
func NewManager(
	service *txservice.Service,
	sender Sender,
	sink NotificationSink,
	logger *logrus.Logger,
	walletID string,
) *Manager {
	return &Manager{
		service:  service,
		sender:   sender,
		sink:     sink,
		logger:   logger,
		walletID: walletID,
	}
}
