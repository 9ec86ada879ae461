package types

// TxStatus represents the lifecycle stage of a tracked transaction.
type TxStatus string

const (
	// StatusIdle is the initial status of a freshly created record.
	StatusIdle TxStatus = "IDLE"
	// StatusSimulating indicates the transaction is being simulated before send.
	StatusSimulating TxStatus = "SIMULATING"
	// StatusProving indicates client-side proof generation is in progress.
	// Only proof-based chains ever enter this stage.
	StatusProving TxStatus = "PROVING"
	// StatusSending indicates the transaction is being submitted to the wallet.
	StatusSending TxStatus = "SENDING"
	// StatusPending indicates the transaction was broadcast and is waiting
	// to be included in a block.
	StatusPending TxStatus = "PENDING"
	// StatusConfirming indicates receipt polling is in progress.
	StatusConfirming TxStatus = "CONFIRMING"
	// StatusConfirmed is the terminal success status.
	StatusConfirmed TxStatus = "CONFIRMED"
	// StatusFailed is the terminal failure status, reachable from any
	// non-terminal status.
	StatusFailed TxStatus = "FAILED"
)

// statusRank defines the partial order of the lifecycle state machine.
// A transaction may only move to a status with a strictly higher rank,
// except StatusFailed which is reachable from every non-terminal status.
var statusRank = map[TxStatus]int{
	StatusIdle:       0,
	StatusSimulating: 1,
	StatusProving:    2,
	StatusSending:    3,
	StatusPending:    4,
	StatusConfirming: 5,
	StatusConfirmed:  6,
	StatusFailed:     6,
}

// String converts TxStatus to string representation.
func (s TxStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the status is final.
func (s TxStatus) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// CanTransitionTo reports whether moving from s to next respects the
// forward-only state machine.
func (s TxStatus) CanTransitionTo(next TxStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusFailed {
		return true
	}
	return statusRank[next] > statusRank[s]
}
