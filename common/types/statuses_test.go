package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProving.IsTerminal())
}

func TestStatusTransitionsMoveForwardOnly(t *testing.T) {
	assert.True(t, StatusIdle.CanTransitionTo(StatusSending))
	assert.True(t, StatusSending.CanTransitionTo(StatusPending))
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirming))
	assert.True(t, StatusConfirming.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusProving.CanTransitionTo(StatusSending))

	assert.False(t, StatusPending.CanTransitionTo(StatusSending))
	assert.False(t, StatusConfirming.CanTransitionTo(StatusPending))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))
}

func TestFailedReachableFromEveryNonTerminalStatus(t *testing.T) {
	for _, status := range []TxStatus{
		StatusIdle, StatusSimulating, StatusProving,
		StatusSending, StatusPending, StatusConfirming,
	} {
		assert.True(t, status.CanTransitionTo(StatusFailed), "from %s", status)
	}
}

func TestTerminalStatusesAcceptNoTransitions(t *testing.T) {
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusFailed))
	assert.False(t, StatusFailed.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusFailed.CanTransitionTo(StatusFailed))
}

func TestParseChainType(t *testing.T) {
	assert.Equal(t, EVM, ParseChainType("EVM"))
	assert.Equal(t, SOLANA, ParseChainType("SOLANA"))
	assert.Equal(t, PROOF, ParseChainType("PROOF"))
	assert.Equal(t, UNKNOWN, ParseChainType("bitcoin"))
}
