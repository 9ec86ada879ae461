package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsSessionErrorByCode(t *testing.T) {
	err := &RPCError{Code: -32001, Message: "gone"}
	assert.True(t, IsSessionError(err))
	assert.True(t, IsSessionError(errors.Wrap(err, "request failed")))

	assert.False(t, IsSessionError(&RPCError{Code: -32000, Message: "execution reverted"}))
}

func TestIsSessionErrorByMessage(t *testing.T) {
	assert.True(t, IsSessionError(errors.New("Expired session: please reconnect")))
	assert.True(t, IsSessionError(errors.New("session terminated by wallet")))
	assert.False(t, IsSessionError(errors.New("nonce too low")))
	assert.False(t, IsSessionError(nil))
}

func TestTxErrorCarriesStageAndTransaction(t *testing.T) {
	cause := errors.New("boom")
	err := WrapTxError(cause, StageConfirmation, KindReverted, "transaction reverted").
		WithTransaction("track-1", "0xabc")

	assert.Equal(t, StageConfirmation, err.Stage)
	assert.Equal(t, KindReverted, err.Kind)
	assert.Equal(t, "track-1", err.TrackingID)
	assert.Equal(t, "0xabc", err.Hash)
	assert.ErrorIs(t, err, cause)

	extracted, ok := AsTxError(errors.Wrap(err, "outer"))
	assert.True(t, ok)
	assert.Equal(t, err, extracted)
}
