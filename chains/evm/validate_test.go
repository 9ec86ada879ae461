package evm

import (
	"strings"
	"testing"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/stretchr/testify/assert"
)

func evmRequest(params commontypes.EvmRequest) *commontypes.Request {
	return &commontypes.Request{ChainType: commontypes.EVM, EVM: &params}
}

func TestValidateAcceptsMinimalTransfer(t *testing.T) {
	result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{
		To:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		Value: "1000000000000000000",
	}))

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateRejectsInvalidRecipient(t *testing.T) {
	result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{
		To:    "not-an-address",
		Value: "1000",
	}))

	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateRequiresRecipient(t *testing.T) {
	result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{Value: "1"}))
	assert.False(t, result.Valid)
}

func TestValidateRejectsInvalidSender(t *testing.T) {
	result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{
		To:   "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		From: "0x123",
	}))
	assert.False(t, result.Valid)
}

func TestValidateNumericFieldBounds(t *testing.T) {
	to := "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3"

	for _, value := range []string{"-1", "1.5", "abc", "0x10"} {
		result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{To: to, Value: value}))
		assert.False(t, result.Valid, "value %q should be rejected", value)
	}

	// Largest representable 256-bit value is accepted; one more is not.
	maxUint256 := "115792089237316195423570985008687907853269984665640564039457584007913129639935"
	result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{To: to, Value: maxUint256}))
	assert.True(t, result.Valid)

	overflow := strings.Replace(maxUint256, "1157", "2157", 1)
	result = NewCodec().Validate(evmRequest(commontypes.EvmRequest{To: to, Value: overflow}))
	assert.False(t, result.Valid)
}

func TestValidateCallData(t *testing.T) {
	to := "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3"

	result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{To: to, Data: "0xa9059cbb"}))
	assert.True(t, result.Valid)

	for _, data := range []string{"a9059cbb", "0xa9059cb", "0xzz"} {
		result := NewCodec().Validate(evmRequest(commontypes.EvmRequest{To: to, Data: data}))
		assert.False(t, result.Valid, "data %q should be rejected", data)
	}
}

func TestValidateMissingVariant(t *testing.T) {
	result := NewCodec().Validate(&commontypes.Request{ChainType: commontypes.EVM})
	assert.False(t, result.Valid)
}
