package evm

import (
	"testing"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCallConvertsDecimalFieldsToHex(t *testing.T) {
	call, err := NewCodec().FormatCall(evmRequest(commontypes.EvmRequest{
		To:                   "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		Value:                "1000000000000000000",
		Gas:                  "21000",
		MaxFeePerGas:         "2000000000",
		MaxPriorityFeePerGas: "1000000000",
		Nonce:                "7",
		Data:                 "0xa9059cbb",
	}))
	require.NoError(t, err)

	params, ok := call.([]interface{})
	require.True(t, ok)
	require.Len(t, params, 1)

	obj, ok := params[0].(map[string]interface{})
	require.True(t, ok)

	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3", obj["to"])
	assert.Equal(t, "0xde0b6b3a7640000", obj["value"])
	assert.Equal(t, "0x5208", obj["gas"])
	assert.Equal(t, "0x77359400", obj["maxFeePerGas"])
	assert.Equal(t, "0x3b9aca00", obj["maxPriorityFeePerGas"])
	assert.Equal(t, "0x7", obj["nonce"])
	assert.Equal(t, "0xa9059cbb", obj["data"])
}

func TestFormatCallOmitsEmptyFields(t *testing.T) {
	call, err := NewCodec().FormatCall(evmRequest(commontypes.EvmRequest{
		To: "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
	}))
	require.NoError(t, err)

	obj := call.([]interface{})[0].(map[string]interface{})
	assert.NotContains(t, obj, "value")
	assert.NotContains(t, obj, "nonce")
	assert.NotContains(t, obj, "data")
}

func TestFormatCallRejectsMalformedNumbers(t *testing.T) {
	_, err := NewCodec().FormatCall(evmRequest(commontypes.EvmRequest{
		To:    "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		Value: "one ether",
	}))
	assert.Error(t, err)
}

func TestFormatHashIsIdempotent(t *testing.T) {
	codec := NewCodec()

	hash := codec.FormatHash("1234abcd")
	assert.Equal(t, "0x1234abcd", hash)
	assert.Equal(t, hash, codec.FormatHash(hash))
}

func TestFormatReceiptParams(t *testing.T) {
	params := NewCodec().FormatReceiptParams("0xabc").([]interface{})
	assert.Equal(t, []interface{}{"0xabc"}, params)
}

func TestMethods(t *testing.T) {
	methods := NewCodec().Methods()
	assert.Equal(t, "eth_sendTransaction", methods.Send)
	assert.Equal(t, "eth_getTransactionReceipt", methods.Receipt)
	assert.Equal(t, "eth_estimateGas", methods.EstimateGas)
	assert.Equal(t, "eth_feeHistory", methods.FeeHistory)
}
