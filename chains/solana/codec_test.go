package solana

import (
	"testing"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHashStripsPrefix(t *testing.T) {
	codec := NewCodec()

	hash := codec.FormatHash("0x5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW")
	assert.Equal(t, "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW", hash)
	assert.Equal(t, hash, codec.FormatHash(hash))
}

func TestFormatReceiptParamsAppendsCommitment(t *testing.T) {
	params, ok := NewCodec().FormatReceiptParams("sig").([]interface{})
	require.True(t, ok)
	require.Len(t, params, 2)

	assert.Equal(t, "sig", params[0])
	assert.Equal(t, map[string]interface{}{"commitment": "confirmed"}, params[1])
}

func TestFormatCallPassesBlobAndOptionsThrough(t *testing.T) {
	retries := uint(3)
	call, err := NewCodec().FormatCall(solanaRequest(commontypes.SolanaRequest{
		Transaction: "AQID",
		SendOptions: &commontypes.SolanaSendOptions{
			SkipPreflight:       true,
			PreflightCommitment: "finalized",
			MaxRetries:          &retries,
		},
	}))
	require.NoError(t, err)

	obj, ok := call.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AQID", obj["transaction"])

	options := obj["options"].(map[string]interface{})
	assert.Equal(t, true, options["skipPreflight"])
	assert.Equal(t, "finalized", options["preflightCommitment"])
	assert.Equal(t, uint(3), options["maxRetries"])
}

func TestFormatReceiptMapsSlotAndMeta(t *testing.T) {
	receipt, err := NewCodec().FormatReceipt(map[string]interface{}{
		"hash":      "sig123",
		"blockhash": "9zC45",
		"slot":      float64(253741230),
		"meta": map[string]interface{}{
			"err": nil,
			"fee": float64(5000),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "sig123", receipt.Hash)
	assert.Equal(t, "9zC45", receipt.BlockHash)
	assert.Equal(t, uint64(253741230), receipt.BlockNumber)
	assert.Equal(t, uint64(5000), receipt.GasUsed)
	assert.Equal(t, uint64(commontypes.ReceiptStatusSuccessful), receipt.Status)
}

func TestFormatReceiptDetectsMetaError(t *testing.T) {
	receipt, err := NewCodec().FormatReceipt(map[string]interface{}{
		"hash": "sig123",
		"slot": float64(1),
		"meta": map[string]interface{}{
			"err": map[string]interface{}{"InstructionError": []interface{}{}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(commontypes.ReceiptStatusFailed), receipt.Status)
}

func TestMethods(t *testing.T) {
	methods := NewCodec().Methods()
	assert.Equal(t, "sendTransaction", methods.Send)
	assert.Equal(t, "getTransaction", methods.Receipt)
	assert.Equal(t, "simulateTransaction", methods.Simulate)
	assert.Empty(t, methods.EstimateGas)
}
