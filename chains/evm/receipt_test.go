package evm

import (
	"testing"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReceiptNormalizesHexFields(t *testing.T) {
	receipt, err := NewCodec().FormatReceipt(map[string]interface{}{
		"transactionHash":   "0x1234",
		"blockHash":         "0xbeef",
		"blockNumber":       "0x10",
		"from":              "0xaaa0000000000000000000000000000000000001",
		"to":                "0xbbb0000000000000000000000000000000000002",
		"gasUsed":           "0x5208",
		"status":            "0x1",
		"effectiveGasPrice": "0x77359400",
		"cumulativeGasUsed": "0xa410",
		"logs":              []interface{}{map[string]interface{}{"address": "0xccc"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "0x1234", receipt.Hash)
	assert.Equal(t, "0xbeef", receipt.BlockHash)
	assert.Equal(t, uint64(16), receipt.BlockNumber)
	assert.Equal(t, uint64(21000), receipt.GasUsed)
	assert.Equal(t, uint64(commontypes.ReceiptStatusSuccessful), receipt.Status)
	assert.Equal(t, "0x77359400", receipt.EffectiveGasPrice)
	assert.Equal(t, uint64(42000), receipt.CumulativeGasUsed)
	assert.Len(t, receipt.Logs, 1)
}

func TestFormatReceiptAcceptsHashAlias(t *testing.T) {
	receipt, err := NewCodec().FormatReceipt(map[string]interface{}{
		"hash":        "0x99",
		"blockNumber": "0x1",
		"gasUsed":     "0x0",
		"status":      "0x0",
	})
	require.NoError(t, err)

	assert.Equal(t, "0x99", receipt.Hash)
	assert.Equal(t, uint64(commontypes.ReceiptStatusFailed), receipt.Status)
}

func TestFormatReceiptRejectsNil(t *testing.T) {
	_, err := NewCodec().FormatReceipt(nil)
	assert.Error(t, err)
}
