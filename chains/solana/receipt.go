package solana

import (
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
)

// FormatReceipt normalizes a raw getTransaction result into the common
// receipt shape. Account-model receipts carry decimal numbers, the slot
// stands in for the block number, and failure is signalled by a non-null
// meta error.
//
// Parameters:
// - raw: the decoded raw receipt object.
//
// Returns:
// - *commontypes.Receipt: the normalized receipt.
// - error: an error if the raw receipt is nil.
func (c *codec) FormatReceipt(raw map[string]interface{}) (*commontypes.Receipt, error) {
	if raw == nil {
		return nil, errors.New("raw receipt is nil")
	}

	receipt := &commontypes.Receipt{
		Hash:      stringField(raw, "transactionHash", "hash", "signature"),
		BlockHash: stringField(raw, "blockHash", "blockhash"),
		From:      stringField(raw, "from"),
		To:        stringField(raw, "to"),
		Status:    commontypes.ReceiptStatusSuccessful,
	}

	receipt.BlockNumber = decimalField(raw, "blockNumber", "slot")

	if meta, ok := raw["meta"].(map[string]interface{}); ok {
		if meta["err"] != nil {
			receipt.Status = commontypes.ReceiptStatusFailed
		}
		receipt.GasUsed = decimalField(meta, "fee", "computeUnitsConsumed")
	} else {
		receipt.GasUsed = decimalField(raw, "gasUsed", "fee")
		if status, present := raw["status"]; present {
			if n, ok := status.(float64); ok && n == 0 {
				receipt.Status = commontypes.ReceiptStatusFailed
			}
		}
	}

	return receipt, nil
}

// stringField returns the first present string value among the given keys.
func stringField(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if value, ok := raw[key].(string); ok {
			return value
		}
	}
	return ""
}

// decimalField returns the first present numeric value among the given keys.
func decimalField(raw map[string]interface{}, keys ...string) uint64 {
	for _, key := range keys {
		if value, ok := raw[key].(float64); ok {
			return uint64(value)
		}
	}
	return 0
}
