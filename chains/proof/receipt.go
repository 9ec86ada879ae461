package proof

import (
	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/pkg/errors"
)

// FormatReceipt normalizes a raw proof-chain receipt into the common
// receipt shape. Proof-chain receipts carry decimal numbers and a string
// status field.
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
		Hash:      stringField(raw, "transactionHash", "hash", "txHash"),
		BlockHash: stringField(raw, "blockHash", "blockhash"),
		From:      stringField(raw, "from"),
		To:        stringField(raw, "to", "contractAddress"),
		Status:    commontypes.ReceiptStatusSuccessful,
	}

	if value, ok := raw["blockNumber"].(float64); ok {
		receipt.BlockNumber = uint64(value)
	}
	if value, ok := raw["gasUsed"].(float64); ok {
		receipt.GasUsed = uint64(value)
	}

	switch status := raw["status"].(type) {
	case string:
		if status != "success" && status != "SUCCESS" {
			receipt.Status = commontypes.ReceiptStatusFailed
		}
	case float64:
		receipt.Status = uint64(status)
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
