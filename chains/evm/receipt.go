package evm

import (
	"encoding/json"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// FormatReceipt normalizes a raw eth_getTransactionReceipt result into the
// common receipt shape. Block number, gas values, and status arrive as
// 0x-hex quantities.
//
// Parameters:
// - raw: the decoded raw receipt object.
//
// Returns:
// - *commontypes.Receipt: the normalized receipt.
// - error: an error if a required field cannot be decoded.
func (c *codec) FormatReceipt(raw map[string]interface{}) (*commontypes.Receipt, error) {
	if raw == nil {
		return nil, errors.New("raw receipt is nil")
	}

	receipt := &commontypes.Receipt{
		Hash:      stringField(raw, "transactionHash", "hash"),
		BlockHash: stringField(raw, "blockHash"),
		From:      stringField(raw, "from"),
		To:        stringField(raw, "to"),
	}

	blockNumber, err := hexQuantityField(raw, "blockNumber")
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode block number")
	}
	receipt.BlockNumber = blockNumber

	gasUsed, err := hexQuantityField(raw, "gasUsed")
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode gas used")
	}
	receipt.GasUsed = gasUsed

	status, err := hexQuantityField(raw, "status")
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode status")
	}
	receipt.Status = status

	// EVM-specific extras.
	receipt.EffectiveGasPrice = stringField(raw, "effectiveGasPrice")
	if cumulative, err := hexQuantityField(raw, "cumulativeGasUsed"); err == nil {
		receipt.CumulativeGasUsed = cumulative
	}

	if logs, ok := raw["logs"].([]interface{}); ok {
		for _, entry := range logs {
			data, err := json.Marshal(entry)
			if err != nil {
				continue
			}
			receipt.Logs = append(receipt.Logs, json.RawMessage(data))
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

// hexQuantityField decodes a 0x-hex quantity field. Plain JSON numbers are
// accepted as well since some providers decode quantities client-side.
func hexQuantityField(raw map[string]interface{}, key string) (uint64, error) {
	switch value := raw[key].(type) {
	case string:
		return hexutil.DecodeUint64(value)
	case float64:
		return uint64(value), nil
	case nil:
		return 0, nil
	default:
		return 0, errors.Errorf("unexpected type %T for field %s", value, key)
	}
}
