package types

import "encoding/json"

const (
	// ReceiptStatusSuccessful indicates an on-chain execution success.
	ReceiptStatusSuccessful = 1
	// ReceiptStatusFailed indicates an on-chain execution failure (revert).
	ReceiptStatusFailed = 0
)

// Receipt represents a normalized cross-chain transaction receipt.
//
// Fields:
// - Hash: the on-chain transaction hash.
// - BlockHash: the hash of the block containing the transaction.
// - BlockNumber: the block number (slot for account-model chains).
// - From: the sender address.
// - To: the recipient address.
// - GasUsed: the gas (or compute units) consumed by the transaction.
// - Status: execution status, 1 for success and 0 for failure.
// - Logs: raw log entries emitted by the transaction, if any.
// - EffectiveGasPrice: the effective gas price paid, EVM only.
// - CumulativeGasUsed: cumulative gas used in the block, EVM only.
type Receipt struct {
	Hash              string
	BlockHash         string
	BlockNumber       uint64
	From              string
	To                string
	GasUsed           uint64
	Status            uint64
	Logs              []json.RawMessage
	EffectiveGasPrice string
	CumulativeGasUsed uint64
}
