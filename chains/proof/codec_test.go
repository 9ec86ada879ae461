package proof

import (
	"testing"

	commontypes "github.com/WalletMesh/txengine-lib/common/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proofRequest(params commontypes.ProofRequest) *commontypes.Request {
	return &commontypes.Request{ChainType: commontypes.PROOF, Proof: &params}
}

func TestValidateAcceptsContractInteraction(t *testing.T) {
	result := NewCodec().Validate(proofRequest(commontypes.ProofRequest{
		ContractAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		FunctionName:    "transfer",
		Args:            []interface{}{"recipient", 100},
	}))

	assert.True(t, result.Valid)
}

func TestValidateRequiresContractAddressAndFunction(t *testing.T) {
	result := NewCodec().Validate(proofRequest(commontypes.ProofRequest{
		Args: []interface{}{},
	}))

	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 2)
}

func TestValidateRequiresArgsList(t *testing.T) {
	result := NewCodec().Validate(proofRequest(commontypes.ProofRequest{
		ContractAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		FunctionName:    "transfer",
	}))

	assert.False(t, result.Valid)
}

func TestValidateFeeDescriptor(t *testing.T) {
	base := commontypes.ProofRequest{
		ContractAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		FunctionName:    "transfer",
		Args:            []interface{}{},
	}

	selfPaid := base
	selfPaid.Fee = &commontypes.FeeOptions{Method: commontypes.FeeMethodSelfPaid}
	assert.True(t, NewCodec().Validate(proofRequest(selfPaid)).Valid)

	sponsored := base
	sponsored.Fee = &commontypes.FeeOptions{Method: commontypes.FeeMethodSponsored}
	assert.False(t, NewCodec().Validate(proofRequest(sponsored)).Valid, "sponsored without payer")

	sponsored.Fee = &commontypes.FeeOptions{
		Method:       commontypes.FeeMethodSponsored,
		PayerAddress: "0xaaa0000000000000000000000000000000000001",
	}
	assert.True(t, NewCodec().Validate(proofRequest(sponsored)).Valid)

	unknown := base
	unknown.Fee = &commontypes.FeeOptions{Method: "prepaid"}
	assert.False(t, NewCodec().Validate(proofRequest(unknown)).Valid)
}

func TestFormatCallPassesInteractionThrough(t *testing.T) {
	call, err := NewCodec().FormatCall(proofRequest(commontypes.ProofRequest{
		ContractAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3",
		FunctionName:    "transfer",
		Args:            []interface{}{"bob", 5},
		Fee: &commontypes.FeeOptions{
			Method:       commontypes.FeeMethodSponsored,
			PayerAddress: "0xaaa0000000000000000000000000000000000001",
		},
	}))
	require.NoError(t, err)

	params, ok := call.([]interface{})
	require.True(t, ok)
	require.Len(t, params, 1)

	obj := params[0].(map[string]interface{})
	assert.Equal(t, "0x742d35Cc6634C0532925a3b844Bc9e7595f0b5e3", obj["contractAddress"])
	assert.Equal(t, "transfer", obj["functionName"])
	assert.Equal(t, []interface{}{"bob", 5}, obj["args"])

	fee := obj["fee"].(map[string]interface{})
	assert.Equal(t, "sponsored", fee["method"])
	assert.Equal(t, "0xaaa0000000000000000000000000000000000001", fee["payerAddress"])
}

func TestFormatHashStripsPrefix(t *testing.T) {
	codec := NewCodec()

	hash := codec.FormatHash("0xdeadbeef")
	assert.Equal(t, "deadbeef", hash)
	assert.Equal(t, hash, codec.FormatHash(hash))
}

func TestFormatReceiptMapsStringStatus(t *testing.T) {
	receipt, err := NewCodec().FormatReceipt(map[string]interface{}{
		"txHash":      "deadbeef",
		"blockNumber": float64(42),
		"status":      "success",
	})
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", receipt.Hash)
	assert.Equal(t, uint64(42), receipt.BlockNumber)
	assert.Equal(t, uint64(commontypes.ReceiptStatusSuccessful), receipt.Status)

	failed, err := NewCodec().FormatReceipt(map[string]interface{}{
		"txHash": "deadbeef",
		"status": "dropped",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(commontypes.ReceiptStatusFailed), failed.Status)
}
