package types

// FeeMethod represents how fees for a proof-chain transaction are paid.
type FeeMethod string

const (
	// FeeMethodSelfPaid indicates the sender pays its own transaction fee.
	FeeMethodSelfPaid FeeMethod = "self_paid"
	// FeeMethodSponsored indicates a third-party payer covers the fee.
	FeeMethodSponsored FeeMethod = "sponsored"
)

// EvmRequest holds EVM transaction parameters. All numeric fields are
// carried as non-negative decimal strings to avoid precision loss.
type EvmRequest struct {
	To                   string `json:"to"`
	From                 string `json:"from,omitempty"`
	Value                string `json:"value,omitempty"`
	Data                 string `json:"data,omitempty"`
	Gas                  string `json:"gas,omitempty"`
	MaxFeePerGas         string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas,omitempty"`
	Nonce                string `json:"nonce,omitempty"`
}

// SolanaSendOptions holds send options for an account-model transaction.
type SolanaSendOptions struct {
	SkipPreflight       bool   `json:"skipPreflight,omitempty"`
	PreflightCommitment string `json:"preflightCommitment,omitempty"`
	MaxRetries          *uint  `json:"maxRetries,omitempty"`
}

// SolanaRequest holds a pre-serialized, base64-encoded transaction blob
// plus optional send options.
type SolanaRequest struct {
	Transaction string             `json:"transaction"`
	SendOptions *SolanaSendOptions `json:"sendOptions,omitempty"`
}

// FeeOptions describes how a proof-chain transaction fee is paid.
type FeeOptions struct {
	Method       FeeMethod `json:"method"`
	PayerAddress string    `json:"payerAddress,omitempty"`
}

// ProofRequest holds a proof-chain contract interaction.
type ProofRequest struct {
	ContractAddress string        `json:"contractAddress"`
	FunctionName    string        `json:"functionName"`
	Args            []interface{} `json:"args"`
	Fee             *FeeOptions   `json:"fee,omitempty"`
}

// Metadata carries free-form request context for UI and audit purposes.
// It is never sent on-chain.
type Metadata struct {
	Description string                 `json:"description,omitempty"`
	Action      string                 `json:"action,omitempty"`
	Custom      map[string]interface{} `json:"custom,omitempty"`
}

// Request is a tagged union of chain-specific transaction parameters.
// Exactly one of the variant pointers must be set, matching ChainType.
//
// Fields:
// - ChainType: the chain family the request targets.
// - EVM: EVM variant parameters.
// - Solana: account-model variant parameters.
// - Proof: proof-chain variant parameters.
// - ChainID: optional target chain identifier.
// - AutoSwitchChain: whether the wallet may switch chains automatically.
// - Metadata: free-form request context, not sent on-chain.
type Request struct {
	ChainType       ChainType      `json:"chainType"`
	EVM             *EvmRequest    `json:"evm,omitempty"`
	Solana          *SolanaRequest `json:"solana,omitempty"`
	Proof           *ProofRequest  `json:"proof,omitempty"`
	ChainID         string         `json:"chainId,omitempty"`
	AutoSwitchChain bool           `json:"autoSwitchChain,omitempty"`
	Metadata        *Metadata      `json:"metadata,omitempty"`
}
