package types

// ChainType represents supported blockchain families
type ChainType string

const (
	// EVM represents Ethereum Virtual Machine based chains (e.g. Ethereum, Linea, Base, etc.)
	EVM ChainType = "EVM"
	// SOLANA represents Solana-style account-model chains.
	SOLANA ChainType = "SOLANA"
	// PROOF represents proof-based chains that require a client-side proving
	// stage before a transaction can be broadcast.
	PROOF ChainType = "PROOF"
	// UNKNOWN represents unknown or unsupported chain type in the system.
	UNKNOWN ChainType = "UNKNOWN"
)

// String converts ChainType to string representation
func (t ChainType) String() string {
	return string(t)
}

// ParseChainType converts string to ChainType representation.
func ParseChainType(s string) ChainType {
	switch s {
	case EVM.String():
		return EVM
	case SOLANA.String():
		return SOLANA
	case PROOF.String():
		return PROOF
	default:
		return UNKNOWN
	}
}
