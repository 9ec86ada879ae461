package types

// ValidationResult holds the outcome of chain-specific parameter validation.
// Validation never fails with an error; problems are reported through the
// Errors and Warnings slices so callers can surface warnings without failing.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError appends a validation error and marks the result invalid.
func (r *ValidationResult) AddError(msg string) {
	r.Valid = false
	r.Errors = append(r.Errors, msg)
}

// AddWarning appends a validation warning.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Methods holds the provider RPC method names for a chain family.
// Operation names differ per family; empty fields mean the operation is
// not supported by the family.
type Methods struct {
	Send        string
	Receipt     string
	EstimateGas string
	FeeHistory  string
	Simulate    string
}

// Codec combines the chain-specific capabilities required by the
// transaction engine: parameter validation, provider call formatting,
// method lookup, hash canonicalization, and receipt normalization.
// Implementations must be pure and safe for concurrent use.
type Codec interface {
	// ChainType returns the chain family this codec serves.
	ChainType() ChainType

	// Validate validates chain-specific transaction parameters before
	// anything is sent. Pure and synchronous; never returns an error.
	Validate(req *Request) ValidationResult

	// FormatCall converts a chain-agnostic request into the provider call
	// parameter shape for the family's send method.
	FormatCall(req *Request) (interface{}, error)

	// Methods returns the provider method names for the chain family.
	Methods() Methods

	// FormatHash converts a transaction hash to the family's canonical
	// form. Idempotent.
	FormatHash(hash string) string

	// FormatReceiptParams builds the parameter shape for the family's
	// receipt-fetch method.
	FormatReceiptParams(hash string) interface{}

	// FormatReceipt normalizes a raw provider receipt into the common
	// Receipt shape.
	FormatReceipt(raw map[string]interface{}) (*Receipt, error)
}
