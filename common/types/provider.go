package types

import (
	"context"
	"encoding/json"
)

// Provider represents the opaque request-response contract the engine
// requires from the connection layer. The engine does not know how the
// provider was obtained or which transport it speaks.
type Provider interface {
	// Request performs a provider call.
	//
	// Parameters:
	// - ctx: the context for managing the request.
	// - method: the chain-family specific RPC method name.
	// - params: the method parameters, a positional list or an object.
	//
	// Returns:
	// - json.RawMessage: the raw provider response.
	// - error: an error if the provider call fails.
	Request(ctx context.Context, method string, params interface{}) (json.RawMessage, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, method string, params interface{}) (json.RawMessage, error)

// Request calls f.
func (f ProviderFunc) Request(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	return f(ctx, method, params)
}
