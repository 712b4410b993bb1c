package llm

import (
	"context"
	"errors"
)

// Client abstracts text-generation providers for the advisory pipeline.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrUnavailable signals that the gateway call failed (network error,
// non-success status, timeout, or empty completion). Callers must treat it
// as recoverable and fall back to deterministic generation.
var ErrUnavailable = errors.New("ai gateway unavailable")

// PlaceholderClient stands in when no provider is configured.
type PlaceholderClient struct{}

// Complete returns ErrUnavailable.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrUnavailable
}
