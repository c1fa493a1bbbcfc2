// Package llm provides a provider-agnostic text generation client with
// implementations for Anthropic, Google Gemini, and OpenAI, plus a retrying
// wrapper. The run pipeline holds a single Client and never cares which
// backend answered.
package llm

import (
	"context"
	"errors"
)

// ErrUnauthorized indicates the provider rejected the API key. It is never
// retried.
var ErrUnauthorized = errors.New("llm: invalid API key")

// Params are per-request generation knobs. Nil Temperature means provider
// default.
type Params struct {
	Temperature *float32
	MaxTokens   int
}

// Client is the standard interface for any LLM backend.
type Client interface {
	// Generate sends a single user prompt and returns the model's text reply.
	Generate(ctx context.Context, prompt string, params Params) (string, error)
	// Name identifies the backend for logs and doctor output.
	Name() string
}

// Ptr returns a pointer to v. Convenience for Params literals.
func Ptr[T any](v T) *T { return &v }
