// Package llm abstracts remote chat completion providers behind a single
// interface with an environment-driven factory and a token bucket rate
// limiter.
package llm

import "context"

// Provider is one remote chat completion backend.
type Provider interface {
	// Chat sends the conversation and returns the assistant's reply.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	// Name returns the name of this provider.
	Name() string
}
