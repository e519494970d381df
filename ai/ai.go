// Package ai defines the provider-neutral chat interface the intent parser
// talks to. Concrete providers live in subpackages.
package ai

import "context"

// ChatRequest represents a single-turn chat request
type ChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // Override default temperature
	MaxTokens    *int     // Override default max tokens
	Model        *string  // Override default model
}

// ChatResponse represents the model response
type ChatResponse struct {
	Content string
	Usage   Usage
}

// Usage represents token usage information
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Client is the interface the lookup pipeline depends on. One model call
// per invocation; callers surface failures directly without retrying.
type Client interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	IsConfigured() bool
}
