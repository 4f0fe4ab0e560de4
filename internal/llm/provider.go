// Package llm abstracts external text-generation providers behind a
// single interface. Providers are consulted in configured priority
// order by the arbiter; every provider failure is recoverable by
// falling through to the next one.
package llm

import (
	"context"
)

// Provider defines the interface for text-generation providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends a system+user prompt pair and returns the raw text
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// GenerateRequest contains the input for a generation call
type GenerateRequest struct {
	// System is the system prompt (instructions, output schema)
	System string

	// Prompt is the user prompt (case description and candidates)
	Prompt string

	// Model overrides the provider's configured model when non-empty
	Model string

	// MaxTokens limits the response length
	MaxTokens int

	// Temperature controls sampling; legal analysis wants it low
	Temperature float64

	// JSONMode requests the provider's strict JSON response mode where
	// supported. Providers without one rely on the system prompt alone;
	// the repair pipeline covers the difference.
	JSONMode bool
}

// GenerateResponse contains the provider's output
type GenerateResponse struct {
	// Text is the raw generated text
	Text string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}
