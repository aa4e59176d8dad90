package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single point of contact with a generative-text backend.
// Every call is an independent request/response pair; there is no streaming
// and no conversation state.
type Provider interface {
	// Generate sends one prompt to the model and returns its completion.
	// When the request carries a Schema, the provider asks for structured
	// output and validates the response against it before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider committed to.
	ModelID() string
}

// Request describes one completion call. Temperature and token budget are
// caller-supplied per use; the provider itself is policy-free.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user content for this single-turn request.
	Prompt string

	// Schema, when set, instructs the provider to return JSON conforming
	// to it. When nil the response Content is the raw completion text.
	Schema *Schema

	// MaxTokens bounds the completion size.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means the
	// provider default.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "question-batch".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the completion. With a Schema it is the validated JSON
	// document; without one it is the raw completion text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Text returns the completion as a string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
