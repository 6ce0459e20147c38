package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a hosted LLM API. All traffic from the
// question generator flows through this interface.
type Provider interface {
	// Generate sends a single request to the LLM and blocks until the
	// response arrives. When the request carries a Schema, the response
	// Content is JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one LLM invocation.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Messages is the conversation. Question generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output
	// conforming to the definition. Left nil, Content is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls sampling randomness, 0.0 - 1.0.
	Temperature float64
}

// Message is a single turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the response must satisfy.
type Schema struct {
	// Name identifies the schema, kebab-case (used as the structured
	// output name where the provider API requires one).
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is the LLM's output for one request.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage holds token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
