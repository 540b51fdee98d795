// Package provider contains the clients for external text-generation APIs.
// It uses the Adapter pattern to normalize provider-specific wire protocols
// behind a single Provider interface.
package provider

import (
	"context"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single role-tagged turn in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered sequence of messages sent to a provider.
type Conversation []Message

// Options holds the per-request generation parameters.
// Zero values mean "use the client's defaults".
type Options struct {
	// Model is the provider-specific model identifier.
	Model string

	// Temperature controls randomness, conceptually in [0,1].
	Temperature float64

	// MaxTokens limits the completion length.
	MaxTokens int
}

// Provider performs exactly one request/response cycle against one external
// text-generation endpoint. Failures are reported as *TransportError.
type Provider interface {
	// Complete sends the conversation and returns the raw completion text.
	Complete(ctx context.Context, conv Conversation, opts Options) (string, error)

	// Name returns the provider's identifier string.
	Name() string
}

// Provider identifiers as used in configuration routing.
const (
	NameKolosal    = "kolosal"
	NameGoogleAI   = "googleai"
	NameOpenRouter = "openrouter"
)
