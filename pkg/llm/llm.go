// Package llm wraps the hosted language models used by the chatbot.
package llm

import (
	"context"
	"errors"
)

// Roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("llm: empty response")

// Message is one prompt entry.
type Message struct {
	Role    string
	Content string
}

// Provider turns a prompt into a completion. Implementations must be safe
// for concurrent use and honour ctx cancellation.
type Provider interface {
	Complete(ctx context.Context, messages []Message) (string, error)
	Name() string
}

// Options are the sampling settings shared by all providers.
type Options struct {
	Temperature float64
	MaxTokens   int
}
