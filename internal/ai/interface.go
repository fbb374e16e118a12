package ai

import (
	"context"
	"errors"
)

// ErrUnavailable is returned by clients constructed without credentials.
// Callers treat it like any other provider failure and fall back to static
// text.
var ErrUnavailable = errors.New("ai provider unavailable")

// Options tune a single completion call.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// Client defines the contract for text completion providers.
// This interface allows swapping different backends (Groq, Gemini, etc.)
// without touching the generators that consume it.
type Client interface {
	// Complete sends a system prompt plus a user prompt and returns the
	// generated text. An empty string with a nil error is a valid provider
	// response and callers must handle it.
	Complete(ctx context.Context, system, user string, opts Options) (string, error)
}
