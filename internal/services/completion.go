package services

import (
	"context"
	"errors"
	"fmt"
)

// ErrClientUnavailable is returned when the provider client has no credentials.
var ErrClientUnavailable = errors.New("completion client is not configured")

// Completer performs a single chat completion with a system and a user message.
type Completer interface {
	Name() string
	Available() bool
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}

// CompleterConfig holds the fixed per-process parameters of a provider call.
type CompleterConfig struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

// ProviderError is an error reported by (or while talking to) the upstream provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
