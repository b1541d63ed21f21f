package services

import (
	"context"
	"strings"
	"sync"
	"time"
)

const ProviderMock = "mock"

// MockCompleter echoes the trimmed input back. Used for local development and tests.
// It is shared by all requests when selected with --provider mock.
type MockCompleter struct {
	Delay       time.Duration
	Err         error
	Unavailable bool

	mu         sync.Mutex
	lastPrompt string
}

func (m *MockCompleter) Name() string {
	return ProviderMock
}

func (m *MockCompleter) Available() bool {
	return !m.Unavailable
}

// LastPrompt returns the system prompt of the most recent call.
func (m *MockCompleter) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPrompt
}

func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if m.Unavailable {
		return "", ErrClientUnavailable
	}

	m.mu.Lock()
	m.lastPrompt = systemPrompt
	m.mu.Unlock()

	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return "", &ProviderError{Provider: ProviderMock, Message: ctx.Err().Error(), Err: ctx.Err()}
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return strings.TrimSpace(userText), nil
}
