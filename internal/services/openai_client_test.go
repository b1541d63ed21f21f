package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const chatCompletionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "llama-3.1-8b-instant",
  "choices": [
    {"index": 0, "message": {"role": "assistant", "content": "Could you share the file when you have a moment?"}, "finish_reason": "stop"}
  ],
  "usage": {"prompt_tokens": 10, "completion_tokens": 12, "total_tokens": 22}
}`

func newOpenAITestCompleter(t *testing.T, handler http.HandlerFunc) *OpenAICompleter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenAICompleter(CompleterConfig{
		Provider:    ProviderGroq,
		APIKey:      "gsk-test",
		BaseURL:     srv.URL,
		Model:       "llama-3.1-8b-instant",
		Temperature: 0.7,
		MaxTokens:   1024,
	})
}

func TestOpenAICompleterSendsFixedParameters(t *testing.T) {
	var got chatRequest
	var auth string
	c := newOpenAITestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatCompletionBody))
	})

	out, err := c.Complete(context.Background(), "be polite", "give me the file")
	require.NoError(t, err)

	assert.Equal(t, "Could you share the file when you have a moment?", out)
	assert.Equal(t, "Bearer gsk-test", auth)
	assert.Equal(t, "llama-3.1-8b-instant", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 1e-9)
	assert.Equal(t, 1024, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be polite", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "give me the file", got.Messages[1].Content)
}

func TestOpenAICompleterAPIError(t *testing.T) {
	calls := 0
	c := newOpenAITestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid API Key", "type": "invalid_request_error", "code": "invalid_api_key"}, "message": "Invalid API Key"}`))
	})

	_, err := c.Complete(context.Background(), "sys", "text")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr), "got %T: %v", err, err)
	assert.Equal(t, ProviderGroq, provErr.Provider)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
	assert.Contains(t, provErr.Error(), "Invalid API Key")
	assert.Equal(t, 1, calls, "provider calls must not be retried")
}

func TestOpenAICompleterEmptyChoices(t *testing.T) {
	c := newOpenAITestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "x", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`))
	})

	_, err := c.Complete(context.Background(), "sys", "text")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Contains(t, provErr.Message, "no choices")
}

func TestOpenAICompleterBlankContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace only", "  \n\t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newOpenAITestCompleter(t, func(w http.ResponseWriter, r *http.Request) {
				body, _ := json.Marshal(map[string]any{
					"id":      "chatcmpl-2",
					"object":  "chat.completion",
					"created": 1,
					"model":   "m",
					"choices": []map[string]any{{
						"index":         0,
						"message":       map[string]any{"role": "assistant", "content": tt.content},
						"finish_reason": "length",
					}},
				})
				w.Header().Set("Content-Type", "application/json")
				w.Write(body)
			})

			out, err := c.Complete(context.Background(), "sys", "text")

			assert.Empty(t, out)
			var provErr *ProviderError
			require.True(t, errors.As(err, &provErr), "got %T: %v", err, err)
			assert.Equal(t, "empty response", provErr.Message)
		})
	}
}

func TestOpenAICompleterConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewOpenAICompleter(CompleterConfig{Provider: ProviderOpenAI, APIKey: "sk", BaseURL: url, Model: "m", MaxTokens: 10})
	_, err := c.Complete(context.Background(), "sys", "text")

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, 0, provErr.StatusCode)
}

func TestOpenAICompleterWithoutKey(t *testing.T) {
	c := NewOpenAICompleter(CompleterConfig{Provider: ProviderGroq, Model: "m"})

	assert.False(t, c.Available())
	_, err := c.Complete(context.Background(), "sys", "text")
	assert.ErrorIs(t, err, ErrClientUnavailable)
	assert.Equal(t, "groq (m)", c.Name())
}
