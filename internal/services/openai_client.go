package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"

	GroqBaseURL = "https://api.groq.com/openai/v1"
)

// OpenAICompleter talks to any OpenAI-compatible chat completion API (Groq, OpenAI).
type OpenAICompleter struct {
	client      *openai.Client
	provider    string
	model       string
	temperature float64
	maxTokens   int
}

func NewOpenAICompleter(cfg CompleterConfig) *OpenAICompleter {
	c := &OpenAICompleter{
		provider:    cfg.Provider,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
	if cfg.APIKey == "" {
		return c
	}

	baseURL := cfg.BaseURL
	if baseURL == "" && cfg.Provider == ProviderGroq {
		baseURL = GroqBaseURL
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)
	c.client = &client
	return c
}

func (c *OpenAICompleter) Name() string {
	return fmt.Sprintf("%s (%s)", c.provider, c.model)
}

func (c *OpenAICompleter) Available() bool {
	return c.client != nil
}

func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if c.client == nil {
		return "", ErrClientUnavailable
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userText),
		},
		MaxTokens:   openai.Int(int64(c.maxTokens)),
		Temperature: openai.Float(c.temperature),
	})
	if err != nil {
		return "", c.providerError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: c.provider, Message: "no choices in response"}
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &ProviderError{Provider: c.provider, Message: "empty response"}
	}
	return content, nil
}

func (c *OpenAICompleter) providerError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = err.Error()
		}
		return &ProviderError{Provider: c.provider, StatusCode: apiErr.StatusCode, Message: msg, Err: err}
	}
	return &ProviderError{Provider: c.provider, Message: err.Error(), Err: err}
}
