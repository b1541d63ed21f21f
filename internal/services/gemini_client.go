package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const ProviderGemini = "gemini"

// GeminiCompleter calls the Gemini API through the genai SDK.
type GeminiCompleter struct {
	Client      *genai.Client
	Model       string
	Temperature float64
	MaxTokens   int
}

// NewGeminiCompleter returns an unavailable completer when no API key is set.
func NewGeminiCompleter(ctx context.Context, cfg CompleterConfig) (*GeminiCompleter, error) {
	g := &GeminiCompleter{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}
	if cfg.APIKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: cfg.BaseURL,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	g.Client = client
	return g, nil
}

func (g *GeminiCompleter) Name() string {
	return fmt.Sprintf("%s (%s)", ProviderGemini, g.Model)
}

func (g *GeminiCompleter) Available() bool {
	return g.Client != nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if g.Client == nil {
		return "", ErrClientUnavailable
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.Text(systemPrompt)[0],
		Temperature:       genai.Ptr(float32(g.Temperature)),
		MaxOutputTokens:   int32(g.MaxTokens),
	}

	result, err := g.Client.Models.GenerateContent(ctx, g.Model, genai.Text(userText), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", &ProviderError{Provider: ProviderGemini, StatusCode: apiErr.Code, Message: apiErr.Message, Err: err}
		}
		return "", &ProviderError{Provider: ProviderGemini, Message: err.Error(), Err: err}
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", &ProviderError{Provider: ProviderGemini, Message: "empty response"}
	}
	return text, nil
}
