package config

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"tone-converter-service/internal/services"
)

type Config struct {
	Addr string

	Provider        string
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float64
	MaxTokens       int
	ProviderTimeout time.Duration

	MaxTextLength int
	RateLimit     int
	PromptDir     string
	StaticDir     string

	LogLevel  string
	LogFormat string
}

var defaultModels = map[string]string{
	services.ProviderGroq:   "llama-3.1-8b-instant",
	services.ProviderOpenAI: "gpt-4o-mini",
	services.ProviderGemini: "gemini-2.0-flash",
	services.ProviderMock:   "mock",
}

var apiKeyEnv = map[string][]string{
	services.ProviderGroq:   {"GROQ_API_KEY"},
	services.ProviderOpenAI: {"OPENAI_API_KEY"},
	services.ProviderGemini: {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "addr", Value: ":5000", Usage: "listen address", EnvVars: []string{"ADDR"}},
		&cli.StringFlag{Name: "provider", Value: services.ProviderGroq, Usage: "completion provider: groq, openai, gemini or mock", EnvVars: []string{"LLM_PROVIDER"}},
		&cli.StringFlag{Name: "api-key", Usage: "provider API key (defaults to GROQ_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY)", EnvVars: []string{"LLM_API_KEY"}},
		&cli.StringFlag{Name: "base-url", Usage: "override the provider base URL", EnvVars: []string{"LLM_BASE_URL"}},
		&cli.StringFlag{Name: "model", Usage: "model name (provider default when empty)", EnvVars: []string{"MODEL_NAME"}},
		&cli.Float64Flag{Name: "temperature", Value: 0.7, Usage: "sampling temperature", EnvVars: []string{"LLM_TEMPERATURE"}},
		&cli.IntFlag{Name: "max-tokens", Value: 1024, Usage: "completion token cap", EnvVars: []string{"LLM_MAX_TOKENS"}},
		&cli.DurationFlag{Name: "provider-timeout", Usage: "timeout for a provider call, 0 for none", EnvVars: []string{"LLM_TIMEOUT"}},
		&cli.IntFlag{Name: "max-text-length", Value: 500, Usage: "maximum input length in characters, 0 for unlimited", EnvVars: []string{"MAX_TEXT_LENGTH"}},
		&cli.IntFlag{Name: "rate-limit", Value: 30, Usage: "conversions per minute per client IP, 0 to disable", EnvVars: []string{"RATE_LIMIT_PER_MINUTE"}},
		&cli.StringFlag{Name: "prompt-dir", Usage: "directory with upward.txt, lateral.txt, external.txt prompt overrides", EnvVars: []string{"PROMPT_DIR"}},
		&cli.StringFlag{Name: "static-dir", Usage: "serve the frontend from this directory instead of the embedded copy", EnvVars: []string{"STATIC_DIR"}},
		&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", EnvVars: []string{"LOG_LEVEL"}},
		&cli.StringFlag{Name: "log-format", Value: "text", Usage: "text or json", EnvVars: []string{"LOG_FORMAT"}},
	}
}

// FromCLI reads the flag values and fills in provider defaults.
func FromCLI(c *cli.Context) Config {
	cfg := Config{
		Addr:            c.String("addr"),
		Provider:        c.String("provider"),
		APIKey:          c.String("api-key"),
		BaseURL:         c.String("base-url"),
		Model:           c.String("model"),
		Temperature:     c.Float64("temperature"),
		MaxTokens:       c.Int("max-tokens"),
		ProviderTimeout: c.Duration("provider-timeout"),
		MaxTextLength:   c.Int("max-text-length"),
		RateLimit:       c.Int("rate-limit"),
		PromptDir:       c.String("prompt-dir"),
		StaticDir:       c.String("static-dir"),
		LogLevel:        c.String("log-level"),
		LogFormat:       c.String("log-format"),
	}

	if cfg.APIKey == "" {
		cfg.APIKey = providerAPIKey(cfg.Provider, os.Getenv)
	}
	if cfg.Model == "" {
		cfg.Model = defaultModels[cfg.Provider]
	}
	return cfg
}

func providerAPIKey(provider string, getenv func(string) string) string {
	for _, name := range apiKeyEnv[provider] {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return ""
}

func (c Config) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %v", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.ProviderTimeout < 0 {
		return fmt.Errorf("provider timeout must not be negative")
	}
	if c.MaxTextLength < 0 {
		return fmt.Errorf("max text length must not be negative")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate limit must not be negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

func (c Config) Completer() services.CompleterConfig {
	return services.CompleterConfig{
		Provider:    c.Provider,
		APIKey:      c.APIKey,
		BaseURL:     c.BaseURL,
		Model:       c.Model,
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	}
}
