package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"tone-converter-service/internal/metrics"
	"tone-converter-service/internal/models"
	"tone-converter-service/internal/utils"
)

type ConvertService struct {
	Completer Completer
	Prompts   *utils.PromptSet
	Timeout   time.Duration
	Log       logrus.FieldLogger
}

func NewConvertService(completer Completer, prompts *utils.PromptSet, timeout time.Duration, log logrus.FieldLogger) *ConvertService {
	if completer.Available() {
		metrics.ProviderConfigured.Set(1)
	} else {
		metrics.ProviderConfigured.Set(0)
	}
	return &ConvertService{
		Completer: completer,
		Prompts:   prompts,
		Timeout:   timeout,
		Log:       log,
	}
}

// NewCompleter builds the completer for cfg.Provider.
func NewCompleter(ctx context.Context, cfg CompleterConfig) (Completer, error) {
	switch cfg.Provider {
	case ProviderGroq, ProviderOpenAI:
		return NewOpenAICompleter(cfg), nil
	case ProviderGemini:
		return NewGeminiCompleter(ctx, cfg)
	case ProviderMock:
		return &MockCompleter{}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// Convert rewrites in.Text for in.Target. Returned errors are ErrClientUnavailable,
// a *ProviderError, or an internal failure.
func (s *ConvertService) Convert(ctx context.Context, in models.ConvertInput) (*models.ConvertResponse, error) {
	prompt, ok := s.Prompts.Resolve(in.Target)
	if !ok {
		return nil, fmt.Errorf("no prompt for target %s", in.Target)
	}

	if !s.Completer.Available() {
		metrics.Conversions.WithLabelValues(string(in.Target), "unavailable").Inc()
		return nil, ErrClientUnavailable
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	metrics.InputRunes.Observe(float64(utf8.RuneCountInString(in.Text)))

	start := time.Now()
	output, err := s.Completer.Complete(ctx, prompt, in.Text)
	elapsed := time.Since(start)
	metrics.ProviderLatency.WithLabelValues(s.Completer.Name()).Observe(elapsed.Seconds())

	if err != nil {
		outcome := "error"
		var providerErr *ProviderError
		if errors.As(err, &providerErr) {
			outcome = "provider_error"
		}
		metrics.Conversions.WithLabelValues(string(in.Target), outcome).Inc()
		return nil, err
	}

	metrics.Conversions.WithLabelValues(string(in.Target), "ok").Inc()
	s.Log.WithFields(logrus.Fields{
		"target":     in.Target,
		"provider":   s.Completer.Name(),
		"elapsed_ms": elapsed.Milliseconds(),
	}).Debug("conversion completed")

	return &models.ConvertResponse{
		OriginalText:  in.Text,
		ConvertedText: strings.TrimSpace(output),
		Target:        in.Target,
	}, nil
}

// Status reports whether the provider can serve requests.
func (s *ConvertService) Status() models.ProviderStatus {
	st := models.ProviderStatus{
		Name:      s.Completer.Name(),
		Available: s.Completer.Available(),
	}
	if !st.Available {
		st.Reason = "no API key"
	}
	return st
}
