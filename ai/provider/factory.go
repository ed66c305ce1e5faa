// Package provider selects the LLM backend used by the command pipeline.
package provider

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/milassist/ai/openrouter"
	"github.com/teranos/milassist/am"
	"github.com/teranos/milassist/errors"
)

// Provider names an LLM backend.
type Provider string

const (
	// ProviderLocal uses an OpenAI-compatible local server (Ollama, LocalAI)
	ProviderLocal Provider = "local"
	// ProviderOpenRouter uses OpenRouter.ai
	ProviderOpenRouter Provider = "openrouter"
	// ProviderAuto picks local when enabled, else OpenRouter
	ProviderAuto Provider = "auto"
)

// AIClient is implemented by every backend.
type AIClient interface {
	Chat(ctx context.Context, req openrouter.ChatRequest) (*openrouter.ChatResponse, error)
}

// NewAIClient builds the client the configuration asks for.
func NewAIClient(cfg *am.Config, log *zap.SugaredLogger) AIClient {
	return NewAIClientWithProvider(cfg, ProviderAuto, log)
}

// NewAIClientWithProvider builds a specific backend. Unknown values behave
// like ProviderAuto.
func NewAIClientWithProvider(cfg *am.Config, p Provider, log *zap.SugaredLogger) AIClient {
	switch p {
	case ProviderLocal:
		return newLocalClient(cfg, log)
	case ProviderOpenRouter:
		return newOpenRouterClient(cfg, log)
	default:
		if Select(cfg) == ProviderLocal {
			return newLocalClient(cfg, log)
		}
		return newOpenRouterClient(cfg, log)
	}
}

// Select reports which backend ProviderAuto resolves to. Local inference
// needs both the enabled flag and a base URL.
func Select(cfg *am.Config) Provider {
	if cfg.LocalInference.Enabled && cfg.LocalInference.BaseURL != "" {
		return ProviderLocal
	}
	return ProviderOpenRouter
}

func newLocalClient(cfg *am.Config, log *zap.SugaredLogger) AIClient {
	return NewLocalProvider(LocalConfig{
		BaseURL: cfg.LocalInference.BaseURL,
		Model:   cfg.LocalInference.Model,
		Timeout: time.Duration(cfg.LocalInference.TimeoutSeconds) * time.Second,
		Logger:  log,
	})
}

func newOpenRouterClient(cfg *am.Config, log *zap.SugaredLogger) AIClient {
	return openrouter.NewClient(openrouter.Config{
		APIKey:      cfg.OpenRouter.APIKey,
		Model:       cfg.OpenRouter.Model,
		BaseURL:     cfg.OpenRouter.BaseURL,
		Temperature: cfg.OpenRouter.Temperature,
		MaxTokens:   cfg.OpenRouter.MaxTokens,
		Logger:      log,
	})
}

// Available lists the backends that are usable with cfg.
func Available(cfg *am.Config) []Provider {
	var out []Provider
	if cfg.LocalInference.Enabled && cfg.LocalInference.BaseURL != "" {
		out = append(out, ProviderLocal)
	}
	if cfg.OpenRouter.APIKey != "" {
		out = append(out, ProviderOpenRouter)
	}
	return out
}

// ParseProvider converts a flag value to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch s {
	case "local", "ollama", "localai":
		return ProviderLocal, nil
	case "openrouter", "or":
		return ProviderOpenRouter, nil
	case "auto", "":
		return ProviderAuto, nil
	default:
		return "", errors.Newf("unknown provider: %s (valid: local, openrouter, auto)", s)
	}
}

var (
	_ AIClient = (*openrouter.Client)(nil)
	_ AIClient = (*LocalProvider)(nil)
)
