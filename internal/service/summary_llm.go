package service

import (
	"context"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"

	"github.com/ca-io-systems/YT-Trends/internal/config"
)

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, system, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, system, prompt string) (string, error) {
	return f(ctx, system, prompt)
}

// NewLLMCompleter builds a Completer backed by an OpenAI-compatible endpoint.
func NewLLMCompleter(cfg config.LLMConfig) Completer {
	client := llm.NewClient(cfg.APIBase, cfg.APIKey, cfg.Model,
		llm.WithMaxTokens(cfg.MaxTokens),
		llm.WithTemperature(cfg.Temperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	return CompleterFunc(func(ctx context.Context, system, prompt string) (string, error) {
		return client.Complete(ctx, system, prompt)
	})
}
