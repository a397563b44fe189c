package ai

import (
	"context"
	"fmt"
	"strings"
)

type Options struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewAssistant(ctx context.Context, opts Options) (Assistant, error) {
	provider := strings.ToLower(strings.TrimSpace(opts.Provider))
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		return NewGeminiAssistant(ctx, opts.APIKey, opts.Model)
	case "openai":
		return NewOpenAIAssistant(opts.APIKey, opts.Model, opts.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported assistant provider: %s", opts.Provider)
	}
}
