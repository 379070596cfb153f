package llm

import (
	"context"
	"fmt"

	"github.com/CodexForgeBR/dockergen/internal/config"
	"github.com/CodexForgeBR/dockergen/internal/model"
)

// New returns the generator for the configured provider, throttled to
// cfg.RequestsPerMinute.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	opts := Options{
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		TopP:        cfg.TopP,
		MaxTokens:   cfg.MaxTokens,
	}

	apiKey, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}

	var g Generator
	switch cfg.Provider {
	case model.OpenAI:
		g = NewOpenAIGenerator(apiKey, cfg.BaseURL, opts)
	case model.HuggingFace:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = HuggingFaceBaseURL
		}
		g = NewOpenAIGenerator(apiKey, baseURL, opts)
	case model.Ollama:
		g, err = NewOllamaGenerator(cfg.BaseURL, nil, opts)
	case model.Gemini:
		g, err = NewGeminiGenerator(ctx, apiKey, cfg.BaseURL, opts)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	return NewThrottledGenerator(g, cfg.RequestsPerMinute), nil
}
