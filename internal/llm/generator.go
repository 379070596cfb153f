// Package llm talks to the language-model backends dockergen can use and
// provides the decorators that wrap them: request throttling and bounded
// retry.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyCompletion is returned when a backend answers without any text.
var ErrEmptyCompletion = errors.New("backend returned no completion")

// Request is one generation call. System may be empty.
type Request struct {
	System string
	Prompt string
}

// Options are the model and sampling parameters shared by every backend.
// Zero TopP leaves the backend default in place.
type Options struct {
	Model       string
	Temperature float64
	TopP        float64
	MaxTokens   int
}

// Generator produces the raw text completion for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, req Request) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
