package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiGenerator calls the Gemini API through the genai SDK.
type GeminiGenerator struct {
	client *genai.Client
	opts   Options
}

// NewGeminiGenerator creates a Gemini API client. baseURL overrides the API
// endpoint when not empty.
func NewGeminiGenerator(ctx context.Context, apiKey, baseURL string, opts Options) (*GeminiGenerator, error) {
	cc := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient(): %w", err)
	}
	return &GeminiGenerator{client: client, opts: opts}, nil
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	temp := float32(g.opts.Temperature)
	gc := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if g.opts.TopP > 0 {
		topP := float32(g.opts.TopP)
		gc.TopP = &topP
	}
	if g.opts.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(g.opts.MaxTokens)
	}
	if req.System != "" {
		gc.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: req.System}}}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.opts.Model, genai.Text(req.Prompt), gc)
	if err != nil {
		return "", fmt.Errorf("model.GenerateContent(): %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
