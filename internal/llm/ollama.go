package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// OllamaGenerator sends non-streaming chat requests to an Ollama server.
type OllamaGenerator struct {
	client *ollama.Client
	opts   Options
}

// NewOllamaGenerator builds a generator for the Ollama server at baseURL.
// An empty baseURL falls back to OLLAMA_HOST and then to the local default.
// A nil httpClient selects http.DefaultClient.
func NewOllamaGenerator(baseURL string, httpClient *http.Client, opts Options) (*OllamaGenerator, error) {
	if baseURL == "" {
		client, err := ollama.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("ollama client: %w", err)
		}
		return &OllamaGenerator{client: client, opts: opts}, nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse ollama url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OllamaGenerator{client: ollama.NewClient(u, httpClient), opts: opts}, nil
}

// Generate implements Generator.
func (g *OllamaGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var messages []ollama.Message
	if req.System != "" {
		messages = append(messages, ollama.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, ollama.Message{Role: "user", Content: req.Prompt})

	options := map[string]interface{}{
		"temperature": g.opts.Temperature,
	}
	if g.opts.TopP > 0 {
		options["top_p"] = g.opts.TopP
	}
	if g.opts.MaxTokens > 0 {
		options["num_predict"] = g.opts.MaxTokens
	}

	stream := false
	chatReq := &ollama.ChatRequest{
		Model:    g.opts.Model,
		Messages: messages,
		Stream:   &stream,
		Options:  options,
	}

	var b strings.Builder
	err := g.client.Chat(ctx, chatReq, func(res ollama.ChatResponse) error {
		b.WriteString(res.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	if b.Len() == 0 {
		return "", ErrEmptyCompletion
	}
	return b.String(), nil
}
