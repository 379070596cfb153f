package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// HuggingFaceBaseURL is the OpenAI-compatible inference router used for the
// huggingface provider.
const HuggingFaceBaseURL = "https://router.huggingface.co/v1/"

// OpenAIGenerator sends chat completion requests to the OpenAI API or any
// server speaking the same protocol.
type OpenAIGenerator struct {
	client *openai.Client
	opts   Options
}

// NewOpenAIGenerator builds a generator for an OpenAI-compatible endpoint.
// An empty baseURL selects the public OpenAI API. The client never retries on
// its own; retries are counted by the caller.
func NewOpenAIGenerator(apiKey, baseURL string, opts Options) *OpenAIGenerator {
	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if apiKey != "" {
		reqOpts = append(reqOpts, option.WithAPIKey(apiKey))
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
	}
	return &OpenAIGenerator{client: openai.NewClient(reqOpts...), opts: opts}
}

// Generate implements Generator.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:       openai.F(openai.ChatModel(g.opts.Model)),
		Messages:    openai.F(messages),
		Temperature: openai.Float(g.opts.Temperature),
	}
	if g.opts.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(g.opts.MaxTokens))
	}
	if g.opts.TopP > 0 {
		params.TopP = openai.Float(g.opts.TopP)
	}

	res, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}
	return res.Choices[0].Message.Content, nil
}
