package model

import (
	"fmt"
	"regexp"
	"strings"
)

// openAIModelRe matches OpenAI-family model prefixes: o1, o3, gpt-*, etc.
var openAIModelRe = regexp.MustCompile(`^(o[0-9]|gpt|chatgpt|text|ft)`)

// IsProvider reports whether name is a supported provider.
func IsProvider(name string) bool {
	for _, p := range Providers {
		if p == name {
			return true
		}
	}
	return false
}

// IsGenerator reports whether name is a supported generator.
func IsGenerator(name string) bool {
	for _, g := range Generators {
		if g == name {
			return true
		}
	}
	return false
}

// ValidateModelProvider checks whether model plausibly belongs to provider.
//
// Rules:
//   - Empty model is always allowed (the caller applies defaults).
//   - Gemini models must start with "gemini" or "models/".
//   - "gemini*" models are rejected for every other provider.
//   - Hugging Face models must be "owner/name" repository ids.
//   - OpenAI-style names (gpt*, o1*, ...) are rejected for ollama, which
//     names its models by tag ("mistral", "llama3.1:8b").
//   - Anything else is accepted without opinion.
func ValidateModelProvider(provider, model string) error {
	if model == "" {
		return nil
	}
	lower := strings.ToLower(model)
	isGemini := strings.HasPrefix(lower, "gemini") || strings.HasPrefix(lower, "models/")

	switch provider {
	case Gemini:
		if !isGemini {
			return fmt.Errorf("model %q is not a gemini model", model)
		}
		return nil
	case HuggingFace:
		if !strings.Contains(model, "/") {
			return fmt.Errorf("model %q is not a Hugging Face repository id (owner/name)", model)
		}
	case Ollama:
		if openAIModelRe.MatchString(lower) {
			return fmt.Errorf("model %q looks like an openai model but provider=%s", model, provider)
		}
	}

	if isGemini {
		return fmt.Errorf("model %q looks like a gemini model but provider=%s", model, provider)
	}
	return nil
}
