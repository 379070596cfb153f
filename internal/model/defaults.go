// Package model centralises provider identifiers and the per-generator
// defaults (backend, model name, sampling parameters) of the dockergen CLI.
package model

// Provider identifiers accepted by --provider.
const (
	OpenAI      = "openai"
	HuggingFace = "huggingface"
	Ollama      = "ollama"
	Gemini      = "gemini"
)

// Generator identifiers, one per subcommand.
const (
	Dockerfile = "dockerfile"
	Compose    = "compose"
	Info       = "info"
)

// Providers lists every supported provider in display order.
var Providers = []string{OpenAI, HuggingFace, Ollama, Gemini}

// Generators lists every generator in display order.
var Generators = []string{Dockerfile, Compose, Info}

// Profile holds the built-in defaults of one generator.
type Profile struct {
	Provider    string
	Model       string
	Temperature float64
	TopP        float64 // 0 leaves top-p to the backend
	MaxTokens   int
	Input       string
	Output      string
	LogDir      string
}

// DefaultProfile returns the defaults for the given generator. Unknown
// generators get the compose profile with their own log directory.
func DefaultProfile(generator string) Profile {
	switch generator {
	case Dockerfile:
		return Profile{
			Provider:    HuggingFace,
			Model:       "mistralai/Mistral-7B-Instruct-v0.3",
			Temperature: 0.6,
			TopP:        0.7,
			MaxTokens:   512,
			Input:       "dockerfiles/sources-gold",
			Output:      "data/dockerfiles.jsonl",
			LogDir:      "logs/dockerfile",
		}
	case Info:
		return Profile{
			Provider:    OpenAI,
			Model:       "gpt-3.5-turbo-0125",
			Temperature: 0.7,
			MaxTokens:   700,
			Input:       "data/scraped-images.txt",
			Output:      "jsonl/docker_info_entries.jsonl",
			LogDir:      "logs/info",
		}
	default:
		p := Profile{
			Provider:    OpenAI,
			Model:       "gpt-3.5-turbo-0125",
			Temperature: 0.7,
			MaxTokens:   700,
			Input:       "data/scraped-images.txt",
			Output:      "jsonl/docker_compose_entries.jsonl",
			LogDir:      "logs/compose",
		}
		if generator != Compose && generator != "" {
			p.LogDir = "logs/" + generator
		}
		return p
	}
}

// DefaultModelForProvider returns the model used when a provider is chosen
// without an explicit model and the generator default targets another
// provider.
func DefaultModelForProvider(provider string) string {
	switch provider {
	case HuggingFace:
		return "mistralai/Mistral-7B-Instruct-v0.3"
	case Ollama:
		return "mistral"
	case Gemini:
		return "gemini-2.0-flash"
	default:
		return "gpt-3.5-turbo-0125"
	}
}
