package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/CodexForgeBR/dockergen/internal/model"
)

// DotEnvFile holds API credentials next to the working directory.
const DotEnvFile = ".env"

// credentialVars lists, per provider, the environment variables consulted for
// an API key in priority order.
var credentialVars = map[string][]string{
	model.OpenAI:      {"OPENAI_API_KEY"},
	model.HuggingFace: {"API_TOKEN", "HF_TOKEN"},
	model.Gemini:      {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	model.Ollama:      nil,
}

// LoadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// APIKey returns the API key for the configured provider from the
// environment. Providers that need no key (ollama) return "" and nil.
func (c *Config) APIKey() (string, error) {
	vars := credentialVars[c.Provider]
	if len(vars) == 0 {
		return "", nil
	}
	for _, name := range vars {
		if v := os.Getenv(name); v != "" {
			return v, nil
		}
	}
	return "", fmt.Errorf("%s not found; set it in the environment or in %s", vars[0], DotEnvFile)
}
