// Package config defines the dockergen configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: generator defaults < project config file < explicit config file <
// CLI flag overrides.
package config

import (
	"fmt"

	"github.com/CodexForgeBR/dockergen/internal/model"
)

// ProjectConfigFile is the config file looked up in the working directory.
const ProjectConfigFile = ".dockergen"

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [13]string{
	"PROVIDER",
	"MODEL",
	"BASE_URL",
	"TEMPERATURE",
	"TOP_P",
	"MAX_TOKENS",
	"MAX_RETRIES",
	"REQUESTS_PER_MINUTE",
	"INPUT",
	"OUTPUT",
	"LOG_DIR",
	"EXCLUDE",
	"VERBOSE",
}

// DefaultMaxRetries is the number of generation attempts per work item.
const DefaultMaxRetries = 3

// Config holds every configuration field for one dockergen run.
type Config struct {
	// Generator is the subcommand being run (dockerfile, compose, info).
	Generator string

	// Backend selection.
	Provider string
	Model    string
	BaseURL  string

	// Sampling parameters.
	Temperature float64
	TopP        float64
	MaxTokens   int

	// Request loop.
	MaxRetries        int
	RequestsPerMinute int

	// Paths.
	Input   string
	Output  string
	LogDir  string
	Exclude []string

	// Runtime flags.
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	Fresh      bool
}

// NewDefaultConfig returns a Config populated with the built-in defaults of
// the given generator.
func NewDefaultConfig(generator string) *Config {
	p := model.DefaultProfile(generator)
	return &Config{
		Generator:   generator,
		Provider:    p.Provider,
		Model:       p.Model,
		Temperature: p.Temperature,
		TopP:        p.TopP,
		MaxTokens:   p.MaxTokens,
		MaxRetries:  DefaultMaxRetries,
		Input:       p.Input,
		Output:      p.Output,
		LogDir:      p.LogDir,
	}
}

// Validate checks value ranges and provider/model compatibility.
func (c *Config) Validate() error {
	if !model.IsProvider(c.Provider) {
		return fmt.Errorf("unknown provider %q (want one of %v)", c.Provider, model.Providers)
	}
	if err := model.ValidateModelProvider(c.Provider, c.Model); err != nil {
		return err
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max retries must be at least 1, got %d", c.MaxRetries)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2], got %g", c.Temperature)
	}
	if c.TopP < 0 || c.TopP > 1 {
		return fmt.Errorf("top-p must be within [0, 1], got %g", c.TopP)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max tokens must be at least 1, got %d", c.MaxTokens)
	}
	if c.RequestsPerMinute < 0 {
		return fmt.Errorf("requests per minute must not be negative, got %d", c.RequestsPerMinute)
	}
	if c.Input == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.LogDir == "" {
		return fmt.Errorf("log dir is required")
	}
	return nil
}
