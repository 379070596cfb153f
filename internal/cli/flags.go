// Package cli provides flag binding and validation for the dockergen CLI.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/dockergen/internal/config"
	"github.com/CodexForgeBR/dockergen/internal/model"
)

// BindFlags registers the generation flags on the given cobra command.
// The flags write into cfg. Their zero defaults are placeholders: generator
// defaults come from config.LoadWithPrecedence, and only flags the user set
// are applied on top via Overrides.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Backend
	flags.StringVarP(&cfg.Provider, "provider", "p", "", "Backend: openai, huggingface, ollama or gemini")
	flags.StringVarP(&cfg.Model, "model", "m", "", "Model name")
	flags.StringVar(&cfg.BaseURL, "base-url", "", "Override the backend endpoint")

	// Sampling
	flags.Float64Var(&cfg.Temperature, "temperature", 0, "Sampling temperature")
	flags.Float64Var(&cfg.TopP, "top-p", 0, "Nucleus sampling probability (0 keeps the backend default)")
	flags.IntVar(&cfg.MaxTokens, "max-tokens", 0, "Maximum tokens per completion")

	// Request loop
	flags.IntVar(&cfg.MaxRetries, "max-retries", config.DefaultMaxRetries, "Generation attempts per item")
	flags.IntVar(&cfg.RequestsPerMinute, "requests-per-minute", 0, "Throttle requests (0 disables)")

	// Paths
	flags.StringVarP(&cfg.Input, "input", "i", "", "Input directory or list file")
	flags.StringVarP(&cfg.Output, "output", "o", "", "Output JSONL file")
	flags.StringVar(&cfg.LogDir, "log-dir", "", "Directory for success/failure logs and run state")
	flags.StringSliceVar(&cfg.Exclude, "exclude", nil, "Gitignore-style patterns of input files to skip")
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")

	// Runtime
	flags.BoolVar(&cfg.Fresh, "fresh", false, "Discard logs, run state and output before starting")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Print debug output")
}

// ValidateFlags checks explicitly set flag values after parsing.
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed

	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	if changed("provider") && !model.IsProvider(strings.ToLower(cfg.Provider)) {
		return fmt.Errorf("--provider must be one of %s, got: %s", strings.Join(model.Providers, ", "), cfg.Provider)
	}
	if changed("max-retries") && cfg.MaxRetries < 1 {
		return fmt.Errorf("--max-retries must be at least 1, got: %d", cfg.MaxRetries)
	}
	if changed("max-tokens") && cfg.MaxTokens < 1 {
		return fmt.Errorf("--max-tokens must be at least 1, got: %d", cfg.MaxTokens)
	}
	if changed("requests-per-minute") && cfg.RequestsPerMinute < 0 {
		return fmt.Errorf("--requests-per-minute must not be negative, got: %d", cfg.RequestsPerMinute)
	}
	return nil
}

// Overrides creates a map of config overrides from the flags the user set.
// Uses cmd.Flags().Changed() so config file values are not overridden by
// flag defaults.
func Overrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)
	changed := cmd.Flags().Changed

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"provider": {"PROVIDER", cfg.Provider},
		"model":    {"MODEL", cfg.Model},
		"base-url": {"BASE_URL", cfg.BaseURL},
		"input":    {"INPUT", cfg.Input},
		"output":   {"OUTPUT", cfg.Output},
		"log-dir":  {"LOG_DIR", cfg.LogDir},
	}
	for flag, mapping := range stringFlags {
		if changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	floatFlags := map[string]struct {
		key string
		val float64
	}{
		"temperature": {"TEMPERATURE", cfg.Temperature},
		"top-p":       {"TOP_P", cfg.TopP},
	}
	for flag, mapping := range floatFlags {
		if changed(flag) {
			overrides[mapping.key] = strconv.FormatFloat(mapping.val, 'f', -1, 64)
		}
	}

	intFlags := map[string]struct {
		key string
		val int
	}{
		"max-tokens":          {"MAX_TOKENS", cfg.MaxTokens},
		"max-retries":         {"MAX_RETRIES", cfg.MaxRetries},
		"requests-per-minute": {"REQUESTS_PER_MINUTE", cfg.RequestsPerMinute},
	}
	for flag, mapping := range intFlags {
		if changed(flag) {
			overrides[mapping.key] = strconv.Itoa(mapping.val)
		}
	}

	if changed("exclude") {
		overrides["EXCLUDE"] = strings.Join(cfg.Exclude, ",")
	}
	if changed("verbose") {
		overrides["VERBOSE"] = strconv.FormatBool(cfg.Verbose)
	}

	return overrides
}
