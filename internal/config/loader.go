package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/CodexForgeBR/dockergen/internal/model"
)

// whitelistSet is a precomputed lookup table for fast whitelist membership checks.
var whitelistSet map[string]bool

func init() {
	whitelistSet = make(map[string]bool, len(WhitelistedVars))
	for _, v := range WhitelistedVars {
		whitelistSet[v] = true
	}
}

// LoadFile parses a KEY=VALUE config file at the given path.
//
// The file uses dotenv syntax: comments start with #, values may be quoted,
// and an optional "export " prefix is accepted. Keys not present in
// WhitelistedVars are silently ignored.
func LoadFile(path string) (map[string]string, error) {
	raw, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	result := make(map[string]string, len(raw))
	for key, value := range raw {
		key = strings.TrimSpace(key)
		if !whitelistSet[key] {
			continue
		}
		result[key] = strings.TrimSpace(value)
	}
	return result, nil
}

// LoadWithPrecedence assembles a Config by merging sources in order of
// increasing priority:
//
//  1. Built-in defaults of generator
//  2. Project config file (projectPath, missing file is fine)
//  3. Explicit config file (explicitPath, must exist)
//  4. CLI overrides (cliOverrides map)
//
// When the provider ends up different from the generator default and no layer
// set MODEL, the provider's default model replaces the generator's.
func LoadWithPrecedence(generator, projectPath, explicitPath string, cliOverrides map[string]string) (*Config, error) {
	cfg := NewDefaultConfig(generator)
	defaultProvider := cfg.Provider
	modelSet := false

	apply := func(m map[string]string) {
		if _, ok := m["MODEL"]; ok {
			modelSet = true
		}
		ApplyMapToConfig(cfg, m)
	}

	if projectPath != "" {
		m, err := LoadFile(projectPath)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("project config: %w", err)
			}
		} else {
			apply(m)
		}
	}

	if explicitPath != "" {
		m, err := LoadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("explicit config: %w", err)
		}
		apply(m)
	}

	if len(cliOverrides) > 0 {
		apply(cliOverrides)
	}

	if !modelSet && cfg.Provider != defaultProvider {
		cfg.Model = model.DefaultModelForProvider(cfg.Provider)
	}

	return cfg, nil
}

// ApplyMapToConfig sets fields on cfg from the key-value pairs in m.
// Keys must use the WhitelistedVars naming convention (e.g., "MAX_TOKENS").
// Unknown keys are silently ignored. Numeric fields that fail to parse
// are silently ignored (the previous value is preserved).
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "PROVIDER":
			cfg.Provider = strings.ToLower(value)
		case "MODEL":
			cfg.Model = value
		case "BASE_URL":
			cfg.BaseURL = value
		case "TEMPERATURE":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				cfg.Temperature = v
			}
		case "TOP_P":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				cfg.TopP = v
			}
		case "MAX_TOKENS":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxTokens = v
			}
		case "MAX_RETRIES":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.MaxRetries = v
			}
		case "REQUESTS_PER_MINUTE":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.RequestsPerMinute = v
			}
		case "INPUT":
			cfg.Input = value
		case "OUTPUT":
			cfg.Output = value
		case "LOG_DIR":
			cfg.LogDir = value
		case "EXCLUDE":
			cfg.Exclude = splitList(value)
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		}
	}
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseBool interprets common boolean representations.
// "true", "1", "yes" (case-insensitive) return true; everything else returns false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
