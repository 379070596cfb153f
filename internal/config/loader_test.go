package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/dockergen/internal/config"
)

// writeFile is a test helper that creates a temporary file with the given content.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

// ---------------------------------------------------------------------------
// LoadFile tests
// ---------------------------------------------------------------------------

func TestLoadFileBasicKeyValue(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config", "PROVIDER=ollama\nMODEL=mistral\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ollama", m["PROVIDER"])
	assert.Equal(t, "mistral", m["MODEL"])
}

func TestLoadFileSkipsCommentsAndEmptyLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config", "# comment\n\nMAX_RETRIES=5\n\n# another\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Len(t, m, 1)
	assert.Equal(t, "5", m["MAX_RETRIES"])
}

func TestLoadFileSkipsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config", "OPENAI_API_KEY=sk-secret\nOUTPUT=out.jsonl\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, m, "OPENAI_API_KEY")
	assert.Equal(t, "out.jsonl", m["OUTPUT"])
}

func TestLoadFileQuotedValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config", "MODEL=\"mistralai/Mistral-7B-Instruct-v0.3\"\nINPUT='data/images list.txt'\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "mistralai/Mistral-7B-Instruct-v0.3", m["MODEL"])
	assert.Equal(t, "data/images list.txt", m["INPUT"])
}

func TestLoadFileValueWithEquals(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config", "BASE_URL=http://localhost:8080/v1?a=b\n")

	m, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1?a=b", m["BASE_URL"])
}

func TestLoadFileReturnsErrorForMissingFile(t *testing.T) {
	_, err := config.LoadFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ---------------------------------------------------------------------------
// LoadWithPrecedence tests
// ---------------------------------------------------------------------------

func TestLoadWithPrecedenceDefaultsOnly(t *testing.T) {
	cfg, err := config.LoadWithPrecedence("dockerfile", "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, config.NewDefaultConfig("dockerfile"), cfg)
}

func TestLoadWithPrecedenceMissingProjectIsNotError(t *testing.T) {
	cfg, err := config.LoadWithPrecedence("compose", filepath.Join(t.TempDir(), ".dockergen"), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
}

func TestLoadWithPrecedenceMissingExplicitIsError(t *testing.T) {
	_, err := config.LoadWithPrecedence("compose", "", filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explicit config")
}

func TestLoadWithPrecedenceFullChain(t *testing.T) {
	dir := t.TempDir()
	project := writeFile(t, dir, ".dockergen", "MAX_RETRIES=4\nOUTPUT=project.jsonl\nTEMPERATURE=0.2\n")
	explicit := writeFile(t, dir, "explicit.env", "OUTPUT=explicit.jsonl\nMAX_TOKENS=256\n")

	cfg, err := config.LoadWithPrecedence("dockerfile", project, explicit, map[string]string{
		"MAX_TOKENS": "128",
	})
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MaxRetries, "project value survives")
	assert.Equal(t, 0.2, cfg.Temperature, "project value survives")
	assert.Equal(t, "explicit.jsonl", cfg.Output, "explicit overrides project")
	assert.Equal(t, 128, cfg.MaxTokens, "CLI overrides explicit")
}

func TestLoadWithPrecedenceProviderSwitchPicksProviderModel(t *testing.T) {
	cfg, err := config.LoadWithPrecedence("dockerfile", "", "", map[string]string{"PROVIDER": "ollama"})
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "mistral", cfg.Model)
}

func TestLoadWithPrecedenceProviderSwitchKeepsExplicitModel(t *testing.T) {
	dir := t.TempDir()
	project := writeFile(t, dir, ".dockergen", "MODEL=llama3.1:8b\n")

	cfg, err := config.LoadWithPrecedence("dockerfile", project, "", map[string]string{"PROVIDER": "ollama"})
	require.NoError(t, err)

	assert.Equal(t, "llama3.1:8b", cfg.Model)
}

// ---------------------------------------------------------------------------
// ApplyMapToConfig tests
// ---------------------------------------------------------------------------

func TestApplyMapToConfigSetsAllFields(t *testing.T) {
	cfg := config.NewDefaultConfig("compose")
	config.ApplyMapToConfig(cfg, map[string]string{
		"PROVIDER":            "Gemini",
		"MODEL":               "gemini-2.0-flash",
		"BASE_URL":            "http://proxy",
		"TEMPERATURE":         "0.3",
		"TOP_P":               "0.9",
		"MAX_TOKENS":          "900",
		"MAX_RETRIES":         "7",
		"REQUESTS_PER_MINUTE": "30",
		"INPUT":               "images.txt",
		"OUTPUT":              "out.jsonl",
		"LOG_DIR":             "runlogs",
		"EXCLUDE":             "*.md, , README*",
		"VERBOSE":             "yes",
	})

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.Equal(t, "http://proxy", cfg.BaseURL)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, 0.9, cfg.TopP)
	assert.Equal(t, 900, cfg.MaxTokens)
	assert.Equal(t, 7, cfg.MaxRetries)
	assert.Equal(t, 30, cfg.RequestsPerMinute)
	assert.Equal(t, "images.txt", cfg.Input)
	assert.Equal(t, "out.jsonl", cfg.Output)
	assert.Equal(t, "runlogs", cfg.LogDir)
	assert.Equal(t, []string{"*.md", "README*"}, cfg.Exclude)
	assert.True(t, cfg.Verbose)
}

func TestApplyMapToConfigIgnoresInvalidNumbers(t *testing.T) {
	cfg := config.NewDefaultConfig("dockerfile")
	config.ApplyMapToConfig(cfg, map[string]string{
		"MAX_RETRIES": "many",
		"TEMPERATURE": "warm",
		"MAX_TOKENS":  "",
	})

	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 0.6, cfg.Temperature)
	assert.Equal(t, 512, cfg.MaxTokens)
}

func TestApplyMapToConfigBooleanVariations(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := config.NewDefaultConfig("compose")
			config.ApplyMapToConfig(cfg, map[string]string{"VERBOSE": tt.value})
			assert.Equal(t, tt.expected, cfg.Verbose)
		})
	}
}
