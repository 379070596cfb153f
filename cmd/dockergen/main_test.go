package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/dockergen/internal/cli"
	"github.com/CodexForgeBR/dockergen/internal/config"
	"github.com/CodexForgeBR/dockergen/internal/dataset"
	"github.com/CodexForgeBR/dockergen/internal/exitcode"
	"github.com/CodexForgeBR/dockergen/internal/model"
	"github.com/CodexForgeBR/dockergen/internal/state"
)

func init() {
	color.NoColor = true
}

func TestRootCmd_Subcommands(t *testing.T) {
	code := exitcode.Success
	root := newRootCmd(&code)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"dockerfile", "compose", "info", "status"})
}

func TestRootCmd_Version(t *testing.T) {
	code := exitcode.Success
	root := newRootCmd(&code)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "dev (commit: unknown, built: unknown)")
}

func TestGeneratorCmd_RejectsInvalidFlags(t *testing.T) {
	code := exitcode.Success
	root := newRootCmd(&code)
	root.SetArgs([]string{"compose", "--provider", "azure"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--provider")
}

func TestGeneratorCmd_RejectsPositionalArgs(t *testing.T) {
	code := exitcode.Success
	root := newRootCmd(&code)
	root.SetArgs([]string{"info", "redis"})
	assert.Error(t, root.Execute())
}

func TestStatusCmd_UnknownGenerator(t *testing.T) {
	code := exitcode.Success
	root := newRootCmd(&code)
	root.SetArgs([]string{"status", "helm"})
	assert.Error(t, root.Execute())
}

func TestStatusCmd_ReadsRunState(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, state.SaveState(&state.RunState{
		SchemaVersion: state.SchemaVersion,
		RunID:         "run-42",
		Generator:     model.Info,
		Status:        state.StatusComplete,
	}, dir))

	code := exitcode.Success
	root := newRootCmd(&code)
	root.SetArgs([]string{"status", "info", "--log-dir", dir})
	require.NoError(t, root.Execute())
	assert.Equal(t, exitcode.Success, code)
}

func TestReadProgress_CountsLogsAndOutput(t *testing.T) {
	dir := t.TempDir()
	ledger := state.NewLedger(dir)
	require.NoError(t, ledger.RecordSuccess("redis"))
	require.NoError(t, ledger.RecordSuccess("nginx"))
	require.NoError(t, ledger.RecordFailure("postgres"))

	output := filepath.Join(dir, "info.jsonl")
	require.NoError(t, dataset.Append(output, dataset.Entry{Text: "a"}, dataset.Entry{Text: "b"}, dataset.Entry{Text: "c"}))

	p, err := readProgress(dir, output)
	require.NoError(t, err)
	assert.Equal(t, progress{succeeded: 2, failed: 1, entries: 3}, p)
}

func TestReadProgress_MissingFilesAreEmpty(t *testing.T) {
	dir := t.TempDir()
	p, err := readProgress(dir, filepath.Join(dir, "none.jsonl"))
	require.NoError(t, err)
	assert.Equal(t, progress{}, p)
}

func TestLoadConfig_AppliesChangedFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	flagCfg := &config.Config{}
	cmd := &cobra.Command{Use: model.Compose}
	cli.BindFlags(cmd, flagCfg)
	require.NoError(t, cmd.ParseFlags([]string{"--provider", "ollama", "--log-dir", filepath.Join("x", "logs"), "--fresh"}))

	cfg, err := loadConfig(cmd, model.Compose, flagCfg)
	require.NoError(t, err)
	assert.Equal(t, model.Ollama, cfg.Provider)
	assert.Equal(t, model.DefaultModelForProvider(model.Ollama), cfg.Model)
	assert.Equal(t, filepath.Join("x", "logs"), cfg.LogDir)
	assert.Equal(t, 700, cfg.MaxTokens)
	assert.True(t, cfg.Fresh)
}

func TestLoadConfig_ProjectFileBelowFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(config.ProjectConfigFile, []byte("MODEL=gpt-4o\nMAX_TOKENS=300\n"), 0644))

	flagCfg := &config.Config{}
	cmd := &cobra.Command{Use: model.Info}
	cli.BindFlags(cmd, flagCfg)
	require.NoError(t, cmd.ParseFlags([]string{"--max-tokens", "900"}))

	cfg, err := loadConfig(cmd, model.Info, flagCfg)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 900, cfg.MaxTokens)
}
