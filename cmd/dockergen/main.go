package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/dockergen/internal/banner"
	"github.com/CodexForgeBR/dockergen/internal/cli"
	"github.com/CodexForgeBR/dockergen/internal/config"
	"github.com/CodexForgeBR/dockergen/internal/dataset"
	"github.com/CodexForgeBR/dockergen/internal/exitcode"
	"github.com/CodexForgeBR/dockergen/internal/generate"
	"github.com/CodexForgeBR/dockergen/internal/llm"
	"github.com/CodexForgeBR/dockergen/internal/logging"
	"github.com/CodexForgeBR/dockergen/internal/model"
	sighandler "github.com/CodexForgeBR/dockergen/internal/signal"
	"github.com/CodexForgeBR/dockergen/internal/state"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// logFileName is the run log written inside the log directory.
const logFileName = "dockergen.log"

func main() {
	code := exitcode.Success
	rootCmd := newRootCmd(&code)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
	os.Exit(code)
}

func newRootCmd(code *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dockergen",
		Short:         "Docker training data generator",
		Long:          "dockergen asks a language model for Docker training examples and writes them as JSON lines.",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cli.SetCustomHelp(rootCmd)

	for _, g := range []struct {
		name  string
		short string
	}{
		{model.Dockerfile, "Generate a user question for every Dockerfile in a directory"},
		{model.Compose, "Generate docker-compose.yml entries for every image in a list"},
		{model.Info, "Generate image information entries for every image in a list"},
	} {
		rootCmd.AddCommand(newGeneratorCmd(g.name, g.short, code))
	}
	rootCmd.AddCommand(newStatusCmd())

	return rootCmd
}

func newGeneratorCmd(generator, short string, code *int) *cobra.Command {
	flagCfg := &config.Config{}
	cmd := &cobra.Command{
		Use:   generator,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateFlags(cmd, flagCfg); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, generator, flagCfg)
			if err != nil {
				return err
			}
			*code = runGenerator(cfg)
			return nil
		},
	}
	cli.BindFlags(cmd, flagCfg)
	return cmd
}

// loadConfig merges generator defaults, config files and the flags the user
// set, then validates the result.
func loadConfig(cmd *cobra.Command, generator string, flagCfg *config.Config) (*config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithPrecedence(generator, config.ProjectConfigFile, flagCfg.ConfigFile, cli.Overrides(cmd, flagCfg))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// CLI-only flags
	cfg.ConfigFile = flagCfg.ConfigFile
	cfg.Fresh = flagCfg.Fresh

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGenerator(cfg *config.Config) int {
	logging.SetVerbose(cfg.Verbose)
	if err := logging.SetLogFile(filepath.Join(cfg.LogDir, logFileName)); err != nil {
		logging.Warn(fmt.Sprintf("Log file disabled: %v", err))
	}
	defer logging.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted, stopping after the current item (press Ctrl-C again to abort)")
	})

	gen, err := llm.New(ctx, cfg)
	if err != nil {
		logging.Error(fmt.Sprintf("Failed to set up %s backend: %v", cfg.Provider, err))
		return exitcode.Error
	}
	task, err := generate.NewTask(cfg.Generator)
	if err != nil {
		logging.Error(err.Error())
		return exitcode.Error
	}

	code := generate.NewOrchestrator(cfg, task, gen).Run(ctx)
	logging.Debug(fmt.Sprintf("Exit code %d (%s)", code, exitcode.Name(code)))
	return code
}

func newStatusCmd() *cobra.Command {
	var configFile, logDir string
	cmd := &cobra.Command{
		Use:       "status [generator...]",
		Short:     "Show the last recorded run of each generator",
		ValidArgs: model.Generators,
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			generators := args
			if len(generators) == 0 {
				generators = model.Generators
			}

			overrides := map[string]string{}
			if cmd.Flags().Changed("log-dir") {
				overrides["LOG_DIR"] = logDir
			}

			for _, g := range generators {
				cfg, err := config.LoadWithPrecedence(g, config.ProjectConfigFile, configFile, overrides)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				showStatus(g, cfg.LogDir, cfg.Output)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configFile, "config", "", "Path to additional config file")
	cmd.Flags().StringVar(&logDir, "log-dir", "", "Directory holding run-state.json")
	return cmd
}

func showStatus(generator, logDir, output string) {
	rs, err := state.LoadState(logDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info(fmt.Sprintf("No %s run recorded in %s", generator, logDir))
			return
		}
		logging.Warn(fmt.Sprintf("Cannot read %s run state: %v", generator, err))
		return
	}
	banner.PrintStatusBanner(rs.RunID, rs.Generator, rs.Status, rs.Stats.Total, rs.Stats.Success, rs.Stats.Failure, rs.LastUpdated)

	p, err := readProgress(logDir, output)
	if err != nil {
		logging.Warn(fmt.Sprintf("Cannot read %s progress: %v", generator, err))
		return
	}
	logging.Info(fmt.Sprintf("Logs: %d succeeded, %d failed; %s holds %d entries",
		p.succeeded, p.failed, output, p.entries))
}

// progress is what the logs and the output file say about a run,
// independent of the saved run state.
type progress struct {
	succeeded int
	failed    int
	entries   int
}

func readProgress(logDir, output string) (progress, error) {
	var p progress
	ledger := state.NewLedger(logDir)
	ok, err := ledger.Successes()
	if err != nil {
		return p, err
	}
	failed, err := ledger.Failures()
	if err != nil {
		return p, err
	}
	p.succeeded, p.failed = len(ok), len(failed)

	entries, err := dataset.ReadAll(output)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return p, err
	}
	p.entries = len(entries)
	return p, nil
}
