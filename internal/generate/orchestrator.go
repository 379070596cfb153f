package generate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/dockergen/internal/banner"
	"github.com/CodexForgeBR/dockergen/internal/config"
	"github.com/CodexForgeBR/dockergen/internal/exitcode"
	"github.com/CodexForgeBR/dockergen/internal/llm"
	"github.com/CodexForgeBR/dockergen/internal/logging"
	"github.com/CodexForgeBR/dockergen/internal/state"
	"github.com/CodexForgeBR/dockergen/internal/workitem"
)

// Orchestrator runs one generator over its input from start to finish.
type Orchestrator struct {
	Config    *config.Config
	Task      Task
	Generator llm.Generator

	ledger    *state.Ledger
	items     []workitem.Item
	pending   []workitem.Item
	done      int
	stats     state.Stats
	run       *state.RunState
	startTime time.Time
}

// NewOrchestrator creates an orchestrator for cfg.
func NewOrchestrator(cfg *config.Config, task Task, gen llm.Generator) *Orchestrator {
	return &Orchestrator{
		Config:    cfg,
		Task:      task,
		Generator: gen,
		ledger:    state.NewLedger(cfg.LogDir),
	}
}

// Stats returns the counters of the current run.
func (o *Orchestrator) Stats() state.Stats {
	return o.stats
}

// Run executes the run and returns an exit code.
func (o *Orchestrator) Run(ctx context.Context) int {
	o.startTime = time.Now()

	if code := o.phaseInit(); code >= 0 {
		return code
	}
	if code := o.phaseLoadItems(); code >= 0 {
		return code
	}
	if code := o.phaseResume(); code >= 0 {
		return code
	}
	o.phaseBanner()
	return o.phaseLoop(ctx)
}

func (o *Orchestrator) phaseInit() int {
	logging.Phase(fmt.Sprintf("Initializing %s run", o.Task.Name()))

	if o.Config.Fresh {
		logging.Info("Fresh run requested, discarding previous progress and output")
		if err := o.ledger.Remove(); err != nil {
			logging.Error(fmt.Sprintf("Failed to remove logs: %v", err))
			return exitcode.Error
		}
		if err := state.RemoveState(o.Config.LogDir); err != nil {
			logging.Error(fmt.Sprintf("Failed to remove run state: %v", err))
			return exitcode.Error
		}
		if err := os.Remove(o.Config.Output); err != nil && !os.IsNotExist(err) {
			logging.Error(fmt.Sprintf("Failed to remove output: %v", err))
			return exitcode.Error
		}
	}
	return -1
}

func (o *Orchestrator) phaseLoadItems() int {
	items, err := workitem.Load(o.Config.Input, o.Config.Exclude)
	if err != nil {
		logging.Error(fmt.Sprintf("Failed to load work items: %v", err))
		return exitcode.Error
	}
	o.items = items
	logging.Info(fmt.Sprintf("Found %d work item(s) in %s", len(items), o.Config.Input))
	return -1
}

func (o *Orchestrator) phaseResume() int {
	pending, done, err := o.ledger.Start(o.items)
	if err != nil {
		logging.Error(fmt.Sprintf("Failed to prepare logs: %v", err))
		return exitcode.Error
	}
	o.pending = pending
	o.done = done
	if done > 0 {
		logging.Info(fmt.Sprintf("Skipping %d item(s) already completed", done))
	}
	logging.Debug("Pending: " + strings.Join(workitem.IDs(pending), ", "))

	now := time.Now().UTC().Format(time.RFC3339)
	o.run = &state.RunState{
		SchemaVersion:  state.SchemaVersion,
		RunID:          uuid.NewString(),
		Generator:      o.Task.Name(),
		Provider:       o.Config.Provider,
		Model:          o.Config.Model,
		Input:          o.Config.Input,
		Output:         o.Config.Output,
		Status:         state.StatusInProgress,
		StartedAt:      now,
		LastUpdated:    now,
		PreviouslyDone: done,
		Pending:        len(pending),
	}
	o.saveState()
	return -1
}

func (o *Orchestrator) phaseBanner() {
	banner.PrintStartupBanner(o.run.RunID, o.Task.Name(), o.Config.Provider, o.Config.Model,
		o.Config.Input, o.Config.Output, len(o.pending), o.done)
}

func (o *Orchestrator) phaseLoop(ctx context.Context) int {
	proc := &Processor{
		Task:       o.Task,
		Generator:  o.Generator,
		Ledger:     o.ledger,
		Output:     o.Config.Output,
		MaxRetries: o.Config.MaxRetries,
	}

	for i, item := range o.pending {
		if ctx.Err() != nil {
			o.run.Status = state.StatusInterrupted
			o.run.CurrentItem = ""
			o.saveState()
			banner.PrintInterruptedBanner(i, len(o.pending)-i)
			return exitcode.Interrupted
		}

		o.run.CurrentItem = item.ID
		o.saveState()

		if proc.ProcessItem(ctx, item) {
			o.stats.RecordSuccess()
		} else {
			o.stats.RecordFailure()
		}
		logging.Info(o.stats.String())
	}

	o.run.Status = state.StatusComplete
	o.run.CurrentItem = ""
	o.saveState()

	elapsed := int(time.Since(o.startTime).Seconds())
	banner.PrintCompletionBanner(o.stats.Total, o.stats.Success, o.stats.Failure, elapsed)
	logging.Info(fmt.Sprintf("Total duration: %s", logging.FormatDuration(elapsed)))

	if o.stats.Failure > 0 {
		return exitcode.ItemsFailed
	}
	return exitcode.Success
}

// saveState persists the run state. Failures are logged, not fatal.
func (o *Orchestrator) saveState() {
	o.run.Stats = o.stats
	o.run.Pending = len(o.pending) - o.stats.Total
	o.run.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	if err := state.SaveState(o.run, o.Config.LogDir); err != nil {
		logging.Warn(fmt.Sprintf("Failed to save run state: %v", err))
	}
}
