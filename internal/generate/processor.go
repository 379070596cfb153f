package generate

import (
	"context"
	"fmt"

	"github.com/CodexForgeBR/dockergen/internal/dataset"
	"github.com/CodexForgeBR/dockergen/internal/llm"
	"github.com/CodexForgeBR/dockergen/internal/logging"
	"github.com/CodexForgeBR/dockergen/internal/state"
	"github.com/CodexForgeBR/dockergen/internal/workitem"
)

// Processor handles one work item at a time: prepare, generate with bounded
// retry, append entries, record the outcome.
type Processor struct {
	Task       Task
	Generator  llm.Generator
	Ledger     *state.Ledger
	Output     string
	MaxRetries int
}

// ProcessItem processes item and records it in exactly one ledger log. It
// reports whether the item succeeded. Once started, the item runs to its
// outcome even if ctx is cancelled.
func (p *Processor) ProcessItem(ctx context.Context, item workitem.Item) bool {
	ctx = context.WithoutCancel(ctx)
	logging.Info(fmt.Sprintf("Processing: %s", item.ID))

	if err := p.run(ctx, item); err != nil {
		logging.Error(fmt.Sprintf("Failed %s: %v", item.ID, err))
		if lerr := p.Ledger.RecordFailure(item.ID); lerr != nil {
			logging.Error(fmt.Sprintf("Could not record failure of %s: %v", item.ID, lerr))
		}
		return false
	}

	if err := p.Ledger.RecordSuccess(item.ID); err != nil {
		logging.Error(fmt.Sprintf("Failed %s: record success: %v", item.ID, err))
		if lerr := p.Ledger.RecordFailure(item.ID); lerr != nil {
			logging.Error(fmt.Sprintf("Could not record failure of %s: %v", item.ID, lerr))
		}
		return false
	}
	logging.Success(fmt.Sprintf("Completed: %s", item.ID))
	return true
}

func (p *Processor) run(ctx context.Context, item workitem.Item) error {
	job, err := p.Task.Prepare(item)
	if err != nil {
		return err
	}

	var cleaned string
	err = llm.Retry(llm.RetryConfig{
		MaxRetries: p.MaxRetries,
		OnRetry: func(attempt int, err error) {
			logging.Warn(fmt.Sprintf("Attempt %d/%d for %s failed: %v", attempt, p.MaxRetries, item.ID, err))
		},
	}, func(attempt int) error {
		raw, err := p.Generator.Generate(ctx, job.Request)
		if err != nil {
			return err
		}
		logging.Debug(fmt.Sprintf("Raw response for %s (attempt %d): %s", item.ID, attempt, raw))
		cleaned, err = p.Task.Validate(raw)
		return err
	})
	if err != nil {
		return err
	}

	if err := dataset.Append(p.Output, p.Task.Entries(job, cleaned)...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
