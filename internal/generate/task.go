// Package generate drives a dockergen run: it turns work items into model
// requests, validates the responses with bounded retry, appends the resulting
// training entries, and records each item in the completion ledger.
package generate

import (
	"fmt"
	"os"
	"strings"

	"github.com/CodexForgeBR/dockergen/internal/dataset"
	"github.com/CodexForgeBR/dockergen/internal/llm"
	"github.com/CodexForgeBR/dockergen/internal/logging"
	"github.com/CodexForgeBR/dockergen/internal/model"
	"github.com/CodexForgeBR/dockergen/internal/parser"
	"github.com/CodexForgeBR/dockergen/internal/prompt"
	"github.com/CodexForgeBR/dockergen/internal/workitem"
)

// Job is a prepared work item: the request to send and the item content the
// entries are built from.
type Job struct {
	Item    workitem.Item
	Request llm.Request
	Content string
}

// Task is one generator's behavior.
type Task interface {
	// Name is the generator name.
	Name() string
	// Prepare builds the request for item. An error fails the item without
	// any generation attempt.
	Prepare(item workitem.Item) (Job, error)
	// Validate cleans a raw response and checks it. It returns the cleaned
	// text.
	Validate(raw string) (string, error)
	// Entries renders the training entries for a validated response.
	Entries(job Job, cleaned string) []dataset.Entry
}

// NewTask returns the task of the named generator.
func NewTask(generator string) (Task, error) {
	switch generator {
	case model.Dockerfile:
		return DockerfileTask{}, nil
	case model.Compose:
		return ComposeTask{}, nil
	case model.Info:
		return InfoTask{}, nil
	default:
		return nil, fmt.Errorf("unknown generator %q", generator)
	}
}

// DockerfileTask asks for one user question per Dockerfile and pairs it with
// the Dockerfile text.
type DockerfileTask struct{}

func (DockerfileTask) Name() string { return model.Dockerfile }

func (DockerfileTask) Prepare(item workitem.Item) (Job, error) {
	instructions, err := parser.ParseDockerfile(item.ID)
	if err != nil {
		return Job{}, err
	}
	for _, inst := range instructions {
		logging.Debug(inst.String())
	}

	content, err := os.ReadFile(item.ID)
	if err != nil {
		return Job{}, fmt.Errorf("read dockerfile: %w", err)
	}

	return Job{
		Item:    item,
		Request: llm.Request{Prompt: prompt.BuildDockerfilePrompt(string(content))},
		Content: string(content),
	}, nil
}

func (DockerfileTask) Validate(raw string) (string, error) {
	cleaned := parser.CleanResponse(raw)
	return cleaned, parser.ValidateResponse(cleaned, prompt.DockerfilePrefix)
}

func (DockerfileTask) Entries(job Job, cleaned string) []dataset.Entry {
	return []dataset.Entry{{Text: dataset.FormatExchange(prompt.DockerfileSystem, cleaned, job.Content)}}
}

// ComposeTask asks for several docker-compose.yml entries per image.
type ComposeTask struct{}

func (ComposeTask) Name() string { return model.Compose }

func (ComposeTask) Prepare(item workitem.Item) (Job, error) {
	return Job{
		Item: item,
		Request: llm.Request{
			System: prompt.ComposeSystem,
			Prompt: prompt.BuildComposePrompt(item.ID),
		},
		Content: item.ID,
	}, nil
}

func (ComposeTask) Validate(raw string) (string, error) {
	return validateLines(raw)
}

func (ComposeTask) Entries(job Job, cleaned string) []dataset.Entry {
	return lineEntries(prompt.ComposeSystem, cleaned)
}

// InfoTask asks for several image information entries per image.
type InfoTask struct{}

func (InfoTask) Name() string { return model.Info }

func (InfoTask) Prepare(item workitem.Item) (Job, error) {
	return Job{
		Item: item,
		Request: llm.Request{
			System: prompt.InfoSystem,
			Prompt: prompt.BuildInfoPrompt(item.ID),
		},
		Content: item.ID,
	}, nil
}

func (InfoTask) Validate(raw string) (string, error) {
	return validateLines(raw)
}

func (InfoTask) Entries(job Job, cleaned string) []dataset.Entry {
	return lineEntries(prompt.InfoEntrySystem, cleaned)
}

// validateLines only trims surrounding whitespace; lines starting with dashes
// are content for compose and info responses.
func validateLines(raw string) (string, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	return cleaned, parser.ValidateResponse(cleaned, "")
}

// lineEntries turns every non-empty line of text into one entry labelled
// with system.
func lineEntries(system, text string) []dataset.Entry {
	lines := parser.SplitEntries(text)
	entries := make([]dataset.Entry, 0, len(lines))
	for _, line := range lines {
		entries = append(entries, dataset.Entry{Text: dataset.FormatWithSystem(system, line)})
	}
	return entries
}
