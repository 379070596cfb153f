package state

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CodexForgeBR/dockergen/internal/workitem"
)

// Ledger file names inside the log directory.
const (
	SuccessLogName = "success.log"
	FailureLogName = "failure.log"
)

// Ledger is the append-only completion record of a run: one line per item
// identifier in either the success log or the failure log.
//
// Items found in the success log when a run starts are skipped. Items found
// only in the failure log are retried.
type Ledger struct {
	dir string
}

// NewLedger returns a ledger whose logs live in dir.
func NewLedger(dir string) *Ledger {
	return &Ledger{dir: dir}
}

// SuccessPath returns the success log location.
func (l *Ledger) SuccessPath() string {
	return filepath.Join(l.dir, SuccessLogName)
}

// FailurePath returns the failure log location.
func (l *Ledger) FailurePath() string {
	return filepath.Join(l.dir, FailureLogName)
}

// Start prepares the ledger for a new run over items.
//
// It reads the identifiers recorded as successful by earlier runs, truncates
// both logs, and writes back the prior successes that are still part of items
// so they stay skipped on the next run as well. The returned slice holds the
// items still to process, in input order, and done counts the skipped ones.
func (l *Ledger) Start(items []workitem.Item) (pending []workitem.Item, done int, err error) {
	prior, err := readIDs(l.SuccessPath())
	if err != nil {
		return nil, 0, err
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return nil, 0, fmt.Errorf("create log dir: %w", err)
	}

	var carried []string
	for _, item := range items {
		if prior[item.ID] {
			carried = append(carried, item.ID)
			done++
			continue
		}
		pending = append(pending, item)
	}

	if err := writeIDs(l.SuccessPath(), carried); err != nil {
		return nil, 0, err
	}
	if err := writeIDs(l.FailurePath(), nil); err != nil {
		return nil, 0, err
	}
	return pending, done, nil
}

// RecordSuccess appends id to the success log.
func (l *Ledger) RecordSuccess(id string) error {
	return appendID(l.SuccessPath(), id)
}

// RecordFailure appends id to the failure log.
func (l *Ledger) RecordFailure(id string) error {
	return appendID(l.FailurePath(), id)
}

// Successes returns the identifiers currently in the success log.
func (l *Ledger) Successes() ([]string, error) {
	return readLines(l.SuccessPath())
}

// Failures returns the identifiers currently in the failure log.
func (l *Ledger) Failures() ([]string, error) {
	return readLines(l.FailurePath())
}

// Remove deletes both logs. Missing files are not an error.
func (l *Ledger) Remove() error {
	for _, p := range []string{l.SuccessPath(), l.FailurePath()} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", filepath.Base(p), err)
		}
	}
	return nil
}

func appendID(path, id string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	if _, err := f.WriteString(id + "\n"); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func writeIDs(path string, ids []string) error {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(id)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readIDs(path string) (map[string]bool, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(lines))
	for _, id := range lines {
		set[id] = true
	}
	return set, nil
}

// readLines returns the trimmed, non-empty lines of path. A missing file
// yields no lines.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return lines, nil
}
