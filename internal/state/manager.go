package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const stateFileName = "run-state.json"

// StatePath returns the run-state file location inside dir.
func StatePath(dir string) string {
	return filepath.Join(dir, stateFileName)
}

// SaveState persists the run state as indented JSON. The file is written to a
// temporary name first and renamed into place so readers never observe a
// partial document.
func SaveState(s *RunState, dir string) error {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	path := StatePath(dir)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename state file: %w", err)
	}
	return nil
}

// LoadState reads and parses the run state from dir.
func LoadState(dir string) (*RunState, error) {
	data, err := os.ReadFile(StatePath(dir))
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var s RunState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &s, nil
}

// RemoveState deletes the run-state file. A missing file is not an error.
func RemoveState(dir string) error {
	if err := os.Remove(StatePath(dir)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
