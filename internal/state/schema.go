package state

import "fmt"

// SchemaVersion is written into every run-state file.
const SchemaVersion = 1

// RunState represents the persisted state of one dockergen run.
// Written to <log-dir>/run-state.json.
type RunState struct {
	SchemaVersion  int    `json:"schema_version"`
	RunID          string `json:"run_id"`
	Generator      string `json:"generator"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	Input          string `json:"input"`
	Output         string `json:"output"`
	Status         string `json:"status"`
	StartedAt      string `json:"started_at"`
	LastUpdated    string `json:"last_updated"`
	CurrentItem    string `json:"current_item,omitempty"`
	PreviouslyDone int    `json:"previously_done"`
	Pending        int    `json:"pending"`
	Stats          Stats  `json:"stats"`
}

// Stats counts the outcomes of one run. It is owned by the run that fills it.
type Stats struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// RecordSuccess counts one successful item.
func (s *Stats) RecordSuccess() {
	s.Success++
	s.Total++
}

// RecordFailure counts one failed item.
func (s *Stats) RecordFailure() {
	s.Failure++
	s.Total++
}

func (s Stats) String() string {
	return fmt.Sprintf("Progress Stats - Total: %d, Success: %d, Failures: %d", s.Total, s.Success, s.Failure)
}

// Status constants
const (
	StatusInProgress  = "IN_PROGRESS"
	StatusInterrupted = "INTERRUPTED"
	StatusComplete    = "COMPLETE"
)
