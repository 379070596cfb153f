// Package parser provides text-parsing utilities for the dockergen CLI:
// cleanup and validation of raw model output, and Dockerfile parsing.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyResponse is returned when a response is empty after cleanup.
	ErrEmptyResponse = errors.New("empty response")

	// ErrMissingPrefix is returned when a cleaned response does not start
	// with the required prefix.
	ErrMissingPrefix = errors.New("response does not start with required prefix")
)

// CleanResponse normalizes raw model output:
//   - blank lines are dropped,
//   - lines made only of '-' characters (separators) are dropped,
//   - leading/trailing whitespace and dashes are trimmed from the result.
//
// A response consisting solely of separator lines cleans to "".
func CleanResponse(response string) string {
	response = strings.ReplaceAll(response, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(response, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || isSeparator(trimmed) {
			continue
		}
		kept = append(kept, line)
	}

	cleaned := strings.TrimSpace(strings.Join(kept, "\n"))
	cleaned = strings.Trim(cleaned, "-")
	return strings.TrimSpace(cleaned)
}

// isSeparator reports whether s is made only of dashes.
func isSeparator(s string) bool {
	return strings.Trim(s, "-") == ""
}

// ValidateResponse checks a cleaned response. It must be non-empty and, when
// prefix is not empty, start with prefix.
func ValidateResponse(cleaned, prefix string) error {
	if cleaned == "" {
		return ErrEmptyResponse
	}
	if prefix != "" && !strings.HasPrefix(cleaned, prefix) {
		return fmt.Errorf("%w %q", ErrMissingPrefix, prefix)
	}
	return nil
}

// SplitEntries returns the trimmed, non-empty lines of text.
func SplitEntries(text string) []string {
	var entries []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			entries = append(entries, trimmed)
		}
	}
	return entries
}
