// Package dataset writes generated training examples as JSON lines.
package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Entry is one training example. Each entry becomes one line of the output
// file: {"text": "..."}.
type Entry struct {
	Text string `json:"text"`
}

// FormatExchange renders a system/user/assistant exchange as a single text
// blob.
func FormatExchange(system, user, assistant string) string {
	return fmt.Sprintf("System: %s\n\nUser: %s\n\nAssistant: %s", system, user, assistant)
}

// FormatWithSystem prefixes an already formatted exchange with the system line.
func FormatWithSystem(system, body string) string {
	return fmt.Sprintf("System: %s\n\n%s", system, body)
}

// Encode renders entries as newline-terminated JSON lines. HTML escaping is
// disabled so shell operators like && and > stay readable.
func Encode(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return nil, fmt.Errorf("encode entry: %w", err)
		}
	}
	return buf.Bytes(), nil
}

// Append encodes entries and appends them to the file at path in a single
// write, creating the file and its directory when needed. The file is opened
// and closed on every call.
func Append(path string, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}

	data, err := Encode(entries)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

// ReadAll reads every entry of a JSON-lines file.
func ReadAll(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read output file: %w", err)
	}

	var entries []Entry
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return nil, fmt.Errorf("decode entry %d: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
