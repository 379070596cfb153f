// Package workitem discovers the units of input a generator works through:
// the regular files of a directory, or the lines of a list file.
package workitem

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Item is one unit of input. ID is a file path for directory sources and the
// trimmed line for list sources; it is what the completion ledger records.
type Item struct {
	ID string
}

func (i Item) String() string { return i.ID }

// Load returns the work items of source. A directory yields its regular
// files, a file yields its non-empty lines. excludes are gitignore-style
// patterns matched against directory entry names; they do not apply to list
// files.
func Load(source string, excludes []string) ([]Item, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("input not found: %w", err)
	}
	if info.IsDir() {
		return ListFiles(source, excludes)
	}
	return ReadLines(source)
}

// ListFiles returns the regular files directly inside dir, sorted by name.
// Subdirectories are not descended into.
func ListFiles(dir string, excludes []string) ([]Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var matcher *ignore.GitIgnore
	if len(excludes) > 0 {
		matcher = ignore.CompileIgnoreLines(excludes...)
	}

	var items []Item
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if matcher != nil && matcher.MatchesPath(e.Name()) {
			continue
		}
		items = append(items, Item{ID: filepath.Join(dir, e.Name())})
	}
	return items, nil
}

// ReadLines returns the trimmed, non-empty lines of path in file order.
// Repeated lines are kept once, at their first position.
func ReadLines(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	var items []Item
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		items = append(items, Item{ID: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	return items, nil
}

// IDs returns the ids of items in order.
func IDs(items []Item) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}
