package generate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/dockergen/internal/llm"
)

func init() {
	color.NoColor = true
}

// fakeGenerator answers each call with respond and keeps every request.
type fakeGenerator struct {
	mu       sync.Mutex
	requests []llm.Request
	respond  func(call int, req llm.Request) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	call := len(f.requests)
	f.mu.Unlock()
	return f.respond(call, req)
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func constant(s string) *fakeGenerator {
	return &fakeGenerator{respond: func(int, llm.Request) (string, error) { return s, nil }}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
