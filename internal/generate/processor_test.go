package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/dockergen/internal/dataset"
	"github.com/CodexForgeBR/dockergen/internal/llm"
	"github.com/CodexForgeBR/dockergen/internal/state"
	"github.com/CodexForgeBR/dockergen/internal/workitem"
)

func newProcessor(t *testing.T, task Task, gen llm.Generator) *Processor {
	t.Helper()
	dir := t.TempDir()
	ledger := state.NewLedger(filepath.Join(dir, "logs"))
	_, _, err := ledger.Start(nil)
	require.NoError(t, err)
	return &Processor{
		Task:       task,
		Generator:  gen,
		Ledger:     ledger,
		Output:     filepath.Join(dir, "out", "entries.jsonl"),
		MaxRetries: 3,
	}
}

func TestProcessItem_SucceedsOnThirdAttempt(t *testing.T) {
	gen := &fakeGenerator{respond: func(call int, _ llm.Request) (string, error) {
		if call < 3 {
			return "Here is a question about Alpine.", nil
		}
		return "Create a Dockerfile using Alpine and curl.", nil
	}}
	p := newProcessor(t, DockerfileTask{}, gen)
	path := writeFile(t, filepath.Join(t.TempDir(), "Dockerfile"), sampleDockerfile)

	ok := p.ProcessItem(context.Background(), workitem.Item{ID: path})
	require.True(t, ok)
	assert.Equal(t, 3, gen.calls())

	entries, err := dataset.ReadAll(p.Output)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Text, "User: Create a Dockerfile using Alpine and curl.")

	succ, _ := p.Ledger.Successes()
	fail, _ := p.Ledger.Failures()
	assert.Equal(t, []string{path}, succ)
	assert.Empty(t, fail)
}

func TestProcessItem_FailsAfterMaxRetries(t *testing.T) {
	gen := constant("not a valid question")
	p := newProcessor(t, DockerfileTask{}, gen)
	path := writeFile(t, filepath.Join(t.TempDir(), "Dockerfile"), sampleDockerfile)

	ok := p.ProcessItem(context.Background(), workitem.Item{ID: path})
	assert.False(t, ok)
	assert.Equal(t, 3, gen.calls())
	assert.NoFileExists(t, p.Output)

	succ, _ := p.Ledger.Successes()
	fail, _ := p.Ledger.Failures()
	assert.Empty(t, succ)
	assert.Equal(t, []string{path}, fail)
}

func TestProcessItem_GeneratorErrorsAreRetried(t *testing.T) {
	gen := &fakeGenerator{respond: func(call int, _ llm.Request) (string, error) {
		if call == 1 {
			return "", errors.New("connection reset")
		}
		return "User: compose for nginx", nil
	}}
	p := newProcessor(t, ComposeTask{}, gen)

	ok := p.ProcessItem(context.Background(), workitem.Item{ID: "nginx"})
	require.True(t, ok)
	assert.Equal(t, 2, gen.calls())
}

func TestProcessItem_UnparseableDockerfileIsNotRetried(t *testing.T) {
	gen := constant("Create a Dockerfile using nothing.")
	p := newProcessor(t, DockerfileTask{}, gen)
	path := writeFile(t, filepath.Join(t.TempDir(), "Dockerfile"), "")

	ok := p.ProcessItem(context.Background(), workitem.Item{ID: path})
	assert.False(t, ok)
	assert.Zero(t, gen.calls())

	fail, _ := p.Ledger.Failures()
	assert.Equal(t, []string{path}, fail)
}

func TestProcessItem_OutputWriteFailureIsRecordedAsFailure(t *testing.T) {
	p := newProcessor(t, InfoTask{}, constant("User: What is redis?"))
	blocker := writeFile(t, filepath.Join(t.TempDir(), "blocker"), "x")
	p.Output = filepath.Join(blocker, "entries.jsonl")

	ok := p.ProcessItem(context.Background(), workitem.Item{ID: "redis"})
	assert.False(t, ok)

	succ, _ := p.Ledger.Successes()
	fail, _ := p.Ledger.Failures()
	assert.Empty(t, succ)
	assert.Equal(t, []string{"redis"}, fail)
}

func TestProcessItem_CompletesWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	gen := llm.GeneratorFunc(func(c context.Context, req llm.Request) (string, error) {
		cancel()
		if c.Err() != nil {
			return "", c.Err()
		}
		return "User: first", nil
	})
	p := newProcessor(t, ComposeTask{}, gen)

	ok := p.ProcessItem(ctx, workitem.Item{ID: "nginx"})
	assert.True(t, ok)

	succ, _ := p.Ledger.Successes()
	assert.Equal(t, []string{"nginx"}, succ)
}

func TestProcessItem_SuccessLogWriteFailureIsRecordedAsFailure(t *testing.T) {
	p := newProcessor(t, InfoTask{}, constant("User: What is redis?"))
	require.NoError(t, os.Remove(p.Ledger.SuccessPath()))
	require.NoError(t, os.Mkdir(p.Ledger.SuccessPath(), 0755))

	ok := p.ProcessItem(context.Background(), workitem.Item{ID: "redis"})
	assert.False(t, ok)

	fail, err := p.Ledger.Failures()
	require.NoError(t, err)
	assert.Equal(t, []string{"redis"}, fail)
}
