package history

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/taskalloc/core/factory"
	corehistory "github.com/kilianp07/taskalloc/core/history"
)

func records() []corehistory.Record {
	base := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	var out []corehistory.Record
	for i, id := range []string{"a", "b", "c"} {
		out = append(out, corehistory.Record{
			RunID:             id,
			Timestamp:         base.Add(time.Duration(i) * time.Hour),
			TaskCount:         8,
			EmployeeCount:     5,
			Generations:       50,
			ExecutionTime:     time.Duration(i+1) * time.Second,
			BestFitness:       10 + float64(i),
			TotalCost:         100000,
			TotalDurationDays: 14,
			AvgEfficiency:     72.5,
		})
	}
	return out
}

// exerciseStore runs the shared contract against a backend.
func exerciseStore(t *testing.T, s corehistory.Store) {
	t.Helper()
	ctx := context.Background()
	for _, r := range records() {
		require.NoError(t, s.Append(ctx, r))
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].RunID)
	assert.Equal(t, "a", all[2].RunID)
	assert.True(t, all[2].Timestamp.Equal(records()[0].Timestamp))
	assert.Equal(t, time.Second, all[2].ExecutionTime)
	assert.InDelta(t, 72.5, all[0].AvgEfficiency, 1e-9)

	last, err := s.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, []string{"c", "b"}, []string{last[0].RunID, last[1].RunID})
	require.NoError(t, s.Close())
}

func TestJSONLStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runs.jsonl")
	s, err := NewJSONLStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)

	// Corrupt lines are skipped.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("not json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	all, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRotatingJSONLStore(t *testing.T) {
	s, err := NewRotatingJSONLStore(filepath.Join(t.TempDir(), "runs.jsonl"), 1, 3, 0)
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestRotatingJSONLStore_ReadsBackups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runs.jsonl")
	old := records()[0]
	old.RunID = "old"
	old.Timestamp = old.Timestamp.Add(-24 * time.Hour)
	b, err := json.Marshal(old)
	require.NoError(t, err)
	backup := filepath.Join(dir, "runs-2024-06-02T09-00-00.000.jsonl")
	require.NoError(t, os.WriteFile(backup, append(b, '\n'), 0o644))

	s, err := NewRotatingJSONLStore(path, 1, 3, 0)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Append(context.Background(), records()[1]))

	all, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].RunID)
	assert.Equal(t, "old", all[1].RunID)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestSQLiteStore_DuplicateRunID(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	rec := records()[0]
	require.NoError(t, s.Append(context.Background(), rec))
	assert.Error(t, s.Append(context.Background(), rec))
}

func TestFactory_Builtins(t *testing.T) {
	dir := t.TempDir()
	for _, typ := range []string{"jsonl", "jsonl-rotating", "sqlite"} {
		s, err := corehistory.NewStore(factory.ModuleConfig{Type: typ, Conf: map[string]any{"path": filepath.Join(dir, "runs."+typ)}})
		require.NoError(t, err, typ)
		require.NoError(t, s.Append(context.Background(), records()[0]))
		require.NoError(t, s.Close())
	}
	_, err := corehistory.NewStore(factory.ModuleConfig{Type: "jsonl"})
	assert.Error(t, err, "jsonl requires a path")
}
