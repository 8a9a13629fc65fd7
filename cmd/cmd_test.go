package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/taskalloc/pkg/dataset"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestDemoWriteThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	out, err := execute(t, "demo", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "demo project written")

	out, err = execute(t, "validate", "--project", path)
	require.NoError(t, err)
	assert.Contains(t, out, "input is valid")
	assert.Contains(t, out, "total hours")
}

func TestValidate_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	ds := dataset.Demo()
	ds.Employees[0].DailyHours = 0
	require.NoError(t, dataset.Save(path, ds))
	_, err := execute(t, "validate", "--project", path)
	assert.Error(t, err)
}

func TestOptimizeAndHistory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("K_HISTORY__TYPE", "jsonl")
	t.Setenv("K_HISTORY__CONF__PATH", filepath.Join(dir, "runs.jsonl"))

	project := filepath.Join(dir, "project.json")
	require.NoError(t, dataset.Save(project, dataset.Demo()))
	report := filepath.Join(dir, "report.json")

	out, err := execute(t, "optimize", "--project", project, "--generations", "3", "--population", "12",
		"--seed", "5", "--progress=false", "--out", report)
	require.NoError(t, err)
	assert.Contains(t, out, "ASSIGNMENTS")
	assert.Contains(t, out, "SCHEDULE")
	assert.Contains(t, out, "on-time probability")
	_, err = os.Stat(report)
	assert.NoError(t, err)

	out, err = execute(t, "history", "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "RUN")
	assert.Contains(t, out, "false")
}

func TestOptimize_NoInput(t *testing.T) {
	_, err := execute(t, "optimize", "--project", "", "--progress=false")
	assert.Error(t, err)
}
