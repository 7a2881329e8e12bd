package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockcont/pkg/runner"
)

const passing = `name: continues
language: C
content: "/* a"
keys: [enter]
expect:
  content: "/* a\n * "
`

const failing = `name: wrong expectation
language: C
content: "/* a"
keys: [enter]
expect:
  cursors: [1]
`

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScript(t, dir, "notes.yml", passing)

	result, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFailures())
}

func TestRun_MixedResults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScript(t, dir, "a.replay.yml", passing+"---\n"+passing)
	writeScript(t, dir, "b.replay.yaml", failing)
	writeScript(t, dir, "c.replay.yml", "keys: [tab]\ncontent: x\n")

	result, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 2})
	require.NoError(t, err)

	require.Len(t, result.Files, 3)
	assert.Equal(t, filepath.Join(dir, "a.replay.yml"), result.Files[0].Path)
	assert.Len(t, result.Files[0].Results, 2)
	require.Len(t, result.Files[1].Results, 1)
	assert.False(t, result.Files[1].Results[0].Passed())
	require.Error(t, result.Files[2].Error)

	assert.Equal(t, runner.Stats{
		FilesDiscovered: 3,
		FilesErrored:    1,
		ScriptsRun:      3,
		ScriptsPassed:   2,
		ScriptsFailed:   1,
	}, result.Stats)
	assert.True(t, result.HasFailures())
}

func TestRun_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := range 20 {
		content := passing
		if i%3 == 0 {
			content = failing
		}
		writeScript(t, dir, fmt.Sprintf("s%02d.replay.yml", i), content)
	}

	serial, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 1})
	require.NoError(t, err)
	parallel, err := runner.Run(context.Background(), runner.Options{WorkingDir: dir, Jobs: 8})
	require.NoError(t, err)

	assert.Equal(t, serial.Stats, parallel.Stats)
	require.Len(t, parallel.Files, len(serial.Files))
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Results[0].Failures, parallel.Files[i].Results[0].Failures)
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeScript(t, dir, "a.replay.yml", passing)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Run(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_HasFailures(t *testing.T) {
	t.Parallel()

	var nilResult *runner.Result
	assert.False(t, nilResult.HasFailures())
	assert.True(t, (&runner.Result{Stats: runner.Stats{FilesErrored: 1}}).HasFailures())
	assert.True(t, (&runner.Result{Stats: runner.Stats{ScriptsFailed: 1}}).HasFailures())
	assert.False(t, (&runner.Result{Stats: runner.Stats{ScriptsPassed: 4}}).HasFailures())
}
