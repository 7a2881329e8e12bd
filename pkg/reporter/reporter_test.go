package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/reporter"
	"github.com/yaklabco/blockcont/pkg/runner"
	"github.com/yaklabco/blockcont/pkg/script"
)

func replayResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "a.replay.yml",
				Results: []*script.Result{
					{
						Name: "jsdoc", Language: "TypeScript",
						Initial: "/** abc", Content: "/** abc\n * ", Cursors: []int{11},
						Steps: []script.StepResult{{Key: "enter", Handled: true, Cursors: []int{11}}},
					},
					{
						Name: "wrong", Initial: "x", Content: "x",
						Failures: []string{"content: want \"y\", got \"x\""},
					},
				},
			},
			{Path: "b.replay.yml", Error: errors.New("invalid script")},
		},
		Stats: runner.Stats{FilesDiscovered: 2, FilesErrored: 1, ScriptsRun: 2, ScriptsPassed: 1, ScriptsFailed: 1},
	}
}

func proposal() *reporter.Proposal {
	return &reporter.Proposal{
		Path: "main.go", Key: "enter", Offset: 6, Line: 1, Column: 7,
		Language: "Go", Source: "/* abc",
		Result: continuation.Handled([]continuation.Edit{
			{From: 6, To: 6, Insert: "\n * ", Cursor: 10},
		}),
		Original: "/* abc",
		Modified: "/* abc\n * ",
	}
}

func newReporter(t *testing.T, format reporter.Format, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()

	opts := reporter.DefaultOptions()
	opts.Writer = buf
	opts.Format = format
	opts.Color = "never"

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	return rep
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format reporter.Format
		want   any
	}{
		{format: "", want: &reporter.TextReporter{}},
		{format: reporter.FormatText, want: &reporter.TextReporter{}},
		{format: reporter.FormatJSON, want: &reporter.JSONReporter{}},
		{format: reporter.FormatDiff, want: &reporter.DiffReporter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()

			rep, err := reporter.New(reporter.Options{Format: tt.format, Writer: &bytes.Buffer{}})
			require.NoError(t, err)
			assert.IsType(t, tt.want, rep)
		})
	}

	_, err := reporter.New(reporter.Options{Format: "sarif"})
	require.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	format, err := reporter.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, reporter.FormatText, format)

	format, err = reporter.ParseFormat("diff")
	require.NoError(t, err)
	assert.True(t, format.IsValid())

	_, err = reporter.ParseFormat("table")
	require.Error(t, err)
	assert.False(t, reporter.Format("table").IsValid())
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	t.Run("replay", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		failed, err := newReporter(t, reporter.FormatText, &buf).ReportReplay(context.Background(), replayResult())
		require.NoError(t, err)
		assert.Equal(t, 2, failed)

		out := buf.String()
		assert.Contains(t, out, "a.replay.yml (2 scripts)\n")
		assert.Contains(t, out, "  PASS  jsdoc [TypeScript]\n")
		assert.Contains(t, out, "  FAIL  wrong\n")
		assert.Contains(t, out, "b.replay.yml: error: invalid script\n")
		assert.Contains(t, out, "2 scripts in 2 files: 1 passed, 1 failed, 1 file errored\n")
	})

	t.Run("proposal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatText, &buf).ReportProposal(context.Background(), proposal()))

		assert.Equal(t,
			"main.go:1:7  enter  handled  (1 edit)\n"+
				"    /* abc\n"+
				"          ^\n"+
				`    insert "\\n * "`+"\n",
			buf.String())
	})

	t.Run("written proposal", func(t *testing.T) {
		t.Parallel()

		p := proposal()
		p.Written = true
		p.BackupPath = "main.go.blockcont.bak"

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatText, &buf).ReportProposal(context.Background(), p))
		assert.Contains(t, buf.String(), "written (backup main.go.blockcont.bak)\n")
	})
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	t.Run("replay", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		failed, err := newReporter(t, reporter.FormatJSON, &buf).ReportReplay(context.Background(), replayResult())
		require.NoError(t, err)
		assert.Equal(t, 2, failed)

		var output reporter.JSONReplayOutput
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		require.Len(t, output.Files, 2)
		assert.Len(t, output.Files[0].Scripts, 2)
		assert.Equal(t, "invalid script", output.Files[1].Error)
		assert.Empty(t, output.Files[1].Scripts)
		assert.Equal(t, 1, output.Summary.ScriptsFailed)
	})

	t.Run("nil replay", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := newReporter(t, reporter.FormatJSON, &buf).ReportReplay(context.Background(), nil)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"files": []`)
	})

	t.Run("proposal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatJSON, &buf).ReportProposal(context.Background(), proposal()))

		var output reporter.JSONProposal
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		assert.True(t, output.Handled)
		assert.Equal(t, []reporter.JSONEdit{{StartOffset: 6, EndOffset: 6, NewText: "\n * ", Cursor: 10}}, output.Edits)
	})

	t.Run("fall-through proposal", func(t *testing.T) {
		t.Parallel()

		p := proposal()
		p.Result = continuation.NotHandled(continuation.ReasonTrailingText)
		p.Modified = p.Original

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatJSON, &buf).ReportProposal(context.Background(), p))

		var output reporter.JSONProposal
		require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
		assert.False(t, output.Handled)
		assert.Equal(t, "trailing-text", output.Reason)
		assert.Empty(t, output.Edits)
	})
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	t.Run("replay", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := newReporter(t, reporter.FormatDiff, &buf).ReportReplay(context.Background(), replayResult())
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "diff --git a/a.replay.yml#jsdoc b/a.replay.yml#jsdoc\n")
		assert.Contains(t, out, "+ * \n")
		assert.NotContains(t, out, "#wrong")
		assert.Contains(t, out, "b.replay.yml: error: invalid script\n")
	})

	t.Run("proposal", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatDiff, &buf).ReportProposal(context.Background(), proposal()))

		out := buf.String()
		assert.Contains(t, out, "diff --git a/main.go b/main.go\n")
		assert.Contains(t, out, "--- a/main.go\n+++ b/main.go\n")
		assert.Contains(t, out, "+ * \n")
	})

	t.Run("fall-through writes nothing", func(t *testing.T) {
		t.Parallel()

		p := proposal()
		p.Modified = p.Original

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, reporter.FormatDiff, &buf).ReportProposal(context.Background(), p))
		assert.Empty(t, buf.String())
	})
}
