package pretty_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/blockcont/internal/ui/pretty"
	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/runner"
	"github.com/yaklabco/blockcont/pkg/script"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	assert.Equal(t, "test", styles.Bold.Render("test"))
	assert.Equal(t, "test", styles.Error.Render("test"))
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout))
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "buffers are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout))
}

func TestFormatOutcome(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "main.go:3:7  enter  handled  (1 edit)\n",
		styles.FormatOutcome("main.go", 3, 7, "enter", true, "", 1))
	assert.Equal(t, "main.go:1:1  close  falls through  (not-bare-line)\n",
		styles.FormatOutcome("main.go", 1, 1, "close", false, "not-bare-line", 0))
}

func TestFormatSourceContext(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	assert.Equal(t, "    /* abc\n         ^\n", styles.FormatSourceContext("/* abc", 6))
	assert.Equal(t, "    \t* x\n    \t ^\n", styles.FormatSourceContext("\t* x", 3))
	assert.Equal(t, "    x\n", styles.FormatSourceContext("x", 0))
}

func TestFormatInsertion(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, `    insert "\\n * "`+"\n", styles.FormatInsertion("\n * "))
}

func TestFormatScriptResult(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	passed := &script.Result{Name: "jsdoc", Language: "TypeScript"}
	assert.Equal(t, "  PASS  jsdoc [TypeScript]\n", styles.FormatScriptResult(passed))

	failed := &script.Result{Name: "wrong", Failures: []string{"cursors: want [1], got [8]"}}
	assert.Equal(t, "  FAIL  wrong\n        cursors: want [1], got [8]\n", styles.FormatScriptResult(failed))

	steps := &script.Result{Steps: []script.StepResult{
		{Key: "enter", Handled: true, Cursors: []int{8}},
		{Key: "slash", Reason: continuation.ReasonNotBareLine, Cursors: []int{9}},
	}}
	out := styles.FormatSteps(steps)
	assert.Contains(t, out, "1. enter      handled cursors [8]")
	assert.Contains(t, out, "2. slash      default (not-bare-line) cursors [9]")
}

func TestFormatFileHeaderAndError(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "a.replay.yml (1 script)", styles.FormatFileHeader("a.replay.yml", 1))
	assert.Equal(t, "a.replay.yml (3 scripts)", styles.FormatFileHeader("a.replay.yml", 3))
	assert.Equal(t, "a.replay.yml: error: boom\n", styles.FormatFileError("a.replay.yml", errors.New("boom")))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{name: "empty", want: "No replay scripts found\n"},
		{
			name:  "all passed",
			stats: runner.Stats{FilesDiscovered: 1, ScriptsRun: 1, ScriptsPassed: 1},
			want:  "1 script in 1 file: 1 passed\n",
		},
		{
			name:  "mixed",
			stats: runner.Stats{FilesDiscovered: 3, FilesErrored: 1, ScriptsRun: 5, ScriptsPassed: 4, ScriptsFailed: 1},
			want:  "5 scripts in 3 files: 4 passed, 1 failed, 1 file errored\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

func TestFormatLanguageTable(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	out := styles.FormatLanguageTable(langdata.Default().Languages())

	assert.Contains(t, out, "LANGUAGE")
	assert.Contains(t, out, "TypeScript")
	assert.Contains(t, out, "/* */")
	assert.Contains(t, out, "Python")
}
