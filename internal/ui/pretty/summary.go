package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/blockcont/pkg/runner"
)

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}

// FormatSummaryOneLine formats replay statistics as a single line.
// Example: "5 scripts in 2 files: 4 passed, 1 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No replay scripts found") + "\n"
	}

	head := fmt.Sprintf("%s in %s",
		plural(stats.ScriptsRun, "script", "scripts"),
		plural(stats.FilesDiscovered, "file", "files"))

	parts := []string{s.Success.Render(fmt.Sprintf("%d passed", stats.ScriptsPassed))}
	if stats.ScriptsFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.ScriptsFailed)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(plural(stats.FilesErrored, "file errored", "files errored")))
	}

	return head + ": " + strings.Join(parts, ", ") + "\n"
}
