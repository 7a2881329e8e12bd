package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/blockcont/pkg/script"
)

// FormatScriptResult formats one replayed script and its failures.
func (s *Styles) FormatScriptResult(result *script.Result) string {
	var builder strings.Builder

	mark := s.Success.Render("PASS")
	if !result.Passed() {
		mark = s.Failure.Render("FAIL")
	}

	name := result.Name
	if result.Language != "" {
		name += s.Dim.Render(" [" + result.Language + "]")
	}
	fmt.Fprintf(&builder, "  %s  %s\n", mark, name)

	for _, failure := range result.Failures {
		fmt.Fprintf(&builder, "        %s\n", s.Error.Render(failure))
	}

	return builder.String()
}

// FormatSteps lists the decision of every key of a script.
func (s *Styles) FormatSteps(result *script.Result) string {
	var builder strings.Builder

	for i, step := range result.Steps {
		verdict := s.Handled.Render("handled")
		if !step.Handled {
			verdict = s.Fallback.Render("default")
			if step.Reason != "" {
				verdict += " " + s.Reason.Render("("+string(step.Reason)+")")
			}
		}
		fmt.Fprintf(&builder, "        %d. %-10s %s %s\n",
			i+1, step.Key, verdict, s.Dim.Render(fmt.Sprintf("cursors %v", step.Cursors)))
	}

	return builder.String()
}

// FormatFileHeader formats a script file header.
func (s *Styles) FormatFileHeader(path string, scripts int) string {
	header := s.FilePath.Render(path)
	if scripts > 0 {
		noun := "scripts"
		if scripts == 1 {
			noun = "script"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", scripts, noun))
	}
	return header
}

// FormatFileError formats a file that could not be replayed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render(fmt.Sprintf("error: %v", err)))
}
