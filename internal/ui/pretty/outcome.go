package pretty

import (
	"fmt"
	"strings"
)

// sourceIndent aligns source context under an outcome line.
const sourceIndent = "    "

// FormatOutcome formats the decision for one key press, e.g.
// "main.go:3:7  enter  handled  (1 edit)".
func (s *Styles) FormatOutcome(path string, line, column int, key string, handled bool, reason string, edits int) string {
	location := fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), line, column)

	var verdict string
	if handled {
		noun := "edits"
		if edits == 1 {
			noun = "edit"
		}
		verdict = s.Handled.Render("handled") + "  " + s.Dim.Render(fmt.Sprintf("(%d %s)", edits, noun))
	} else {
		verdict = s.Fallback.Render("falls through") + "  " + s.Reason.Render("("+reason+")")
	}

	return fmt.Sprintf("%s  %s  %s\n", location, s.Bold.Render(key), verdict)
}

// FormatSourceContext formats a source line with a caret under the 1-based
// byte column. Tabs are kept so the caret lines up in a terminal.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.Source.Render(line) + "\n")

	if column > 0 {
		prefix := line[:min(column-1, len(line))]
		var padding strings.Builder
		for _, r := range prefix {
			if r == '\t' {
				padding.WriteRune('\t')
			} else {
				padding.WriteRune(' ')
			}
		}
		builder.WriteString(sourceIndent + padding.String() + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatInsertion shows inserted text with visible line breaks.
func (s *Styles) FormatInsertion(text string) string {
	visible := strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(text)
	return sourceIndent + s.Dim.Render("insert ") + s.Inserted.Render(fmt.Sprintf("%q", visible)) + "\n"
}
