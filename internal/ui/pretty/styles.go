// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Outcome styles
	Error     lipgloss.Style
	Handled   lipgloss.Style
	Fallback  lipgloss.Style
	Reason    lipgloss.Style
	Location  lipgloss.Style
	FilePath  lipgloss.Style
	Message   lipgloss.Style
	Caret     lipgloss.Style
	Source    lipgloss.Style
	Inserted  lipgloss.Style
	Highlight lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	Success lipgloss.Style
	Failure lipgloss.Style

	// Table styles
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style
	TableCell   lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	return &Styles{
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Handled:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Fallback:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Reason:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Location:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		FilePath:  lipgloss.NewStyle().Bold(true),
		Message:   lipgloss.NewStyle(),
		Caret:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Inserted:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")).Padding(0, 1),
		TableBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableCell:   lipgloss.NewStyle().Padding(0, 1),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	padded := lipgloss.NewStyle().Padding(0, 1)
	return &Styles{
		Error:       plain,
		Handled:     plain,
		Fallback:    plain,
		Reason:      plain,
		Location:    plain,
		FilePath:    plain,
		Message:     plain,
		Caret:       plain,
		Source:      plain,
		Inserted:    plain,
		Highlight:   plain,
		DiffHeader:  plain,
		DiffHunk:    plain,
		DiffAdd:     plain,
		DiffRemove:  plain,
		DiffContext: plain,
		Success:     plain,
		Failure:     plain,
		TableHeader: padded,
		TableBorder: plain,
		TableCell:   padded,
		Dim:         plain,
		Bold:        plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
