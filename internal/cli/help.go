package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/blockcont/internal/ui/pretty"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	FlagType    lipgloss.Style
	Description lipgloss.Style
	Default     lipgloss.Style
	Example     lipgloss.Style
}

// NewHelpStyles creates help styles based on color mode.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &HelpStyles{
			Command:     plain,
			Heading:     plain,
			Subcommand:  plain,
			Flag:        plain,
			FlagType:    plain,
			Description: plain,
			Default:     plain,
			Example:     plain,
		}
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return &HelpStyles{
		Command:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Heading:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Subcommand:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Flag:        lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		FlagType:    dim,
		Description: lipgloss.NewStyle(),
		Default:     dim,
		Example:     dim,
	}
}

// HelpFormatter renders styled help for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer))}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]
{{- end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ heading "Commands:" }}
{{- range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}
{{- end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}`

func (h *HelpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":    h.styles.Heading.Render,
		"command":    h.styles.Command.Render,
		"subcommand": h.styles.Subcommand.Render,
		"example":    h.styles.Example.Render,
		"flags":      h.renderFlags,
		"rpad":       rpad,
		"trimRight":  trimTrailingWhitespaces,
	}
}

// flagRow is one rendered flag: its names, value type, and description.
type flagRow struct {
	names string
	kind  string
	usage string
	def   string
}

// renderFlags lays flags out in two aligned columns.
func (h *HelpFormatter) renderFlags(set *pflag.FlagSet) string {
	var rows []flagRow
	width := 0

	set.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		names := "    --" + flag.Name
		if flag.Shorthand != "" && flag.ShorthandDeprecated == "" {
			names = "-" + flag.Shorthand + ", --" + flag.Name
		}

		kind, usage := pflag.UnquoteUsage(flag)
		row := flagRow{names: names, kind: kind, usage: usage}
		if flag.DefValue != "" && flag.DefValue != "false" && flag.DefValue != "0" && flag.DefValue != "[]" {
			row.def = fmt.Sprintf("(default %q)", flag.DefValue)
		}

		if w := len(row.names) + len(row.kind) + 1; w > width {
			width = w
		}
		rows = append(rows, row)
	})

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		plain := row.names
		styled := h.styles.Flag.Render(row.names)
		if row.kind != "" {
			plain += " " + row.kind
			styled += " " + h.styles.FlagType.Render(row.kind)
		}

		line := "  " + styled + strings.Repeat(" ", width-len(plain)+3) + h.styles.Description.Render(row.usage)
		if row.def != "" {
			line += " " + h.styles.Default.Render(row.def)
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// ApplyToCommand installs the styled help and usage output on cmd. Subcommands
// inherit it from the root.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		out := command.OutOrStdout()
		if err := help.Execute(out, command); err != nil {
			command.PrintErrln(err)
			return
		}
		if err := usage.Execute(out, command); err != nil {
			command.PrintErrln(err)
		}
	})
}

func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
