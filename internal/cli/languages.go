package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockcont/internal/ui/pretty"
	"github.com/yaklabco/blockcont/pkg/reporter"
)

// languageJSON is the JSON form of a language entry.
type languageJSON struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	Line       string   `json:"line,omitempty"`
	BlockOpen  string   `json:"blockOpen,omitempty"`
	BlockClose string   `json:"blockClose,omitempty"`
	Continues  bool     `json:"continues"`
}

func newLanguagesCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List languages and their comment syntax",
		Long: `List the built-in and configured languages with their comment delimiters.

Only languages whose block comments are "/*" "*/" get comment continuation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := reporter.ParseFormat(format)
			if err != nil || parsed == reporter.FormatDiff {
				return fmt.Errorf("invalid format %q: must be text or json", format)
			}

			s, err := loadSettings(cmd, "", nil)
			if err != nil {
				return err
			}
			langs := s.registry.Languages()
			out := cmd.OutOrStdout()

			if parsed == reporter.FormatJSON {
				entries := make([]languageJSON, 0, len(langs))
				for _, lang := range langs {
					entry := languageJSON{
						Name:       lang.Name,
						Extensions: lang.Extensions,
						Line:       lang.Comments.Line,
						Continues:  lang.Comments.HasCStyleBlock(),
					}
					if lang.Comments.Block != nil {
						entry.BlockOpen = lang.Comments.Block.Open
						entry.BlockClose = lang.Comments.Block.Close
					}
					entries = append(entries, entry)
				}
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(entries)
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
			_, err = fmt.Fprint(out, styles.FormatLanguageTable(langs))
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}
