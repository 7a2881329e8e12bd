package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yaklabco/blockcont/pkg/langdata"
)

// noneMarker fills cells for absent comment delimiters.
const noneMarker = "-"

// FormatLanguageTable renders the comment syntax of each language.
// Languages whose block comments can be continued are highlighted.
func (s *Styles) FormatLanguageTable(langs []*langdata.Language) string {
	rows := make([][]string, 0, len(langs))
	for _, lang := range langs {
		rows = append(rows, languageRow(lang))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.TableBorder).
		Headers("LANGUAGE", "EXTENSIONS", "LINE", "BLOCK", "CONTINUES").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if row >= 0 && row < len(langs) && langs[row].Comments.HasCStyleBlock() {
				return s.TableCell.Inherit(s.Highlight)
			}
			return s.TableCell
		})

	return t.String() + "\n"
}

func languageRow(lang *langdata.Language) []string {
	extensions := noneMarker
	if len(lang.Extensions) > 0 {
		extensions = strings.Join(lang.Extensions, " ")
	}

	line := lang.Comments.Line
	if line == "" {
		line = noneMarker
	}

	block := noneMarker
	if lang.Comments.Block != nil {
		block = lang.Comments.Block.Open + " " + lang.Comments.Block.Close
	}

	continues := "no"
	if lang.Comments.HasCStyleBlock() {
		continues = "yes"
	}

	return []string{lang.Name, extensions, line, block, continues}
}
