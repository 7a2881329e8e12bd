package continuation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/blockcont/pkg/syntax"
	"github.com/yaklabco/blockcont/pkg/textdoc"
)

// continuationMarker follows the indentation of every continuation line.
const continuationMarker = "* "

// lineIndentPattern matches a line's indentation before a leading "*" or "/*".
var lineIndentPattern = regexp.MustCompile(`^(\s*)(/\*|\*)`)

// ContinueAt computes the edit for Enter at offset, which must be a plain
// cursor that passed Eligible.
//
// The text after the cursor moves to the new line, trimmed, after an
// indented "* " marker; the cursor lands right after the marker.
func ContinueAt(state State, offset int) (Edit, Reason) {
	doc := state.Doc

	node, ok := ResolveComment(state.Tree, offset)
	if !ok {
		return Edit{}, ReasonNotComment
	}
	if !validRegion(doc, node, offset) {
		return Edit{}, ReasonBadRegion
	}
	if offset == node.From+1 {
		return Edit{}, ReasonInOpener
	}
	if AtClosingToken(doc, offset, node) {
		return Edit{}, ReasonAtClose
	}

	line, ok := doc.LineAt(offset)
	if !ok || offset > line.To {
		return Edit{}, ReasonBadRegion
	}

	column, ok := openerColumn(doc, node)
	if !ok {
		return Edit{}, ReasonBadRegion
	}
	if state.Options.Indent == IndentLine {
		if lineColumn, ok := indentFromLine(line.Text); ok {
			column = lineColumn
		}
	}

	carried := strings.TrimSpace(line.Text[offset-line.From:])
	// Text only moves out of a comment that is known to end.
	if carried != "" && !IsClosed(doc, node) {
		return Edit{}, ReasonTrailingText
	}

	insert := doc.LineBreak() + strings.Repeat(" ", column) + continuationMarker + carried

	return Edit{
		From:   offset,
		To:     line.To,
		Insert: insert,
		Cursor: offset + len(insert) - len(carried),
	}, ReasonNone
}

// openerColumn returns the character column of the "*" in the comment's
// opening "/*".
func openerColumn(doc *textdoc.Document, node syntax.Node) (int, bool) {
	anchor, ok := doc.LineAt(node.From)
	if !ok {
		return 0, false
	}
	width := node.From - anchor.From
	if width < 0 || width > len(anchor.Text) {
		return 0, false
	}
	return utf8.RuneCountInString(anchor.Text[:width]) + 1, true
}

// indentFromLine returns the continuation column implied by a line that
// starts with "*" or "/*" after its indentation.
func indentFromLine(text string) (int, bool) {
	match := lineIndentPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	column := utf8.RuneCountInString(match[1])
	if match[2] == "/*" {
		column++
	}
	return column, true
}
