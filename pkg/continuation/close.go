package continuation

import (
	"regexp"
	"strings"

	"github.com/yaklabco/blockcont/pkg/langdata"
)

// bareContinuationPattern matches a continuation line with nothing after
// its "* " marker.
var bareContinuationPattern = regexp.MustCompile(`^\s+\* $`)

// CloseAt computes the edit for typing "/" at offset, which must be a plain
// cursor that passed Eligible.
//
// On a bare "<indent>* " line inside an open comment, the trailing space
// becomes "/" so the line reads "<indent>*/". The cursor does not move.
func CloseAt(state State, offset int) (Edit, Reason) {
	doc := state.Doc

	line, ok := doc.LineAt(offset)
	if !ok || offset > line.To {
		return Edit{}, ReasonBadRegion
	}
	if strings.TrimSpace(line.Text[offset-line.From:]) != "" {
		return Edit{}, ReasonTrailingText
	}

	node, ok := ResolveComment(state.Tree, offset)
	if !ok {
		return Edit{}, ReasonNotComment
	}
	if !validRegion(doc, node, offset) {
		return Edit{}, ReasonBadRegion
	}

	if strings.Contains(line.Text, langdata.BlockCloseC) {
		return Edit{}, ReasonAlreadyClosed
	}
	if !bareContinuationPattern.MatchString(line.Text) {
		return Edit{}, ReasonNotBareLine
	}

	return Edit{
		From:   line.To - 1,
		To:     line.To,
		Insert: "/",
		Cursor: offset,
	}, ReasonNone
}
