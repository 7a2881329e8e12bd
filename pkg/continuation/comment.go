package continuation

import (
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/syntax"
	"github.com/yaklabco/blockcont/pkg/textdoc"
)

// minClosedComment is the shortest closed block comment, "/**/".
const minClosedComment = len(langdata.BlockOpenC + langdata.BlockCloseC)

// Eligible reports whether comment editing may run for r: the range is a
// plain cursor and the language active there has "/*" "*/" block comments.
func Eligible(lang langdata.Provider, r Range) bool {
	if !r.Empty() || lang == nil {
		return false
	}
	for _, tokens := range lang.LanguageDataAt(r.From()) {
		if tokens.HasCStyleBlock() {
			return true
		}
	}
	return false
}

// ResolveComment returns the block comment enclosing offset, resolving with
// the token to the left of the offset.
func ResolveComment(tree syntax.Tree, offset int) (syntax.Node, bool) {
	if tree == nil {
		return syntax.Node{}, false
	}
	node := tree.ResolveInner(offset, syntax.BiasLeft)
	if node.Name != syntax.BlockComment {
		return syntax.Node{}, false
	}
	return node, true
}

// AtClosingToken reports whether offset is just after "*/" or between its
// "*" and "/".
func AtClosingToken(doc *textdoc.Document, offset int, node syntax.Node) bool {
	return (offset == node.To || offset == node.To-1) && IsClosed(doc, node)
}

// IsClosed reports whether the comment is long enough to hold both
// delimiters and ends with "*/".
func IsClosed(doc *textdoc.Document, node syntax.Node) bool {
	return node.Len() >= minClosedComment &&
		doc.Slice(node.To-len(langdata.BlockCloseC), node.To) == langdata.BlockCloseC
}

// validRegion reports whether node is consistent with the document and
// contains offset.
func validRegion(doc *textdoc.Document, node syntax.Node, offset int) bool {
	return node.From >= 0 && node.From <= node.To && node.To <= doc.Len() &&
		node.Contains(offset, syntax.BiasLeft)
}
