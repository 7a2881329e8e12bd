// Package syntax provides a minimal syntax classification of documents:
// a tree of named, offset-ranged nodes that can be resolved at a position.
//
// Only the node kinds that matter for comment editing are modelled. Tree is
// the seam between the editing algorithms and whatever produces the
// classification, be it a real incremental parser, the lexical scanner in
// this package, or a hand-written stub in tests.
package syntax

// Node names.
const (
	// Document is the name of the root node spanning the whole input.
	Document = "Document"

	// BlockComment is a delimited comment that may span lines.
	BlockComment = "BlockComment"

	// LineComment is a comment running to the end of the line.
	LineComment = "LineComment"

	// String is a quoted literal.
	String = "String"
)

// Bias selects which neighbour wins when an offset sits on a node boundary.
type Bias int

const (
	// BiasLeft resolves using the token to the left of the offset:
	// a node [From, To) contains the offset when From < offset <= To.
	BiasLeft Bias = -1

	// BiasRight resolves using the token to the right of the offset:
	// a node [From, To) contains the offset when From <= offset < To.
	BiasRight Bias = 1
)

// Node is a classified region of the document.
type Node struct {
	// Name is the node kind.
	Name string

	// From is the absolute start offset (inclusive).
	From int

	// To is the absolute end offset (exclusive).
	To int
}

// Len returns the length of the node in bytes.
func (n Node) Len() int {
	return n.To - n.From
}

// Contains reports whether offset falls inside the node under the given bias.
func (n Node) Contains(offset int, bias Bias) bool {
	if bias == BiasLeft {
		return n.From < offset && offset <= n.To
	}
	return n.From <= offset && offset < n.To
}

// Tree resolves syntax nodes at positions.
type Tree interface {
	// ResolveInner returns the innermost node containing offset under bias.
	// When no classified node contains it, the root Document node is returned.
	ResolveInner(offset int, bias Bias) Node
}
