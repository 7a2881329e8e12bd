// Package continuation continues and closes "/* */" block comments as the
// user types.
//
// The package decides whether a keystroke should produce an edit and what
// that edit is. It never mutates documents: given a snapshot, a syntax tree,
// the active language data and the cursor ranges, a command returns either a
// Handled result with the proposed edits or a NotHandled result, in which
// case the host lets the key fall through to its default behavior.
//
// Commands are stateless and synchronous. Every invocation re-derives its
// decision from the inputs it is handed.
package continuation

import (
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/syntax"
	"github.com/yaklabco/blockcont/pkg/textdoc"
)

// IndentStrategy selects where continuation lines take their indentation from.
type IndentStrategy string

const (
	// IndentOpener aligns the continuation "*" one column past the "/" of
	// the comment's opening delimiter.
	IndentOpener IndentStrategy = "opener"

	// IndentLine copies the current line's indentation before its leading
	// "*" or "/*", falling back to IndentOpener when the line has neither.
	IndentLine IndentStrategy = "line"
)

// IsValid reports whether the strategy is known.
func (s IndentStrategy) IsValid() bool {
	switch s {
	case IndentOpener, IndentLine:
		return true
	default:
		return false
	}
}

// Options tune the commands.
type Options struct {
	// Indent selects the indentation strategy. Empty means IndentOpener.
	Indent IndentStrategy
}

// Range is a cursor range. Anchor is where a selection started and Head is
// where typing occurs; they are equal for a plain cursor.
type Range struct {
	Anchor int
	Head   int
}

// Cursor returns an empty range at offset.
func Cursor(offset int) Range {
	return Range{Anchor: offset, Head: offset}
}

// Empty reports whether the range is a plain cursor.
func (r Range) Empty() bool {
	return r.Anchor == r.Head
}

// From returns the lower bound of the range.
func (r Range) From() int {
	return min(r.Anchor, r.Head)
}

// To returns the upper bound of the range.
func (r Range) To() int {
	return max(r.Anchor, r.Head)
}

// State is everything a command reads from the host for one invocation.
type State struct {
	// Doc is the document snapshot.
	Doc *textdoc.Document

	// Tree classifies the document.
	Tree syntax.Tree

	// Lang reports the comment tokens active at each offset.
	Lang langdata.Provider

	// Ranges are the cursor ranges, one per cursor.
	Ranges []Range

	// Options tune the commands.
	Options Options
}
