package continuation

import "github.com/yaklabco/blockcont/pkg/fix"

// Reason explains why a command fell through.
type Reason string

// Fall-through reasons.
const (
	// ReasonNone is reported by handled results.
	ReasonNone Reason = ""

	// ReasonNoRanges means the command was invoked without cursor ranges.
	ReasonNoRanges Reason = "no-ranges"

	// ReasonSelection means a range is not collapsed to a single point.
	ReasonSelection Reason = "selection"

	// ReasonLanguage means no "/*" "*/" block comment syntax is active.
	ReasonLanguage Reason = "language"

	// ReasonNotComment means the cursor is not inside a block comment.
	ReasonNotComment Reason = "not-comment"

	// ReasonInOpener means the cursor sits between the "/" and "*" of the opener.
	ReasonInOpener Reason = "in-opener"

	// ReasonAtClose means the cursor sits at or inside the closing "*/".
	ReasonAtClose Reason = "at-close"

	// ReasonBadRegion means the classified region is inconsistent with the document.
	ReasonBadRegion Reason = "bad-region"

	// ReasonTrailingText means text follows the cursor where none is allowed.
	ReasonTrailingText Reason = "trailing-text"

	// ReasonAlreadyClosed means the current line already contains "*/".
	ReasonAlreadyClosed Reason = "already-closed"

	// ReasonNotBareLine means the current line is not a bare "* " continuation.
	ReasonNotBareLine Reason = "not-bare-line"

	// ReasonConflict means the edits of several ranges overlap.
	ReasonConflict Reason = "conflict"
)

// Edit is a proposed single-range replacement.
type Edit struct {
	// From is the start of the replaced range (inclusive).
	From int

	// To is the end of the replaced range (exclusive).
	To int

	// Insert is the replacement text.
	Insert string

	// Cursor is the cursor offset after the whole transaction is applied.
	Cursor int
}

// Delta returns the change in document length caused by the edit.
func (e Edit) Delta() int {
	return len(e.Insert) - (e.To - e.From)
}

// TextEdit converts the edit for application with the fix package.
func (e Edit) TextEdit() fix.TextEdit {
	return fix.TextEdit{StartOffset: e.From, EndOffset: e.To, NewText: e.Insert}
}

// Result is the outcome of a command: either Handled with one edit per
// cursor range, or NotHandled, in which case the key should fall through
// to its default behavior.
type Result struct {
	// Handled is true when Edits should be committed in one transaction.
	Handled bool

	// Edits holds one edit per range, in document order.
	Edits []Edit

	// Reason explains a NotHandled result.
	Reason Reason
}

// Handled returns a handled result.
func Handled(edits []Edit) Result {
	return Result{Handled: true, Edits: edits}
}

// NotHandled returns a fall-through result.
func NotHandled(reason Reason) Result {
	return Result{Reason: reason}
}

// TextEdits converts all edits for application with the fix package.
func (r Result) TextEdits() []fix.TextEdit {
	edits := make([]fix.TextEdit, len(r.Edits))
	for i, edit := range r.Edits {
		edits[i] = edit.TextEdit()
	}
	return edits
}

// Cursors returns the cursor offsets after the transaction.
func (r Result) Cursors() []int {
	cursors := make([]int, len(r.Edits))
	for i, edit := range r.Edits {
		cursors[i] = edit.Cursor
	}
	return cursors
}
