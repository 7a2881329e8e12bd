// Package textdoc provides immutable document snapshots with a line index.
package textdoc

import "strings"

// Line break sequences.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// LineInfo contains byte offsets for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// NewlineStart is the byte index where the line terminator begins.
	// Equal to EndOffset for a final line without a terminator.
	NewlineStart int

	// EndOffset is the byte index one past the line terminator.
	EndOffset int
}

// Line is a resolved line of a document.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// From is the offset of the first character of the line.
	From int

	// To is the offset of the end of the line, excluding the terminator.
	To int

	// Text is the line content without the terminator.
	Text string
}

// Len returns the length of the line text in bytes.
func (l Line) Len() int {
	return l.To - l.From
}

// Document is an immutable snapshot of document text.
// Offsets are byte offsets and stay valid for the lifetime of the snapshot.
type Document struct {
	content   string
	lines     []LineInfo
	lineBreak string
}

// Option configures a Document.
type Option func(*Document)

// WithLineBreak forces the line break sequence reported by LineBreak.
// An empty value keeps the detected one.
func WithLineBreak(lineBreak string) Option {
	return func(d *Document) {
		if lineBreak != "" {
			d.lineBreak = lineBreak
		}
	}
}

// New creates a snapshot of content.
func New(content string, opts ...Option) *Document {
	doc := &Document{
		content:   content,
		lines:     BuildLines(content),
		lineBreak: DetectLineBreak(content),
	}
	for _, opt := range opts {
		opt(doc)
	}
	return doc
}

// String returns the full document content.
func (d *Document) String() string {
	return d.content
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.content)
}

// LineBreak returns the line break sequence generated insertions should use.
func (d *Document) LineBreak() string {
	return d.lineBreak
}

// Slice returns the text in [from, to), clamped to the document bounds.
func (d *Document) Slice(from, to int) string {
	from = max(from, 0)
	to = min(to, len(d.content))
	if from >= to {
		return ""
	}
	return d.content[from:to]
}

// DetectLineBreak returns the first line terminator found in content,
// defaulting to LF.
func DetectLineBreak(content string) string {
	idx := strings.IndexByte(content, '\n')
	if idx > 0 && content[idx-1] == '\r' {
		return CRLF
	}
	return LF
}
