package textdoc

import "sort"

// BuildLines constructs line metadata from content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
// The result always has at least one line, so an empty document has a
// single empty line at offset 0.
func BuildLines(content string) []LineInfo {
	var lines []LineInfo
	lineStart := 0

	for idx := range len(content) {
		if content[idx] != '\n' {
			continue
		}

		// Check for CRLF.
		newlineStart := idx
		if idx > lineStart && content[idx-1] == '\r' {
			newlineStart = idx - 1
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// Last line, possibly empty when content ends with a terminator.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(content),
		EndOffset:    len(content),
	})

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineAt returns the line containing offset.
// An offset sitting on a line terminator belongs to the line it ends.
// Returns false if the offset is outside [0, Len()].
func (d *Document) LineAt(offset int) (Line, bool) {
	if offset < 0 || offset > len(d.content) {
		return Line{}, false
	}

	// Binary search for the first line whose terminator ends after offset.
	idx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].EndOffset > offset
	})
	if idx >= len(d.lines) {
		idx = len(d.lines) - 1
	}

	return d.line(idx), true
}

// Line returns the 1-based line number n.
func (d *Document) Line(n int) (Line, bool) {
	if n < 1 || n > len(d.lines) {
		return Line{}, false
	}
	return d.line(n - 1), true
}

// Offset converts 1-based line and column numbers to a byte offset.
// Column may point one past the last character of the line.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.lines) || col < 1 {
		return 0, false
	}

	info := d.lines[line-1]
	offset := info.StartOffset + col - 1
	if offset > info.NewlineStart {
		return 0, false
	}
	return offset, true
}

// Position converts a byte offset to 1-based line and column numbers.
func (d *Document) Position(offset int) (int, int, bool) {
	line, ok := d.LineAt(offset)
	if !ok {
		return 0, 0, false
	}
	return line.Number, offset - line.From + 1, true
}

func (d *Document) line(idx int) Line {
	info := d.lines[idx]
	return Line{
		Number: idx + 1,
		From:   info.StartOffset,
		To:     info.NewlineStart,
		Text:   d.content[info.StartOffset:info.NewlineStart],
	}
}
