package textdoc_test

import (
	"testing"

	"github.com/yaklabco/blockcont/pkg/textdoc"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []textdoc.LineInfo
	}{
		{
			name:    "empty content",
			content: "",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 0},
			},
		},
		{
			name:    "single line no newline",
			content: "hello",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 5},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "multiple lines CRLF",
			content: "line1\r\nline2\r\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 12, EndOffset: 14},
				{StartOffset: 14, NewlineStart: 14, EndOffset: 14},
			},
		},
		{
			name:    "lone carriage return at line start",
			content: "\n\r\n",
			expected: []textdoc.LineInfo{
				{StartOffset: 0, NewlineStart: 0, EndOffset: 1},
				{StartOffset: 1, NewlineStart: 1, EndOffset: 3},
				{StartOffset: 3, NewlineStart: 3, EndOffset: 3},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := textdoc.BuildLines(testCase.content)
			if len(got) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d: %+v", len(testCase.expected), len(got), got)
			}
			for i := range got {
				if got[i] != testCase.expected[i] {
					t.Errorf("line %d: expected %+v, got %+v", i, testCase.expected[i], got[i])
				}
			}
		})
	}
}

func TestLineAt(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("/* abc\n * def\n */")

	tests := []struct {
		name     string
		offset   int
		wantOK   bool
		wantLine textdoc.Line
	}{
		{"start of document", 0, true, textdoc.Line{Number: 1, From: 0, To: 6, Text: "/* abc"}},
		{"on terminator", 6, true, textdoc.Line{Number: 1, From: 0, To: 6, Text: "/* abc"}},
		{"start of second line", 7, true, textdoc.Line{Number: 2, From: 7, To: 13, Text: " * def"}},
		{"end of document", 17, true, textdoc.Line{Number: 3, From: 14, To: 17, Text: " */"}},
		{"negative", -1, false, textdoc.Line{}},
		{"past end", 18, false, textdoc.Line{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := doc.LineAt(testCase.offset)
			if ok != testCase.wantOK {
				t.Fatalf("expected ok=%v, got %v", testCase.wantOK, ok)
			}
			if got != testCase.wantLine {
				t.Errorf("expected %+v, got %+v", testCase.wantLine, got)
			}
		})
	}
}

func TestLineAtTrailingNewline(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("abc\n")

	line, ok := doc.LineAt(4)
	if !ok {
		t.Fatal("expected offset at end of document to resolve")
	}
	if line.Number != 2 || line.From != 4 || line.Text != "" {
		t.Errorf("unexpected line %+v", line)
	}
}

func TestOffsetAndPosition(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("ab\r\ncd")

	offset, ok := doc.Offset(2, 3)
	if !ok || offset != 6 {
		t.Errorf("Offset(2, 3) = %d, %v; want 6, true", offset, ok)
	}

	if _, ok := doc.Offset(1, 4); ok {
		t.Error("Offset(1, 4) should not point into the terminator")
	}

	line, col, ok := doc.Position(5)
	if !ok || line != 2 || col != 2 {
		t.Errorf("Position(5) = %d:%d, %v; want 2:2, true", line, col, ok)
	}
}

func TestLineBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		opts    []textdoc.Option
		want    string
	}{
		{"default", "abc", nil, textdoc.LF},
		{"lf", "a\nb", nil, textdoc.LF},
		{"crlf", "a\r\nb\nc", nil, textdoc.CRLF},
		{"forced", "a\nb", []textdoc.Option{textdoc.WithLineBreak(textdoc.CRLF)}, textdoc.CRLF},
		{"empty override keeps detection", "a\r\n", []textdoc.Option{textdoc.WithLineBreak("")}, textdoc.CRLF},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := textdoc.New(testCase.content, testCase.opts...)
			if doc.LineBreak() != testCase.want {
				t.Errorf("expected %q, got %q", testCase.want, doc.LineBreak())
			}
		})
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	doc := textdoc.New("/**/")

	if got := doc.Slice(2, 4); got != "*/" {
		t.Errorf("Slice(2, 4) = %q", got)
	}
	if got := doc.Slice(-3, 1); got != "/" {
		t.Errorf("Slice(-3, 1) = %q", got)
	}
	if got := doc.Slice(3, 10); got != "/" {
		t.Errorf("Slice(3, 10) = %q", got)
	}
	if got := doc.Slice(3, 2); got != "" {
		t.Errorf("Slice(3, 2) = %q", got)
	}
}
