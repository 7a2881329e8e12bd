package syntax

import "strings"

// Dialect describes the lexical conventions the scanner recognises.
// Empty fields disable the corresponding construct.
type Dialect struct {
	// LineComment starts a comment running to the end of the line, e.g. "//".
	LineComment string

	// BlockOpen and BlockClose delimit block comments, e.g. "/*" and "*/".
	// Block comments do not nest.
	BlockOpen  string
	BlockClose string

	// Quotes lists single-line string delimiters honouring backslash escapes.
	Quotes string

	// MultilineQuotes lists string delimiters that may span lines and
	// honour backslash escapes, e.g. JavaScript template literals.
	MultilineQuotes string

	// RawQuotes lists string delimiters that may span lines and have no
	// escapes, e.g. Go raw strings.
	RawQuotes string
}

// CFamily is the dialect shared by C, C++, Java, C#, CSS and similar languages.
//
//nolint:gochecknoglobals // Read-only dialect preset
var CFamily = Dialect{
	LineComment: "//",
	BlockOpen:   "/*",
	BlockClose:  "*/",
	Quotes:      `"'`,
}

// Scan classifies src into comment and string nodes.
//
// Comment openers inside strings and string delimiters inside comments are
// ignored. An unterminated block comment runs to the end of src; an
// unterminated single-line string ends at the end of its line.
func Scan(src string, dialect Dialect) *Flat {
	s := scanner{src: src, dialect: dialect}
	s.run()
	return NewFlat(len(src), s.nodes)
}

type scanner struct {
	src     string
	dialect Dialect
	nodes   []Node
}

func (s *scanner) run() {
	pos := 0
	for pos < len(s.src) {
		switch {
		case s.at(pos, s.dialect.BlockOpen):
			pos = s.blockComment(pos)
		case s.at(pos, s.dialect.LineComment):
			pos = s.lineComment(pos)
		case strings.IndexByte(s.dialect.Quotes, s.src[pos]) >= 0:
			pos = s.quoted(pos, true, false)
		case strings.IndexByte(s.dialect.MultilineQuotes, s.src[pos]) >= 0:
			pos = s.quoted(pos, true, true)
		case strings.IndexByte(s.dialect.RawQuotes, s.src[pos]) >= 0:
			pos = s.quoted(pos, false, true)
		default:
			pos++
		}
	}
}

// at reports whether token starts at pos. Empty tokens never match.
func (s *scanner) at(pos int, token string) bool {
	return token != "" && strings.HasPrefix(s.src[pos:], token)
}

func (s *scanner) blockComment(start int) int {
	body := start + len(s.dialect.BlockOpen)
	end := len(s.src)
	if s.dialect.BlockClose != "" {
		if idx := strings.Index(s.src[body:], s.dialect.BlockClose); idx >= 0 {
			end = body + idx + len(s.dialect.BlockClose)
		}
	}
	s.nodes = append(s.nodes, Node{Name: BlockComment, From: start, To: end})
	return end
}

func (s *scanner) lineComment(start int) int {
	end := len(s.src)
	if idx := strings.IndexAny(s.src[start:], "\r\n"); idx >= 0 {
		end = start + idx
	}
	s.nodes = append(s.nodes, Node{Name: LineComment, From: start, To: end})
	return end
}

func (s *scanner) quoted(start int, escapes, multiline bool) int {
	quote := s.src[start]
	pos := start + 1
	for pos < len(s.src) {
		char := s.src[pos]
		switch {
		case escapes && char == '\\':
			pos += 2
			continue
		case char == quote:
			pos++
			s.nodes = append(s.nodes, Node{Name: String, From: start, To: pos})
			return pos
		case !multiline && (char == '\n' || char == '\r'):
			s.nodes = append(s.nodes, Node{Name: String, From: start, To: pos})
			return pos
		}
		pos++
	}
	pos = min(pos, len(s.src))
	s.nodes = append(s.nodes, Node{Name: String, From: start, To: pos})
	return pos
}
