// Package langdata provides per-language comment delimiter data and the
// lookup of that data at document positions.
package langdata

// Standard C-style block comment delimiters.
const (
	BlockOpenC  = "/*"
	BlockCloseC = "*/"
)

// BlockTokens holds the delimiters of a block comment.
type BlockTokens struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// CommentTokens describes the comment syntax of a language.
// An empty Line or a nil Block means the language has no such comment.
type CommentTokens struct {
	Line  string       `yaml:"line,omitempty"`
	Block *BlockTokens `yaml:"block,omitempty"`
}

// HasCStyleBlock reports whether the block delimiters are exactly "/*" and "*/".
func (c CommentTokens) HasCStyleBlock() bool {
	return c.Block != nil && c.Block.Open == BlockOpenC && c.Block.Close == BlockCloseC
}

// Provider exposes the comment tokens active at document offsets.
type Provider interface {
	// LanguageDataAt returns the comment tokens of every language active
	// at offset, innermost first. It returns nil when none apply.
	LanguageDataAt(offset int) []CommentTokens
}

// Compile-time interface check.
var _ Provider = Fixed{}

// Fixed is a Provider returning the same tokens at every offset.
type Fixed []CommentTokens

// LanguageDataAt implements Provider.
func (f Fixed) LanguageDataAt(int) []CommentTokens {
	return f
}

// For returns a Provider for a single language, or an empty one for nil.
func For(lang *Language) Fixed {
	if lang == nil {
		return nil
	}
	return Fixed{lang.Comments}
}
