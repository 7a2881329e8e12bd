// Package config defines core configuration types for blockcont.
// These types are pure data structures with no dependency on the loader.
package config

// LineBreak selects the line break inserted by Enter.
type LineBreak string

const (
	// LineBreakAuto uses the first line terminator found in the document.
	LineBreakAuto LineBreak = "auto"
	LineBreakLF   LineBreak = "lf"
	LineBreakCRLF LineBreak = "crlf"
)

// IsValid returns true if the line break setting is known.
func (l LineBreak) IsValid() bool {
	switch l {
	case LineBreakAuto, LineBreakLF, LineBreakCRLF:
		return true
	default:
		return false
	}
}

// Sequence returns the characters to insert, or "" for auto detection.
func (l LineBreak) Sequence() string {
	switch l {
	case LineBreakLF:
		return "\n"
	case LineBreakCRLF:
		return "\r\n"
	default:
		return ""
	}
}

// IndentStyle selects where continuation lines take their indentation from.
type IndentStyle string

const (
	// IndentOpener aligns continuation lines with the comment's opening "/*".
	IndentOpener IndentStyle = "opener"

	// IndentLine copies the indentation of the current comment line.
	IndentLine IndentStyle = "line"
)

// IsValid returns true if the indent style is known.
func (s IndentStyle) IsValid() bool {
	switch s {
	case IndentOpener, IndentLine:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backup behavior when writing files.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode"` // "sidecar" or "none"
}

// BlockConfig holds a block comment delimiter pair.
type BlockConfig struct {
	Open  string `mapstructure:"open" yaml:"open"`
	Close string `mapstructure:"close" yaml:"close"`
}

// LanguageConfig adds a language to the built-in registry or overrides one.
type LanguageConfig struct {
	// Extensions are file extensions including the leading dot.
	Extensions []string `mapstructure:"extensions" yaml:"extensions,omitempty"`

	// Line is the line comment token, if any.
	Line string `mapstructure:"line" yaml:"line,omitempty"`

	// Block is the block comment delimiter pair, if any.
	Block *BlockConfig `mapstructure:"block" yaml:"block,omitempty"`

	// Quotes lists single-line string delimiters.
	Quotes string `mapstructure:"quotes" yaml:"quotes,omitempty"`
}

// OutputFormat specifies the output format for results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for blockcont.
type Config struct {
	// LineBreak selects the line break inserted by Enter.
	LineBreak LineBreak `mapstructure:"line_break" yaml:"line_break"`

	// Indent selects the continuation indentation style.
	Indent IndentStyle `mapstructure:"indent" yaml:"indent"`

	// Backups configures backup behavior for --write.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups"`

	// Languages adds or overrides languages, keyed by language name.
	Languages map[string]LanguageConfig `mapstructure:"languages" yaml:"languages,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `mapstructure:"-" yaml:"-"`

	// Jobs specifies the number of parallel replay workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// Write applies proposed edits to files.
	Write bool `mapstructure:"-" yaml:"-"`

	// NoBackups disables backup creation when writing.
	NoBackups bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LineBreak: LineBreakAuto,
		Indent:    IndentOpener,
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    "sidecar",
		},
		Languages: make(map[string]LanguageConfig),
		Format:    FormatText,
		Jobs:      0, // 0 means use GOMAXPROCS
	}
}

// BackupsEnabled reports whether --write should leave backups behind.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups && c.Backups.Mode != "none"
}
