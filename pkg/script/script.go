// Package script reads and replays YAML keystroke scripts.
//
// A script starts from an initial document and cursor set, presses a
// sequence of keys through a session.Editor and compares the final
// document and cursors with an expectation. A file may hold several
// scripts separated by "---".
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/continuation"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("invalid script")

// Key names accepted in scripts.
const (
	KeyEnter = "enter"
	KeySlash = "slash"

	// TextPrefix marks a key that types literal text, e.g. "text:hello".
	TextPrefix = "text:"
)

// Range is a cursor range in a script.
type Range struct {
	Anchor int `yaml:"anchor"`
	Head   int `yaml:"head"`
}

// Expect holds the expected outcome of a script.
type Expect struct {
	// Content is the expected final document. Nil skips the check.
	Content *string `yaml:"content,omitempty"`

	// Cursors are the expected final cursor heads. Empty skips the check.
	Cursors []int `yaml:"cursors,omitempty"`

	// Handled lists, per key, whether the comment command must handle it.
	// Empty skips the check.
	Handled []bool `yaml:"handled,omitempty"`
}

// Script is one keystroke scenario.
type Script struct {
	// Name identifies the script in reports.
	Name string `yaml:"name"`

	// Language is the language name or alias. Empty detects from Path and Content.
	Language string `yaml:"language,omitempty"`

	// Path is an optional file name used for language detection.
	Path string `yaml:"path,omitempty"`

	// Content is the initial document.
	Content string `yaml:"content"`

	// Cursors are plain cursor offsets.
	Cursors []int `yaml:"cursors,omitempty"`

	// Ranges are cursor ranges; mutually exclusive with Cursors.
	Ranges []Range `yaml:"ranges,omitempty"`

	// Keys are pressed in order.
	Keys []string `yaml:"keys"`

	// Indent overrides the indentation strategy.
	Indent string `yaml:"indent,omitempty"`

	// LineBreak overrides the inserted line break (auto, lf or crlf).
	LineBreak string `yaml:"line_break,omitempty"`

	// Expect is the expected outcome.
	Expect Expect `yaml:"expect"`

	// File is the file the script was loaded from.
	File string `yaml:"-"`
}

// Parse decodes every script in data. The name of an unnamed script
// defaults to its position in the file.
func Parse(data []byte) ([]*Script, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var scripts []*Script
	for {
		var s Script
		err := decoder.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrInvalidScript, len(scripts)+1, err)
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("script %d", len(scripts)+1)
		}
		scripts = append(scripts, &s)
	}

	if len(scripts) == 0 {
		return nil, fmt.Errorf("%w: no scripts found", ErrInvalidScript)
	}
	return scripts, nil
}

// Load reads and validates every script in the file at path.
func Load(path string) ([]*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}

	scripts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for _, s := range scripts {
		s.File = path
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return scripts, nil
}

// Validate checks the script for inconsistencies that would make a replay
// meaningless.
func (s *Script) Validate() error {
	var problems []string

	if len(s.Keys) == 0 {
		problems = append(problems, "no keys")
	}
	if len(s.Cursors) > 0 && len(s.Ranges) > 0 {
		problems = append(problems, "cursors and ranges are mutually exclusive")
	}
	for _, offset := range s.Cursors {
		if offset < 0 || offset > len(s.Content) {
			problems = append(problems, fmt.Sprintf("cursor %d outside content", offset))
		}
	}
	for _, r := range s.Ranges {
		if min(r.Anchor, r.Head) < 0 || max(r.Anchor, r.Head) > len(s.Content) {
			problems = append(problems, fmt.Sprintf("range [%d, %d] outside content", r.Anchor, r.Head))
		}
	}
	for _, key := range s.Keys {
		if _, err := ParseKey(key); err != nil {
			problems = append(problems, err.Error())
		}
	}
	if s.Indent != "" && !config.IndentStyle(s.Indent).IsValid() {
		problems = append(problems, fmt.Sprintf("unknown indent %q", s.Indent))
	}
	if s.LineBreak != "" && !config.LineBreak(s.LineBreak).IsValid() {
		problems = append(problems, fmt.Sprintf("unknown line_break %q", s.LineBreak))
	}
	if len(s.Expect.Handled) > 0 && len(s.Expect.Handled) != len(s.Keys) {
		problems = append(problems, fmt.Sprintf("expect.handled has %d entries for %d keys",
			len(s.Expect.Handled), len(s.Keys)))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrInvalidScript, s.Name, strings.Join(problems, "; "))
	}
	return nil
}

// Step is a parsed key.
type Step struct {
	// Key is the editor key for bound keys, empty for typed text.
	Key string

	// Text is the literal text for typed keys.
	Text string
}

// ParseKey converts a script key to a step.
func ParseKey(key string) (Step, error) {
	switch {
	case key == KeyEnter:
		return Step{Key: continuation.KeyEnter}, nil
	case key == KeySlash, key == continuation.KeySlash:
		return Step{Key: continuation.KeySlash}, nil
	case strings.HasPrefix(key, TextPrefix):
		text := strings.TrimPrefix(key, TextPrefix)
		if text == "" {
			return Step{}, fmt.Errorf("empty text key %q", key)
		}
		return Step{Text: text}, nil
	default:
		return Step{}, fmt.Errorf("unknown key %q", key)
	}
}

// String returns the script form of the step.
func (s Step) String() string {
	switch s.Key {
	case "":
		return TextPrefix + s.Text
	case continuation.KeyEnter:
		return KeyEnter
	default:
		return KeySlash
	}
}
