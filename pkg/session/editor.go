// Package session provides an editable text buffer that routes keystrokes
// through the block comment commands.
//
// An Editor holds a document and its cursors. Press consults the binding for
// a key first; when the command is not handled, the key falls through to the
// default behavior of inserting its text at every cursor.
package session

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/fix"
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/markdown"
	"github.com/yaklabco/blockcont/pkg/syntax"
	"github.com/yaklabco/blockcont/pkg/textdoc"
)

// Editor is a text buffer with one or more cursors.
// An Editor is not safe for concurrent use.
type Editor struct {
	content   string
	ranges    []continuation.Range
	language  *langdata.Language
	registry  *langdata.Registry
	analyzer  *markdown.Analyzer
	lineBreak string
	options   continuation.Options
	keymap    map[string]continuation.Command
	logger    *log.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithLanguage sets the document language. Without one, no key is handled
// by the comment commands.
func WithLanguage(lang *langdata.Language) Option {
	return func(e *Editor) {
		e.language = lang
	}
}

// WithRegistry sets the registry used to resolve fenced code languages in
// Markdown documents.
func WithRegistry(registry *langdata.Registry) Option {
	return func(e *Editor) {
		e.registry = registry
	}
}

// WithLineBreak forces the line break inserted by Enter. An empty value
// uses the one detected from the document.
func WithLineBreak(lineBreak string) Option {
	return func(e *Editor) {
		e.lineBreak = lineBreak
	}
}

// WithIndent selects the continuation indentation strategy.
func WithIndent(indent continuation.IndentStrategy) Option {
	return func(e *Editor) {
		e.options.Indent = indent
	}
}

// WithLogger sets the logger used to report fall-through decisions.
func WithLogger(logger *log.Logger) Option {
	return func(e *Editor) {
		e.logger = logger
	}
}

// Outcome describes the effect of one keystroke.
type Outcome struct {
	// Key is the key that was pressed.
	Key string

	// Handled is true when the comment command produced the edit.
	Handled bool

	// Reason explains why the command fell through.
	Reason continuation.Reason

	// Edits are the edits committed for the key, in document order.
	Edits []fix.TextEdit
}

// New creates an editor for content with a single cursor at its end.
func New(content string, opts ...Option) *Editor {
	editor := &Editor{
		content: content,
		ranges:  []continuation.Range{continuation.Cursor(len(content))},
		keymap:  make(map[string]continuation.Command),
	}
	for _, opt := range opts {
		opt(editor)
	}

	if editor.logger == nil {
		editor.logger = logging.Default()
	}
	if editor.language != nil && editor.language.Name == langdata.NameMarkdown {
		editor.analyzer = markdown.NewAnalyzer(editor.registry)
	}
	for _, binding := range continuation.Keymap() {
		editor.keymap[binding.Key] = binding.Run
	}

	return editor
}

// Text returns the current document content.
func (e *Editor) Text() string {
	return e.content
}

// Language returns the document language, or nil.
func (e *Editor) Language() *langdata.Language {
	return e.language
}

// Cursors returns the head offset of every range in document order.
func (e *Editor) Cursors() []int {
	heads := make([]int, len(e.ranges))
	for i, r := range e.ranges {
		heads[i] = r.Head
	}
	return heads
}

// Ranges returns a copy of the cursor ranges in document order.
func (e *Editor) Ranges() []continuation.Range {
	return slices.Clone(e.ranges)
}

// SetCursors replaces the cursor ranges. Duplicate ranges are merged.
func (e *Editor) SetCursors(ranges ...continuation.Range) error {
	if len(ranges) == 0 {
		return ErrNoCursors
	}

	for _, r := range ranges {
		if r.From() < 0 || r.To() > len(e.content) {
			return fmt.Errorf("%w: [%d, %d] in document of length %d",
				ErrOutOfRange, r.Anchor, r.Head, len(e.content))
		}
	}

	sorted := slices.Clone(ranges)
	slices.SortStableFunc(sorted, func(a, b continuation.Range) int {
		if a.From() != b.From() {
			return a.From() - b.From()
		}
		return a.To() - b.To()
	})
	sorted = slices.Compact(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i].From() < sorted[i-1].To() {
			return fmt.Errorf("%w: [%d, %d] and [%d, %d]", ErrOverlappingRanges,
				sorted[i-1].From(), sorted[i-1].To(), sorted[i].From(), sorted[i].To())
		}
	}

	e.ranges = sorted
	return nil
}

// State returns the snapshot the comment commands evaluate.
func (e *Editor) State() continuation.State {
	state := continuation.State{
		Doc:     textdoc.New(e.content, textdoc.WithLineBreak(e.lineBreak)),
		Ranges:  e.Ranges(),
		Options: e.options,
	}

	switch {
	case e.analyzer != nil:
		doc := e.analyzer.Analyze([]byte(e.content))
		state.Tree = doc.Tree()
		state.Lang = doc
	case e.language != nil:
		state.Tree = syntax.Scan(e.content, e.language.Dialect())
		state.Lang = langdata.For(e.language)
	}

	return state
}

// Press handles a key. The bound command runs first; if it is not
// handled, the key's text is inserted at every cursor.
func (e *Editor) Press(key string) (Outcome, error) {
	command, ok := e.keymap[key]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	state := e.State()
	result := command(state)
	outcome := Outcome{Key: key, Handled: result.Handled, Reason: result.Reason}

	if result.Handled {
		edits := result.TextEdits()
		content, err := fix.Apply(e.content, edits)
		if err != nil {
			return outcome, fmt.Errorf("apply %s: %w", key, err)
		}
		e.content = content
		e.ranges = carets(result.Cursors())
		outcome.Edits = edits

		e.logger.Debug("comment command handled key",
			logging.FieldKey, key, logging.FieldCursors, result.Cursors())
		return outcome, nil
	}

	e.logger.Debug("key fell through",
		logging.FieldKey, key, logging.FieldReason, result.Reason)

	text := "/"
	if key == continuation.KeyEnter {
		text = state.Doc.LineBreak()
	}

	edits, err := e.insert(text)
	if err != nil {
		return outcome, fmt.Errorf("insert %s: %w", key, err)
	}
	outcome.Edits = edits

	return outcome, nil
}

// Type inserts text at every cursor, replacing selections, without
// consulting the comment commands.
func (e *Editor) Type(text string) error {
	if text == "" {
		return nil
	}
	if _, err := e.insert(text); err != nil {
		return fmt.Errorf("type: %w", err)
	}
	return nil
}

func (e *Editor) insert(text string) ([]fix.TextEdit, error) {
	builder := fix.NewEditBuilder()
	for _, r := range e.ranges {
		builder.ReplaceRange(r.From(), r.To(), text)
	}

	prepared, err := fix.PrepareEdits(builder.Edits, len(e.content))
	if err != nil {
		return nil, err
	}

	cursors := make([]int, len(prepared))
	shift := 0
	for i, edit := range prepared {
		cursors[i] = edit.StartOffset + shift + len(edit.NewText)
		shift += edit.Delta()
	}

	e.content = fix.ApplyEdits(e.content, prepared)
	e.ranges = carets(cursors)

	return prepared, nil
}

func carets(offsets []int) []continuation.Range {
	ranges := make([]continuation.Range, 0, len(offsets))
	for _, offset := range offsets {
		ranges = append(ranges, continuation.Cursor(offset))
	}
	return slices.Compact(ranges)
}
