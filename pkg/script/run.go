package script

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/session"
)

// Options control replay.
type Options struct {
	// Registry resolves languages. Nil uses langdata.Default().
	Registry *langdata.Registry

	// Indent is the default indentation strategy.
	Indent continuation.IndentStrategy

	// LineBreak is the default line break setting.
	LineBreak config.LineBreak

	// Logger receives debug output. Nil uses the default logger.
	Logger *log.Logger
}

// StepResult records the effect of one key.
type StepResult struct {
	Key     string              `json:"key"`
	Handled bool                `json:"handled"`
	Reason  continuation.Reason `json:"reason,omitempty"`
	Cursors []int               `json:"cursors"`
}

// Result is the outcome of replaying one script.
type Result struct {
	Name     string       `json:"name"`
	File     string       `json:"file,omitempty"`
	Language string       `json:"language,omitempty"`
	Initial  string       `json:"initial"`
	Content  string       `json:"content"`
	Cursors  []int        `json:"cursors"`
	Steps    []StepResult `json:"steps"`
	Failures []string     `json:"failures,omitempty"`
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run replays the script and checks its expectations. A non-nil error
// means the script could not be replayed at all; unmet expectations are
// reported as Failures.
func Run(ctx context.Context, s *Script, opts Options) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	registry := opts.Registry
	if registry == nil {
		registry = langdata.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default()
	}

	var lang *langdata.Language
	if s.Language != "" {
		resolved, ok := registry.ResolveName(s.Language)
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown language %q", ErrInvalidScript, s.Name, s.Language)
		}
		lang = resolved
	} else if resolved, ok := registry.Resolve("", s.Path, []byte(s.Content)); ok {
		lang = resolved
	}

	editor := session.New(s.Content,
		session.WithLanguage(lang),
		session.WithRegistry(registry),
		session.WithLineBreak(lineBreak(s, opts).Sequence()),
		session.WithIndent(indent(s, opts)),
		session.WithLogger(logger),
	)
	if err := editor.SetCursors(s.ranges()...); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScript, s.Name, err)
	}

	result := &Result{Name: s.Name, File: s.File, Initial: s.Content}
	if lang != nil {
		result.Language = lang.Name
	}

	for _, key := range s.Keys {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("replay %s: %w", s.Name, err)
		}

		step, err := ParseKey(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidScript, s.Name, err)
		}

		stepResult := StepResult{Key: step.String()}
		if step.Key == "" {
			err = editor.Type(step.Text)
		} else {
			var outcome session.Outcome
			outcome, err = editor.Press(step.Key)
			stepResult.Handled = outcome.Handled
			stepResult.Reason = outcome.Reason
		}
		if err != nil {
			return nil, fmt.Errorf("replay %s: %w", s.Name, err)
		}

		stepResult.Cursors = editor.Cursors()
		result.Steps = append(result.Steps, stepResult)
	}

	result.Content = editor.Text()
	result.Cursors = editor.Cursors()
	result.Failures = s.check(result)

	logger.Debug("replayed script",
		logging.FieldScript, s.Name, logging.FieldPath, s.File,
		logging.FieldLanguage, result.Language, logging.FieldPassed, result.Passed())

	return result, nil
}

func (s *Script) ranges() []continuation.Range {
	switch {
	case len(s.Ranges) > 0:
		ranges := make([]continuation.Range, len(s.Ranges))
		for i, r := range s.Ranges {
			ranges[i] = continuation.Range{Anchor: r.Anchor, Head: r.Head}
		}
		return ranges
	case len(s.Cursors) > 0:
		ranges := make([]continuation.Range, len(s.Cursors))
		for i, offset := range s.Cursors {
			ranges[i] = continuation.Cursor(offset)
		}
		return ranges
	default:
		return []continuation.Range{continuation.Cursor(len(s.Content))}
	}
}

func (s *Script) check(result *Result) []string {
	var failures []string

	if s.Expect.Content != nil && *s.Expect.Content != result.Content {
		failures = append(failures, fmt.Sprintf("content: want %q, got %q", *s.Expect.Content, result.Content))
	}
	if len(s.Expect.Cursors) > 0 && !slices.Equal(s.Expect.Cursors, result.Cursors) {
		failures = append(failures, fmt.Sprintf("cursors: want %v, got %v", s.Expect.Cursors, result.Cursors))
	}
	for i, want := range s.Expect.Handled {
		if i >= len(result.Steps) {
			break
		}
		if got := result.Steps[i]; got.Handled != want {
			failures = append(failures, fmt.Sprintf("key %d (%s): want handled=%t, got %t (%s)",
				i+1, got.Key, want, got.Handled, got.Reason))
		}
	}

	return failures
}

func lineBreak(s *Script, opts Options) config.LineBreak {
	if s.LineBreak != "" {
		return config.LineBreak(s.LineBreak)
	}
	return opts.LineBreak
}

func indent(s *Script, opts Options) continuation.IndentStrategy {
	if s.Indent != "" {
		return continuation.IndentStrategy(s.Indent)
	}
	return opts.Indent
}
