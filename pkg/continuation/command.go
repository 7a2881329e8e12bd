package continuation

import (
	"sort"

	"github.com/yaklabco/blockcont/pkg/fix"
)

// Key names of the conventional bindings.
const (
	KeyEnter = "Enter"
	KeySlash = "/"
)

// Command evaluates a keystroke against the host state.
type Command func(State) Result

// Binding associates a key with a command.
type Binding struct {
	Key string
	Run Command
}

// Keymap returns the conventional bindings: Enter continues a comment and
// "/" closes one. Hosts should give them precedence over their defaults and
// fall back to the defaults when a command is not handled.
func Keymap() []Binding {
	return []Binding{
		{Key: KeyEnter, Run: ContinueComment},
		{Key: KeySlash, Run: CloseComment},
	}
}

// ContinueComment is the Enter command. Every range must be a cursor inside
// a block comment, away from its closing "*/"; otherwise the whole command
// falls through.
func ContinueComment(state State) Result {
	return run(state, ContinueAt)
}

// CloseComment is the "/" command. Every range must be a cursor at the end
// of a bare "* " continuation line; otherwise the whole command falls through.
func CloseComment(state State) Result {
	return run(state, CloseAt)
}

type engine func(State, int) (Edit, Reason)

// run evaluates each range independently. Any range falling through makes
// the whole command fall through.
func run(state State, eval engine) Result {
	if len(state.Ranges) == 0 {
		return NotHandled(ReasonNoRanges)
	}
	if state.Doc == nil {
		return NotHandled(ReasonBadRegion)
	}

	edits := make([]Edit, 0, len(state.Ranges))
	for _, r := range state.Ranges {
		if !r.Empty() {
			return NotHandled(ReasonSelection)
		}
		if !Eligible(state.Lang, r) {
			return NotHandled(ReasonLanguage)
		}

		edit, reason := eval(state, r.From())
		if reason != ReasonNone {
			return NotHandled(reason)
		}
		edits = append(edits, edit)
	}

	return combine(edits)
}

// combine orders the edits, rejects overlaps and maps each cursor into the
// document produced by applying all of them.
func combine(edits []Edit) Result {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].From != edits[j].From {
			return edits[i].From < edits[j].From
		}
		return edits[i].To < edits[j].To
	})

	textEdits := make([]fix.TextEdit, len(edits))
	for i, edit := range edits {
		textEdits[i] = edit.TextEdit()
	}
	if err := fix.DetectConflicts(textEdits); err != nil {
		return NotHandled(ReasonConflict)
	}

	shift := 0
	for i := range edits {
		edits[i].Cursor += shift
		shift += edits[i].Delta()
	}

	return Handled(edits)
}
