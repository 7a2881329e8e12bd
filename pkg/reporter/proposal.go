package reporter

import (
	"github.com/yaklabco/blockcont/pkg/continuation"
)

// Proposal is the outcome of one key pressed at one position of a file.
type Proposal struct {
	// Path is the file the key was pressed in.
	Path string

	// Key is the key name ("enter" or "close").
	Key string

	// Offset is the byte offset of the cursor.
	Offset int

	// Line and Column are the 1-based cursor position.
	Line   int
	Column int

	// Language is the resolved language name, empty when unknown.
	Language string

	// Source is the text of the cursor's line.
	Source string

	// Result is the command result.
	Result continuation.Result

	// Original and Modified are the file content before and after the edits.
	// Modified equals Original when the key falls through.
	Original string
	Modified string

	// Written reports whether Modified was saved.
	Written bool

	// BackupPath is the backup written before saving, if any.
	BackupPath string
}
