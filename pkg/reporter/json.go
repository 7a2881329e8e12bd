package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/runner"
	"github.com/yaklabco/blockcont/pkg/script"
)

// jsonVersion is the version of the JSON output schema.
const jsonVersion = "1.0.0"

// JSONReplayOutput is the top-level JSON structure for replay runs.
type JSONReplayOutput struct {
	Version string            `json:"version"`
	Files   []JSONReplayFile  `json:"files"`
	Summary JSONReplaySummary `json:"summary"`
}

// JSONReplayFile represents one script file.
type JSONReplayFile struct {
	Path    string           `json:"path"`
	Scripts []*script.Result `json:"scripts"`
	Error   string           `json:"error,omitempty"`
}

// JSONReplaySummary contains aggregate statistics.
type JSONReplaySummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesErrored    int `json:"filesErrored"`
	ScriptsRun      int `json:"scriptsRun"`
	ScriptsPassed   int `json:"scriptsPassed"`
	ScriptsFailed   int `json:"scriptsFailed"`
}

// JSONProposal is the JSON structure for a single key press.
type JSONProposal struct {
	Version    string     `json:"version"`
	Path       string     `json:"path"`
	Key        string     `json:"key"`
	Offset     int        `json:"offset"`
	Line       int        `json:"line"`
	Column     int        `json:"column"`
	Language   string     `json:"language,omitempty"`
	Handled    bool       `json:"handled"`
	Reason     string     `json:"reason,omitempty"`
	Edits      []JSONEdit `json:"edits"`
	Written    bool       `json:"written,omitempty"`
	BackupPath string     `json:"backupPath,omitempty"`
}

// JSONEdit represents a proposed edit.
type JSONEdit struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
	Cursor      int    `json:"cursor"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportReplay implements Reporter.
func (r *JSONReporter) ReportReplay(_ context.Context, result *runner.Result) (int, error) {
	output := JSONReplayOutput{Version: jsonVersion, Files: make([]JSONReplayFile, 0)}

	if result != nil {
		for _, file := range result.Files {
			entry := JSONReplayFile{
				Path:    displayPath(file.Path, r.opts.WorkingDir),
				Scripts: file.Results,
			}
			if entry.Scripts == nil {
				entry.Scripts = make([]*script.Result, 0)
			}
			if file.Error != nil {
				entry.Error = file.Error.Error()
			}
			output.Files = append(output.Files, entry)
		}
		output.Summary = JSONReplaySummary{
			FilesDiscovered: result.Stats.FilesDiscovered,
			FilesErrored:    result.Stats.FilesErrored,
			ScriptsRun:      result.Stats.ScriptsRun,
			ScriptsPassed:   result.Stats.ScriptsPassed,
			ScriptsFailed:   result.Stats.ScriptsFailed,
		}
	}

	if err := r.encode(output); err != nil {
		return 0, err
	}
	return failures(result), nil
}

// ReportProposal implements Reporter.
func (r *JSONReporter) ReportProposal(_ context.Context, proposal *Proposal) error {
	return r.encode(JSONProposal{
		Version:    jsonVersion,
		Path:       displayPath(proposal.Path, r.opts.WorkingDir),
		Key:        proposal.Key,
		Offset:     proposal.Offset,
		Line:       proposal.Line,
		Column:     proposal.Column,
		Language:   proposal.Language,
		Handled:    proposal.Result.Handled,
		Reason:     string(proposal.Result.Reason),
		Edits:      jsonEdits(proposal.Result.Edits),
		Written:    proposal.Written,
		BackupPath: proposal.BackupPath,
	})
}

func jsonEdits(edits []continuation.Edit) []JSONEdit {
	out := make([]JSONEdit, 0, len(edits))
	for _, edit := range edits {
		out = append(out, JSONEdit{
			StartOffset: edit.From,
			EndOffset:   edit.To,
			NewText:     edit.Insert,
			Cursor:      edit.Cursor,
		})
	}
	return out
}

func (r *JSONReporter) encode(v any) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
