// Package reporter renders replay results and key proposals.
package reporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/blockcont/pkg/runner"
)

// Reporter formats and writes results.
type Reporter interface {
	// ReportReplay writes the results of a replay run.
	// It returns the number of failed scripts and errored files.
	ReportReplay(ctx context.Context, result *runner.Result) (int, error)

	// ReportProposal writes the outcome of one key press.
	ReportProposal(ctx context.Context, proposal *Proposal) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func failures(result *runner.Result) int {
	if result == nil {
		return 0
	}
	return result.Stats.ScriptsFailed + result.Stats.FilesErrored
}

// displayPath makes path relative to workDir, or to the current directory
// when workDir is empty. Paths needing more than two "../" keep their base
// name only.
func displayPath(path, workDir string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return filepath.Base(path)
		}
		workDir = cwd
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
