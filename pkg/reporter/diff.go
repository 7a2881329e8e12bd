package reporter

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/yaklabco/blockcont/internal/ui/pretty"
	"github.com/yaklabco/blockcont/pkg/fix"
	"github.com/yaklabco/blockcont/pkg/runner"
)

// DiffReporter formats results as unified diffs in git style.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// ReportReplay implements Reporter. Each script is diffed from its initial
// to its final document under the name "<file>#<script>".
func (r *DiffReporter) ReportReplay(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		return 0, nil
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(r.out, r.styles.FormatFileError(path, file.Error))
			continue
		}

		for _, res := range file.Results {
			diff, err := fix.GenerateDiff(path+"#"+res.Name, res.Initial, res.Content)
			if err != nil {
				return 0, err
			}
			r.writeDiff(diff)
		}
	}

	return failures(result), nil
}

// ReportProposal implements Reporter. Nothing is written for a key that
// falls through.
func (r *DiffReporter) ReportProposal(_ context.Context, proposal *Proposal) error {
	diff, err := fix.GenerateDiff(displayPath(proposal.Path, r.opts.WorkingDir), proposal.Original, proposal.Modified)
	if err != nil {
		return err
	}
	r.writeDiff(diff)
	return nil
}

func (r *DiffReporter) writeDiff(diff *fix.Diff) {
	if !diff.HasChanges() {
		return
	}

	fmt.Fprintln(r.out, r.styles.DiffHeader.Render(diff.GitHeader()))
	for _, line := range strings.Split(strings.TrimSuffix(diff.String(), "\n"), "\n") {
		r.writeDiffLine(line)
	}
	fmt.Fprintln(r.out)
}

func (r *DiffReporter) writeDiffLine(line string) {
	var styled string

	switch {
	case strings.HasPrefix(line, "@@"):
		styled = r.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "+"):
		styled = r.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "-"):
		styled = r.styles.DiffRemove.Render(line)
	default:
		styled = r.styles.DiffContext.Render(line)
	}

	fmt.Fprintln(r.out, styled)
}
