package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/blockcont/internal/ui/pretty"
	"github.com/yaklabco/blockcont/pkg/runner"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportReplay implements Reporter.
func (r *TextReporter) ReportReplay(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatFileError(path, file.Error))
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Results)))
		for _, res := range file.Results {
			fmt.Fprint(r.bw, r.styles.FormatScriptResult(res))
			if r.opts.ShowSteps {
				fmt.Fprint(r.bw, r.styles.FormatSteps(res))
			}
		}
	}

	if r.opts.ShowSummary {
		if len(result.Files) > 0 {
			fmt.Fprintln(r.bw)
		}
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return failures(result), nil
}

// ReportProposal implements Reporter.
func (r *TextReporter) ReportProposal(_ context.Context, proposal *Proposal) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	res := proposal.Result
	fmt.Fprint(r.bw, r.styles.FormatOutcome(
		displayPath(proposal.Path, r.opts.WorkingDir), proposal.Line, proposal.Column,
		proposal.Key, res.Handled, string(res.Reason), len(res.Edits)))

	if r.opts.ShowContext {
		fmt.Fprint(r.bw, r.styles.FormatSourceContext(proposal.Source, proposal.Column))
	}
	for _, edit := range res.Edits {
		fmt.Fprint(r.bw, r.styles.FormatInsertion(edit.Insert))
	}

	switch {
	case proposal.Written && proposal.BackupPath != "":
		fmt.Fprintln(r.bw, r.styles.Success.Render("written")+
			r.styles.Dim.Render(" (backup "+displayPath(proposal.BackupPath, r.opts.WorkingDir)+")"))
	case proposal.Written:
		fmt.Fprintln(r.bw, r.styles.Success.Render("written"))
	}

	return nil
}
