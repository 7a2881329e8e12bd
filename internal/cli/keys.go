package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/fix"
	"github.com/yaklabco/blockcont/pkg/fsutil"
	"github.com/yaklabco/blockcont/pkg/langdata"
	"github.com/yaklabco/blockcont/pkg/reporter"
	"github.com/yaklabco/blockcont/pkg/session"
	"github.com/yaklabco/blockcont/pkg/textdoc"
)

// Errors returned by the key commands.
var (
	// ErrInvalidPosition is returned for an --at value outside the file.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrUnknownLanguage is returned for a --language the registry does not know.
	ErrUnknownLanguage = errors.New("unknown language")
)

type keyFlags struct {
	at        string
	language  string
	format    string
	indent    string
	lineBreak string
	noContext bool
}

// keySpec describes one key command.
type keySpec struct {
	name    string
	short   string
	long    string
	command continuation.Command
}

func newEnterCommand() *cobra.Command {
	return newKeyCommand(keySpec{
		name:  "enter",
		short: "Show or apply what Enter does at a position",
		long: `Evaluate Enter at a position in FILE.

Inside an open block comment, Enter starts a continuation line aligned under
the opening "/*", moving the rest of the line along when the comment is closed.
Otherwise Enter falls through and the reason is reported.

Positions are byte offsets or 1-based LINE:COL pairs.

Examples:
  blockcont enter main.go --at 2:8
  blockcont enter main.go --at 57 --format diff
  blockcont enter main.go --at 2:8 --write`,
		command: continuation.ContinueComment,
	})
}

func newCloseCommand() *cobra.Command {
	return newKeyCommand(keySpec{
		name:  "close",
		short: `Show or apply what "/" does at a position`,
		long: `Evaluate typing "/" at a position in FILE.

At the end of a bare " * " line in an open block comment, "/" turns the line
into " */". Otherwise the key falls through and the reason is reported.

Examples:
  blockcont close main.go --at 4:4
  blockcont close main.go --at 4:4 --write`,
		command: continuation.CloseComment,
	})
}

func newKeyCommand(key keySpec) *cobra.Command {
	var cfg config.Config
	flags := &keyFlags{}

	cmd := &cobra.Command{
		Use:   key.name + " FILE",
		Short: key.short,
		Long:  key.long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKey(cmd, args[0], key, &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.at, "at", "", "cursor position: OFFSET or LINE:COL (required)")
	cmd.Flags().StringVar(&flags.language, "language", "", "language name or alias (default: detect)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().StringVar(&flags.indent, "indent", "", "continuation indent: opener, line")
	cmd.Flags().StringVar(&flags.lineBreak, "line-break", "", "inserted line break: auto, lf, crlf")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide the source line in text output")
	cmd.Flags().BoolVarP(&cfg.Write, "write", "w", false, "apply the edit to FILE")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when writing")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func runKey(cmd *cobra.Command, path string, key keySpec, cfg *config.Config, flags *keyFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	cfg.Format = config.OutputFormat(format)
	cfg.Indent = config.IndentStyle(flags.indent)
	cfg.LineBreak = config.LineBreak(flags.lineBreak)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	s, err := loadSettings(cmd, filepath.Dir(absPath), cfg)
	if err != nil {
		return err
	}

	content, snap, err := fsutil.Read(ctx, absPath)
	if err != nil {
		return err
	}

	lang, err := resolveLanguage(s.registry, flags.language, absPath, content)
	if err != nil {
		return err
	}

	doc := textdoc.New(content)
	offset, err := parsePosition(doc, flags.at)
	if err != nil {
		return err
	}

	editor := session.New(content,
		session.WithLanguage(lang),
		session.WithRegistry(s.registry),
		session.WithLineBreak(s.config.LineBreak.Sequence()),
		session.WithIndent(continuation.IndentStrategy(s.config.Indent)),
		session.WithLogger(logger),
	)
	if err := editor.SetCursors(continuation.Cursor(offset)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}

	result := key.command(editor.State())

	line, column, _ := doc.Position(offset)
	source, _ := doc.LineAt(offset)
	proposal := &reporter.Proposal{
		Path:     path,
		Key:      key.name,
		Offset:   offset,
		Line:     line,
		Column:   column,
		Source:   source.Text,
		Result:   result,
		Original: content,
		Modified: content,
	}
	if lang != nil {
		proposal.Language = lang.Name
	}

	logger.Debug("evaluated key",
		logging.FieldKey, key.name, logging.FieldOffset, offset,
		logging.FieldHandled, result.Handled, logging.FieldReason, result.Reason)

	if result.Handled {
		proposal.Modified, err = fix.Apply(content, result.TextEdits())
		if err != nil {
			return fmt.Errorf("apply %s: %w", key.name, err)
		}

		if s.config.Write {
			proposal.BackupPath, err = fsutil.Commit(ctx, snap, proposal.Modified, fsutil.CommitOptions{
				Backup:     s.config.BackupsEnabled(),
				BackupMode: fsutil.BackupMode(s.config.Backups.Mode),
			})
			if err != nil {
				return err
			}
			proposal.Written = true
			logger.Debug("wrote file", logging.FieldPath, absPath)
		}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowContext: !flags.noContext,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.ReportProposal(ctx, proposal); err != nil {
		return fmt.Errorf("report proposal: %w", err)
	}
	return nil
}

// resolveLanguage honors an explicit name, then falls back to detection.
// A file of unknown language is still evaluated; every key falls through.
func resolveLanguage(registry *langdata.Registry, name, path, content string) (*langdata.Language, error) {
	if name != "" {
		lang, ok := registry.ResolveName(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
		}
		return lang, nil
	}

	lang, _ := registry.Resolve("", path, []byte(content))
	return lang, nil
}

// parsePosition accepts a byte offset or a 1-based LINE:COL pair.
func parsePosition(doc *textdoc.Document, at string) (int, error) {
	if lineText, colText, ok := strings.Cut(at, ":"); ok {
		line, lineErr := strconv.Atoi(lineText)
		col, colErr := strconv.Atoi(colText)
		if lineErr != nil || colErr != nil {
			return 0, fmt.Errorf("%w: %q is not LINE:COL", ErrInvalidPosition, at)
		}
		offset, ok := doc.Offset(line, col)
		if !ok {
			return 0, fmt.Errorf("%w: %d:%d is outside the file", ErrInvalidPosition, line, col)
		}
		return offset, nil
	}

	offset, err := strconv.Atoi(at)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an offset or LINE:COL", ErrInvalidPosition, at)
	}
	if offset < 0 || offset > doc.Len() {
		return 0, fmt.Errorf("%w: offset %d is outside the file (length %d)", ErrInvalidPosition, offset, doc.Len())
	}
	return offset, nil
}
