package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/continuation"
	"github.com/yaklabco/blockcont/pkg/reporter"
	"github.com/yaklabco/blockcont/pkg/runner"
	"github.com/yaklabco/blockcont/pkg/script"
)

// ErrReplayFailed is returned when a script fails or cannot be replayed.
var ErrReplayFailed = errors.New("replay failed")

type replayFlags struct {
	format         string
	exclude        []string
	steps          bool
	compact        bool
	followSymlinks bool
}

func newReplayCommand() *cobra.Command {
	var cfg config.Config
	flags := &replayFlags{}

	cmd := &cobra.Command{
		Use:   "replay [paths...]",
		Short: "Replay keystroke scripts",
		Long: `Replay YAML keystroke scripts and check their expectations.

Each script starts from a document and cursor set, presses keys (enter,
slash or "text:..."), and compares the final document and cursors with its
expect block. Directories are searched for *.replay.yml and *.replay.yaml
files; scripts run concurrently, one editor per file.

Examples:
  blockcont replay                      # Replay scripts under the current directory
  blockcont replay testdata/ --steps    # Show the decision for every key
  blockcont replay --format json        # Machine-readable results
  blockcont replay --format diff        # Show what each script changed`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args, &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip")
	cmd.Flags().BoolVar(&flags.steps, "steps", false, "list the decision for every key")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string, cfg *config.Config, flags *replayFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	cfg.Format = config.OutputFormat(format)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	s, err := loadSettings(cmd, workDir, cfg)
	if err != nil {
		return err
	}

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		ExcludeGlobs:   flags.exclude,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           s.config.Jobs,
		Replay: script.Options{
			Registry:  s.registry,
			Indent:    continuation.IndentStrategy(s.config.Indent),
			LineBreak: s.config.LineBreak,
			Logger:    logger,
		},
	}

	logger.Debug("starting replay",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("replay run failed"), err)
	}

	logger.Debug("replay finished",
		logging.FieldScriptsDiscovered, result.Stats.FilesDiscovered,
		logging.FieldScriptsPassed, result.Stats.ScriptsPassed,
		logging.FieldScriptsFailed, result.Stats.ScriptsFailed,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode(cmd),
		ShowSteps:   flags.steps,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failed, err := rep.ReportReplay(ctx, result)
	if err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d scripts", ErrReplayFailed, failed, result.Stats.ScriptsRun+result.Stats.FilesErrored)
	}
	return nil
}
