package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockcont/internal/configloader"
	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/fsutil"
)

// ErrConfigExists is returned when init would overwrite a config file.
var ErrConfigExists = errors.New("configuration file already exists")

type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a blockcont configuration file",
		Long: `Create a commented .blockcont.yml in the current directory.

When the file exists, init asks before overwriting it on a terminal and
refuses otherwise, unless --force is given.

Examples:
  blockcont init                       Create .blockcont.yml
  blockcont init --output ci.yml       Write to a custom file path
  blockcont init --force               Overwrite without asking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags, configloader.IsInteractive())
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigName, "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags, interactive bool) error {
	logger := logging.NewInteractive()

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil && !flags.force {
		if !interactive {
			return fmt.Errorf("%w: %s; use --force to overwrite", ErrConfigExists, flags.output)
		}
		ok, err := configloader.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(),
			fmt.Sprintf("%s exists. Overwrite?", flags.output))
		if err != nil {
			return err
		}
		if !ok {
			logger.Info("left existing configuration unchanged", logging.FieldPath, flags.output)
			return nil
		}
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, config.Template(), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'blockcont config' to see the merged settings")

	return nil
}
