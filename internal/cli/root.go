// Package cli provides the Cobra command structure for blockcont.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockcont/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root blockcont command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "blockcont",
		Short: "Continue and close /* */ block comments as you type",
		Long: `blockcont decides what Enter and "/" should do inside C-style block comments.

Enter inside an open comment starts an aligned " * " continuation line,
carrying the rest of the line with it when the comment is closed. Typing "/"
on a bare " * " line closes the comment. Anywhere else the key falls through
to its ordinary behavior.

The enter and close commands evaluate a single key press in a file, and
replay runs YAML keystroke scripts against the same engine.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newEnterCommand())
	rootCmd.AddCommand(newCloseCommand())
	rootCmd.AddCommand(newReplayCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
