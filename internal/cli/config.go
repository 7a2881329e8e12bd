package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/blockcont/internal/configloader"
	"github.com/yaklabco/blockcont/internal/logging"
	"github.com/yaklabco/blockcont/pkg/config"
	"github.com/yaklabco/blockcont/pkg/langdata"
)

// settings is the resolved configuration of one command invocation.
type settings struct {
	config   *config.Config
	registry *langdata.Registry
	loaded   *configloader.LoadResult
}

// loadSettings merges configuration from every source, starting the
// project config search at workDir, and builds the language registry.
func loadSettings(cmd *cobra.Command, workDir string, cliCfg *config.Config) (*settings, error) {
	logger := logging.FromContext(cmd.Context())

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	loaded, err := configloader.Load(cmd.Context(), configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	if len(loaded.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loaded.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldLineBreak, loaded.Config.LineBreak,
		logging.FieldIndent, loaded.Config.Indent,
		logging.FieldJobs, loaded.Config.Jobs,
	)

	registry, err := configloader.BuildRegistry(loaded.Config, langdata.Default())
	if err != nil {
		return nil, fmt.Errorf("build language registry: %w", err)
	}

	return &settings{config: loaded.Config, registry: registry, loaded: loaded}, nil
}

func colorMode(cmd *cobra.Command) string {
	mode, err := cmd.Flags().GetString("color")
	if err != nil {
		return "auto"
	}
	return mode
}

func newConfigCommand() *cobra.Command {
	var showEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration that results from merging the system, user and
project config files, environment variables and defaults.

Examples:
  blockcont config           Print the merged configuration as YAML
  blockcont config --env     List the supported environment variables`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if showEnv {
				for _, envVar := range configloader.ListEnvVars() {
					fmt.Fprintf(out, "%-26s %s\n", envVar.Name, envVar.Description)
				}
				return nil
			}

			s, err := loadSettings(cmd, "", nil)
			if err != nil {
				return err
			}

			header := "# effective configuration (defaults)"
			if len(s.loaded.LoadedFrom) > 0 {
				header = "# effective configuration, merged from:"
				for _, path := range s.loaded.LoadedFrom {
					header += "\n#   " + path
				}
			}

			data, err := s.config.ToYAMLWithHeader(header)
			if err != nil {
				return fmt.Errorf("render configuration: %w", err)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showEnv, "env", false, "list supported environment variables")

	return cmd
}
