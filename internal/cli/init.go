package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

// defaultConfigFile is the file written by init when --output is not given.
const defaultConfigFile = ".gomdhtml.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a gomdhtml configuration file",
		Long: `Create a .gomdhtml.yml configuration file in the current directory
holding the default settings. Edit it to change the default input, output,
color mode, log level or inspect format for this project.`,
		Example: `  gomdhtml init
  gomdhtml init --force
  gomdhtml init --output config/gomdhtml.yml`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, flagForce, "f", false, "Overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, flagOutput, "o", defaultConfigFile, "Configuration file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := configloader.WriteConfig(ctx, config.NewConfig(), absPath, flags.force); err != nil {
		return err
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'gomdhtml help' to see the environment variables that override it")

	return nil
}
