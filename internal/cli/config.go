package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

// loadConfig resolves the effective configuration for cmd. Only flags the
// user actually set are passed as overrides, so file and environment values
// are not masked by flag defaults.
func loadConfig(cmd *cobra.Command, overrides map[string]func(*config.Config, string)) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cliCfg := &config.Config{}
	for name, apply := range overrides {
		flag := cmd.Flags().Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}
		apply(cliCfg, flag.Value.String())
	}
	if flag := cmd.Flags().Lookup(flagColor); flag != nil && flag.Changed {
		cliCfg.Color = config.ColorMode(flag.Value.String())
	}

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}

	cfg := result.Config

	debug, _ := cmd.Flags().GetBool(flagDebug)
	if !debug {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration",
			logging.FieldConfigFiles, result.LoadedFrom,
			logging.FieldWorkingDir, workDir,
		)
	}
	logger.Debug("configuration resolved",
		logging.FieldLogLevel, cfg.LogLevel,
		logging.FieldInput, cfg.Input,
		logging.FieldOutput, cfg.Output,
		logging.FieldColor, cfg.Color,
		logging.FieldFormat, cfg.Format,
	)

	return cfg, nil
}
