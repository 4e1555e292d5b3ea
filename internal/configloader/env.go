package configloader

import (
	"os"
	"sort"
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/config"
)

// envVarPrefix is the prefix for all gomdhtml environment variables.
const envVarPrefix = "GOMDHTML_"

// envVar binds one environment variable to a configuration field.
type envVar struct {
	description string
	apply       func(cfg *config.Config, value string)
}

var envVars = map[string]envVar{
	"INPUT": {
		description: "Markdown source path, or - for standard input",
		apply:       func(cfg *config.Config, v string) { cfg.Input = v },
	},
	"OUTPUT": {
		description: "HTML destination path, or - for standard output",
		apply:       func(cfg *config.Config, v string) { cfg.Output = v },
	},
	"COLOR": {
		description: "Color mode: auto, always, or never",
		apply:       func(cfg *config.Config, v string) { cfg.Color = config.ColorMode(strings.ToLower(v)) },
	},
	"LOG_LEVEL": {
		description: "Log level: debug, info, warn, or error",
		apply:       func(cfg *config.Config, v string) { cfg.LogLevel = strings.ToLower(v) },
	},
	"FORMAT": {
		description: "Inspect output format: text or json",
		apply:       func(cfg *config.Config, v string) { cfg.Format = config.OutputFormat(strings.ToLower(v)) },
	},
}

// LoadFromEnv applies GOMDHTML_* environment variables to cfg.
// Empty variables are ignored. Values are checked later by Validate.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, ev := range envVars {
		value, ok := os.LookupEnv(envVarPrefix + suffix)
		if !ok || value == "" {
			continue
		}
		ev.apply(cfg, value)
	}

	return nil
}

// ListEnvVars returns the supported environment variables, sorted by name,
// with their descriptions.
func ListEnvVars() [][2]string {
	names := make([]string, 0, len(envVars))
	for suffix := range envVars {
		names = append(names, suffix)
	}
	sort.Strings(names)

	out := make([][2]string, 0, len(names))
	for _, suffix := range names {
		out = append(out, [2]string{envVarPrefix + suffix, envVars[suffix].description})
	}
	return out
}
