// Package config defines the configuration types for gomdhtml.
// These types are plain data; loading and merging live in internal/configloader.
package config

import "slices"

// ColorMode selects when terminal output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ColorModes lists the accepted color modes.
func ColorModes() []ColorMode {
	return []ColorMode{ColorAuto, ColorAlways, ColorNever}
}

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	return slices.Contains(ColorModes(), c)
}

// OutputFormat selects how the inspect command reports a document.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputFormats lists the accepted output formats.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON}
}

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	return slices.Contains(OutputFormats(), f)
}

// LogLevels lists the accepted log level names.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Config is the root configuration structure.
type Config struct {
	// Input is the Markdown source path; "-" reads standard input.
	Input string `yaml:"input"`

	// Output is the HTML destination path; "-" writes standard output.
	Output string `yaml:"output"`

	// Color controls styling of diagnostics and tables.
	Color ColorMode `yaml:"color"`

	// LogLevel is the minimum level logged to stderr.
	LogLevel string `yaml:"log_level"`

	// Format is the inspect report format.
	Format OutputFormat `yaml:"format"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{
		Input:    "-",
		Output:   "-",
		Color:    ColorAuto,
		LogLevel: "info",
		Format:   FormatText,
	}
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}
