package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/config"
)

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)
		assert.Equal(t, original, clone)

		clone.Output = "out.html"
		assert.Equal(t, "-", original.Output)
	})
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, "-", cfg.Input)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.FormatText, cfg.Format)
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	for _, mode := range config.ColorModes() {
		assert.True(t, mode.IsValid(), mode)
	}
	assert.False(t, config.ColorMode("sometimes").IsValid())
	assert.False(t, config.ColorMode("").IsValid())
}

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestConfig_YAML(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		original := &config.Config{
			Input:    "README.md",
			Output:   "README.html",
			Color:    config.ColorNever,
			LogLevel: "debug",
			Format:   config.FormatJSON,
		}

		data, err := original.ToYAML()
		require.NoError(t, err)
		assert.Contains(t, string(data), "log_level: debug")

		parsed, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})

	t.Run("partial file leaves other fields empty", func(t *testing.T) {
		t.Parallel()

		parsed, err := config.FromYAML([]byte("output: site/index.html\n"))
		require.NoError(t, err)
		assert.Equal(t, "site/index.html", parsed.Output)
		assert.Empty(t, parsed.Input)
		assert.Empty(t, parsed.Color)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()

		parsed, err := config.FromYAML(nil)
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, parsed)
	})

	t.Run("unknown field is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("header is commented", func(t *testing.T) {
		t.Parallel()

		data, err := config.NewConfig().ToYAMLWithHeader("gomdhtml configuration\n# already a comment")
		require.NoError(t, err)

		lines := strings.Split(string(data), "\n")
		assert.Equal(t, "# gomdhtml configuration", lines[0])
		assert.Equal(t, "# already a comment", lines[1])
		assert.Empty(t, lines[2])
		assert.True(t, strings.HasPrefix(lines[3], "input: "), lines[3])
	})
}
