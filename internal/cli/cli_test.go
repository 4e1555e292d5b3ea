package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/internal/cli"
	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/grammar"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
)

var testInfo = cli.BuildInfo{
	Version: "test-version",
	Commit:  "test-commit",
	Date:    "test-date",
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	require.NotNil(t, cmd)

	assert.Equal(t, "gomdhtml", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	// Cobra adds its help command during Execute.
	cmd.InitDefaultHelpCmd()

	for _, name := range []string{"parse", "inspect", "init", "credits", "version", "help"} {
		subCmd, _, err := cmd.Find([]string{name})
		if !assert.NoError(t, err, "subcommand %q", name) {
			continue
		}
		assert.Equal(t, name, subCmd.Name())
	}
}

func TestParseCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	parseCmd, _, err := cmd.Find([]string{"parse"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		shorthand string
	}{
		{"input", "i"},
		{"output", "o"},
	}

	for _, tt := range tests {
		flag := parseCmd.Flags().Lookup(tt.name)
		require.NotNil(t, flag, "flag %q", tt.name)
		assert.Equal(t, tt.shorthand, flag.Shorthand)
		assert.Equal(t, "-", flag.DefValue)
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	for _, name := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "global flag %q", name)
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "gomdhtml")
	assert.Contains(t, output, "test-version")
	assert.Contains(t, output, "test-commit")
	assert.Contains(t, output, "test-date")
}

func TestCreditsCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"credits", "--color", "never"})

	require.NoError(t, cmd.Execute())

	output := stdout.String()
	assert.Contains(t, output, "gomdhtml")
	assert.Contains(t, output, "github.com/spf13/cobra")
	assert.Contains(t, output, "github.com/go-enry/go-enry/v2")
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "root help",
			args: []string{"--help"},
			want: []string{"Usage:", "Commands:", "parse", "credits", "Environment:", "GOMDHTML_INPUT", "Exit Codes:", "64"},
		},
		{
			name: "help subcommand",
			args: []string{"help", "parse"},
			want: []string{"Usage:", "Examples:", "--input", "-i, --input string", `(default "-")`, "Global Flags:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewRootCommand(testInfo)

			var stdout bytes.Buffer
			cmd.SetOut(&stdout)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())

			for _, want := range tt.want {
				assert.Contains(t, stdout.String(), want)
			}
		})
	}
}

func TestSubcommandHelpOmitsRootSections(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"inspect", "--help"})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, stdout.String(), "Environment:")
	assert.Contains(t, stdout.String(), "--format")
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	gerr := &grammar.Error{Rule: grammar.RuleBold, Line: 1, Column: 3}

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"conversion", &mdhtml.ConversionError{Err: gerr}, cli.ExitConversionError},
		{
			"reported conversion",
			fmt.Errorf("%w: %w", cli.ErrConversionFailed, &mdhtml.ConversionError{Err: gerr}),
			cli.ExitConversionError,
		},
		{"usage", &cli.UsageError{Err: errors.New("bad flag")}, cli.ExitInvalidUsage},
		{"unknown command", errors.New(`unknown command "frobnicate" for "gomdhtml"`), cli.ExitInvalidUsage},
		{"config", &cli.ConfigError{Err: errors.New("broken")}, cli.ExitConfigError},
		{"validation", &configloader.ValidationError{Field: "color", Message: "invalid"}, cli.ExitConfigError},
		{
			"resource",
			&fsutil.ResourceError{Op: fsutil.OpOpen, Path: "x.md", Err: fsutil.ErrNotFound},
			cli.ExitIOError,
		},
		{
			"wrapped resource",
			fmt.Errorf("read input: %w", &fsutil.ResourceError{Op: fsutil.OpRead, Path: "x.md", Err: os.ErrClosed}),
			cli.ExitIOError,
		},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodes_Sorted(t *testing.T) {
	t.Parallel()

	codes := cli.ExitCodes()
	require.NotEmpty(t, codes)
	for i := 1; i < len(codes); i++ {
		assert.Less(t, codes[i-1].Code, codes[i].Code)
		assert.NotEmpty(t, codes[i].Meaning)
	}
}

func TestInitCommand(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gomdhtml.yml")

	run := func(args ...string) error {
		cmd := cli.NewRootCommand(testInfo)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"init", "--output", path}, args...))
		return cmd.Execute()
	}

	require.NoError(t, run())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# gomdhtml configuration")
	assert.Contains(t, string(content), "color: auto")

	err = run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, run("--force"))
}
