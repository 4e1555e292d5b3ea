package cli

import (
	"errors"
	"strings"

	"github.com/yaklabco/gomdhtml/internal/configloader"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
)

// Exit codes for gomdhtml.
const (
	// ExitSuccess indicates the command completed.
	ExitSuccess = 0

	// ExitConversionError indicates the Markdown did not conform to the dialect.
	ExitConversionError = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCode pairs an exit code with its meaning for help output.
type ExitCode struct {
	Code    int
	Meaning string
}

// ExitCodes lists the exit codes in ascending order.
func ExitCodes() []ExitCode {
	return []ExitCode{
		{ExitSuccess, "success"},
		{ExitConversionError, "the input is not valid Markdown for this dialect"},
		{ExitInvalidUsage, "invalid command-line usage"},
		{ExitConfigError, "invalid configuration"},
		{ExitInternalError, "internal error"},
		{ExitIOError, "an input or output file could not be read or written"},
	}
}

// ErrConversionFailed marks a conversion failure whose diagnostic has
// already been written to stderr.
var ErrConversionFailed = errors.New("conversion failed")

// UsageError reports invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ConfigError reports configuration that could not be loaded.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "load configuration: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		convErr   *mdhtml.ConversionError
		usageErr  *UsageError
		configErr *ConfigError
		validErr  *configloader.ValidationError
		resErr    *fsutil.ResourceError
	)

	switch {
	case errors.As(err, &convErr):
		return ExitConversionError
	case errors.As(err, &usageErr), isCobraUsageError(err):
		return ExitInvalidUsage
	case errors.As(err, &configErr), errors.As(err, &validErr):
		return ExitConfigError
	case errors.As(err, &resErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// isCobraUsageError recognizes the argument errors cobra builds with
// fmt.Errorf and therefore exposes only as text.
func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
