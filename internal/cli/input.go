package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
)

// readInput reads the Markdown source named by path. When the source is a
// terminal the user is told how to end their input.
func readInput(cmd *cobra.Command, path string) (string, error) {
	stdin := cmd.InOrStdin()

	if path == fsutil.StdioPath && isTerminal(stdin) {
		logging.FromContext(cmd.Context()).Info("reading Markdown from standard input; press Ctrl-D to finish")
	}

	return fsutil.ReadSource(cmd.Context(), path, stdin)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of the terminal behind v, or 0.
func terminalWidth(v any) int {
	f, ok := v.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
