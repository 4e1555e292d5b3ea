package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/config"
)

// credit names a library gomdhtml is built with.
type credit struct {
	Module string
	Role   string
}

var credits = []credit{
	{"github.com/spf13/cobra", "command line interface"},
	{"github.com/charmbracelet/log", "logging"},
	{"github.com/charmbracelet/lipgloss", "terminal styling"},
	{"github.com/go-enry/go-enry/v2", "code block language detection"},
	{"gopkg.in/yaml.v3", "configuration files"},
	{"golang.org/x/term", "terminal detection"},
	{"github.com/yuin/goldmark", "CommonMark cross-checks in tests"},
}

func newCreditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Show authorship and the libraries gomdhtml is built with",
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			mode := config.ColorMode(cmd.Flags().Lookup(flagColor).Value.String())
			styles := pretty.NewStyles(pretty.IsColorEnabled(mode, cmd.OutOrStdout()))
			writeCredits(cmd.OutOrStdout(), styles)
		},
	}
}

func writeCredits(w io.Writer, styles *pretty.Styles) {
	width := 0
	for _, c := range credits {
		width = max(width, len(c.Module))
	}

	var b strings.Builder
	b.WriteString(styles.Bold.Render("gomdhtml"))
	b.WriteString(" converts a strict Markdown dialect to HTML.\n")
	b.WriteString("Written and maintained by the yaklabco developers.\n\n")
	b.WriteString(styles.TableHeader.Render("Built with"))
	b.WriteString("\n")
	for _, c := range credits {
		fmt.Fprintf(&b, "  %s  %s\n",
			styles.FilePath.Render(c.Module+strings.Repeat(" ", width-len(c.Module))),
			styles.Dim.Render(c.Role))
	}

	fmt.Fprint(w, b.String())
}
