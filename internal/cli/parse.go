package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/htmlrender"
	"github.com/yaklabco/gomdhtml/pkg/mdast"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
)

// Flag names for the parse and inspect commands.
const (
	flagInput  = "input"
	flagOutput = "output"
	flagFormat = "format"
	flagForce  = "force"
)

// sourceOverrides maps the input flag onto the configuration.
var sourceOverrides = map[string]func(*config.Config, string){
	flagInput: func(cfg *config.Config, v string) { cfg.Input = v },
}

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Convert Markdown to HTML",
		Long: `Convert a Markdown document to HTML.

The source is read from --input and the HTML is written to --output. Either
may be "-" to use standard input or standard output. A file given to
--output is replaced atomically, and only when the conversion succeeds.

If the document does not conform to the dialect, the failing line is printed
with a caret under the column where recognition stopped.`,
		Example: `  gomdhtml parse -i README.md -o README.html
  cat notes.md | gomdhtml parse > notes.html
  gomdhtml parse --input doc.md`,
		Args: noArgs,
		RunE: runParse,
	}

	cmd.Flags().StringP(flagInput, "i", fsutil.StdioPath, "Markdown source path, or - for standard input")
	cmd.Flags().StringP(flagOutput, "o", fsutil.StdioPath, "HTML destination path, or - for standard output")

	return cmd
}

func runParse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	overrides := map[string]func(*config.Config, string){
		flagOutput: func(cfg *config.Config, v string) { cfg.Output = v },
	}
	for name, apply := range sourceOverrides {
		overrides[name] = apply
	}

	cfg, err := loadConfig(cmd, overrides)
	if err != nil {
		return err
	}

	src, err := readInput(cmd, cfg.Input)
	if err != nil {
		return err
	}

	doc, err := mdhtml.Parse(src)
	if err != nil {
		var convErr *mdhtml.ConversionError
		if !errors.As(err, &convErr) {
			return fmt.Errorf("convert markdown: %w", err)
		}

		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.ErrOrStderr()))
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatParseError(cfg.Input, src, convErr.Err))
		logger.Debug("conversion rejected",
			logging.FieldRule, convErr.Err.Rule.String(),
			logging.FieldLine, convErr.Err.Line,
			logging.FieldColumn, convErr.Err.Column,
		)
		return fmt.Errorf("%w: %w", ErrConversionFailed, convErr)
	}

	html := htmlrender.Render(doc)

	if err := fsutil.WriteSink(ctx, cfg.Output, html, cmd.OutOrStdout()); err != nil {
		return err
	}

	logger.Debug("converted",
		logging.FieldBlocks, len(doc.Blocks),
		logging.FieldLinks, len(mdast.FindByKind(doc, mdast.NodeLink)),
		logging.FieldBytesIn, len(src),
		logging.FieldBytesOut, len(html),
	)

	if cfg.Output != fsutil.StdioPath {
		styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.ErrOrStderr()))
		fmt.Fprint(cmd.ErrOrStderr(), styles.FormatConversionSummary(pretty.ConversionStats{
			Input:    cfg.Input,
			Output:   cfg.Output,
			Blocks:   len(doc.Blocks),
			BytesIn:  len(src),
			BytesOut: len(html),
		}))
	}

	return nil
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &UsageError{Err: fmt.Errorf("unexpected argument %q for %q; use --input to name the source", args[0], cmd.CommandPath())}
	}
	return nil
}
