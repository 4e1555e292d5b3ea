package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/internal/ui/pretty"
	"github.com/yaklabco/gomdhtml/pkg/config"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/langdetect"
	"github.com/yaklabco/gomdhtml/pkg/mdast"
	"github.com/yaklabco/gomdhtml/pkg/mdhtml"
)

// maxDetailRunes bounds paragraph previews in the outline.
const maxDetailRunes = 60

var blockKindLabels = map[mdast.NodeKind]string{
	mdast.NodeHeading:       "heading",
	mdast.NodeThematicBreak: "thematic_break",
	mdast.NodeOrderedList:   "ordered_list",
	mdast.NodeUnorderedList: "unordered_list",
	mdast.NodeCodeBlock:     "code_block",
	mdast.NodeParagraph:     "paragraph",
}

// outlineBlock is the JSON form of one outline row.
type outlineBlock struct {
	Line     int               `json:"line"`
	Kind     string            `json:"kind"`
	Detail   string            `json:"detail"`
	Links    int               `json:"links,omitempty"`
	Language *langdetect.Guess `json:"language,omitempty"`
}

type outlineDocument struct {
	Input  string         `json:"input"`
	Blocks []outlineBlock `json:"blocks"`
}

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the block outline of a Markdown document",
		Long: `Parse a Markdown document and print one row per block: the line it
starts on, its kind and a short description. Code blocks also show a guess
of the language they contain.

The document must conform to the dialect; rejected input is reported the
same way as by the parse command.`,
		Example: `  gomdhtml inspect -i README.md
  gomdhtml inspect -i README.md --format json`,
		Args: noArgs,
		RunE: runInspect,
	}

	cmd.Flags().StringP(flagInput, "i", fsutil.StdioPath, "Markdown source path, or - for standard input")
	cmd.Flags().String(flagFormat, string(config.FormatText), "Output format: text or json")

	return cmd
}

func runInspect(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	overrides := map[string]func(*config.Config, string){
		flagFormat: func(cfg *config.Config, v string) { cfg.Format = config.OutputFormat(v) },
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

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.OutOrStdout()))

	doc, err := mdhtml.Parse(src)
	if err != nil {
		var convErr *mdhtml.ConversionError
		if !errors.As(err, &convErr) {
			return fmt.Errorf("parse markdown: %w", err)
		}
		errStyles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, cmd.ErrOrStderr()))
		fmt.Fprint(cmd.ErrOrStderr(), errStyles.FormatParseError(cfg.Input, src, convErr.Err))
		return fmt.Errorf("%w: %w", ErrConversionFailed, convErr)
	}

	blocks := buildOutline(src, doc)
	logger.Debug("outline built", logging.FieldBlocks, len(blocks))

	out := cmd.OutOrStdout()

	if cfg.Format == config.FormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(outlineDocument{Input: cfg.Input, Blocks: blocks}); err != nil {
			return fmt.Errorf("encode outline: %w", err)
		}
		return nil
	}

	rows := make([]pretty.OutlineRow, 0, len(blocks))
	for _, block := range blocks {
		row := pretty.OutlineRow{Line: block.Line, Kind: block.Kind, Detail: block.Detail}
		if block.Language != nil {
			row.Language = block.Language.Language
		}
		rows = append(rows, row)
	}

	fmt.Fprint(out, pretty.NewTableFormatter(styles, terminalWidth(out)).FormatOutline(rows))
	return nil
}

// buildOutline describes each top-level block of doc.
func buildOutline(src string, doc *mdast.Document) []outlineBlock {
	lines := mdast.NewLineIndex(src)

	blocks := make([]outlineBlock, 0, len(doc.Blocks))
	for _, block := range doc.Blocks {
		entry := outlineBlock{
			Line:  lines.Position(block.Span().StartOffset).Line,
			Kind:  blockKindLabels[block.Kind()],
			Links: len(mdast.FindByKind(block, mdast.NodeLink)),
		}

		switch b := block.(type) {
		case *mdast.Heading:
			entry.Detail = fmt.Sprintf("h%d %s", b.Level, b.Text.PlainText())
		case *mdast.ThematicBreak:
			entry.Detail = b.Span().Text(src)
		case *mdast.List:
			entry.Detail = plural(len(b.Items), "item", "items")
		case *mdast.CodeBlock:
			entry.Detail = plural(len(b.Lines), "line", "lines")
			guess := langdetect.DetectBlock(b)
			entry.Language = &guess
		case *mdast.Paragraph:
			entry.Detail = preview(b)
		}

		blocks = append(blocks, entry)
	}

	return blocks
}

func preview(p *mdast.Paragraph) string {
	text := p.Lines[0].PlainText()
	if len(p.Lines) > 1 {
		text += " ..."
	}
	runes := []rune(strings.TrimSpace(text))
	if len(runes) > maxDetailRunes {
		return string(runes[:maxDetailRunes-3]) + "..."
	}
	return string(runes)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
