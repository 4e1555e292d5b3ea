package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/grammar"
	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

// sourceIndent aligns source context under the diagnostic line.
const sourceIndent = "    "

// FormatParseError formats a grammar failure in src for terminal output:
//
//	path:line:col  error  expected bold  (bold)
//	    Some **bold
//	               ^
func (s *Styles) FormatParseError(path, src string, gerr *grammar.Error) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%s",
		s.FilePath.Render(displayPath(path)),
		s.Location.Render(fmt.Sprintf("%d:%d", gerr.Line, gerr.Column)),
	)

	builder.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render("expected "+gerr.Rule.String()),
		s.RuleID.Render("("+gerr.Rule.String()+")"),
	))

	lines := mdast.NewLineIndex(src)
	if gerr.Line >= 1 && gerr.Line <= lines.LineCount() {
		builder.WriteString(s.FormatSourceContext(lines.Line(gerr.Line), gerr.Column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret under column.
// A column of zero or less omits the caret.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	builder.WriteString(sourceIndent + s.SourceLine.Render(expandTabs(line)) + "\n")

	if column > 0 {
		padding := caretPadding(line, column)
		builder.WriteString(sourceIndent + padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

func displayPath(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

const tabWidth = 4

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
}

// caretPadding returns the blank prefix that places a caret under the
// 1-based byte column of line, accounting for tab expansion.
func caretPadding(line string, column int) string {
	width := 0
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			width += tabWidth
		} else {
			width++
		}
	}
	if column-1 > len(line) {
		width += column - 1 - len(line)
	}
	return strings.Repeat(" ", width)
}
