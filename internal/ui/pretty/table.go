package pretty

import (
	"fmt"
	"strings"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // LINE, KIND, DETAIL, LANG
	minLineWidth     = 4
	minKindWidth     = 10
	minDetailWidth   = 30
	minLangWidth     = 4
	heavySeparator   = "="
	defaultTermWidth = 100
	ellipsis         = "..."
)

// OutlineRow is one block of a document outline.
type OutlineRow struct {
	Line     int
	Kind     string
	Detail   string
	Language string
}

// TableFormatter formats document outlines as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{styles: styles, termWidth: termWidth}
}

type columnWidths struct {
	line   int
	kind   int
	detail int
	lang   int
}

func (w columnWidths) total() int {
	return w.line + w.kind + w.detail + w.lang + tablePadding*tableColumnCount
}

// FormatOutline formats rows as a table followed by a one-line legend.
// An empty outline yields "".
func (t *TableFormatter) FormatOutline(rows []OutlineRow) string {
	if len(rows) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.line, "LINE",
		widths.kind, "KIND",
		widths.detail, "DETAIL",
		widths.lang, "LANG",
	)))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.TableLegend.Render(fmt.Sprintf(" %d %s", len(rows), plural(len(rows), "block", "blocks"))))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths sizes columns to their content, shrinking the
// detail column first when the table is wider than the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []OutlineRow) columnWidths {
	widths := columnWidths{
		line:   minLineWidth,
		kind:   minKindWidth,
		detail: minDetailWidth,
		lang:   minLangWidth,
	}

	for _, row := range rows {
		widths.line = max(widths.line, len(fmt.Sprint(row.Line)))
		widths.kind = max(widths.kind, len(row.Kind))
		widths.detail = max(widths.detail, len(row.Detail))
		widths.lang = max(widths.lang, len(row.Language))
	}

	if excess := widths.total() - t.termWidth; excess > 0 {
		widths.detail = max(minDetailWidth, widths.detail-excess)
	}

	return widths
}

func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, widths.total()))
}

func (t *TableFormatter) formatRow(row OutlineRow, widths columnWidths) string {
	kind := fmt.Sprintf("%-*s", widths.kind, row.Kind)
	lang := fmt.Sprintf("%-*s", widths.lang, row.Language)

	return fmt.Sprintf(" %*d  %s  %-*s  %s",
		widths.line, row.Line,
		t.styles.TableKind.Render(kind),
		widths.detail, truncateString(row.Detail, widths.detail),
		t.styles.TableLanguage.Render(lang),
	)
}

// truncateString shortens s to at most width bytes, marking the cut.
func truncateString(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return s[:width]
	}
	return s[:width-len(ellipsis)] + ellipsis
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
