package pretty

import (
	"fmt"
)

// ConversionStats describes one completed conversion.
type ConversionStats struct {
	Input    string
	Output   string
	Blocks   int
	BytesIn  int
	BytesOut int
}

// FormatConversionSummary formats conversion statistics as a single line.
// Example: "Converted README.md -> README.html (12 blocks, 830 B -> 1.2 KB)".
func (s *Styles) FormatConversionSummary(stats ConversionStats) string {
	return fmt.Sprintf("%s %s -> %s %s\n",
		s.Success.Render("Converted"),
		s.FilePath.Render(displayPath(stats.Input)),
		s.FilePath.Render(displaySink(stats.Output)),
		s.Dim.Render(fmt.Sprintf("(%d %s, %s -> %s)",
			stats.Blocks, plural(stats.Blocks, "block", "blocks"),
			formatBytes(stats.BytesIn), formatBytes(stats.BytesOut),
		)),
	)
}

func displaySink(path string) string {
	if path == "" || path == "-" {
		return "<stdout>"
	}
	return path
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	suffixes := []string{"KB", "MB", "GB"}
	for i, suffix := range suffixes {
		value /= unit
		if value < unit || i == len(suffixes)-1 {
			return fmt.Sprintf("%.1f %s", value, suffix)
		}
	}
	return fmt.Sprintf("%d B", n)
}
