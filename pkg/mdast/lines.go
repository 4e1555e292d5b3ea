package mdast

import "sort"

// lineSpan records where one physical line sits in the source.
type lineSpan struct {
	start        int // first byte of the line
	newlineStart int // first byte of "\n" or "\r\n", or len(src) for the last line
}

// LineIndex maps byte offsets of a document to line and column numbers.
type LineIndex struct {
	src   string
	lines []lineSpan
}

// NewLineIndex builds the line table for src.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func NewLineIndex(src string) *LineIndex {
	idx := &LineIndex{src: src}
	lineStart := 0

	for i := 0; i < len(src); i++ {
		if src[i] != '\n' {
			continue
		}
		newlineStart := i
		if i > lineStart && src[i-1] == '\r' {
			newlineStart = i - 1
		}
		idx.lines = append(idx.lines, lineSpan{start: lineStart, newlineStart: newlineStart})
		lineStart = i + 1
	}

	// The last line may be empty or lack a trailing newline.
	idx.lines = append(idx.lines, lineSpan{start: lineStart, newlineStart: len(src)})

	return idx
}

// LineCount returns the number of lines, counting a final line without newline.
func (l *LineIndex) LineCount() int {
	return len(l.lines)
}

// Position converts a byte offset to a 1-based line and column.
// Offsets past the end clamp to the end of the last line.
func (l *LineIndex) Position(offset int) Position {
	if offset < 0 {
		return Position{}
	}
	if offset > len(l.src) {
		offset = len(l.src)
	}

	lineIdx := sort.Search(len(l.lines), func(i int) bool {
		return l.lines[i].start > offset
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}

	return Position{Line: lineIdx + 1, Column: offset - l.lines[lineIdx].start + 1}
}

// Line returns the content of a 1-based line, excluding its terminator.
// Returns "" if the line number is out of range.
func (l *LineIndex) Line(n int) string {
	if n < 1 || n > len(l.lines) {
		return ""
	}
	span := l.lines[n-1]
	return l.src[span.start:span.newlineStart]
}
