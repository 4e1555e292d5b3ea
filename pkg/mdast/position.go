package mdast

// SourceRange represents a byte range in the source text.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Text returns the slice of src covered by the range, or "" if the
// range does not fit src.
func (r SourceRange) Text(src string) string {
	if r.StartOffset < 0 || r.EndOffset > len(src) || r.StartOffset > r.EndOffset {
		return ""
	}
	return src[r.StartOffset:r.EndOffset]
}

// Position represents a 1-based line and column in a document.
// Column counts bytes, not runes.
type Position struct {
	Line   int
	Column int
}
