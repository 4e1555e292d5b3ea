package mdast_test

import (
	"testing"

	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

func TestLineIndex_Position(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		offset   int
		expected mdast.Position
	}{
		{"start of content", "hello", 0, mdast.Position{Line: 1, Column: 1}},
		{"middle of first line", "hello\nworld", 3, mdast.Position{Line: 1, Column: 4}},
		{"newline belongs to its line", "hello\nworld", 5, mdast.Position{Line: 1, Column: 6}},
		{"start of second line", "hello\nworld", 6, mdast.Position{Line: 2, Column: 1}},
		{"CRLF second line", "ab\r\ncd", 5, mdast.Position{Line: 2, Column: 2}},
		{"end of content", "ab\n", 3, mdast.Position{Line: 2, Column: 1}},
		{"past end clamps", "ab", 10, mdast.Position{Line: 1, Column: 3}},
		{"empty content", "", 0, mdast.Position{Line: 1, Column: 1}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			idx := mdast.NewLineIndex(testCase.content)
			got := idx.Position(testCase.offset)
			if got != testCase.expected {
				t.Errorf("Position(%d) = %+v, want %+v", testCase.offset, got, testCase.expected)
			}
		})
	}
}

func TestLineIndex_NegativeOffset(t *testing.T) {
	t.Parallel()

	idx := mdast.NewLineIndex("abc")
	if pos := idx.Position(-1); pos != (mdast.Position{}) {
		t.Errorf("expected zero position, got %+v", pos)
	}
}

func TestLineIndex_Line(t *testing.T) {
	t.Parallel()

	idx := mdast.NewLineIndex("first\r\nsecond\nthird")

	if idx.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", idx.LineCount())
	}

	expected := []string{"first", "second", "third"}
	for i, want := range expected {
		if got := idx.Line(i + 1); got != want {
			t.Errorf("Line(%d) = %q, want %q", i+1, got, want)
		}
	}

	if got := idx.Line(0); got != "" {
		t.Errorf("Line(0) = %q, want empty", got)
	}
	if got := idx.Line(4); got != "" {
		t.Errorf("Line(4) = %q, want empty", got)
	}
}

func TestSourceRange(t *testing.T) {
	t.Parallel()

	r := mdast.SourceRange{StartOffset: 2, EndOffset: 5}

	if got := r.Text("abcdefg"); got != "cde" {
		t.Errorf("Text() = %q, want %q", got, "cde")
	}
	if got := r.Text("ab"); got != "" {
		t.Errorf("Text() on short source = %q, want empty", got)
	}
}
