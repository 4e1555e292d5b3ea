// Package mdhtml converts Markdown text to HTML.
//
// It is the entry point that ties the grammar to the renderer:
//
//	html, err := mdhtml.Convert("# Title\n\nSome **bold** text.")
//
// Conversion is all-or-nothing. A document that does not conform to the
// grammar yields a *ConversionError and no HTML.
package mdhtml

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/gomdhtml/pkg/fsutil"
	"github.com/yaklabco/gomdhtml/pkg/grammar"
	"github.com/yaklabco/gomdhtml/pkg/htmlrender"
	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

// ConversionError reports Markdown that the grammar rejected.
type ConversionError struct {
	Err *grammar.Error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("markdown parse error: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Convert turns markdown into HTML.
func Convert(markdown string) (string, error) {
	doc, err := Parse(markdown)
	if err != nil {
		return "", err
	}
	return htmlrender.Render(doc), nil
}

// Parse returns the document tree for markdown. Errors are *ConversionError.
func Parse(markdown string) (*mdast.Document, error) {
	doc, err := grammar.Match(markdown)
	if err != nil {
		var gerr *grammar.Error
		if !errors.As(err, &gerr) {
			return nil, fmt.Errorf("match markdown: %w", err)
		}
		return nil, &ConversionError{Err: gerr}
	}
	return doc, nil
}

// ConvertFile reads the file at path and converts its content. Failures to
// open or read the file are *fsutil.ResourceError.
func ConvertFile(ctx context.Context, path string) (string, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}
	return Convert(string(content))
}
