// Package htmlrender turns a document tree into HTML.
//
// Rendering is a single depth-first pass with one fixed rule per node type.
// Text, link targets and code are written exactly as they appear in the
// source; no entity escaping is applied.
package htmlrender

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

// Render returns the HTML for doc. A nil document renders as "".
func Render(doc *mdast.Document) string {
	if doc == nil {
		return ""
	}

	var r renderer
	for _, block := range doc.Blocks {
		r.block(block)
	}
	return r.out.String()
}

// Write renders doc to w.
func Write(w io.Writer, doc *mdast.Document) error {
	if _, err := io.WriteString(w, Render(doc)); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

type renderer struct {
	out strings.Builder
}

func (r *renderer) block(block mdast.Block) {
	switch node := block.(type) {
	case *mdast.Heading:
		level := strconv.Itoa(node.Level)
		r.out.WriteString("<h" + level + ">")
		r.inlines(node.Text)
		r.out.WriteString("</h" + level + ">\n")

	case *mdast.ThematicBreak:
		r.out.WriteString("<hr/>\n")

	case *mdast.List:
		tag := "ul"
		if node.Ordered {
			tag = "ol"
		}
		r.out.WriteString("<" + tag + ">\n")
		for _, item := range node.Items {
			r.out.WriteString("<li>")
			r.inlines(item.Text)
			r.out.WriteString("</li>\n")
		}
		r.out.WriteString("</" + tag + ">\n")

	case *mdast.CodeBlock:
		r.out.WriteString("<pre><code>\n")
		for _, line := range node.Lines {
			r.out.WriteString(line)
			r.out.WriteByte('\n')
		}
		r.out.WriteString("</code></pre>\n")

	case *mdast.Paragraph:
		for _, line := range node.Lines {
			r.out.WriteString("<p>")
			r.inlines(line)
			r.out.WriteString("</p>\n")
		}
	}
}

func (r *renderer) inlines(seq mdast.Inlines) {
	for _, in := range seq {
		switch node := in.(type) {
		case *mdast.Text:
			r.out.WriteString(node.Value)
		case *mdast.Strong:
			r.out.WriteString("<strong>")
			r.inlines(node.Children)
			r.out.WriteString("</strong>")
		case *mdast.Emphasis:
			r.out.WriteString("<em>")
			r.inlines(node.Children)
			r.out.WriteString("</em>")
		case *mdast.Link:
			r.out.WriteString(`<a href="` + node.Href + `">` + node.Text + "</a>")
		}
	}
}
