package htmlrender_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdhtml/pkg/htmlrender"
	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

func text(s string) *mdast.Text { return &mdast.Text{Value: s} }

func TestRender_Blocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block mdast.Block
		want  string
	}{
		{
			name:  "heading",
			block: &mdast.Heading{Level: 3, Text: mdast.Inlines{text("Title")}},
			want:  "<h3>Title</h3>\n",
		},
		{
			name:  "thematic break",
			block: &mdast.ThematicBreak{},
			want:  "<hr/>\n",
		},
		{
			name: "unordered list",
			block: &mdast.List{Items: []*mdast.ListItem{
				{Text: mdast.Inlines{text("a")}},
				{Text: mdast.Inlines{text("b")}},
			}},
			want: "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n",
		},
		{
			name: "ordered list",
			block: &mdast.List{Ordered: true, Items: []*mdast.ListItem{
				{Text: mdast.Inlines{text("a")}},
				{Text: mdast.Inlines{text("b")}},
			}},
			want: "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n",
		},
		{
			name:  "code block is not escaped",
			block: &mdast.CodeBlock{Lines: []string{"raw <b>text</b>", "", "x & y"}},
			want:  "<pre><code>\nraw <b>text</b>\n\nx & y\n</code></pre>\n",
		},
		{
			name:  "empty code block",
			block: &mdast.CodeBlock{},
			want:  "<pre><code>\n</code></pre>\n",
		},
		{
			name: "paragraph renders one element per line",
			block: &mdast.Paragraph{Lines: []mdast.Inlines{
				{text("Hello, ")},
				{text("world")},
			}},
			want: "<p>Hello, </p>\n<p>world</p>\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			doc := &mdast.Document{Blocks: []mdast.Block{testCase.block}}
			assert.Equal(t, testCase.want, htmlrender.Render(doc))
		})
	}
}

func TestRender_Inlines(t *testing.T) {
	t.Parallel()

	line := mdast.Inlines{
		text("a "),
		&mdast.Strong{Children: mdast.Inlines{
			text("bold with "),
			&mdast.Emphasis{Children: mdast.Inlines{text("nested italic")}},
		}},
		text(" "),
		&mdast.Link{Text: "x<y", Href: `https://example.com/?q="1"`},
	}
	doc := &mdast.Document{Blocks: []mdast.Block{&mdast.Paragraph{Lines: []mdast.Inlines{line}}}}

	want := `<p>a <strong>bold with <em>nested italic</em></strong> ` +
		`<a href="https://example.com/?q="1"">x<y</a></p>` + "\n"
	assert.Equal(t, want, htmlrender.Render(doc))
}

func TestRender_EmptyAndNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", htmlrender.Render(nil))
	assert.Equal(t, "", htmlrender.Render(&mdast.Document{}))
	assert.Equal(t, "<p><a href=\"\"></a></p>\n", htmlrender.Render(&mdast.Document{
		Blocks: []mdast.Block{&mdast.Paragraph{Lines: []mdast.Inlines{{&mdast.Link{}}}}},
	}))
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	doc := &mdast.Document{Blocks: []mdast.Block{
		&mdast.Heading{Level: 1, Text: mdast.Inlines{text("T")}},
		&mdast.ThematicBreak{},
		&mdast.List{Items: []*mdast.ListItem{{Text: mdast.Inlines{text("i")}}}},
	}}

	first := htmlrender.Render(doc)
	second := htmlrender.Render(doc)
	assert.Equal(t, first, second)
}

func TestWrite(t *testing.T) {
	t.Parallel()

	doc := &mdast.Document{Blocks: []mdast.Block{&mdast.ThematicBreak{}}}

	var buf bytes.Buffer
	require.NoError(t, htmlrender.Write(&buf, doc))
	assert.Equal(t, "<hr/>\n", buf.String())
}

type failingWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSinkClosed }

func TestWrite_PropagatesError(t *testing.T) {
	t.Parallel()

	err := htmlrender.Write(failingWriter{}, &mdast.Document{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errSinkClosed)
}
