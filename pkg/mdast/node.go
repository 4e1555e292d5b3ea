// Package mdast defines the document tree produced by the grammar matcher
// and consumed by the HTML renderer.
//
// The tree is built once and read once. Blocks and inlines are sealed
// interfaces; a type switch over the concrete node types covers every case.
package mdast

// NodeKind classifies the type of a tree node.
type NodeKind uint16

// Node kinds for block-level and inline-level elements.
const (
	NodeDocument NodeKind = iota

	// Block-level nodes.
	NodeHeading
	NodeThematicBreak
	NodeOrderedList
	NodeUnorderedList
	NodeListItem
	NodeCodeBlock
	NodeParagraph

	// Inline-level nodes.
	NodeText
	NodeStrong
	NodeEmphasis
	NodeLink
)

var nodeKindNames = [...]string{
	NodeDocument:      "Document",
	NodeHeading:       "Heading",
	NodeThematicBreak: "ThematicBreak",
	NodeOrderedList:   "OrderedList",
	NodeUnorderedList: "UnorderedList",
	NodeListItem:      "ListItem",
	NodeCodeBlock:     "CodeBlock",
	NodeParagraph:     "Paragraph",
	NodeText:          "Text",
	NodeStrong:        "Strong",
	NodeEmphasis:      "Emphasis",
	NodeLink:          "Link",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Node is implemented by every element of the tree.
type Node interface {
	Kind() NodeKind
	Span() SourceRange
}

// Block is a top-level structural unit of a document.
type Block interface {
	Node
	blockNode()
}

// Inline is a text-level span within a block.
type Inline interface {
	Node
	inlineNode()
}

// Inlines is an ordered sequence of inline spans.
type Inlines []Inline

// Document is the root of the tree.
type Document struct {
	Blocks []Block
	Range  SourceRange
}

// Heading is an ATX heading of level 1 through 6.
type Heading struct {
	Level int
	Text  Inlines
	Range SourceRange
}

// ThematicBreak is a horizontal rule.
type ThematicBreak struct {
	Range SourceRange
}

// List is a run of consecutive list items. All items of one list share
// its kind, whatever marker each source line used.
type List struct {
	Ordered bool
	Items   []*ListItem
	Range   SourceRange
}

// ListItem is a single line of a list.
type ListItem struct {
	Text  Inlines
	Range SourceRange
}

// CodeBlock holds the raw lines between two fences, without line terminators.
type CodeBlock struct {
	Lines []string
	Range SourceRange
}

// Paragraph holds one inline sequence per physical source line.
type Paragraph struct {
	Lines []Inlines
	Range SourceRange
}

// Text is a run of plain characters.
type Text struct {
	Value string
	Range SourceRange
}

// Strong is bold text.
type Strong struct {
	Children Inlines
	Range    SourceRange
}

// Emphasis is italic text.
type Emphasis struct {
	Children Inlines
	Range    SourceRange
}

// Link is an inline hyperlink. Text and Href are kept exactly as written.
type Link struct {
	Text  string
	Href  string
	Range SourceRange
}

func (*Document) Kind() NodeKind      { return NodeDocument }
func (*Heading) Kind() NodeKind       { return NodeHeading }
func (*ThematicBreak) Kind() NodeKind { return NodeThematicBreak }
func (*ListItem) Kind() NodeKind      { return NodeListItem }
func (*CodeBlock) Kind() NodeKind     { return NodeCodeBlock }
func (*Paragraph) Kind() NodeKind     { return NodeParagraph }
func (*Text) Kind() NodeKind          { return NodeText }
func (*Strong) Kind() NodeKind        { return NodeStrong }
func (*Emphasis) Kind() NodeKind      { return NodeEmphasis }
func (*Link) Kind() NodeKind          { return NodeLink }

// Kind reports NodeOrderedList or NodeUnorderedList.
func (l *List) Kind() NodeKind {
	if l.Ordered {
		return NodeOrderedList
	}
	return NodeUnorderedList
}

func (n *Document) Span() SourceRange      { return n.Range }
func (n *Heading) Span() SourceRange       { return n.Range }
func (n *ThematicBreak) Span() SourceRange { return n.Range }
func (n *List) Span() SourceRange          { return n.Range }
func (n *ListItem) Span() SourceRange      { return n.Range }
func (n *CodeBlock) Span() SourceRange     { return n.Range }
func (n *Paragraph) Span() SourceRange     { return n.Range }
func (n *Text) Span() SourceRange          { return n.Range }
func (n *Strong) Span() SourceRange        { return n.Range }
func (n *Emphasis) Span() SourceRange      { return n.Range }
func (n *Link) Span() SourceRange          { return n.Range }

func (*Heading) blockNode()       {}
func (*ThematicBreak) blockNode() {}
func (*List) blockNode()          {}
func (*CodeBlock) blockNode()     {}
func (*Paragraph) blockNode()     {}

func (*Text) inlineNode()     {}
func (*Strong) inlineNode()   {}
func (*Emphasis) inlineNode() {}
func (*Link) inlineNode()     {}

// Children returns the direct children of n in source order.
// Paragraph lines are flattened into one sequence.
func Children(n Node) []Node {
	var children []Node
	switch node := n.(type) {
	case *Document:
		for _, b := range node.Blocks {
			children = append(children, b)
		}
	case *Heading:
		children = appendInlines(children, node.Text)
	case *List:
		for _, item := range node.Items {
			children = append(children, item)
		}
	case *ListItem:
		children = appendInlines(children, node.Text)
	case *Paragraph:
		for _, line := range node.Lines {
			children = appendInlines(children, line)
		}
	case *Strong:
		children = appendInlines(children, node.Children)
	case *Emphasis:
		children = appendInlines(children, node.Children)
	}
	return children
}

func appendInlines(dst []Node, seq Inlines) []Node {
	for _, in := range seq {
		dst = append(dst, in)
	}
	return dst
}

// PlainText concatenates the visible text of an inline sequence,
// dropping all markup. Link text is included.
func (seq Inlines) PlainText() string {
	var out []byte
	for _, in := range seq {
		switch node := in.(type) {
		case *Text:
			out = append(out, node.Value...)
		case *Strong:
			out = append(out, node.Children.PlainText()...)
		case *Emphasis:
			out = append(out, node.Children.PlainText()...)
		case *Link:
			out = append(out, node.Text...)
		}
	}
	return string(out)
}
