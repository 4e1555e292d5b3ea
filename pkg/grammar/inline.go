package grammar

import (
	"strings"

	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

// Delimiter pairs for bold and italic spans. Bold is always tried first so
// that "**x**" is not read as nested italics.
var (
	boldDelimiters   = []string{"**", "__"}
	italicDelimiters = []string{"*", "_"}
)

// textStop lists the bytes that end a run of plain text.
const textStop = "[*_"

// line = inline+ running to the end of the physical line.
func (m *matcher) line(pos int) (mdast.Inlines, int, bool) {
	end := m.lineEnd(pos)

	seq, next := m.inlines(pos, end, "")
	if len(seq) == 0 {
		m.fail(pos, RuleLine)
		return nil, pos, false
	}
	if next != end {
		m.fail(next, RuleInline)
		return nil, pos, false
	}

	return seq, end, true
}

// inlines collects inline spans from pos up to end. A non-empty closer stops
// the run as soon as it appears, before any other alternative is tried. The
// one exception is a bold span opening on a doubled single-character closer,
// as in "*a **b** c*", which is taken as nested bold when it closes.
func (m *matcher) inlines(pos, end int, closer string) (mdast.Inlines, int) {
	var seq mdast.Inlines
	for pos < end {
		if closer != "" && strings.HasPrefix(m.src[pos:end], closer) {
			if len(closer) != 1 {
				break
			}
			b, next, ok := m.nestedBold(pos, end)
			if !ok {
				break
			}
			seq = append(seq, b)
			pos = next
			continue
		}
		in, next, ok := m.inline(pos, end)
		if !ok {
			break
		}
		seq = append(seq, in)
		pos = next
	}
	return seq, pos
}

// inline = link | bold | italic | text
func (m *matcher) inline(pos, end int) (mdast.Inline, int, bool) {
	if l, next, ok := m.link(pos, end); ok {
		return l, next, true
	}
	if b, next, ok := m.delimited(pos, end, boldDelimiters, RuleBold); ok {
		return b, next, true
	}
	if i, next, ok := m.delimited(pos, end, italicDelimiters, RuleItalic); ok {
		return i, next, true
	}
	if t, next, ok := m.text(pos, end); ok {
		return t, next, true
	}
	m.fail(pos, RuleInline)
	return nil, pos, false
}

// nestedBold tries a bold span at pos without recording its failures; when
// it does not match, the enclosing italic closes instead.
func (m *matcher) nestedBold(pos, end int) (mdast.Inline, int, bool) {
	var (
		bold mdast.Inline
		next int
	)
	ok := m.lookahead(func() bool {
		var matched bool
		bold, next, matched = m.delimited(pos, end, boldDelimiters, RuleBold)
		return matched
	})
	return bold, next, ok
}

// link = "[" link_text "]" "(" link_href ")"
func (m *matcher) link(pos, end int) (*mdast.Link, int, bool) {
	if pos >= end || m.src[pos] != '[' {
		m.fail(pos, RuleLink)
		return nil, pos, false
	}

	textStart := pos + 1
	textLen := strings.IndexByte(m.src[textStart:end], ']')
	if textLen < 0 {
		m.fail(end, RuleLinkText)
		return nil, pos, false
	}

	hrefOpen := textStart + textLen + 1
	if hrefOpen >= end || m.src[hrefOpen] != '(' {
		m.fail(hrefOpen, RuleLink)
		return nil, pos, false
	}

	hrefStart := hrefOpen + 1
	hrefLen := strings.IndexByte(m.src[hrefStart:end], ')')
	if hrefLen < 0 {
		m.fail(end, RuleLinkHref)
		return nil, pos, false
	}

	next := hrefStart + hrefLen + 1
	return &mdast.Link{
		Text:  m.src[textStart : textStart+textLen],
		Href:  m.src[hrefStart : hrefStart+hrefLen],
		Range: mdast.SourceRange{StartOffset: pos, EndOffset: next},
	}, next, true
}

// bold   = "**" inline+ "**" | "__" inline+ "__"
// italic = "*" inline+ "*"   | "_" inline+ "_"
func (m *matcher) delimited(pos, end int, delimiters []string, rule Rule) (mdast.Inline, int, bool) {
	for _, delim := range delimiters {
		if !strings.HasPrefix(m.src[pos:end], delim) {
			continue
		}

		children, next := m.inlines(pos+len(delim), end, delim)
		if len(children) == 0 || !strings.HasPrefix(m.src[next:end], delim) {
			m.fail(next, rule)
			return nil, pos, false
		}

		next += len(delim)
		r := mdast.SourceRange{StartOffset: pos, EndOffset: next}
		if rule == RuleBold {
			return &mdast.Strong{Children: children, Range: r}, next, true
		}
		return &mdast.Emphasis{Children: children, Range: r}, next, true
	}

	m.fail(pos, rule)
	return nil, pos, false
}

// text = (!(newline | "[" | "*" | "_") ANY)+
func (m *matcher) text(pos, end int) (*mdast.Text, int, bool) {
	next := pos
	for next < end && strings.IndexByte(textStop, m.src[next]) < 0 {
		next++
	}
	if next == pos {
		m.fail(pos, RuleText)
		return nil, pos, false
	}

	return &mdast.Text{
		Value: m.src[pos:next],
		Range: mdast.SourceRange{StartOffset: pos, EndOffset: next},
	}, next, true
}
