package grammar

import (
	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

const fence = "```"

// matcher holds the state of one recognition pass over an immutable input.
type matcher struct {
	src string

	// Furthest failure seen so far. failPos is -1 until a rule fails.
	failPos  int
	failRule Rule

	// cut is set when a committed construct (an opened fence) cannot be
	// completed; no other alternative may be tried afterwards.
	cut bool
}

func newMatcher(src string) *matcher {
	return &matcher{src: src, failPos: -1}
}

// fail records that rule did not match at pos. The first rule to fail at
// the furthest position is kept.
func (m *matcher) fail(pos int, rule Rule) {
	if pos > m.failPos {
		m.failPos = pos
		m.failRule = rule
	}
}

func (m *matcher) err() *Error {
	pos := m.failPos
	if pos < 0 {
		pos = 0
	}
	p := mdast.NewLineIndex(m.src).Position(pos)
	return &Error{Rule: m.failRule, Offset: pos, Line: p.Line, Column: p.Column}
}

// lookahead runs probe without letting its failures affect error reporting.
func (m *matcher) lookahead(probe func() bool) bool {
	failPos, failRule := m.failPos, m.failRule
	ok := probe()
	m.failPos, m.failRule = failPos, failRule
	return ok
}

func (m *matcher) at(pos int) bool {
	return pos < len(m.src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// lineEnd returns the offset of the line terminator that ends the line
// containing pos, or len(src) for the last line. A "\r\n" terminator
// starts at its '\r'.
func (m *matcher) lineEnd(pos int) int {
	for i := pos; i < len(m.src); i++ {
		if m.src[i] == '\n' {
			if i > pos && m.src[i-1] == '\r' {
				return i - 1
			}
			return i
		}
	}
	return len(m.src)
}

// newlineLen returns the length of the newline at pos: 1 for "\n",
// 2 for "\r\n", 0 otherwise.
func (m *matcher) newlineLen(pos int) int {
	switch {
	case pos < len(m.src) && m.src[pos] == '\n':
		return 1
	case pos+1 < len(m.src) && m.src[pos] == '\r' && m.src[pos+1] == '\n':
		return 2
	default:
		return 0
	}
}

func (m *matcher) skipSpaces(pos int) int {
	for pos < len(m.src) && isSpace(m.src[pos]) {
		pos++
	}
	return pos
}

// isBlank reports whether the line starting at pos holds only horizontal
// whitespace. The empty remainder of the input counts as blank.
func (m *matcher) isBlank(pos int) bool {
	p := m.skipSpaces(pos)
	return p == len(m.src) || m.newlineLen(p) > 0
}

// blankline consumes one or more whitespace-only lines, each ending in a
// newline.
func (m *matcher) blankline(pos int) (int, bool) {
	end := pos
	for {
		p := m.skipSpaces(end)
		n := m.newlineLen(p)
		if n == 0 {
			break
		}
		end = p + n
	}
	return end, end > pos
}

// skipSeparators consumes blank lines, and a trailing run of whitespace at
// the very end of the input.
func (m *matcher) skipSeparators(pos int) int {
	if end, ok := m.blankline(pos); ok {
		pos = end
	}
	if m.skipSpaces(pos) == len(m.src) {
		return len(m.src)
	}
	return pos
}

// markdown = blankline? (block (newline)? blankline?)* EOI
func (m *matcher) markdown() (*mdast.Document, bool) {
	doc := &mdast.Document{Range: mdast.SourceRange{StartOffset: 0, EndOffset: len(m.src)}}

	pos := m.skipSeparators(0)
	for m.at(pos) {
		block, end, ok := m.block(pos)
		if !ok {
			m.fail(pos, RuleBlock)
			return nil, false
		}
		doc.Blocks = append(doc.Blocks, block)

		pos = end + m.newlineLen(end)
		pos = m.skipSeparators(pos)
	}

	return doc, true
}

// block = special_block | paragraph
func (m *matcher) block(pos int) (mdast.Block, int, bool) {
	if block, end, ok := m.specialBlock(pos); ok {
		return block, end, true
	}
	if m.cut {
		return nil, pos, false
	}
	return m.paragraph(pos)
}

// special_block = header | thematic_break | list | code_block
func (m *matcher) specialBlock(pos int) (mdast.Block, int, bool) {
	if h, end, ok := m.header(pos); ok {
		return h, end, true
	}
	if tb, end, ok := m.thematicBreak(pos); ok {
		return tb, end, true
	}
	if l, end, ok := m.list(pos); ok {
		return l, end, true
	}
	if cb, end, ok := m.codeBlock(pos); ok {
		return cb, end, true
	}
	m.fail(pos, RuleSpecialBlock)
	return nil, pos, false
}

// startsSpecialBlock reports whether a special block begins at pos.
// An opening fence counts even when it is never closed.
func (m *matcher) startsSpecialBlock(pos int) bool {
	if m.isFence(pos) {
		return true
	}
	return m.lookahead(func() bool {
		_, _, ok := m.specialBlock(pos)
		return ok
	})
}

// header_hashes = "#"{1,6}
func (m *matcher) headerHashes(pos int) (int, bool) {
	end := pos
	for m.at(end) && m.src[end] == '#' && end-pos < 6 {
		end++
	}
	if end == pos {
		m.fail(pos, RuleHeaderHashes)
		return pos, false
	}
	return end, true
}

// header = header_hashes space+ line
func (m *matcher) header(pos int) (*mdast.Heading, int, bool) {
	hashesEnd, ok := m.headerHashes(pos)
	if !ok {
		return nil, pos, false
	}
	if !m.at(hashesEnd) || !isSpace(m.src[hashesEnd]) {
		// Also rejects a seventh '#'.
		m.fail(hashesEnd, RuleHeader)
		return nil, pos, false
	}

	text, end, ok := m.line(m.skipSpaces(hashesEnd))
	if !ok {
		m.fail(hashesEnd, RuleHeader)
		return nil, pos, false
	}

	return &mdast.Heading{
		Level: hashesEnd - pos,
		Text:  text,
		Range: mdast.SourceRange{StartOffset: pos, EndOffset: end},
	}, end, true
}

// thematic_break = ("-"{3,} | "*"{3,} | "_"{3,}) followed by end of line
func (m *matcher) thematicBreak(pos int) (*mdast.ThematicBreak, int, bool) {
	if !m.at(pos) {
		m.fail(pos, RuleThematicBreak)
		return nil, pos, false
	}

	marker := m.src[pos]
	if marker != '-' && marker != '*' && marker != '_' {
		m.fail(pos, RuleThematicBreak)
		return nil, pos, false
	}

	end := pos
	for m.at(end) && m.src[end] == marker {
		end++
	}
	if end-pos < 3 || end != m.lineEnd(pos) {
		m.fail(pos, RuleThematicBreak)
		return nil, pos, false
	}

	return &mdast.ThematicBreak{Range: mdast.SourceRange{StartOffset: pos, EndOffset: end}}, end, true
}

// list = ordered_list | unordered_list
func (m *matcher) list(pos int) (*mdast.List, int, bool) {
	if l, end, ok := m.listOf(pos, true); ok {
		return l, end, true
	}
	if l, end, ok := m.listOf(pos, false); ok {
		return l, end, true
	}
	m.fail(pos, RuleList)
	return nil, pos, false
}

// ordered_list   = (digit+ "." space+ line newline?)+
// unordered_list = (("-" | "*" | "+") space+ line newline?)+
func (m *matcher) listOf(pos int, ordered bool) (*mdast.List, int, bool) {
	rule := RuleUnorderedList
	if ordered {
		rule = RuleOrderedList
	}

	item, end, ok := m.listItem(pos, ordered)
	if !ok {
		m.fail(pos, rule)
		return nil, pos, false
	}

	list := &mdast.List{Ordered: ordered, Items: []*mdast.ListItem{item}}
	for {
		n := m.newlineLen(end)
		if n == 0 {
			break
		}
		next, nextEnd, ok := m.listItem(end+n, ordered)
		if !ok {
			break
		}
		list.Items = append(list.Items, next)
		end = nextEnd
	}

	list.Range = mdast.SourceRange{StartOffset: pos, EndOffset: end}
	return list, end, true
}

func (m *matcher) listItem(pos int, ordered bool) (*mdast.ListItem, int, bool) {
	p := pos
	if ordered {
		for m.at(p) && isDigit(m.src[p]) {
			p++
		}
		if p == pos || !m.at(p) || m.src[p] != '.' {
			return nil, pos, false
		}
		p++
	} else {
		if !m.at(p) || (m.src[p] != '-' && m.src[p] != '*' && m.src[p] != '+') {
			return nil, pos, false
		}
		p++
	}

	if !m.at(p) || !isSpace(m.src[p]) {
		return nil, pos, false
	}

	text, end, ok := m.line(m.skipSpaces(p))
	if !ok {
		return nil, pos, false
	}

	return &mdast.ListItem{
		Text:  text,
		Range: mdast.SourceRange{StartOffset: pos, EndOffset: end},
	}, end, true
}

// isFence reports whether the line at pos is exactly three backticks.
func (m *matcher) isFence(pos int) bool {
	return m.lineEnd(pos)-pos == len(fence) && m.src[pos:pos+len(fence)] == fence
}

// code_block = fence newline (raw_line newline)* fence
//
// Once the opening fence is seen the rule commits: a missing closing fence
// fails the whole match.
func (m *matcher) codeBlock(pos int) (*mdast.CodeBlock, int, bool) {
	if !m.isFence(pos) {
		m.fail(pos, RuleCodeBlock)
		return nil, pos, false
	}

	block := &mdast.CodeBlock{Lines: []string{}}

	end := pos + len(fence)
	for {
		n := m.newlineLen(end)
		if n == 0 {
			m.failPos, m.failRule = len(m.src), RuleCodeBlock
			m.cut = true
			return nil, pos, false
		}

		p := end + n
		end = m.lineEnd(p)
		if m.isFence(p) {
			break
		}
		block.Lines = append(block.Lines, m.src[p:end])
	}

	block.Range = mdast.SourceRange{StartOffset: pos, EndOffset: end}
	return block, end, true
}

// paragraph = (!special_block line newline?)+, stopping at a blank line
func (m *matcher) paragraph(pos int) (*mdast.Paragraph, int, bool) {
	if m.isBlank(pos) {
		m.fail(pos, RuleParagraph)
		return nil, pos, false
	}

	first, end, ok := m.line(pos)
	if !ok {
		m.fail(pos, RuleParagraph)
		return nil, pos, false
	}

	para := &mdast.Paragraph{Lines: []mdast.Inlines{first}}
	for {
		n := m.newlineLen(end)
		if n == 0 {
			break
		}
		next := end + n
		if m.isBlank(next) || m.startsSpecialBlock(next) {
			break
		}

		line, lineEnd, ok := m.line(next)
		if !ok {
			return nil, pos, false
		}
		para.Lines = append(para.Lines, line)
		end = lineEnd
	}

	para.Range = mdast.SourceRange{StartOffset: pos, EndOffset: end}
	return para, end, true
}
