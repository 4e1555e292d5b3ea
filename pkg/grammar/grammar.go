// Package grammar recognizes the Markdown dialect and builds its document tree.
//
// The grammar is a PEG: every rule is an ordered choice where the first
// matching alternative wins. Each rule is a method on matcher that takes a
// byte offset and reports the node it built, the offset where it stopped,
// and whether it matched. The matcher keeps the furthest offset at which
// any rule failed so that a rejected document can be reported precisely.
//
// Match never returns a partial tree: either the whole input conforms and a
// Document is returned, or a *Error describes the first point of failure.
package grammar

import (
	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

// Match recognizes text against the grammar and returns its document tree.
// On failure the error is a *Error.
func Match(text string) (*mdast.Document, error) {
	m := newMatcher(text)

	doc, ok := m.markdown()
	if !ok {
		return nil, m.err()
	}

	return doc, nil
}

// MatchRule reports whether rule recognizes a prefix of input.
// It exists to exercise single productions; documents go through Match.
// On failure the error is a *Error.
func MatchRule(rule Rule, input string) error {
	m := newMatcher(input)

	if !m.matchRule(rule) {
		if m.failPos < 0 {
			m.fail(0, rule)
		}
		return m.err()
	}

	return nil
}

func (m *matcher) matchRule(rule Rule) bool {
	var ok bool

	switch rule {
	case RuleMarkdown:
		_, ok = m.markdown()
	case RuleBlock:
		_, _, ok = m.block(0)
	case RuleSpecialBlock:
		_, _, ok = m.specialBlock(0)
	case RuleHeader:
		_, _, ok = m.header(0)
	case RuleHeaderHashes:
		_, ok = m.headerHashes(0)
	case RuleThematicBreak:
		_, _, ok = m.thematicBreak(0)
	case RuleList:
		_, _, ok = m.list(0)
	case RuleOrderedList:
		_, _, ok = m.listOf(0, true)
	case RuleUnorderedList:
		_, _, ok = m.listOf(0, false)
	case RuleCodeBlock:
		_, _, ok = m.codeBlock(0)
	case RuleParagraph:
		_, _, ok = m.paragraph(0)
	case RuleLine:
		_, _, ok = m.line(0)
	case RuleInline:
		_, _, ok = m.inline(0, m.lineEnd(0))
	case RuleLink:
		_, _, ok = m.link(0, m.lineEnd(0))
	case RuleLinkText:
		// Any run of characters other than ']' matches, including none.
		ok = true
	case RuleLinkHref:
		ok = true
	case RuleBold:
		_, _, ok = m.delimited(0, m.lineEnd(0), boldDelimiters, RuleBold)
	case RuleItalic:
		_, _, ok = m.delimited(0, m.lineEnd(0), italicDelimiters, RuleItalic)
	case RuleText:
		_, _, ok = m.text(0, m.lineEnd(0))
	case RuleSpace:
		ok = m.at(0) && isSpace(m.src[0])
	case RuleNewline:
		ok = m.newlineLen(0) > 0
	case RuleBlankline:
		_, ok = m.blankline(0)
	}

	if !ok {
		m.fail(0, rule)
	}

	return ok
}
