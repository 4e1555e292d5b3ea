package grammar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdhtml/pkg/grammar"
)

func TestMatchRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule grammar.Rule
		pass []string
		fail []string
	}{
		{grammar.RuleSpace, []string{" ", "\t"}, []string{"\n", ""}},
		{grammar.RuleNewline, []string{"\n", "\r\n"}, []string{"  ", "\r"}},
		{grammar.RuleBlankline, []string{"\n", "\n\r\n\n", "   \t  \n\t   \t\r\n   \t\n"}, []string{"abc\n", "   "}},
		{grammar.RuleBlock, []string{"abc\ndef", "# Hello world", "1. Hello\n2. World"}, []string{"\n"}},
		{grammar.RuleSpecialBlock, []string{"# Hello world", "1. Hello\n2. World", "---", "```\nx\n```"}, []string{"abc\ndef"}},
		{
			grammar.RuleHeader,
			[]string{"# Header 1", "## Header 2", "### Header 3", "###### Header 6", "#\tTabbed"},
			[]string{"#InvalidHeader", "####### Too many hashtags", "# ", "Header"},
		},
		{grammar.RuleHeaderHashes, []string{"#", "##", "###", "######"}, []string{"abc"}},
		{grammar.RuleThematicBreak, []string{"---", "*******", "___"}, []string{"--", "++++", "-*-", "--- x"}},
		{
			grammar.RuleList,
			[]string{"- Item 1\n- Item 2", "1. Item A\n2. Item B", "+ Item X\n+ Item Y"},
			[]string{"1 ItemNoSpace", "+Item"},
		},
		{
			grammar.RuleUnorderedList,
			[]string{"- Item 1\n- Item 2", "* Item A\n* Item B", "+ Item X\n+ Item Y"},
			[]string{"-ItemNoSpace", "+Item", "1. Item"},
		},
		{
			grammar.RuleOrderedList,
			[]string{"1. Item 1\n2. Item 2", "10. Item A\n11. Item B"},
			[]string{"1 ItemMissingPeriod", ". Item", "- Item"},
		},
		{
			grammar.RuleCodeBlock,
			[]string{"```\nCode block content\n```", "```\nMultiline\nCode block\n```"},
			[]string{"```\nUnclosed code block", "``` Code without newline", "````\nx\n````"},
		},
		{
			grammar.RuleParagraph,
			[]string{"This is a simple paragraph.", "A paragraph with multiple lines\nspanning two or more lines."},
			[]string{"", "  \n"},
		},
		{
			grammar.RuleLine,
			[]string{
				"This is a [link](https://example.com).",
				"Some **bold text** here.",
				"An _italic word_.",
				"Combined **bold and _italic_** formatting.",
			},
			[]string{"\nHello World"},
		},
		{grammar.RuleInline, []string{"plain", "[a](b)", "**b**", "_i_"}, []string{"\nHello World"}},
		{
			grammar.RuleLink,
			[]string{"[link](https://example.com)", "[]()"},
			[]string{"[link]https://example.com", "link(https://example.com)", "[link](https://example.com"},
		},
		{grammar.RuleLinkText, []string{"asd]", "asd"}, nil},
		{grammar.RuleLinkHref, []string{"asd)", "asd"}, nil},
		{grammar.RuleBold, []string{"**bold**", "__bold__"}, []string{"**bold", "bold__", "**bold__"}},
		{grammar.RuleItalic, []string{"*italic*", "_italic_"}, []string{"*italic", "italic_", "*italic_"}},
		{grammar.RuleText, []string{"hello", "even multi word"}, []string{"\nabc", "*abc"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.rule.String(), func(t *testing.T) {
			t.Parallel()

			for _, input := range testCase.pass {
				assert.NoError(t, grammar.MatchRule(testCase.rule, input), "input %q", input)
			}

			for _, input := range testCase.fail {
				err := grammar.MatchRule(testCase.rule, input)

				var gerr *grammar.Error
				assert.True(t, errors.As(err, &gerr), "input %q should not match", input)
			}
		})
	}
}

func TestMatchRule_Markdown(t *testing.T) {
	t.Parallel()

	assert.NoError(t, grammar.MatchRule(grammar.RuleMarkdown, "# Title\n\nbody\n"))
	assert.Error(t, grammar.MatchRule(grammar.RuleMarkdown, "```\nopen"))
}

func TestRule_String(t *testing.T) {
	t.Parallel()

	rules := grammar.Rules()
	assert.Len(t, rules, int(grammar.RuleBlankline)+1)

	seen := make(map[string]bool)
	for _, rule := range rules {
		name := rule.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate rule name %q", name)
		seen[name] = true
	}

	assert.Equal(t, "thematic_break", grammar.RuleThematicBreak.String())
	assert.Equal(t, "unknown", grammar.Rule(-1).String())
}
