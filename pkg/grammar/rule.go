package grammar

// Rule identifies one production of the Markdown grammar.
type Rule int

// Grammar rules, from the document root down to the whitespace primitives.
const (
	RuleMarkdown Rule = iota
	RuleBlock
	RuleSpecialBlock
	RuleHeader
	RuleHeaderHashes
	RuleThematicBreak
	RuleList
	RuleOrderedList
	RuleUnorderedList
	RuleCodeBlock
	RuleParagraph
	RuleLine
	RuleInline
	RuleLink
	RuleLinkText
	RuleLinkHref
	RuleBold
	RuleItalic
	RuleText
	RuleSpace
	RuleNewline
	RuleBlankline
)

var ruleNames = [...]string{
	RuleMarkdown:      "markdown",
	RuleBlock:         "block",
	RuleSpecialBlock:  "special_block",
	RuleHeader:        "header",
	RuleHeaderHashes:  "header_hashes",
	RuleThematicBreak: "thematic_break",
	RuleList:          "list",
	RuleOrderedList:   "ordered_list",
	RuleUnorderedList: "unordered_list",
	RuleCodeBlock:     "code_block",
	RuleParagraph:     "paragraph",
	RuleLine:          "line",
	RuleInline:        "inline",
	RuleLink:          "link",
	RuleLinkText:      "link_text",
	RuleLinkHref:      "link_href",
	RuleBold:          "bold",
	RuleItalic:        "italic",
	RuleText:          "text",
	RuleSpace:         "space",
	RuleNewline:       "newline",
	RuleBlankline:     "blankline",
}

// String returns the rule name as used in error messages.
func (r Rule) String() string {
	if r >= 0 && int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}

// Rules returns every grammar rule in declaration order.
func Rules() []Rule {
	rules := make([]Rule, 0, len(ruleNames))
	for r := range ruleNames {
		rules = append(rules, Rule(r))
	}
	return rules
}
