// Package langdetect guesses the programming language of code block bodies.
// The dialect has no info strings on fences, so the guess is the only
// language information available to tools such as the inspect command.
package langdetect

import (
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/gomdhtml/pkg/mdast"
)

// Unknown is reported when no language could be determined.
const Unknown = "text"

// Method records how a guess was reached.
type Method string

const (
	MethodNone       Method = "none"
	MethodShebang    Method = "shebang"
	MethodPattern    Method = "pattern"
	MethodClassifier Method = "classifier"
)

// Guess is the detected language of a code body.
type Guess struct {
	Language string `json:"language"`
	Method   Method `json:"method"`
}

// classifierCandidates bounds the enry classifier to languages commonly
// found in documentation.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// signature is a pattern that is strongly indicative of one language.
type signature struct {
	language string
	pattern  *regexp.Regexp
}

// Signatures are tried in order; the first match wins.
var signatures = []signature{
	{"go", regexp.MustCompile(`(?m)^\s*package \w+\s*$`)},
	{"python", regexp.MustCompile(`(?m)^\s*def \w+\(.*\):|__name__|^from \S+ import `)},
	{"html", regexp.MustCompile(`(?i)<!doctype html|<html|<head>|<body>`)},
	{"json", regexp.MustCompile(`^\s*[\[{]\s*"`)},
	{"dockerfile", regexp.MustCompile(`(?m)^FROM \S+|^WORKDIR \S+`)},
	{"sql", regexp.MustCompile(`(?i)^\s*(select|insert|update|delete|create) `)},
	{"rust", regexp.MustCompile(`fn main\(\)|println!|let mut `)},
	{"javascript", regexp.MustCompile(`=>|console\.log|(?m)^\s*(const|let) \w+ =`)},
}

// yamlKey matches a "key: value" or "key:" line.
var yamlKey = regexp.MustCompile(`^[\w.-]+:(\s|$)`)

// Detect guesses the language of content.
func Detect(content string) Guess {
	if strings.TrimSpace(content) == "" {
		return Guess{Language: Unknown, Method: MethodNone}
	}

	data := []byte(content)

	if lang, safe := enry.GetLanguageByShebang(data); safe {
		return Guess{Language: normalize(lang), Method: MethodShebang}
	}

	for _, sig := range signatures {
		if sig.pattern.MatchString(content) {
			return Guess{Language: sig.language, Method: MethodPattern}
		}
	}
	if looksLikeYAML(content) {
		return Guess{Language: "yaml", Method: MethodPattern}
	}

	if lang, safe := enry.GetLanguageByClassifier(data, classifierCandidates); safe && lang != "" {
		return Guess{Language: normalize(lang), Method: MethodClassifier}
	}

	return Guess{Language: Unknown, Method: MethodNone}
}

// DetectBlock guesses the language of a code block body.
func DetectBlock(block *mdast.CodeBlock) Guess {
	if block == nil {
		return Guess{Language: Unknown, Method: MethodNone}
	}
	return Detect(strings.Join(block.Lines, "\n"))
}

func looksLikeYAML(content string) bool {
	keys := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if yamlKey.MatchString(line) || strings.HasPrefix(line, "- ") {
			keys++
		}
	}
	return keys >= 2
}

// normalize converts enry language names to lowercase tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
