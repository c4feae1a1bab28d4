// Package langdetect guesses the language of fenced code blocks that carry
// no info string.
//
// Detection tries a shebang first, then a list of cheap textual hints, and
// finally the go-enry classifier restricted to common languages.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// classifierCandidates limits the go-enry classifier to languages that
// commonly appear in documentation.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// hint recognises a language from a distinctive fragment.
type hint struct {
	lang  string
	match func(code, trimmed string) bool
}

// hints are tried in order; earlier entries are more specific.
//
//nolint:gochecknoglobals // Read-only lookup table.
var hints = []hint{
	{"go", func(_, trimmed string) bool {
		return strings.HasPrefix(trimmed, "package ")
	}},
	{"python", func(code, trimmed string) bool {
		if strings.Contains(code, "def ") && strings.Contains(code, "):") {
			return true
		}
		if strings.Contains(code, "__name__") || strings.Contains(code, "__main__") {
			return true
		}
		return strings.Contains(code, "import ") && !strings.Contains(code, "import (") &&
			(strings.Contains(code, "from ") || strings.HasPrefix(trimmed, "import "))
	}},
	{"html", func(_, trimmed string) bool {
		lower := strings.ToLower(trimmed)
		return containsAny(lower, "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed string) bool {
		return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
			strings.Contains(trimmed, `"`)
	}},
	{"dockerfile", func(code, trimmed string) bool {
		return strings.HasPrefix(trimmed, "FROM ") ||
			strings.Contains(code, "\nFROM ") && strings.Contains(code, "\nRUN ") ||
			strings.Contains(code, "WORKDIR ") && strings.Contains(code, "COPY ")
	}},
	{"sql", func(_, trimmed string) bool {
		upper := strings.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(code, _ string) bool {
		return containsAny(code, "fn main()", "println!", "let mut ")
	}},
	{"javascript", func(code, _ string) bool {
		return containsAny(code, "=>", "const ", "let ", "console.log")
	}},
	{"yaml", func(code, _ string) bool {
		return yamlKeys(code) >= 2
	}},
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// yamlKeys counts top-level "key: value" lines and root list items.
func yamlKeys(code string) int {
	n := 0
	for _, line := range strings.Split(code, "\n") {
		switch {
		case line == "" || strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t"):
		case strings.HasPrefix(line, "- "):
			n++
		case strings.HasSuffix(line, ":") && !strings.ContainsAny(line, "(){}\" "):
			n++
		case strings.Contains(line, ": ") && !strings.ContainsAny(line, "({") && !strings.HasPrefix(line, `"`):
			n++
		}
	}
	return n
}

// Detect returns a fence tag for code, or "" when no language is recognised
// with confidence.
func Detect(code string) string {
	if strings.TrimSpace(code) == "" {
		return ""
	}

	content := []byte(code)
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	trimmed := strings.TrimSpace(code)
	for _, h := range hints {
		if h.match(code, trimmed) {
			return h.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return fenceTag(lang)
	}
	return ""
}

// fenceTag converts a go-enry language name to the tag used on a fence.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
