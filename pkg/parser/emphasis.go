package parser

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// emphasisTags are tried longest first: a triple delimiter gives strong
// emphasis wrapping emphasis, a double one strong emphasis, a single one
// emphasis.
//
//nolint:gochecknoglobals // Read-only lookup table.
var emphasisTags = []string{"***", "___", "**", "__", "*", "_"}

// emphasis parses text between matching '*' or '_' delimiters. An opening
// delimiter must be followed by a non-blank; '_' must also be followed by a
// non-punctuation character and may not directly follow a letter or digit.
// A closing delimiter is a run of the same length followed by a blank,
// punctuation or the end of the content. The content stops at the first
// valid closing delimiter.
func (s *state) emphasis(in string, prev rune) (string, ast.Inline, bool) {
	for _, tag := range emphasisTags {
		if !strings.HasPrefix(in, tag) || !canOpen(tag[0], prev, in[len(tag):]) {
			continue
		}
		rest, children, ok := s.emphasisContent(in[len(tag):], tag)
		if !ok {
			continue
		}
		switch len(tag) {
		case 3:
			return rest, &ast.Strong{Children: []ast.Inline{&ast.Emphasis{Children: children}}}, true
		case 2:
			return rest, &ast.Strong{Children: children}, true
		default:
			return rest, &ast.Emphasis{Children: children}, true
		}
	}
	return in, nil, false
}

// emphasisContent finds the closing delimiter for tag. Delimiter runs of a
// different length are part of the content.
func (s *state) emphasisContent(in, tag string) (string, []ast.Inline, bool) {
	marker := tag[0]
	i := 0
	for i < len(in) {
		c := in[i]
		if c == '\\' && i+1 < len(in) && isASCIIPunct(in[i+1]) {
			i += 2
			continue
		}
		if c != marker {
			i++
			continue
		}
		n := runOf(in[i:], marker)
		if i > 0 && n == len(tag) && canClose(in[i+n:]) {
			children, ok := s.inlines1(in[:i])
			if !ok {
				return in, nil, false
			}
			return in[i+n:], children, true
		}
		i += n
	}
	return in, nil, false
}

func canOpen(marker byte, prev rune, after string) bool {
	next, ok := firstRune(after)
	if !ok || unicode.IsSpace(next) {
		return false
	}
	if marker == '_' {
		if isPunct(next) || isAlnum(prev) {
			return false
		}
	}
	return true
}

func canClose(after string) bool {
	next, ok := firstRune(after)
	return !ok || unicode.IsSpace(next) || isPunct(next)
}
