package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// autolink parses <scheme:rest> and <user@host>.
func (s *state) autolink(in string, _ rune) (string, ast.Inline, bool) {
	rest, url, ok := autolinkURL(in)
	if !ok {
		return in, nil, false
	}
	return rest, &ast.Autolink{URL: url}, true
}

func autolinkURL(in string) (string, string, bool) {
	if !strings.HasPrefix(in, "<") {
		return in, "", false
	}
	body := in[1:]
	end := strings.IndexByte(body, '>')
	if end < 0 {
		return in, "", false
	}
	url := body[:end]
	if !isURI(url) && !isEmail(url) {
		return in, "", false
	}
	return body[end+1:], url, true
}

// isURI reports whether s is a scheme of two or more characters, a colon,
// and no whitespace, control characters or angle brackets.
func isURI(s string) bool {
	colon := strings.IndexByte(s, ':')
	if colon < 2 || !isASCIIAlpha(s[0]) {
		return false
	}
	for i := 1; i < colon; i++ {
		c := s[i]
		if !isASCIIAlnum(c) && c != '+' && c != '.' && c != '-' {
			return false
		}
	}
	for i := colon + 1; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c == 0x7f || c == '<' || c == '>' {
			return false
		}
	}
	return true
}

// isEmail accepts the simplified local@domain form.
func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at < 1 || at == len(s)-1 {
		return false
	}
	for i := 0; i < at; i++ {
		c := s[i]
		if !isASCIIAlnum(c) && c != '_' && c != '.' && c != '-' {
			return false
		}
	}
	for i := at + 1; i < len(s); i++ {
		c := s[i]
		if !isASCIIAlnum(c) && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

// inlineHTML parses a raw tag, comment, processing instruction, declaration
// or CDATA section.
func (s *state) inlineHTML(in string, _ rune) (string, ast.Inline, bool) {
	if !strings.HasPrefix(in, "<") {
		return in, nil, false
	}
	rest, ok := rawInlineHTML(in)
	if !ok {
		return in, nil, false
	}
	return rest, &ast.HTML{Raw: consumed(in, rest)}, true
}

func rawInlineHTML(in string) (string, bool) {
	if rest, _, ok := htmlOpenTag(in); ok {
		return rest, true
	}
	if rest, _, ok := htmlClosingTag(in); ok {
		return rest, true
	}
	for _, scan := range []func(string) (string, bool){
		htmlComment,
		htmlProcessing,
		htmlDeclaration,
		htmlCDATA,
	} {
		if rest, ok := scan(in); ok {
			return rest, true
		}
	}
	return in, false
}

// hardBreak parses a backslash or two or more spaces before a line ending.
func (s *state) hardBreak(in string, _ rune) (string, ast.Inline, bool) {
	rest, ok := hardBreakRun(in)
	if !ok {
		return in, nil, false
	}
	return rest, &ast.LineBreak{}, true
}

func hardBreakRun(in string) (string, bool) {
	if strings.HasPrefix(in, `\`) {
		return eol(in[1:])
	}
	n := runOf(in, ' ')
	if n < 2 {
		return in, false
	}
	rest, ok := eol(in[n:])
	if !ok {
		return in, false
	}
	return rest, true
}

// codeSpan parses a run of N backticks, content, and a closing run of
// exactly N backticks. Line endings in the content become spaces and one
// space is stripped from each end when both ends have one. A blank line
// inside the content aborts the span.
func (s *state) codeSpan(in string, _ rune) (string, ast.Inline, bool) {
	rest, value, ok := codeSpanRun(in)
	if !ok {
		return in, nil, false
	}
	return rest, &ast.Code{Value: value}, true
}

func codeSpanRun(in string) (string, string, bool) {
	n := runOf(in, '`')
	if n == 0 {
		return in, "", false
	}

	p := in[n:]
	i := 0
	for i < len(p) {
		switch {
		case p[i] == '`':
			m := runOf(p[i:], '`')
			if m == n && i > 0 {
				return p[i+m:], codeSpanValue(p[:i]), true
			}
			i += m
		case isEOL(p[i:]):
			after, _ := eol(p[i:])
			if _, blank := eol(space0(after)); blank {
				return in, "", false
			}
			i = len(p) - len(after)
		default:
			i++
		}
	}
	return in, "", false
}

func codeSpanValue(content string) string {
	content = strings.ReplaceAll(content, "\r\n", " ")
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > 1 && content[0] == ' ' && content[len(content)-1] == ' ' && strings.Trim(content, " ") != "" {
		content = content[1 : len(content)-1]
	}
	return content
}

// strikethrough parses "~~text~~". Neither delimiter may be followed by
// another tilde.
func (s *state) strikethrough(in string, _ rune) (string, ast.Inline, bool) {
	if !strings.HasPrefix(in, "~~") || strings.HasPrefix(in, "~~~") {
		return in, nil, false
	}
	body := in[2:]

	i := 0
	for i < len(body) {
		switch {
		case strings.HasPrefix(body[i:], `\~`):
			i += 2
		case strings.HasPrefix(body[i:], "~~") && !strings.HasPrefix(body[i:], "~~~") && i > 0:
			children, ok := s.inlines1(body[:i])
			if !ok {
				return in, nil, false
			}
			return body[i+2:], &ast.Strikethrough{Children: children}, true
		default:
			i++
		}
	}
	return in, nil, false
}
