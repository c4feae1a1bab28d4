package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// text is the inline fallback. It collects characters up to the first
// position where another enabled inline rule matches. Escaped punctuation is
// kept as written so that escaped delimiters never open markup; entity
// references are decoded, with ASCII punctuation results kept escaped. At
// least one character is always consumed.
func (s *state) text(in string, prev rune) (string, ast.Inline, bool) {
	var sb strings.Builder
	p := in
	for p != "" {
		if p[0] == '\\' && len(p) > 1 && isASCIIPunct(p[1]) {
			sb.WriteString(p[:2])
			p = p[2:]
			continue
		}
		if p[0] == '&' {
			if rest, value, ok := s.entity(p); ok {
				// A decoded punctuation character is stored escaped so it
				// reads as text wherever Text values are printed back.
				if len(value) == 1 && isASCIIPunct(value[0]) {
					sb.WriteByte('\\')
				}
				sb.WriteString(value)
				p = rest
				continue
			}
		}

		before := prev
		if p != in {
			before = lastRune(consumed(in, p))
		}
		if s.startsInline(p, before) {
			break
		}

		if p[0] == '`' {
			n := runOf(p, '`')
			sb.WriteString(p[:n])
			p = p[n:]
			continue
		}
		_, size := utf8.DecodeRuneInString(p)
		sb.WriteString(p[:size])
		p = p[size:]
	}

	if p == in {
		_, size := utf8.DecodeRuneInString(p)
		sb.WriteString(p[:size])
		p = p[size:]
	}
	return p, &ast.Text{Value: sb.String()}, true
}

// startsInline reports whether an enabled inline rule other than text
// matches at in.
func (s *state) startsInline(in string, prev rune) bool {
	switch in[0] {
	case '<':
		if s.inlineOn(RuleAutolink) {
			if _, _, ok := autolinkURL(in); ok {
				return true
			}
		}
		if s.inlineOn(RuleInlineHTML) {
			if _, ok := rawInlineHTML(in); ok {
				return true
			}
		}
	case '[':
		if s.inlineOn(RuleLink) {
			if _, _, ok := s.linkParts(in); ok {
				return true
			}
		}
		if s.inlineOn(RuleFootnoteReference) {
			if _, _, ok := s.footnoteReference(in, prev); ok {
				return true
			}
		}
		if s.inlineOn(RuleReferenceLink) {
			if _, _, ok := s.referenceLink(in, prev); ok {
				return true
			}
		}
	case '\\', ' ':
		if s.inlineOn(RuleHardBreak) {
			if _, ok := hardBreakRun(in); ok {
				return true
			}
		}
	case '!':
		if s.inlineOn(RuleImage) {
			if _, _, ok := s.image(in, prev); ok {
				return true
			}
		}
	case '`':
		if s.inlineOn(RuleCodeSpan) {
			if _, _, ok := codeSpanRun(in); ok {
				return true
			}
		}
	case '*', '_':
		if s.inlineOn(RuleEmphasis) {
			if _, _, ok := s.emphasis(in, prev); ok {
				return true
			}
		}
	case '~':
		if s.inlineOn(RuleStrikethrough) {
			if _, _, ok := s.strikethrough(in, prev); ok {
				return true
			}
		}
	}

	if _, _, ok := s.customInline(in, prev); ok {
		return true
	}
	return false
}

// entity decodes a named reference such as &amp; or a numeric one such as
// &#35; or &#x23;.
func (s *state) entity(in string) (string, string, bool) {
	if strings.HasPrefix(in, "&#") {
		return numericEntity(in)
	}
	if s.cfg.entities == nil || len(in) < 3 || !isASCIIAlpha(in[1]) {
		return in, "", false
	}
	n := 2
	for n < len(in) && isASCIIAlnum(in[n]) {
		n++
	}
	if n == len(in) || in[n] != ';' {
		return in, "", false
	}
	value, ok := s.cfg.entities.Lookup(in[1:n])
	if !ok {
		return in, "", false
	}
	return in[n+1:], value, true
}

func numericEntity(in string) (string, string, bool) {
	p := in[2:]
	base, maxDigits := 10, 7
	if p != "" && (p[0] == 'x' || p[0] == 'X') {
		p = p[1:]
		base, maxDigits = 16, 6
	}

	n := 0
	for n < len(p) && n <= maxDigits && isDigitIn(p[n], base) {
		n++
	}
	if n == 0 || n > maxDigits || n == len(p) || p[n] != ';' {
		return in, "", false
	}

	code, err := strconv.ParseUint(p[:n], base, 32)
	if err != nil {
		return in, "", false
	}
	r := rune(code)
	if r == 0 {
		r = utf8.RuneError
	}
	if !utf8.ValidRune(r) {
		return in, "", false
	}
	return p[n+1:], string(r), true
}

func isDigitIn(c byte, base int) bool {
	if isASCIIDigit(c) {
		return true
	}
	if base == 16 {
		return c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
	}
	return false
}
