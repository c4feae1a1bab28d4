package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxLabelLength caps the number of characters kept from a link label.
const maxLabelLength = 999

// linkLabel parses "[...]". It returns the text between the brackets as
// written and the label with backslash escapes resolved. Unescaped brackets
// and control characters are not allowed inside, and the label must contain
// a non-whitespace character.
func linkLabel(in string) (rest, raw, label string, ok bool) {
	if !strings.HasPrefix(in, "[") {
		return in, "", "", false
	}

	var sb strings.Builder
	count := 0
	keep := func(r rune) {
		if count < maxLabelLength {
			sb.WriteRune(r)
			count++
		}
	}

	p := in[1:]
	for {
		if p == "" {
			return in, "", "", false
		}
		if p[0] == ']' {
			break
		}
		if p[0] == '\\' && len(p) > 1 {
			r, size := utf8.DecodeRuneInString(p[1:])
			keep(r)
			p = p[1+size:]
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		if r == '[' || unicode.IsControl(r) {
			return in, "", "", false
		}
		keep(r)
		p = p[size:]
	}

	raw = in[1 : len(in)-len(p)]
	label = sb.String()
	if strings.TrimSpace(label) == "" {
		return in, "", "", false
	}
	return p[1:], raw, label, true
}

// linkTitle parses a title in double quotes, single quotes or parentheses.
// Escaped punctuation is resolved.
func linkTitle(in string) (string, string, bool) {
	if in == "" {
		return in, "", false
	}
	var closer byte
	switch in[0] {
	case '"':
		closer = '"'
	case '\'':
		closer = '\''
	case '(':
		closer = ')'
	default:
		return in, "", false
	}

	var sb strings.Builder
	p := in[1:]
	for {
		if p == "" {
			return in, "", false
		}
		c := p[0]
		if c == closer {
			return p[1:], sb.String(), true
		}
		if c == '\\' && len(p) > 1 && isASCIIPunct(p[1]) {
			sb.WriteByte(p[1])
			p = p[2:]
			continue
		}
		sb.WriteByte(c)
		p = p[1:]
	}
}

// linkDestination parses "<...>" or a bare destination. The angle form
// resolves escaped angle brackets; the bare form is returned as written.
func linkDestination(in string) (string, string, bool) {
	if strings.HasPrefix(in, "<") {
		return angleDestination(in)
	}
	return bareDestination(in)
}

func angleDestination(in string) (string, string, bool) {
	var sb strings.Builder
	p := in[1:]
	for {
		if p == "" {
			return in, "", false
		}
		c := p[0]
		switch {
		case c == '>':
			return p[1:], sb.String(), true
		case c == '\\' && len(p) > 1 && (p[1] == '<' || p[1] == '>'):
			sb.WriteByte(p[1])
			p = p[2:]
		case c == '\n' || c == '<':
			return in, "", false
		default:
			sb.WriteByte(c)
			p = p[1:]
		}
	}
}

func isDestinationChar(r rune) bool {
	return r >= utf8.RuneSelf || (r > ' ' && r != 0x7f && r != '<')
}

func bareDestination(in string) (string, string, bool) {
	rest, ok := destinationRun(in, 0)
	if !ok || rest == in {
		return in, "", false
	}
	return rest, consumed(in, rest), true
}

// destinationRun scans destination characters. Parentheses must balance;
// depth is the number of parentheses already open.
func destinationRun(in string, depth int) (string, bool) {
	p := in
	for p != "" {
		r, size := utf8.DecodeRuneInString(p)
		switch {
		case r == '\\' && len(p) > 1:
			_, esc := utf8.DecodeRuneInString(p[1:])
			p = p[1+esc:]
		case r == '(':
			rest, ok := destinationRun(p[1:], depth+1)
			if !ok {
				return in, false
			}
			p = rest
		case r == ')':
			if depth == 0 {
				return p, true
			}
			return p[1:], true
		case isDestinationChar(r):
			p = p[size:]
		default:
			if depth > 0 {
				return in, false
			}
			return p, true
		}
	}
	if depth > 0 {
		return in, false
	}
	return p, true
}
