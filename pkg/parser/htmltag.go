package parser

import "strings"

// htmlTagName matches an ASCII letter followed by letters, digits and '-'.
func htmlTagName(in string) (string, string, bool) {
	if in == "" || !isASCIIAlpha(in[0]) {
		return in, "", false
	}
	n := 1
	for n < len(in) && (isASCIIAlnum(in[n]) || in[n] == '-') {
		n++
	}
	return in[n:], in[:n], true
}

// multispace skips spaces, tabs and line endings.
func multispace(in string) string {
	return strings.TrimLeft(in, " \t\r\n")
}

// htmlAttribute matches whitespace, an attribute name and an optional value.
func htmlAttribute(in string) (string, bool) {
	p := multispace(in)
	if p == in || p == "" {
		return in, false
	}
	if !isASCIIAlpha(p[0]) && p[0] != '_' && p[0] != ':' {
		return in, false
	}
	n := 1
	for n < len(p) && (isASCIIAlnum(p[n]) || strings.IndexByte("_.:-", p[n]) >= 0) {
		n++
	}
	p = p[n:]

	if v := multispace(p); strings.HasPrefix(v, "=") {
		if rest, ok := htmlAttributeValue(multispace(v[1:])); ok {
			p = rest
		}
	}
	return p, true
}

func htmlAttributeValue(in string) (string, bool) {
	if in == "" {
		return in, false
	}
	if q := in[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(in[1:], q)
		if end < 0 {
			return in, false
		}
		return in[end+2:], true
	}
	n := 0
	for n < len(in) && strings.IndexByte(" \t\r\n\"'=<>`", in[n]) < 0 {
		n++
	}
	if n == 0 {
		return in, false
	}
	return in[n:], true
}

// htmlOpenTag matches a complete opening tag such as <a href="x"> or <br/>.
func htmlOpenTag(in string) (string, string, bool) {
	if !strings.HasPrefix(in, "<") {
		return in, "", false
	}
	p, name, ok := htmlTagName(in[1:])
	if !ok {
		return in, "", false
	}
	for {
		rest, ok := htmlAttribute(p)
		if !ok {
			break
		}
		p = rest
	}
	p = multispace(p)
	p = strings.TrimPrefix(p, "/")
	if !strings.HasPrefix(p, ">") {
		return in, "", false
	}
	return p[1:], name, true
}

// htmlClosingTag matches a closing tag such as </div>.
func htmlClosingTag(in string) (string, string, bool) {
	if !strings.HasPrefix(in, "</") {
		return in, "", false
	}
	p, name, ok := htmlTagName(in[2:])
	if !ok {
		return in, "", false
	}
	p = multispace(p)
	if !strings.HasPrefix(p, ">") {
		return in, "", false
	}
	return p[1:], name, true
}

// scanTo returns the input after the first occurrence of end, or fails.
func scanTo(in, end string) (string, bool) {
	i := strings.Index(in, end)
	if i < 0 {
		return in, false
	}
	return in[i+len(end):], true
}

// hasPrefixFold is a case-insensitive strings.HasPrefix for ASCII prefixes.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
