package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// The scanners below take the remaining input and return what is left after
// a successful match. A failed match leaves the input untouched.

// eol matches a line ending.
func eol(in string) (string, bool) {
	switch {
	case strings.HasPrefix(in, "\n"):
		return in[1:], true
	case strings.HasPrefix(in, "\r\n"):
		return in[2:], true
	}
	return in, false
}

// eofOrEOL matches a line ending or the end of input.
func eofOrEOL(in string) (string, bool) {
	if in == "" {
		return in, true
	}
	return eol(in)
}

// isEOL reports whether in starts with a line ending.
func isEOL(in string) bool {
	return strings.HasPrefix(in, "\n") || strings.HasPrefix(in, "\r\n")
}

// space0 skips spaces and tabs.
func space0(in string) string {
	return strings.TrimLeft(in, " \t")
}

// spaces skips between lo and hi ' ' characters; it fails when fewer than lo
// are present. The number of spaces consumed is returned.
func spaces(in string, lo, hi int) (string, int, bool) {
	n := 0
	for n < hi && n < len(in) && in[n] == ' ' {
		n++
	}
	if n < lo {
		return in, 0, false
	}
	return in[n:], n, true
}

// skipIndent skips up to three leading spaces.
func skipIndent(in string) string {
	rest, _, _ := spaces(in, 0, 3)
	return rest
}

// lineLen returns the length of the current line without its terminator.
func lineLen(in string) int {
	i := strings.IndexByte(in, '\n')
	if i < 0 {
		return len(in)
	}
	if i > 0 && in[i-1] == '\r' {
		return i - 1
	}
	return i
}

// line0 consumes the rest of the line, possibly empty, and its terminator.
func line0(in string) (content, rest string) {
	n := lineLen(in)
	rest, _ = eofOrEOL(in[n:])
	return in[:n], rest
}

// line1 is line0 for non-empty lines.
func line1(in string) (content, rest string, ok bool) {
	content, rest = line0(in)
	if content == "" {
		return "", in, false
	}
	return content, rest, true
}

// blankLine matches a line holding only spaces and tabs.
func blankLine(in string) (string, bool) {
	return eofOrEOL(space0(in))
}

// skipBlankLines consumes any run of blank lines.
func skipBlankLines(in string) string {
	for in != "" {
		rest, ok := blankLine(in)
		if !ok {
			break
		}
		in = rest
	}
	return in
}

// runOf counts the leading run of c.
func runOf(in string, c byte) int {
	n := 0
	for n < len(in) && in[n] == c {
		n++
	}
	return n
}

// consumed returns the prefix of in that was consumed to reach rest.
func consumed(in, rest string) string {
	return in[:len(in)-len(rest)]
}

// noRune stands for the missing neighbour at either end of the content.
const noRune rune = -1

// lastRune returns the final rune of s, or noRune for an empty string.
func lastRune(s string) rune {
	if s == "" {
		return noRune
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// firstRune returns the first rune of s and whether there is one.
func firstRune(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

// isASCIIPunct reports whether c is an ASCII punctuation character.
func isASCIIPunct(c byte) bool {
	return c >= '!' && c <= '/' || c >= ':' && c <= '@' || c >= '[' && c <= '`' || c >= '{' && c <= '~'
}

// isPunct reports whether r is ASCII or Unicode punctuation.
func isPunct(r rune) bool {
	if r < utf8.RuneSelf {
		return isASCIIPunct(byte(r))
	}
	return unicode.IsPunct(r)
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isASCIIAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isASCIIAlnum(c byte) bool {
	return isASCIIAlpha(c) || isASCIIDigit(c)
}

// joinLines joins lines with a single '\n'.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
