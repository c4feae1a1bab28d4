package ast

import "strings"

// PlainText returns the textual content of a sequence of inlines with all
// markup removed. Line breaks become newlines; footnote references and
// empty placeholders contribute nothing.
func PlainText(inlines []Inline) string {
	var sb strings.Builder
	writePlainText(&sb, inlines)
	return sb.String()
}

func writePlainText(sb *strings.Builder, inlines []Inline) {
	for _, in := range inlines {
		switch node := in.(type) {
		case *Text:
			sb.WriteString(node.Value)
		case *Code:
			sb.WriteString(node.Value)
		case *LineBreak:
			sb.WriteByte('\n')
		case *Link:
			writePlainText(sb, node.Children)
		case *LinkReference:
			writePlainText(sb, node.Text)
		case *Image:
			sb.WriteString(node.Alt)
		case *Emphasis:
			writePlainText(sb, node.Children)
		case *Strong:
			writePlainText(sb, node.Children)
		case *Strikethrough:
			writePlainText(sb, node.Children)
		case *Autolink:
			sb.WriteString(node.URL)
		}
	}
}

// UnescapePunctuation resolves backslash escapes of ASCII punctuation.
func UnescapePunctuation(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && IsASCIIPunct(s[i+1]) {
			i++
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// IsASCIIPunct reports whether c is an ASCII punctuation character.
func IsASCIIPunct(c byte) bool {
	return c >= '!' && c <= '/' || c >= ':' && c <= '@' || c >= '[' && c <= '`' || c >= '{' && c <= '~'
}
