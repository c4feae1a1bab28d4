package markdown

import (
	"strings"
	"unicode"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

type tokenKind uint8

const (
	tokenText tokenKind = iota
	// tokenSpace is a space the wrapper may turn into a line break.
	tokenSpace
	// tokenBreak is a hard line break.
	tokenBreak
)

type token struct {
	kind tokenKind
	text string
}

// tokens flattens inline content into words, break opportunities and hard
// breaks. Runs of whitespace collapse into one break opportunity.
type tokens []token

func (ts *tokens) word(s string) {
	if s != "" {
		*ts = append(*ts, token{kind: tokenText, text: s})
	}
}

func (ts *tokens) space() {
	if n := len(*ts); n > 0 && (*ts)[n-1].kind == tokenSpace {
		return
	}
	*ts = append(*ts, token{kind: tokenSpace})
}

// words splits s at whitespace.
func (ts *tokens) words(s string) {
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				ts.word(s[start:i])
				start = -1
			}
			ts.space()
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		ts.word(s[start:])
	}
}

func (ts *tokens) inlines(inlines []ast.Inline) {
	for _, in := range inlines {
		ts.inline(in)
	}
}

func (ts *tokens) inline(in ast.Inline) {
	switch node := in.(type) {
	case *ast.Text:
		ts.words(node.Value)
	case *ast.LineBreak:
		*ts = append(*ts, token{kind: tokenBreak})
	case *ast.Code:
		ts.word(codeSpan(node.Value))
	case *ast.HTML:
		lines := strings.Split(node.Raw, "\n")
		for i, line := range lines {
			if i > 0 {
				ts.space()
			}
			ts.word(strings.TrimSuffix(line, "\r"))
		}
	case *ast.Emphasis:
		ts.wrap("*", node.Children)
	case *ast.Strong:
		ts.wrap("**", node.Children)
	case *ast.Strikethrough:
		ts.wrap("~~", node.Children)
	case *ast.Link:
		ts.word("[")
		ts.inlines(node.Children)
		ts.word("](" + destination(node.Destination) + title(node.Title) + ")")
	case *ast.Image:
		ts.word("![" + node.Alt + "](" + destination(node.Destination) + title(node.Title) + ")")
	case *ast.Autolink:
		ts.word("<" + node.URL + ">")
	case *ast.FootnoteReference:
		ts.word("[^" + node.Label + "]")
	case *ast.LinkReference:
		ts.word("[")
		ts.inlines(node.Text)
		ts.word("]")
		if node.Label != ast.UnescapePunctuation(ast.PlainText(node.Text)) {
			ts.word("[" + escapeLabel(node.Label) + "]")
		}
	case *ast.EmptyInline:
	}
}

func (ts *tokens) wrap(delim string, children []ast.Inline) {
	ts.word(delim)
	ts.inlines(children)
	ts.word(delim)
}

// trim drops break opportunities at either end.
func (ts tokens) trim() tokens {
	for len(ts) > 0 && ts[0].kind == tokenSpace {
		ts = ts[1:]
	}
	for len(ts) > 0 && ts[len(ts)-1].kind == tokenSpace {
		ts = ts[:len(ts)-1]
	}
	return ts
}

// chunk returns the text that follows ts[i] up to the next break
// opportunity.
func (ts tokens) chunk(i int) string {
	var sb strings.Builder
	for ; i < len(ts) && ts[i].kind == tokenText; i++ {
		sb.WriteString(ts[i].text)
	}
	return sb.String()
}

// fill writes ts, breaking lines at spaces when the next word would pass the
// width.
func fill(w *writer, ts tokens) {
	ts = ts.trim()
	for i, t := range ts {
		switch t.kind {
		case tokenText:
			w.write(t.text)
		case tokenSpace:
			next := ts.chunk(i + 1)
			if w.fits(next) || startsBlock(next) {
				w.write(" ")
			} else {
				w.newline()
			}
		case tokenBreak:
			w.write("  ")
			w.newline()
		}
	}
}

// flat renders ts on a single line.
func flat(ts tokens) string {
	var sb strings.Builder
	for _, t := range ts.trim() {
		switch t.kind {
		case tokenText:
			sb.WriteString(t.text)
		case tokenSpace, tokenBreak:
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// startsBlock reports whether a line starting with the word s could open a
// block other than a paragraph.
func startsBlock(s string) bool {
	switch {
	case s == "":
		return false
	case s[0] == '>' || s[0] == '|' || s[0] == '<':
		return true
	case strings.HasPrefix(s, "```") || strings.HasPrefix(s, "~~~"):
		return true
	case strings.Trim(s, "#") == "" && len(s) <= 6:
		return true
	case strings.Trim(s, "-*+=_") == "":
		return true
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 0 && i == len(s)-1 && (s[i] == '.' || s[i] == ')')
}

// codeSpan picks a backtick fence longer than any run inside value and pads
// values that would otherwise lose or merge with the fence.
func codeSpan(value string) string {
	longest, run := 0, 0
	for i := 0; i < len(value); i++ {
		if value[i] == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)

	pad := ""
	if value != "" && (value[0] == '`' || value[len(value)-1] == '`' ||
		value[0] == ' ' && value[len(value)-1] == ' ' && strings.Trim(value, " ") != "") {
		pad = " "
	}
	return fence + pad + value + pad + fence
}

// destination wraps destinations that would not survive in bare form.
func destination(dest string) string {
	if dest == "" || strings.ContainsFunc(dest, func(r rune) bool { return unicode.IsSpace(r) || unicode.IsControl(r) }) {
		return "<" + strings.NewReplacer("<", `\<`, ">", `\>`).Replace(dest) + ">"
	}
	return dest
}

// title quotes a link title with the first delimiter it does not contain.
func title(t string) string {
	switch {
	case t == "":
		return ""
	case !strings.Contains(t, `"`):
		return ` "` + t + `"`
	case !strings.Contains(t, "'"):
		return " '" + t + "'"
	case !strings.ContainsAny(t, "()"):
		return " (" + t + ")"
	default:
		return ` "` + strings.ReplaceAll(t, `"`, `\"`) + `"`
	}
}

func escapeLabel(label string) string {
	return strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`).Replace(label)
}
