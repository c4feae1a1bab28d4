package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// writer tracks the output column so wrapping and nested indentation can be
// decided while printing.
type writer struct {
	sb     strings.Builder
	width  int
	col    int
	indent int
}

func newWriter(width int) *writer {
	return &writer{width: width}
}

func (w *writer) String() string {
	return w.sb.String()
}

// text writes s. Embedded newlines are written as newline, so every line of
// multi-line content carries the current indentation.
func (w *writer) text(s string) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		w.write(strings.TrimSuffix(s[:i], "\r"))
		w.newline()
		s = s[i+1:]
	}
	w.write(s)
}

func (w *writer) write(s string) {
	w.sb.WriteString(s)
	w.col += runewidth.StringWidth(s)
}

// newline ends the line and indents the next one. Blank lines are indented
// too.
func (w *writer) newline() {
	w.sb.WriteByte('\n')
	w.sb.WriteString(strings.Repeat(" ", w.indent))
	w.col = w.indent
}

// nest runs fn with the indentation increased by n.
func (w *writer) nest(n int, fn func()) {
	w.indent += n
	fn()
	w.indent -= n
}

// fits reports whether a space followed by s fits on the current line.
func (w *writer) fits(s string) bool {
	return w.col+1+runewidth.StringWidth(s) <= w.width
}
