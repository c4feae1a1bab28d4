package markdown

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// blocks writes blocks separated by one blank line.
func blocks(w *writer, bs []ast.Block) {
	first := true
	for _, b := range bs {
		if _, empty := b.(*ast.EmptyBlock); empty || b == nil {
			continue
		}
		if !first {
			w.newline()
			w.newline()
		}
		first = false
		block(w, b)
	}
}

func block(w *writer, b ast.Block) {
	switch node := b.(type) {
	case *ast.Paragraph:
		fill(w, inlineTokens(node.Content))
	case *ast.Heading:
		heading(w, node)
	case *ast.ThematicBreak:
		w.write("---")
	case *ast.BlockQuote:
		blockQuote(w, node)
	case *ast.List:
		list(w, node)
	case *ast.CodeBlock:
		codeBlock(w, node)
	case *ast.HTMLBlock:
		w.text(strings.TrimRight(node.Raw, "\r\n"))
	case *ast.Definition:
		w.write("[" + escapeLabel(node.Label) + "]: " + destination(node.Destination) + title(node.Title))
	case *ast.Table:
		table(w, node)
	case *ast.FootnoteDefinition:
		w.write("[^" + node.Label + "]: ")
		w.nest(footnoteIndent, func() {
			blocks(w, node.Blocks)
		})
	case *ast.EmptyBlock:
	}
}

// footnoteIndent is the indentation of footnote continuation lines.
const footnoteIndent = 3

func inlineTokens(inlines []ast.Inline) tokens {
	var ts tokens
	ts.inlines(inlines)
	return ts
}

func heading(w *writer, h *ast.Heading) {
	ts := inlineTokens(h.Content)
	if h.Style == ast.HeadingSetext {
		fill(w, ts)
		w.newline()
		if h.Level == 1 {
			w.write("==========")
		} else {
			w.write("----------")
		}
		return
	}

	w.write(strings.Repeat("#", min(max(h.Level, 1), 6)))
	if content := flat(ts); content != "" {
		w.write(" " + content)
	}
}

func codeBlock(w *writer, c *ast.CodeBlock) {
	literal := strings.TrimSuffix(c.Literal, "\n")
	if !c.Fenced {
		for i, line := range strings.Split(literal, "\n") {
			if i > 0 {
				w.newline()
			}
			w.write("    " + line)
		}
		return
	}

	fence := codeFence(c.Info, c.Literal)
	w.write(fence + c.Info)
	w.newline()
	w.text(c.Literal)
	w.newline()
	w.write(fence)
}

// codeFence returns a fence longer than any run of its character that starts
// a line of literal. Tildes are used when info holds a backtick, which a
// backtick fence cannot carry.
func codeFence(info, literal string) string {
	char := "`"
	if strings.Contains(info, "`") {
		char = "~"
	}
	n := 3
	for _, line := range strings.Split(literal, "\n") {
		line = strings.TrimLeft(line, " ")
		run := len(line) - len(strings.TrimLeft(line, char))
		n = max(n, run+1)
	}
	return strings.Repeat(char, n)
}

func blockQuote(w *writer, q *ast.BlockQuote) {
	inner := newWriter(max(w.width-w.col-2, 1))
	blocks(inner, q.Blocks)

	text := inner.String()
	if text == "" {
		w.write(">")
		return
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			w.newline()
		}
		w.write("> " + line)
	}
}

func list(w *writer, l *ast.List) {
	prefix := 3
	n := l.Type.Start
	if l.Type.Ordered && len(l.Items) > 0 {
		last := l.Type.Start + uint64(len(l.Items)) - 1
		prefix = len(strconv.FormatUint(last, 10)) + 3
	}

	for i, item := range l.Items {
		if i > 0 {
			w.newline()
		}
		marker := " " + l.Type.Bullet.Marker() + " "
		if l.Type.Ordered {
			marker = " " + strconv.FormatUint(n, 10) + ". "
			n++
		}
		w.write(marker + strings.Repeat(" ", prefix-len(marker)))

		switch item.Task {
		case ast.TaskComplete:
			w.write("[X] ")
		case ast.TaskIncomplete:
			w.write("[ ] ")
		case ast.TaskNone:
		}
		w.nest(prefix, func() {
			blocks(w, item.Blocks)
		})
	}
}
