package html

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/shurcooL/sanitized_anchor_name"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func (r *renderer) blocks(buf *bytes.Buffer, blocks []ast.Block) {
	for _, b := range blocks {
		r.block(buf, b)
	}
}

func (r *renderer) block(buf *bytes.Buffer, b ast.Block) {
	switch node := b.(type) {
	case *ast.Paragraph:
		open(buf, "p")
		r.inlines(buf, node.Content)
		closeTag(buf, "p")
	case *ast.Heading:
		r.heading(buf, node)
	case *ast.ThematicBreak:
		element(buf, "hr")
	case *ast.BlockQuote:
		open(buf, "blockquote")
		r.blocks(buf, node.Blocks)
		closeTag(buf, "blockquote")
	case *ast.List:
		r.list(buf, node)
	case *ast.CodeBlock:
		open(buf, "pre")
		open(buf, "code")
		buf.WriteString(escape(node.Literal))
		closeTag(buf, "code")
		closeTag(buf, "pre")
	case *ast.HTMLBlock:
		buf.WriteString(node.Raw)
	case *ast.Table:
		r.table(buf, node)
	case *ast.FootnoteDefinition:
		r.footnoteDefinition(buf, node)
	case *ast.Definition, *ast.EmptyBlock:
	}
}

func (r *renderer) heading(buf *bytes.Buffer, h *ast.Heading) {
	level := min(max(h.Level, 1), 6)
	tag := "h" + strconv.Itoa(level)

	var attrs []attr
	if r.opts.headingIDs {
		id := sanitized_anchor_name.Create(ast.PlainText(h.Content))
		attrs = append(attrs, attr{"id", r.uniqueHeadingID(r.opts.anchorPrefix + id)})
	}
	open(buf, tag, attrs...)
	r.inlines(buf, h.Content)
	closeTag(buf, tag)
}

// uniqueHeadingID appends -1, -2, ... to ids that were already used.
func (r *renderer) uniqueHeadingID(id string) string {
	for count, found := r.headingIDs[id]; found; count, found = r.headingIDs[id] {
		next := fmt.Sprintf("%s-%d", id, count+1)
		if _, taken := r.headingIDs[next]; !taken {
			r.headingIDs[id] = count + 1
			id = next
		} else {
			id += "-1"
		}
	}
	r.headingIDs[id] = 0
	return id
}

func (r *renderer) list(buf *bytes.Buffer, l *ast.List) {
	tag := "ul"
	var attrs []attr
	if l.Type.Ordered {
		tag = "ol"
		attrs = append(attrs, attr{"start", strconv.FormatUint(l.Type.Start, 10)})
	} else {
		attrs = append(attrs, attr{"class", "markdown-list-kind-" + l.Type.Bullet.String()})
	}

	open(buf, tag, attrs...)
	for _, item := range l.Items {
		open(buf, "li")
		switch item.Task {
		case ast.TaskComplete:
			open(buf, "span", attr{"class", "markdown-list-task-complete"})
			buf.WriteString("[X] ")
			closeTag(buf, "span")
		case ast.TaskIncomplete:
			open(buf, "span", attr{"class", "markdown-list-task-incomplete"})
			buf.WriteString("[ ] ")
			closeTag(buf, "span")
		case ast.TaskNone:
		}
		r.blocks(buf, item.Blocks)
		closeTag(buf, "li")
	}
	closeTag(buf, tag)
}

func (r *renderer) table(buf *bytes.Buffer, t *ast.Table) {
	open(buf, "table")
	open(buf, "thead")
	if len(t.Rows) > 0 {
		r.tableRow(buf, t.Rows[0], "th", t.Alignments)
	}
	closeTag(buf, "thead")
	open(buf, "tbody")
	if len(t.Rows) > 1 {
		for _, row := range t.Rows[1:] {
			r.tableRow(buf, row, "td", t.Alignments)
		}
	}
	closeTag(buf, "tbody")
	closeTag(buf, "table")
}

func (r *renderer) tableRow(buf *bytes.Buffer, row ast.Row, tag string, aligns []ast.Alignment) {
	open(buf, "tr")
	for i, cell := range row {
		align := ast.AlignNone
		if i < len(aligns) {
			align = aligns[i]
		}
		open(buf, tag, attr{"class", "markdown-table-align-" + alignmentClass(align)})
		r.inlines(buf, cell)
		closeTag(buf, tag)
	}
	closeTag(buf, "tr")
}

func alignmentClass(a ast.Alignment) string {
	switch a {
	case ast.AlignRight:
		return "right"
	case ast.AlignCenter:
		return "center"
	default:
		return "left"
	}
}

// footnoteDefinition renders a definition only when some reference gave it
// a number.
func (r *renderer) footnoteDefinition(buf *bytes.Buffer, def *ast.FootnoteDefinition) {
	n, ok := r.index.footnote(def.Label)
	if !ok {
		return
	}
	open(buf, "div", attr{"class", "markdown-footnote-definition"})
	open(buf, "span", attr{"class", "markdown-footnote-definition-index"})
	fmt.Fprintf(buf, "%d. ", n)
	closeTag(buf, "span")
	open(buf, "span", attr{"class", "markdown-footnote-definition-content"})
	r.blocks(buf, def.Blocks)
	closeTag(buf, "span")
	closeTag(buf, "div")
}
