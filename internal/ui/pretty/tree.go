package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// minTreeTextWidth is the narrowest a quoted literal is truncated to.
const minTreeTextWidth = 8

// treeNode is one line of the tree view.
type treeNode struct {
	name     string
	inline   bool
	attrs    []string
	text     string
	hasText  bool
	children []*treeNode
}

func (n *treeNode) attr(key string, value any) {
	n.attrs = append(n.attrs, fmt.Sprintf("%s=%v", key, value))
}

func (n *treeNode) literal(s string) {
	n.text = s
	n.hasText = true
}

// buildTree converts an AST node and its descendants into tree lines.
func buildTree(n ast.Node) *treeNode {
	tn := &treeNode{name: n.Kind().String()}
	_, tn.inline = n.(ast.Inline)

	switch node := n.(type) {
	case *ast.Heading:
		tn.attr("level", node.Level)
		tn.attr("style", node.Style)
	case *ast.List:
		if node.Type.Ordered {
			tn.attr("start", node.Type.Start)
		} else {
			tn.attr("bullet", node.Type.Bullet)
		}
	case *ast.ListItem:
		if node.Task != ast.TaskNone {
			tn.attr("task", node.Task)
		}
	case *ast.CodeBlock:
		if node.Fenced {
			tn.attr("fenced", true)
		}
		if node.Info != "" {
			tn.attr("info", node.Info)
		}
		tn.literal(node.Literal)
	case *ast.HTMLBlock:
		tn.literal(node.Raw)
	case *ast.Definition:
		tn.attr("label", node.Label)
		tn.attr("destination", node.Destination)
		if node.Title != "" {
			tn.attr("title", strconv.Quote(node.Title))
		}
	case *ast.Table:
		tn.attr("columns", len(node.Alignments))
		tn.children = tableRows(node)
		return tn
	case *ast.FootnoteDefinition:
		tn.attr("label", node.Label)
	case *ast.Text:
		tn.literal(node.Value)
	case *ast.Code:
		tn.literal(node.Value)
	case *ast.HTML:
		tn.literal(node.Raw)
	case *ast.Link:
		tn.attr("destination", node.Destination)
		if node.Title != "" {
			tn.attr("title", strconv.Quote(node.Title))
		}
	case *ast.LinkReference:
		tn.attr("label", node.Label)
	case *ast.Image:
		tn.attr("destination", node.Destination)
		if node.Title != "" {
			tn.attr("title", strconv.Quote(node.Title))
		}
		tn.literal(node.Alt)
	case *ast.Autolink:
		tn.attr("url", node.URL)
	case *ast.FootnoteReference:
		tn.attr("label", node.Label)
	}

	for _, child := range ast.Children(n) {
		tn.children = append(tn.children, buildTree(child))
	}
	return tn
}

// tableRows lays a table out as row and cell lines.
func tableRows(table *ast.Table) []*treeNode {
	rows := make([]*treeNode, 0, len(table.Rows))
	for i, row := range table.Rows {
		rn := &treeNode{name: "row"}
		if i == 0 {
			rn.attr("header", true)
		}
		for j, cell := range row {
			cn := &treeNode{name: "cell"}
			if j < len(table.Alignments) && table.Alignments[j] != ast.AlignNone {
				cn.attr("align", table.Alignments[j])
			}
			for _, in := range cell {
				cn.children = append(cn.children, buildTree(in))
			}
			rn.children = append(rn.children, cn)
		}
		rows = append(rows, rn)
	}
	return rows
}

// FormatTree renders doc as an indented tree, one node per line. Literal
// text is quoted and truncated to fit width; width <= 0 disables truncation.
func (s *Styles) FormatTree(doc *ast.Document, width int) string {
	if doc == nil {
		return ""
	}
	var builder strings.Builder
	s.writeTreeNode(&builder, buildTree(doc), "", "", width)
	return builder.String()
}

func (s *Styles) writeTreeNode(builder *strings.Builder, n *treeNode, prefix, childPrefix string, width int) {
	nameStyle := s.TreeBlock
	if n.inline {
		nameStyle = s.TreeInline
	}

	builder.WriteString(s.TreeBranch.Render(prefix))
	builder.WriteString(nameStyle.Render(n.name))
	used := runewidth.StringWidth(prefix) + runewidth.StringWidth(n.name)

	for _, a := range n.attrs {
		builder.WriteString(" " + s.TreeAttr.Render(a))
		used += 1 + runewidth.StringWidth(a)
	}

	if n.hasText {
		quoted := strconv.Quote(n.text)
		if width > 0 {
			quoted = runewidth.Truncate(quoted, max(width-used-1, minTreeTextWidth), "…")
		}
		builder.WriteString(" " + s.TreeText.Render(quoted))
	}
	builder.WriteByte('\n')

	for i, child := range n.children {
		branch, next := "├── ", "│   "
		if i == len(n.children)-1 {
			branch, next = "└── ", "    "
		}
		s.writeTreeNode(builder, child, childPrefix+branch, childPrefix+next, width)
	}
}
