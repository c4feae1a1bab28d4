package html

import (
	"bytes"
	"strconv"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func (r *renderer) inlines(buf *bytes.Buffer, inlines []ast.Inline) {
	for _, in := range inlines {
		r.inline(buf, in)
	}
}

func (r *renderer) inline(buf *bytes.Buffer, in ast.Inline) {
	switch node := in.(type) {
	case *ast.Text:
		buf.WriteString(escape(ast.UnescapePunctuation(node.Value)))
	case *ast.LineBreak:
		element(buf, "br")
	case *ast.Code:
		open(buf, "code")
		buf.WriteString(escape(node.Value))
		closeTag(buf, "code")
	case *ast.HTML:
		buf.WriteString(node.Raw)
	case *ast.Emphasis:
		r.wrap(buf, "em", node.Children)
	case *ast.Strong:
		r.wrap(buf, "b", node.Children)
	case *ast.Strikethrough:
		r.wrap(buf, "s", node.Children)
	case *ast.Link:
		open(buf, "a", linkAttrs(node.Destination, node.Title)...)
		r.inlines(buf, node.Children)
		closeTag(buf, "a")
	case *ast.LinkReference:
		r.linkReference(buf, node)
	case *ast.Image:
		element(buf, "img", imageAttrs(node)...)
	case *ast.Autolink:
		href := node.URL
		if node.IsEmail() {
			href = "mailto:" + href
		}
		open(buf, "a", attr{"href", href})
		buf.WriteString(escape(node.URL))
		closeTag(buf, "a")
	case *ast.FootnoteReference:
		n, ok := r.index.footnote(node.Label)
		if !ok {
			return
		}
		num := strconv.Itoa(n)
		open(buf, "a",
			attr{"class", "markdown-footnote-reference"},
			attr{"href", "#" + r.opts.anchorPrefix + num},
		)
		buf.WriteString("[" + num + "]")
		closeTag(buf, "a")
	case *ast.EmptyInline:
	}
}

func (r *renderer) wrap(buf *bytes.Buffer, tag string, children []ast.Inline) {
	open(buf, tag)
	r.inlines(buf, children)
	closeTag(buf, tag)
}

func linkAttrs(dest, title string) []attr {
	attrs := []attr{{"href", ast.UnescapePunctuation(dest)}}
	if title != "" {
		attrs = append(attrs, attr{"title", title})
	}
	return attrs
}

// imageAttrs resolves backslash escapes in the source and alt text the way
// linkAttrs does for link destinations.
func imageAttrs(img *ast.Image) []attr {
	attrs := []attr{
		{"src", ast.UnescapePunctuation(img.Destination)},
		{"alt", ast.UnescapePunctuation(img.Alt)},
	}
	if img.Title != "" {
		attrs = append(attrs, attr{"title", img.Title})
	}
	return attrs
}

// linkReference renders a resolved reference as a link and an unresolved
// one as the bracketed source text.
func (r *renderer) linkReference(buf *bytes.Buffer, ref *ast.LinkReference) {
	if def, ok := r.index.definition(ref.Label); ok {
		open(buf, "a", linkAttrs(def.Destination, def.Title)...)
		r.inlines(buf, ref.Text)
		closeTag(buf, "a")
		return
	}

	buf.WriteByte('[')
	r.inlines(buf, ref.Text)
	buf.WriteByte(']')
	if ref.Label != ast.UnescapePunctuation(ast.PlainText(ref.Text)) {
		buf.WriteString("[" + escape(ref.Label) + "]")
	}
}
