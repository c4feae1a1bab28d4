// Package markdown prints an ast.Document back to canonical Markdown.
//
// Paragraphs are wrapped at the configured width, nested content is indented
// by the width of its container marker, and tables are padded per column.
// Parsing the output yields the same document for everything the parser
// produces from canonical input.
package markdown

import (
	"fmt"
	"io"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 80

// Option configures printing.
type Option func(*options)

type options struct {
	width int
}

// WithWidth sets the wrap width. Values below one are ignored.
func WithWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

// Render returns the Markdown for doc.
func Render(doc *ast.Document, opts ...Option) string {
	o := options{width: DefaultWidth}
	for _, opt := range opts {
		opt(&o)
	}
	if doc == nil {
		return ""
	}

	w := newWriter(o.width)
	blocks(w, doc.Blocks)
	return w.String()
}

// RenderTo writes the Markdown for doc to w.
func RenderTo(w io.Writer, doc *ast.Document, opts ...Option) error {
	if _, err := io.WriteString(w, Render(doc, opts...)); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
