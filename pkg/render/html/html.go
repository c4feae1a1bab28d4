// Package html renders an ast.Document as HTML.
//
// Reference links and footnotes are resolved by a single indexing pass over
// the finished document before any output is written.
package html

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	anchorPrefix string
	headingIDs   bool
}

// WithAnchorPrefix prefixes the fragment of every footnote link and every
// generated heading id.
func WithAnchorPrefix(prefix string) Option {
	return func(o *options) {
		o.anchorPrefix = prefix
	}
}

// WithHeadingIDs adds an id attribute derived from the heading text to every
// heading. Repeated ids get a numeric suffix.
func WithHeadingIDs() Option {
	return func(o *options) {
		o.headingIDs = true
	}
}

// Render returns the HTML for doc.
func Render(doc *ast.Document, opts ...Option) string {
	var buf bytes.Buffer
	newRenderer(doc, opts).document(&buf, doc)
	return buf.String()
}

// RenderTo writes the HTML for doc to w.
func RenderTo(w io.Writer, doc *ast.Document, opts ...Option) error {
	var buf bytes.Buffer
	newRenderer(doc, opts).document(&buf, doc)
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

type renderer struct {
	opts  options
	index *index
	// headingIDs counts how often each generated id has been used.
	headingIDs map[string]int
}

func newRenderer(doc *ast.Document, opts []Option) *renderer {
	r := &renderer{
		index:      buildIndex(doc),
		headingIDs: make(map[string]int),
	}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

func (r *renderer) document(buf *bytes.Buffer, doc *ast.Document) {
	if doc == nil {
		return
	}
	r.blocks(buf, doc.Blocks)
}
