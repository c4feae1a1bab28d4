// Package crosscheck compares the block structure produced by this parser
// with the structure goldmark produces for the same source.
//
// Both trees are reduced to an outline: one line per block, indented by
// nesting depth. Inline content, link definitions and footnote definitions
// are left out because the two parsers represent them differently.
package crosscheck

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

// Result is the outcome of checking one document.
type Result struct {
	Path      string
	Outline   []string
	Reference []string
	// Diff is a unified diff from Outline to Reference, empty when they match.
	Diff string
}

// Equal reports whether both parsers produced the same outline.
func (r *Result) Equal() bool {
	return slices.Equal(r.Outline, r.Reference)
}

// Checker parses documents with both parsers. It is safe for concurrent use
// when the parser configuration is.
type Checker struct {
	cfg *parser.Config
	md  goldmark.Markdown
}

// New creates a Checker that parses with cfg. A nil cfg means defaults.
func New(cfg *parser.Config) *Checker {
	return &Checker{
		cfg: cfg,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM, extension.Footnote)),
	}
}

// Check parses source with both parsers and compares their outlines.
func (c *Checker) Check(ctx context.Context, path string, source []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("check cancelled: %w", err)
	}

	doc, err := parser.Parse(c.cfg, string(source))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	result := &Result{
		Path:      path,
		Outline:   Outline(doc),
		Reference: c.ReferenceOutline(source),
	}
	if !result.Equal() {
		result.Diff, err = difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        withNewlines(result.Outline),
			B:        withNewlines(result.Reference),
			FromFile: "gomdparse",
			ToFile:   "goldmark",
			Context:  2,
		})
		if err != nil {
			return nil, fmt.Errorf("diff outlines: %w", err)
		}
	}
	return result, nil
}

func withNewlines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l + "\n"
	}
	return out
}

type outline struct {
	lines []string
}

func (o *outline) add(depth int, label string) {
	o.lines = append(o.lines, strings.Repeat("  ", depth)+label)
}

// Outline returns the block outline of doc.
func Outline(doc *ast.Document) []string {
	var o outline
	if doc != nil {
		o.blocks(doc.Blocks, 0)
	}
	return o.lines
}

func (o *outline) blocks(blocks []ast.Block, depth int) {
	for _, b := range blocks {
		o.block(b, depth)
	}
}

func (o *outline) block(b ast.Block, depth int) {
	switch node := b.(type) {
	case *ast.Paragraph:
		o.add(depth, "paragraph")
	case *ast.Heading:
		o.add(depth, "heading "+strconv.Itoa(node.Level))
	case *ast.ThematicBreak:
		o.add(depth, "thematic-break")
	case *ast.BlockQuote:
		o.add(depth, "blockquote")
		o.blocks(node.Blocks, depth+1)
	case *ast.List:
		if node.Type.Ordered {
			o.add(depth, "list ordered "+strconv.FormatUint(node.Type.Start, 10))
		} else {
			o.add(depth, "list bullet "+node.Type.Bullet.Marker())
		}
		for _, item := range node.Items {
			o.add(depth+1, "item")
			o.blocks(item.Blocks, depth+2)
		}
	case *ast.CodeBlock:
		if node.Fenced {
			o.add(depth, "code fenced")
		} else {
			o.add(depth, "code indented")
		}
	case *ast.HTMLBlock:
		o.add(depth, "html")
	case *ast.Table:
		o.add(depth, tableLabel(len(node.Alignments), len(node.Rows)))
	case *ast.Definition, *ast.FootnoteDefinition, *ast.EmptyBlock:
	}
}

func tableLabel(cols, rows int) string {
	return fmt.Sprintf("table %dx%d", cols, rows)
}

// ReferenceOutline returns the block outline goldmark produces for source.
func (c *Checker) ReferenceOutline(source []byte) []string {
	root := c.md.Parser().Parse(text.NewReader(source))

	var o outline
	o.reference(root, 0)
	return o.lines
}

func (o *outline) reference(parent gast.Node, depth int) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *gast.Paragraph, *gast.TextBlock:
			// goldmark leaves an empty paragraph behind a link reference definition.
			if n.Lines().Len() == 0 {
				continue
			}
			o.add(depth, "paragraph")
		case *gast.Heading:
			o.add(depth, "heading "+strconv.Itoa(node.Level))
		case *gast.ThematicBreak:
			o.add(depth, "thematic-break")
		case *gast.Blockquote:
			o.add(depth, "blockquote")
			o.reference(node, depth+1)
		case *gast.List:
			if node.IsOrdered() {
				o.add(depth, "list ordered "+strconv.Itoa(node.Start))
			} else {
				o.add(depth, "list bullet "+string(node.Marker))
			}
			o.reference(node, depth+1)
		case *gast.ListItem:
			o.add(depth, "item")
			o.reference(node, depth+1)
		case *gast.FencedCodeBlock:
			o.add(depth, "code fenced")
		case *gast.CodeBlock:
			o.add(depth, "code indented")
		case *gast.HTMLBlock:
			o.add(depth, "html")
		case *east.Table:
			o.add(depth, tableLabel(len(node.Alignments), node.ChildCount()))
		case *east.FootnoteList:
		}
	}
}
