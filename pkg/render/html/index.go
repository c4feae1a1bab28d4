package html

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// index holds what a reference needs from elsewhere in the document.
type index struct {
	definitions map[string]*ast.Definition
	footnotes   map[string]int
	fold        cases.Caser
}

// buildIndex collects link definitions and numbers footnotes in the order
// their references first appear. The first definition of a label wins.
func buildIndex(doc *ast.Document) *index {
	idx := &index{
		definitions: make(map[string]*ast.Definition),
		footnotes:   make(map[string]int),
		fold:        cases.Fold(),
	}
	if doc == nil {
		return idx
	}

	_ = ast.Walk(doc, func(n ast.Node) error {
		switch node := n.(type) {
		case *ast.Definition:
			key := idx.normalize(node.Label)
			if _, seen := idx.definitions[key]; !seen {
				idx.definitions[key] = node
			}
		case *ast.FootnoteReference:
			if _, seen := idx.footnotes[node.Label]; !seen {
				idx.footnotes[node.Label] = len(idx.footnotes) + 1
			}
		}
		return nil
	})
	return idx
}

// normalize collapses internal whitespace and case folds a label.
func (idx *index) normalize(label string) string {
	return idx.fold.String(strings.Join(strings.Fields(label), " "))
}

func (idx *index) definition(label string) (*ast.Definition, bool) {
	def, ok := idx.definitions[idx.normalize(label)]
	return def, ok
}

func (idx *index) footnote(label string) (int, bool) {
	n, ok := idx.footnotes[label]
	return n, ok
}
