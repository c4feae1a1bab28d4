package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func txt(s string) *ast.Text { return &ast.Text{Value: s} }

func para(content ...ast.Inline) *ast.Paragraph {
	return &ast.Paragraph{Content: content}
}

func inlineList(content ...ast.Inline) []ast.Inline { return content }

func blockList(content ...ast.Block) []ast.Block { return content }

func item(content ...ast.Block) *ast.ListItem {
	return &ast.ListItem{Blocks: content}
}

func mustParse(t *testing.T, input string, opts ...Option) []ast.Block {
	t.Helper()
	doc, err := Parse(NewConfig(opts...), input)
	require.NoError(t, err)
	require.NotNil(t, doc)
	return doc.Blocks
}
