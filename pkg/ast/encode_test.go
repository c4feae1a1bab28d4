package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	doc := &ast.Document{Blocks: []ast.Block{
		&ast.Heading{Style: ast.HeadingSetext, Level: 2, Content: []ast.Inline{&ast.Text{Value: "H"}}},
		&ast.List{
			Type:  ast.ListKind{Ordered: true, Start: 3},
			Items: []*ast.ListItem{{Task: ast.TaskComplete}},
		},
		&ast.Table{
			Alignments: []ast.Alignment{ast.AlignCenter},
			Rows:       []ast.Row{{{&ast.Text{Value: "x"}}}},
		},
	}}

	got := ast.Encode(doc)
	assert.Equal(t, "document", got["type"])

	blocks, ok := got["blocks"].([]any)
	require.True(t, ok)
	require.Len(t, blocks, 3)

	heading := blocks[0].(map[string]any)
	assert.Equal(t, "heading", heading["type"])
	assert.Equal(t, "setext", heading["style"])
	assert.Equal(t, 2, heading["level"])

	list := blocks[1].(map[string]any)
	assert.Equal(t, true, list["ordered"])
	assert.Equal(t, uint64(3), list["start"])
	item := list["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "complete", item["task"])

	table := blocks[2].(map[string]any)
	assert.Equal(t, []any{"center"}, table["alignments"])
}

func TestEncodeNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, ast.Encode(nil))
}
