package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func TestParse_NilConfig(t *testing.T) {
	doc, err := Parse(nil, "Hello, **world**!")
	require.NoError(t, err)

	want := &ast.Document{Blocks: blockList(para(
		txt("Hello, "),
		&ast.Strong{Children: inlineList(txt("world"))},
		txt("!"),
	))}
	assert.Equal(t, want, doc)
}

func TestParse_OrderedList(t *testing.T) {
	doc, err := Parse(nil, "1. a\n2. b")
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)

	list, ok := doc.Blocks[0].(*ast.List)
	require.True(t, ok)
	assert.True(t, list.Type.Ordered)
	assert.Equal(t, uint64(1), list.Type.Start)
	require.Len(t, list.Items, 2)
	assert.Equal(t, blockList(para(txt("a"))), list.Items[0].Blocks)
	assert.Equal(t, blockList(para(txt("b"))), list.Items[1].Blocks)
}

func TestParse_Document(t *testing.T) {
	input := "# Title\n\nSome *text* with a [link](https://example.com).\n\n" +
		"- one\n- two\n\n```go\nfmt.Println()\n```\n\n> quote\n\n---\n\n[link]: https://example.com\n"

	blocks := mustParse(t, input)
	kinds := make([]ast.Kind, 0, len(blocks))
	for _, b := range blocks {
		kinds = append(kinds, b.Kind())
	}
	assert.Equal(t, []ast.Kind{
		ast.KindHeading,
		ast.KindParagraph,
		ast.KindList,
		ast.KindCodeBlock,
		ast.KindBlockQuote,
		ast.KindThematicBreak,
		ast.KindDefinition,
	}, kinds)
}

func TestParse_Error(t *testing.T) {
	cfg := NewConfig(
		WithBlockBehavior(RuleSetextHeading, IgnoreBlock),
		WithBlockBehavior(RuleParagraph, IgnoreBlock),
	)

	doc, err := Parse(cfg, "# ok\n\n  ab\ncd")
	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, errors.Is(err, ErrParse))

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 8, perr.Pos)
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 3, perr.Column)
	assert.Contains(t, perr.Error(), "line 3, column 3")
}

func TestParse_TextIgnored(t *testing.T) {
	_, err := Parse(NewConfig(WithInlineBehavior(RuleText, IgnoreInline)), "plain")
	require.ErrorIs(t, err, ErrParse)

	doc, err := Parse(NewConfig(WithInlineBehavior(RuleText, IgnoreInline)), "`code`")
	require.NoError(t, err)
	assert.Equal(t, blockList(para(&ast.Code{Value: "code"})), doc.Blocks)
}

func TestParse_TrailingBlankLines(t *testing.T) {
	assert.Equal(t, blockList(para(txt("a"))), mustParse(t, "a\n\n   \n\t\n"))
}

func TestParse_Unicode(t *testing.T) {
	got := mustParse(t, "# Ünïcödé\n\n*日本語*")
	want := blockList(
		&ast.Heading{Style: ast.HeadingATX, Level: 1, Content: inlineList(txt("Ünïcödé"))},
		para(&ast.Emphasis{Children: inlineList(txt("日本語"))}),
	)
	assert.Equal(t, want, got)
}

func TestHTMLEntities(t *testing.T) {
	table := HTMLEntities()
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{name: "amp", want: "&", ok: true},
		{name: "nbsp", want: "\u00a0", ok: true},
		{name: "semi", want: ";", ok: true},
		{name: "NotANamedEntity", ok: false},
		{name: "ampx", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Lookup(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
