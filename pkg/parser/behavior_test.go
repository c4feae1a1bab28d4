package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func TestModeNames(t *testing.T) {
	for _, mode := range []Mode{ModeParse, ModeIgnore, ModeSkip, ModeMap} {
		got, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	got, err := ParseMode("SKIP")
	require.NoError(t, err)
	assert.Equal(t, ModeSkip, got)

	_, err = ParseMode("drop")
	require.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func TestRuleNames(t *testing.T) {
	blockRules := BlockRules()
	require.Len(t, blockRules, int(blockRuleCount))
	assert.Equal(t, RuleATXHeading, blockRules[0])
	assert.Equal(t, RuleParagraph, blockRules[len(blockRules)-1])
	for _, rule := range blockRules {
		got, err := ParseBlockRule(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}

	inlineRules := InlineRules()
	require.Len(t, inlineRules, int(inlineRuleCount))
	assert.Equal(t, RuleText, inlineRules[len(inlineRules)-1])
	for _, rule := range inlineRules {
		got, err := ParseInlineRule(rule.String())
		require.NoError(t, err)
		assert.Equal(t, rule, got)
	}

	_, err := ParseBlockRule("sidebar")
	require.ErrorIs(t, err, ErrUnknownRule)
	_, err = ParseInlineRule("sidebar")
	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	for _, rule := range BlockRules() {
		assert.Equal(t, ModeParse, cfg.BlockBehavior(rule).Mode, rule.String())
	}
	for _, rule := range InlineRules() {
		assert.Equal(t, ModeParse, cfg.InlineBehavior(rule).Mode, rule.String())
	}
	assert.False(t, cfg.AllowNoSpaceInHeadings())
	assert.Equal(t, ModeParse, cfg.BlockBehavior(BlockRule(200)).Mode)

	cfg = NewConfig(WithBlockBehavior(RuleTable, SkipBlock), WithInlineBehavior(RuleEmphasis, IgnoreInline))
	assert.Equal(t, ModeSkip, cfg.BlockBehavior(RuleTable).Mode)
	assert.Equal(t, ModeIgnore, cfg.InlineBehavior(RuleEmphasis).Mode)
}

func TestSkipBehavior(t *testing.T) {
	skipQuote := WithBlockBehavior(RuleBlockQuote, SkipBlock)

	assert.Equal(t, blockList(&ast.EmptyBlock{}), mustParse(t, "> a\n>\n>> b", skipQuote))
	assert.Equal(t,
		blockList(para(txt("a")), &ast.EmptyBlock{}),
		mustParse(t, "a\n> a\n>\n>> b", skipQuote),
	)

	skipHTML := WithBlockBehavior(RuleHTMLBlock, SkipBlock)
	assert.Equal(t, blockList(&ast.EmptyBlock{}), mustParse(t, "<script>\n</script>", skipHTML))
	assert.Equal(t, blockList(&ast.EmptyBlock{}), mustParse(t, "<script>\n\n<h1>hello</h1></script>", skipHTML))

	got := parseInlines(t, "a *b* c", WithInlineBehavior(RuleEmphasis, SkipInline))
	assert.Equal(t, inlineList(txt("a "), &ast.EmptyInline{}, txt(" c")), got)
}

func TestIgnoreBehavior(t *testing.T) {
	ignoreQuote := WithBlockBehavior(RuleBlockQuote, IgnoreBlock)
	assert.Equal(t, blockList(para(txt("> a\n>\n>> b"))), mustParse(t, "> a\n>\n>> b", ignoreQuote))
	assert.Equal(t, blockList(para(txt("a\n> a\n>\n>> b"))), mustParse(t, "a\n> a\n>\n>> b", ignoreQuote))

	ignoreHTML := []Option{
		WithBlockBehavior(RuleHTMLBlock, IgnoreBlock),
		WithInlineBehavior(RuleInlineHTML, IgnoreInline),
	}
	assert.Equal(t, blockList(para(txt("<script>\n</script>"))), mustParse(t, "<script>\n</script>", ignoreHTML...))
	assert.Equal(t,
		blockList(para(txt("<script>")), para(txt("<h1>hello</h1></script>"))),
		mustParse(t, "<script>\n\n<h1>hello</h1></script>", ignoreHTML...),
	)

	got := parseInlines(t, "a *b* c", WithInlineBehavior(RuleEmphasis, IgnoreInline))
	assert.Equal(t, inlineList(txt("a *b* c")), got)

	got = parseInlines(t, "a [b](c)", WithInlineBehavior(RuleLink, IgnoreInline))
	assert.Equal(t, inlineList(txt("a "), &ast.LinkReference{Label: "b", Text: inlineList(txt("b"))}, txt("(c)")), got)
}

func TestIgnoreSetextKeepsParagraphs(t *testing.T) {
	got := mustParse(t, "a\nb", WithBlockBehavior(RuleSetextHeading, IgnoreBlock))
	assert.Equal(t, blockList(para(txt("a\nb"))), got)

	got = mustParse(t, "a\n==", WithBlockBehavior(RuleSetextHeading, IgnoreBlock))
	assert.Equal(t, blockList(para(txt("a\n=="))), got)
}

func TestMapBehavior(t *testing.T) {
	mapped := WithBlockBehavior(RuleLinkDefinition, MapBlock(func(b ast.Block) ast.Block {
		def, ok := b.(*ast.Definition)
		if !ok {
			return b
		}
		return &ast.Definition{
			Label:       "mapped " + def.Label,
			Destination: "mapped " + def.Destination,
			Title:       "mapped " + def.Title,
		}
	}))
	got := mustParse(t, "[foo]: /url \"title\"", mapped)
	want := blockList(&ast.Definition{Label: "mapped foo", Destination: "mapped /url", Title: "mapped title"})
	assert.Equal(t, want, got)

	upper := WithInlineBehavior(RuleText, MapInline(func(in ast.Inline) ast.Inline {
		if text, ok := in.(*ast.Text); ok {
			return &ast.Text{Value: strings.ToUpper(text.Value)}
		}
		return in
	}))
	assert.Equal(t, inlineList(txt("AB "), &ast.Code{Value: "c"}), parseInlines(t, "ab `c`", upper))

	headings := WithBlockBehavior(RuleSetextHeading, MapBlock(func(b ast.Block) ast.Block {
		h := b.(*ast.Heading)
		return &ast.Heading{Style: ast.HeadingATX, Level: h.Level, Content: h.Content}
	}))
	assert.Equal(t,
		blockList(&ast.Heading{Style: ast.HeadingATX, Level: 1, Content: inlineList(txt("a"))}),
		mustParse(t, "a\n===", headings),
	)
}

func TestCustomBlockParser(t *testing.T) {
	slashes := BlockParserFunc(func(input string) (string, ast.Block, bool) {
		if !strings.HasPrefix(input, "///") {
			return input, nil, false
		}
		return input[3:], &ast.ThematicBreak{}, true
	})

	got := mustParse(t, "///\ntext\n===", WithCustomBlockParser(slashes))
	want := blockList(
		&ast.ThematicBreak{},
		&ast.Heading{Style: ast.HeadingSetext, Level: 1, Content: inlineList(txt("text"))},
	)
	assert.Equal(t, want, got)

	got = mustParse(t, "text\n///", WithCustomBlockParser(slashes))
	assert.Equal(t, blockList(para(txt("text")), &ast.ThematicBreak{}), got)
}

func TestCustomBlockParserWithoutProgress(t *testing.T) {
	stuck := BlockParserFunc(func(input string) (string, ast.Block, bool) {
		return input, &ast.ThematicBreak{}, true
	})
	assert.Equal(t, blockList(para(txt("a"))), mustParse(t, "a", WithCustomBlockParser(stuck)))
}

func TestCustomInlineParser(t *testing.T) {
	mention := InlineParserFunc(func(input string) (string, ast.Inline, bool) {
		if !strings.HasPrefix(input, "@") {
			return input, nil, false
		}
		n := 1
		for n < len(input) && input[n] >= 'a' && input[n] <= 'z' {
			n++
		}
		if n == 1 {
			return input, nil, false
		}
		return input[n:], &ast.Link{Destination: "/u/" + input[1:n], Children: inlineList(txt(input[:n]))}, true
	})

	got := parseInlines(t, "hi @bob and @ all", WithCustomInlineParser(mention))
	want := inlineList(
		txt("hi "),
		&ast.Link{Destination: "/u/bob", Children: inlineList(txt("@bob"))},
		txt(" and @ all"),
	)
	assert.Equal(t, want, got)
}
