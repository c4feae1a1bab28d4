package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// parseInlines parses a single paragraph and returns its content.
func parseInlines(t *testing.T, input string, opts ...Option) []ast.Inline {
	t.Helper()
	got := mustParse(t, input, opts...)
	require.Len(t, got, 1)
	p, ok := got[0].(*ast.Paragraph)
	require.True(t, ok, "expected a paragraph, got %s", got[0].Kind())
	return p.Content
}

func TestAutolinks(t *testing.T) {
	tests := []struct {
		input string
		want  []ast.Inline
	}{
		{input: "<http://foo.bar.baz>", want: inlineList(&ast.Autolink{URL: "http://foo.bar.baz"})},
		{input: "<irc://foo.bar:2233/baz>", want: inlineList(&ast.Autolink{URL: "irc://foo.bar:2233/baz"})},
		{input: "<MAILTO:FOO@BAR.BAZ>", want: inlineList(&ast.Autolink{URL: "MAILTO:FOO@BAR.BAZ"})},
		{input: "<foo@bar.example.com>", want: inlineList(&ast.Autolink{URL: "foo@bar.example.com"})},
		{input: "<http://foo.bar/baz bim>", want: inlineList(txt("<http://foo.bar/baz bim>"))},
		{input: "<http://example.com/\\[\\>", want: inlineList(&ast.Autolink{URL: "http://example.com/\\[\\"})},
		{input: "<>", want: inlineList(txt("<>"))},
		{input: "see <https://x.io>.", want: inlineList(txt("see "), &ast.Autolink{URL: "https://x.io"}, txt("."))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}

func TestInlineHTML(t *testing.T) {
	tests := []struct {
		input string
		want  []ast.Inline
	}{
		{
			input: "a <span class=\"x\">b</span>",
			want:  inlineList(txt("a "), &ast.HTML{Raw: "<span class=\"x\">"}, txt("b"), &ast.HTML{Raw: "</span>"}),
		},
		{input: "a <br/>", want: inlineList(txt("a "), &ast.HTML{Raw: "<br/>"})},
		{input: "x <!-- note --> y", want: inlineList(txt("x "), &ast.HTML{Raw: "<!-- note -->"}, txt(" y"))},
		{input: "a < b", want: inlineList(txt("a < b"))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}

func TestCodeSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Inline
	}{
		{name: "simple", input: "`foo`", want: inlineList(&ast.Code{Value: "foo"})},
		{name: "inner backtick", input: "`` foo ` bar ``", want: inlineList(&ast.Code{Value: "foo ` bar"})},
		{name: "line endings", input: "``\nfoo\nbar  \nbaz\n``", want: inlineList(&ast.Code{Value: "foo bar   baz"})},
		{name: "only spaces", input: "`  `", want: inlineList(&ast.Code{Value: "  "})},
		{name: "longer run inside", input: "`a``b`", want: inlineList(&ast.Code{Value: "a``b"})},
		{name: "unmatched", input: "``a`", want: inlineList(txt("``a`"))},
		{name: "no markup inside", input: "`*a*`", want: inlineList(&ast.Code{Value: "*a*"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}

func TestCodeSpanRuns(t *testing.T) {
	for n := 1; n <= 2; n++ {
		fence := strings.Repeat("`", n)
		for _, content := range []string{"x", " x ", "a\nb", " a b "} {
			t.Run(fmt.Sprintf("%d %q", n, content), func(t *testing.T) {
				want := strings.ReplaceAll(content, "\n", " ")
				if strings.HasPrefix(want, " ") && strings.HasSuffix(want, " ") {
					want = want[1 : len(want)-1]
				}
				got := parseInlines(t, fence+content+fence)
				assert.Equal(t, inlineList(&ast.Code{Value: want}), got)
			})
		}
	}
}

func TestEmphasis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Inline
	}{
		{
			name:  "emphasis",
			input: "*foo bar*",
			want:  inlineList(&ast.Emphasis{Children: inlineList(txt("foo bar"))}),
		},
		{
			name:  "underscore",
			input: "_foo_",
			want:  inlineList(&ast.Emphasis{Children: inlineList(txt("foo"))}),
		},
		{
			name:  "strong",
			input: "Hello, **world**!",
			want:  inlineList(txt("Hello, "), &ast.Strong{Children: inlineList(txt("world"))}, txt("!")),
		},
		{
			name:  "triple",
			input: "foo ___bar___",
			want: inlineList(txt("foo "), &ast.Strong{Children: inlineList(
				&ast.Emphasis{Children: inlineList(txt("bar"))},
			)}),
		},
		{
			name:  "nested",
			input: "**foo ___bar___ baz**",
			want: inlineList(&ast.Strong{Children: inlineList(
				txt("foo "),
				&ast.Strong{Children: inlineList(&ast.Emphasis{Children: inlineList(txt("bar"))})},
				txt(" baz"),
			)}),
		},
		{
			name:  "emphasis inside strong",
			input: "**a *b* c**",
			want: inlineList(&ast.Strong{Children: inlineList(
				txt("a "),
				&ast.Emphasis{Children: inlineList(txt("b"))},
				txt(" c"),
			)}),
		},
		{
			name:  "intraword underscore",
			input: "snake_case_name",
			want:  inlineList(txt("snake_case_name")),
		},
		{
			name:  "space after opener",
			input: "a * b*",
			want:  inlineList(txt("a * b*")),
		},
		{
			name:  "escaped delimiter",
			input: "\\*a*",
			want:  inlineList(txt("\\*a*")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}

func TestStrikethrough(t *testing.T) {
	tests := []struct {
		input string
		want  []ast.Inline
	}{
		{input: "~~text~~", want: inlineList(&ast.Strikethrough{Children: inlineList(txt("text"))})},
		{input: "~~text~~~", want: inlineList(&ast.Strikethrough{Children: inlineList(txt("text~"))})},
		{input: "a ~~~text~~~", want: inlineList(txt("a ~"), &ast.Strikethrough{Children: inlineList(txt("text~"))})},
		{input: "~~a *b*~~", want: inlineList(&ast.Strikethrough{Children: inlineList(txt("a "), &ast.Emphasis{Children: inlineList(txt("b"))})})},
		{input: "~one~", want: inlineList(txt("~one~"))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}

func TestHardBreaks(t *testing.T) {
	want := inlineList(txt("line1"), &ast.LineBreak{}, txt("line2"))
	for _, input := range []string{"line1\\\nline2", "line1  \nline2", "line1    \nline2"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			assert.Equal(t, want, parseInlines(t, input))
		})
	}

	t.Run("soft break", func(t *testing.T) {
		assert.Equal(t, inlineList(txt("line1 \nline2")), parseInlines(t, "line1 \nline2"))
	})
}

func TestEntities(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "&amp;", want: `\&`},
		{input: "&#42;a&#42;", want: `\*a\*`},
		{input: "&#32;", want: " "},
		{input: "&#x20;", want: " "},
		{input: "&#X41;", want: "A"},
		{input: "&#0;", want: "\uFFFD"},
		{input: "&copy; 2024", want: "© 2024"},
		{input: "&unknownchar;", want: "&unknownchar;"},
		{input: "&amp", want: "&amp"},
		{input: "&#12345678;", want: "&#12345678;"},
		{input: "AT&T", want: "AT&T"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, inlineList(txt(tt.want)), parseInlines(t, tt.input))
		})
	}

	t.Run("custom table", func(t *testing.T) {
		table := EntityMap{"smile": "\U0001F600"}
		got := parseInlines(t, "&smile; &amp;", WithEntities(table))
		assert.Equal(t, inlineList(txt("\U0001F600 &amp;")), got)
	})

	t.Run("no table", func(t *testing.T) {
		got := parseInlines(t, "&amp; &#65;", WithEntities(nil))
		assert.Equal(t, inlineList(txt("&amp; A")), got)
	})
}

func TestLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Inline
	}{
		{
			name:  "with title",
			input: "[foo](/url \"title\")",
			want:  inlineList(&ast.Link{Destination: "/url", Title: "title", Children: inlineList(txt("foo"))}),
		},
		{
			name:  "bare destination",
			input: "[foo](train.jpg)",
			want:  inlineList(&ast.Link{Destination: "train.jpg", Children: inlineList(txt("foo"))}),
		},
		{
			name:  "angle destination",
			input: "[foo](<url>)",
			want:  inlineList(&ast.Link{Destination: "url", Children: inlineList(txt("foo"))}),
		},
		{
			name:  "empty destination",
			input: "[a]()",
			want:  inlineList(&ast.Link{Children: inlineList(txt("a"))}),
		},
		{
			name:  "balanced parens",
			input: "[a](foo(and(bar)))",
			want:  inlineList(&ast.Link{Destination: "foo(and(bar))", Children: inlineList(txt("a"))}),
		},
		{
			name:  "formatted text",
			input: "[**a**](b)",
			want:  inlineList(&ast.Link{Destination: "b", Children: inlineList(&ast.Strong{Children: inlineList(txt("a"))})}),
		},
		{
			name:  "in a sentence",
			input: "see [a](b) now",
			want:  inlineList(txt("see "), &ast.Link{Destination: "b", Children: inlineList(txt("a"))}, txt(" now")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}

func TestImages(t *testing.T) {
	tests := []struct {
		input string
		want  *ast.Image
	}{
		{input: "![foo](/url \"title\")", want: &ast.Image{Destination: "/url", Title: "title", Alt: "foo"}},
		{input: "![foo](train.jpg)", want: &ast.Image{Destination: "train.jpg", Alt: "foo"}},
		{input: "![foo](<url>)", want: &ast.Image{Destination: "url", Alt: "foo"}},
		{input: "![*a* b](c)", want: &ast.Image{Destination: "c", Alt: "a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, inlineList(tt.want), parseInlines(t, tt.input))
		})
	}
}

func TestReferenceLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *ast.LinkReference
	}{
		{name: "full", input: "[text][label]", want: &ast.LinkReference{Label: "label", Text: inlineList(txt("text"))}},
		{name: "collapsed", input: "[text][]", want: &ast.LinkReference{Label: "text", Text: inlineList(txt("text"))}},
		{name: "shortcut", input: "[text]", want: &ast.LinkReference{Label: "text", Text: inlineList(txt("text"))}},
		{name: "escaped label", input: "[a\\]b]", want: &ast.LinkReference{Label: "a]b", Text: inlineList(txt("a\\]b"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, inlineList(tt.want), parseInlines(t, tt.input))
		})
	}
}

func TestFootnoteReferences(t *testing.T) {
	assert.Equal(t, inlineList(&ast.FootnoteReference{Label: "label"}), parseInlines(t, "[^label]"))
	assert.Equal(t,
		inlineList(txt("a"), &ast.FootnoteReference{Label: "1"}, txt(" b")),
		parseInlines(t, "a[^1] b"),
	)
}

func TestEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  []ast.Inline
	}{
		{input: "\\[a\\]", want: inlineList(txt("\\[a\\]"))},
		{input: "\\`a`", want: inlineList(txt("\\`a`"))},
		{input: "\\~~a~~", want: inlineList(txt("\\~~a~~"))},
		{input: "a\\b", want: inlineList(txt("a\\b"))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInlines(t, tt.input))
		})
	}
}
