package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/parser"
	"github.com/yaklabco/gomdparse/pkg/render/html"
	"github.com/yaklabco/gomdparse/pkg/render/markdown"
)

func parseWith(t *testing.T, cfg *config.Config, text string) *ast.Document {
	t.Helper()
	pcfg, err := cfg.ParserConfig()
	require.NoError(t, err)
	doc, err := parser.Parse(pcfg, text)
	require.NoError(t, err)
	return doc
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, markdown.DefaultWidth, cfg.Width)
	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.Empty(t, cfg.Blocks)
	assert.Empty(t, cfg.Inlines)
	assert.False(t, cfg.Backups.Enabled)
}

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatJSON.IsValid())
	assert.True(t, config.FormatYAML.IsValid())
	assert.False(t, config.OutputFormat("xml").IsValid())
}

func TestRuleMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    parser.Mode
		wantErr error
	}{
		{name: "parse", want: parser.ModeParse},
		{name: "ignore", want: parser.ModeIgnore},
		{name: "Skip", want: parser.ModeSkip},
		{name: "map", wantErr: config.ErrMapMode},
		{name: "drop", wantErr: parser.ErrUnknownMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := config.RuleMode(tt.name)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParserOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()
		var cfg *config.Config
		opts, err := cfg.ParserOptions()
		require.NoError(t, err)
		assert.Empty(t, opts)
	})

	t.Run("ignored heading falls back to paragraph", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Blocks["atx-heading"] = "ignore"

		doc := parseWith(t, cfg, "# a")
		require.Len(t, doc.Blocks, 1)
		assert.IsType(t, &ast.Paragraph{}, doc.Blocks[0])
	})

	t.Run("skipped block becomes empty", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Blocks["thematic-break"] = "skip"

		doc := parseWith(t, cfg, "---")
		require.Len(t, doc.Blocks, 1)
		assert.IsType(t, &ast.EmptyBlock{}, doc.Blocks[0])
	})

	t.Run("ignored emphasis", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Inlines["emphasis"] = "ignore"

		doc := parseWith(t, cfg, "*a* and **b**")
		assert.Empty(t, ast.FindByKind(doc, ast.KindEmphasis))
		assert.Empty(t, ast.FindByKind(doc, ast.KindStrong))
	})

	t.Run("headings without space", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.AllowNoSpaceInHeadings = true

		doc := parseWith(t, cfg, "#title")
		require.Len(t, doc.Blocks, 1)
		assert.IsType(t, &ast.Heading{}, doc.Blocks[0])
	})

	t.Run("language detection", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.DetectLanguage = true

		doc := parseWith(t, cfg, "```\npackage main\n\nfunc main() {}\n```")
		require.Len(t, doc.Blocks, 1)
		code, ok := doc.Blocks[0].(*ast.CodeBlock)
		require.True(t, ok)
		assert.Equal(t, "go", code.Info)
	})

	t.Run("language detection yields to skipped code blocks", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.DetectLanguage = true
		cfg.Blocks["code-block"] = "skip"

		doc := parseWith(t, cfg, "```\npackage main\n```")
		require.Len(t, doc.Blocks, 1)
		assert.IsType(t, &ast.EmptyBlock{}, doc.Blocks[0])
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name    string
			blocks  map[string]string
			inlines map[string]string
			wantErr error
			wantMsg string
		}{
			{name: "unknown block rule", blocks: map[string]string{"heading": "skip"}, wantErr: parser.ErrUnknownRule, wantMsg: "blocks.heading"},
			{name: "unknown inline rule", inlines: map[string]string{"bold": "skip"}, wantErr: parser.ErrUnknownRule, wantMsg: "inlines.bold"},
			{name: "unknown mode", blocks: map[string]string{"table": "hide"}, wantErr: parser.ErrUnknownMode, wantMsg: "blocks.table"},
			{name: "map mode", inlines: map[string]string{"image": "map"}, wantErr: config.ErrMapMode, wantMsg: "inlines.image"},
		}

		for _, tt := range tests {
			cfg := &config.Config{Blocks: tt.blocks, Inlines: tt.inlines}
			_, err := cfg.ParserConfig()
			require.ErrorIs(t, err, tt.wantErr, tt.name)
			assert.Contains(t, err.Error(), tt.wantMsg, tt.name)
		}
	})
}

func TestHTMLOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Empty(t, cfg.HTMLOptions())

	cfg.AnchorPrefix = "doc-"
	cfg.HeadingIDs = true
	opts := cfg.HTMLOptions()
	require.Len(t, opts, 2)

	doc := parseWith(t, cfg, "# Hi")
	assert.Equal(t, `<h1 id="doc-hi">Hi</h1>`, html.Render(doc, opts...))
}

func TestMarkdownOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Width = 5

	doc := parseWith(t, cfg, "aaa bbb ccc")
	assert.Equal(t, "aaa\nbbb\nccc", markdown.Render(doc, cfg.MarkdownOptions()...))

	cfg.Width = 0
	assert.Empty(t, cfg.MarkdownOptions())
}
