package configloader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/pkg/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// isolatedOptions returns options that only look at dir.
func isolatedOptions(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:       dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)
	require.NotNil(t, result.Config)

	assert.Equal(t, config.NewConfig(), result.Config)
	assert.Empty(t, result.LoadedFrom)
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), `
width: 100
heading_ids: true
blocks:
  table: ignore
inlines:
  strikethrough: skip
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, 100, result.Config.Width)
	assert.True(t, result.Config.HeadingIDs)
	assert.Equal(t, "ignore", result.Config.Blocks["table"])
	assert.Equal(t, "skip", result.Config.Inlines["strikethrough"])
	assert.Equal(t, []string{filepath.Join(tmpDir, ".gomdparse.yml")}, result.LoadedFrom)
}

func TestLoad_ProjectConfigFromSubdirectory(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yaml"), "width: 60\n")
	subDir := filepath.Join(tmpDir, "docs", "guide")
	require.NoError(t, os.MkdirAll(subDir, 0o755))

	result, err := Load(context.Background(), isolatedOptions(subDir))
	require.NoError(t, err)
	assert.Equal(t, 60, result.Config.Width)
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), "width: 60\nanchor_prefix: p-\n")
	customPath := filepath.Join(tmpDir, "custom.yml")
	writeFile(t, customPath, "width: 70\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, 70, result.Config.Width)
	assert.Equal(t, "p-", result.Config.AnchorPrefix)
	assert.Equal(t, customPath, result.Paths.Explicit)
	assert.Len(t, result.LoadedFrom, 2)
}

func TestLoad_Env(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), "width: 60\n")

	t.Setenv("GOMDPARSE_WIDTH", "42")
	t.Setenv("GOMDPARSE_DETECT_LANGUAGE", "true")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 42, result.Config.Width)
	assert.True(t, result.Config.DetectLanguage)
}

func TestLoad_CLIOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), "width: 60\nblocks:\n  list: skip\n")

	t.Setenv("GOMDPARSE_WIDTH", "42")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false
	opts.CLIConfig = &config.Config{
		Width:   30,
		Jobs:    3,
		Blocks:  map[string]string{"list": "parse"},
		Inlines: map[string]string{"image": "ignore"},
	}

	result, err := Load(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 30, result.Config.Width)
	assert.Equal(t, 3, result.Config.Jobs)
	assert.Equal(t, "parse", result.Config.Blocks["list"])
	assert.Equal(t, "ignore", result.Config.Inlines["image"])
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{name: "malformed yaml", content: "width: [", wantMsg: "parse yaml"},
		{name: "unknown field", content: "flavor: gfm\n", wantMsg: "parse yaml"},
		{name: "unknown rule", content: "blocks:\n  sidebar: skip\n", wantMsg: `unknown rule "sidebar"`},
		{name: "invalid mode", content: "inlines:\n  link: hide\n", wantMsg: `invalid mode "hide"`},
		{name: "map mode", content: "blocks:\n  table: map\n", wantMsg: `invalid mode "map"`},
		{name: "negative width", content: "width: -1\n", wantMsg: "width must be >= 0"},
		{name: "bad glob", content: "ignore:\n  - \"[\"\n", wantMsg: "invalid glob pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
			path := filepath.Join(tmpDir, ".gomdparse.yml")
			writeFile(t, path, tt.content)

			_, err := Load(context.Background(), isolatedOptions(tmpDir))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestLoad_MissingExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = filepath.Join(tmpDir, "missing.yml")

	_, err := Load(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load explicit config")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, isolatedOptions(t.TempDir()))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_NormalizesRuleKeys(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), `
blocks:
  HR: skip
  code_block: ignore
inlines:
  strong: ignore
  inline-html: skip
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"thematic-break": "skip", "code-block": "ignore"}, result.Config.Blocks)
	assert.Equal(t, map[string]string{"emphasis": "ignore", "html": "skip"}, result.Config.Inlines)
}

func TestLoad_ExpandsGroups(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), `
blocks:
  headings: ignore
  setext-heading: parse
inlines:
  links: skip
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, "ignore", result.Config.Blocks["atx-heading"])
	assert.Equal(t, "parse", result.Config.Blocks["setext-heading"])
	for _, rule := range []string{"autolink", "link", "reference-link", "image"} {
		assert.Equal(t, "skip", result.Config.Inlines[rule], rule)
	}
}

func TestLoad_WarnsDuplicateRules(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), `
blocks:
  blockquote: skip
  quote: ignore
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)

	assert.Equal(t, "ignore", result.Config.Blocks["blockquote"])
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "duplicate rule configuration")
}

func TestLoad_WarnsIneffectiveLanguageDetection(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755))
	writeFile(t, filepath.Join(tmpDir, ".gomdparse.yml"), "detect_language: true\nblocks:\n  code-block: skip\n")

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	require.NoError(t, err)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "language detection")
}
