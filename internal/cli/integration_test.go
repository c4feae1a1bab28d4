package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/internal/cli"
)

const (
	formattedDoc   = "# Title\n\nSome text.\n"
	unformattedDoc = "Hello   world\n"
)

// execute runs the root command with args and stdin, isolated from any user
// configuration. It cannot run in parallel because it sets the environment.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := cli.NewRootCommand(testInfo())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_ParseStdinJSON(t *testing.T) {
	out, err := execute(t, "# Hi\n", "parse")
	require.NoError(t, err)

	assert.Contains(t, out, `"type": "document"`)
	assert.Contains(t, out, `"type": "heading"`)
	assert.Contains(t, out, `"value": "Hi"`)
}

func TestIntegration_ParseYAML(t *testing.T) {
	out, err := execute(t, "# Hi\n", "parse", "--format", "yaml", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "type: document")
	assert.Contains(t, out, "type: heading")
}

func TestIntegration_ParseSeveralFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "b.md", "- b\n")

	out, err := execute(t, "", "parse", dir)
	require.NoError(t, err)

	assert.Contains(t, out, `"path"`)
	assert.Contains(t, out, "a.md")
	assert.Contains(t, out, `"type": "list"`)
}

func TestIntegration_ParseStats(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", formattedDoc)

	out, err := execute(t, "", "parse", "--stats", path)
	require.NoError(t, err)

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "heading")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "1 file parsed")
}

func TestIntegration_ParseErrorExitCode(t *testing.T) {
	_, err := execute(t, "plain\n", "parse", "--inline", "text=ignore")
	require.Error(t, err)
	assert.Equal(t, cli.ExitParseErrors, cli.ExitCode(err))
}

func TestIntegration_ParseBlockFlag(t *testing.T) {
	out, err := execute(t, "# Hi\n", "parse", "--block", "heading=ignore")
	require.NoError(t, err)

	assert.NotContains(t, out, `"type": "heading"`)
	assert.Contains(t, out, `"type": "paragraph"`)
}

func TestIntegration_HTML(t *testing.T) {
	out, err := execute(t, "# Hi\n", "html", "--heading-ids", "--anchor-prefix", "doc-")
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="doc-hi">Hi</h1>`)
}

func TestIntegration_HTMLOutputFile(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "a.md", "*x*\n")
	dst := filepath.Join(dir, "a.html")

	out, err := execute(t, "", "html", src, "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<em>x</em>")
}

func TestIntegration_HTMLWatchNeedsFile(t *testing.T) {
	_, err := execute(t, "# Hi\n", "html", "--watch")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))
}

func TestIntegration_Tree(t *testing.T) {
	out, err := execute(t, "# Hi\n", "tree")
	require.NoError(t, err)

	assert.Contains(t, out, "document\n")
	assert.Contains(t, out, "└── heading level=1 style=atx\n")
	assert.Contains(t, out, `text "Hi"`)
}

func TestIntegration_FmtStdout(t *testing.T) {
	out, err := execute(t, unformattedDoc, "fmt")
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", out)
}

func TestIntegration_FmtCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.md", formattedDoc)
	writeFile(t, dir, "bad.md", unformattedDoc)

	out, err := execute(t, "", "fmt", "--check", dir)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFormatDiffers, cli.ExitCode(err))
	assert.Contains(t, out, "bad.md: needs formatting")
	assert.NotContains(t, out, "good.md")
}

func TestIntegration_FmtCheckClean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.md", formattedDoc)

	out, err := execute(t, "", "fmt", "--check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All files formatted")
}

func TestIntegration_FmtWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.md", unformattedDoc)

	out, err := execute(t, "", "fmt", "--write", "--check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "formatted")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world\n", string(data))
}

func TestIntegration_FmtDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.md", unformattedDoc)

	out, err := execute(t, "", "fmt", "--diff", path)
	require.NoError(t, err)
	assert.Contains(t, out, "-Hello   world")
	assert.Contains(t, out, "+Hello world")
	assert.Contains(t, out, "1 file changed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, unformattedDoc, string(data))
}

func TestIntegration_FmtWidthFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yml", "width: 5\n")

	out, err := execute(t, "aaa bbb ccc\n", "fmt", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "aaa\nbbb\nccc\n", out)
}

func TestIntegration_FmtWidthFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yml", "width: 5\n")

	out, err := execute(t, "aaa bbb ccc\n", "fmt", "--config", cfgPath, "--width", "80")
	require.NoError(t, err)
	assert.Equal(t, "aaa bbb ccc\n", out)
}

func TestIntegration_Check(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", "#heading\n")

	out, err := execute(t, "", "check", "--allow-no-space-in-headings", path)
	require.Error(t, err)
	assert.Equal(t, cli.ExitFormatDiffers, cli.ExitCode(err))
	assert.Contains(t, out, "outline differs from goldmark")
}

func TestIntegration_CheckClean(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.md", formattedDoc)

	out, err := execute(t, "", "check", "--format", "json", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"task": "check"`)
	assert.Contains(t, out, `"filesDiverged": 0`)
}

func TestIntegration_Config(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yml", "width: 100\nblocks:\n  heading: ignore\n")

	out, err := execute(t, "", "config", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, out, "# gomdparse effective configuration")
	assert.Contains(t, out, "width: 100")
	assert.Contains(t, out, "atx-heading: ignore")
}

func TestIntegration_ConfigRulesAndEnv(t *testing.T) {
	out, err := execute(t, "", "config", "--rules")
	require.NoError(t, err)
	assert.Contains(t, out, "blocks:\n")
	assert.Contains(t, out, "atx-heading")
	assert.Contains(t, out, "inlines:\n")
	assert.Contains(t, out, "strikethrough")

	out, err = execute(t, "", "config", "--env")
	require.NoError(t, err)
	assert.Contains(t, out, "GOMDPARSE_WIDTH")
}

func TestIntegration_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yml", "blocks:\n  table: map\n")

	_, err := execute(t, "x\n", "parse", "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_InvalidModeFlag(t *testing.T) {
	_, err := execute(t, "x\n", "parse", "--block", "table=bogus")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestIntegration_MissingFile(t *testing.T) {
	_, err := execute(t, "", "fmt", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))
}
