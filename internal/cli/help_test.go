package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdparse/internal/cli"
)

func helpOutput(t *testing.T, args ...string) string {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--help", "--color=never"))

	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestHelp_Root(t *testing.T) {
	t.Parallel()

	out := helpOutput(t)

	assert.Contains(t, out, "gomdparse parses CommonMark")
	assert.Contains(t, out, "Usage:\n  gomdparse [command]")
	assert.Contains(t, out, "Commands:")
	assert.Contains(t, out, "  parse")
	assert.Contains(t, out, "  check")
	assert.Contains(t, out, "Flags:")
	assert.Contains(t, out, `Run "gomdparse [command] --help"`)
	assert.NotContains(t, out, "Rule modes:")
}

func TestHelp_SubcommandFlags(t *testing.T) {
	t.Parallel()

	out := helpOutput(t, "fmt")

	assert.Contains(t, out, "Usage:\n  gomdparse fmt [paths...] [flags]")
	assert.Contains(t, out, "Examples:")
	assert.Contains(t, out, "-w, --write")
	assert.Contains(t, out, "    --width int")
	assert.Contains(t, out, `(default "text")`)
	assert.Contains(t, out, "Global Flags:")
	assert.Contains(t, out, `(default "auto")`)
	assert.Contains(t, out, "Rule modes:")
	assert.Contains(t, out, `"gomdparse config --rules"`)
}

func TestHelp_NoRuleModesWithoutRuleFlags(t *testing.T) {
	t.Parallel()

	out := helpOutput(t, "config")

	assert.Contains(t, out, "--rules")
	assert.NotContains(t, out, "Rule modes:")
}
