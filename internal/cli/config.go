package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/configloader"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

const configHeader = `# gomdparse effective configuration
# Modes per rule: parse, ignore, skip
`

func newConfigCommand() *cobra.Command {
	var listRules, listEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration that results from merging the user config, the
project config, the --config file and GOMDPARSE_* environment variables,
as YAML.

Examples:
  gomdparse config
  gomdparse config > .gomdparse.yml
  gomdparse config --rules
  gomdparse config --env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch {
			case listRules:
				return printRules(cmd)
			case listEnv:
				return printEnv(cmd)
			default:
				return printConfig(cmd)
			}
		},
	}

	cmd.Flags().BoolVar(&listRules, "rules", false, "list block and inline rule names with their aliases")
	cmd.Flags().BoolVar(&listEnv, "env", false, "list the environment variables that override configuration")

	return cmd
}

func printConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	data, err := cfg.ToYAMLWithHeader(configHeader)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("%w: write configuration: %w", ErrIO, err)
	}
	return nil
}

func printRules(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	blockNames := lo.Map(parser.BlockRules(), func(rule parser.BlockRule, _ int) string { return rule.String() })
	inlineNames := lo.Map(parser.InlineRules(), func(rule parser.InlineRule, _ int) string { return rule.String() })

	fmt.Fprintln(out, "blocks:")
	for _, name := range blockNames {
		printRule(cmd, name)
	}
	fmt.Fprintln(out, "inlines:")
	for _, name := range inlineNames {
		printRule(cmd, name)
	}
	return nil
}

func printRule(cmd *cobra.Command, name string) {
	aliases := configloader.GetAliasesForRule(name)
	if len(aliases) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", name, strings.Join(aliases, ", "))
}

func printEnv(cmd *cobra.Command) error {
	vars := configloader.ListEnvVars()
	names := lo.Keys(vars)
	slices.Sort(names)

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "%-*s  %s\n", width, name, vars[name])
	}
	return nil
}
