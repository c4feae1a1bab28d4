package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/internal/ui/pretty"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

type treeFlags struct {
	parser   parserFlags
	noTrunc  bool
	maxWidth int
}

func newTreeCommand() *cobra.Command {
	flags := &treeFlags{}

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Print the document tree of a Markdown file",
		Long: `Parse one Markdown document and print its tree, one node per line,
with node attributes and quoted literal text.

With no file, or with "-", the document is read from stdin. Literal text is
truncated to the terminal width unless --no-truncate is given.

Examples:
  gomdparse tree README.md
  echo '# Hi *there*' | gomdparse tree
  gomdparse tree --block table=ignore --no-truncate notes.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(cmd, args, flags)
		},
	}

	addParserFlags(cmd, &flags.parser)
	cmd.Flags().BoolVar(&flags.noTrunc, "no-truncate", false, "print literal text in full")
	cmd.Flags().IntVar(&flags.maxWidth, "max-width", 0, "truncate lines to this width (default: terminal width)")

	return cmd
}

func runTree(cmd *cobra.Command, args []string, flags *treeFlags) error {
	cliCfg := &config.Config{}
	flags.parser.apply(cliCfg)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	pcfg, err := cfg.ParserConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}

	path, content, err := readSingleInput(cmd, args)
	if err != nil {
		return err
	}
	doc, err := parser.Parse(pcfg, string(content))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	width := pretty.TerminalWidth(out)
	switch {
	case flags.noTrunc:
		width = 0
	case flags.maxWidth > 0:
		width = flags.maxWidth
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
	fmt.Fprint(out, styles.FormatTree(doc, width))
	return nil
}
