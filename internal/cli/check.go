package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/reporter"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

type checkFlags struct {
	parser  parserFlags
	jobs    int
	format  string
	verbose bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Compare block structure with goldmark",
		Long: `Parse Markdown files with both gomdparse and goldmark and compare the block
outlines the two parsers produce. Files whose outlines differ are listed
with an outline diff, and the command exits with status 2.

Examples:
  gomdparse check docs/
  gomdparse check --format diff README.md
  gomdparse check --format json . > divergences.json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addParserFlags(cmd, &flags.parser)
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText),
		"output format: "+reporter.FormatNames())
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list files whose outlines match")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	cliCfg := &config.Config{Jobs: flags.jobs}
	flags.parser.apply(cliCfg)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	result, err := runFiles(cmd, cfg, args, runner.Options{Task: runner.TaskCheck})
	if err != nil {
		return err
	}

	if err := report(cmd, result, flags.format, reporter.Options{
		Task:        runner.TaskCheck,
		ShowSummary: true,
		Verbose:     flags.verbose,
	}); err != nil {
		return err
	}

	if err := failureError(result); err != nil {
		return err
	}
	if result.HasDivergences() {
		return ErrOutlinesDiffer
	}
	return nil
}
