package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/reporter"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

type fmtFlags struct {
	parser  parserFlags
	width   int
	write   bool
	diff    bool
	check   bool
	backup  bool
	jobs    int
	format  string
	verbose bool
}

func newFmtCommand() *cobra.Command {
	flags := &fmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Reformat Markdown files",
		Long: `Reformat Markdown into its canonical form.

Without --write, --diff or --check the formatted documents are printed to
stdout. With no path, or with "-", the document is read from stdin.
Directories are searched for .md and .markdown files, which are formatted
concurrently.

Examples:
  gomdparse fmt README.md             # Print the formatted document
  gomdparse fmt --write docs/         # Rewrite files in place
  gomdparse fmt --diff .              # Show what would change
  gomdparse fmt --check --width 100 . # Exit 2 if any file would change`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(cmd, args, flags)
		},
	}

	addParserFlags(cmd, &flags.parser)
	cmd.Flags().IntVar(&flags.width, "width", 0, "wrap paragraphs at this width (default from config, 80)")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files whose formatting differs")
	cmd.Flags().BoolVarP(&flags.diff, "diff", "d", false, "print unified diffs instead of formatted output")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit non-zero when a file would change")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a .bak copy of rewritten files")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&flags.format, "format", string(reporter.FormatText),
		"report format with --write, --diff or --check: "+reporter.FormatNames())
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list files that are already formatted")

	return cmd
}

func runFmt(cmd *cobra.Command, args []string, flags *fmtFlags) error {
	cliCfg := &config.Config{
		Width:   flags.width,
		Jobs:    flags.jobs,
		Backups: config.BackupsConfig{Enabled: flags.backup},
	}
	flags.parser.apply(cliCfg)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	result, err := runFiles(cmd, cfg, args, runner.Options{
		Task:  runner.TaskFormat,
		Write: flags.write,
		Diff:  flags.diff,
	})
	if err != nil {
		return err
	}

	if !flags.write && !flags.diff && !flags.check {
		logFailures(cmd, result)
		out := cmd.OutOrStdout()
		for _, file := range result.Files {
			if file.Error == nil {
				fmt.Fprint(out, file.Formatted)
			}
		}
		return failureError(result)
	}

	format := flags.format
	if flags.diff && !cmd.Flags().Changed("format") {
		format = string(reporter.FormatDiff)
	}
	if err := report(cmd, result, format, reporter.Options{
		Task:        runner.TaskFormat,
		ShowSummary: true,
		Verbose:     flags.verbose,
	}); err != nil {
		return err
	}

	if err := failureError(result); err != nil {
		return err
	}
	if flags.check && result.Stats.FilesChanged > result.Stats.FilesWritten {
		return ErrFormatDiffers
	}
	return nil
}
