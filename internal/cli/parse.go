package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdparse/internal/ui/pretty"
	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/config"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

// dumpIndent is the indentation of JSON and YAML dumps.
const dumpIndent = 2

type parseFlags struct {
	parser parserFlags
	format string
	stats  bool
	jobs   int
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse Markdown and dump the document tree",
		Long: `Parse Markdown files and print their document trees as JSON or YAML.

With no file, or with "-", the document is read from stdin. Directories are
searched for .md and .markdown files. With several files, the output is a
list of {path, document} entries.

Examples:
  gomdparse parse README.md
  gomdparse parse --format yaml docs/intro.md
  cat notes.md | gomdparse parse --inline emphasis=ignore
  gomdparse parse --stats docs/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	addParserFlags(cmd, &flags.parser)
	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatJSON), "output format: json, yaml")
	cmd.Flags().BoolVar(&flags.stats, "stats", false, "print node counts per kind instead of the tree")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	cliCfg := &config.Config{Jobs: flags.jobs}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	flags.parser.apply(cliCfg)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	result, err := runFiles(cmd, cfg, args, runner.Options{Task: runner.TaskParse})
	if err != nil {
		return err
	}
	logFailures(cmd, result)

	out := cmd.OutOrStdout()
	if flags.stats {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode(cmd), out))
		formatter := pretty.NewTableFormatter(styles, pretty.TerminalWidth(out))
		fmt.Fprint(out, formatter.FormatNodeCounts(result.Stats.Nodes))
		fmt.Fprint(out, styles.FormatSummaryOneLine(result.Stats, runner.TaskParse))
		return failureError(result)
	}

	if err := writeDump(out, cfg.Format, dumpValue(result)); err != nil {
		return err
	}
	return failureError(result)
}

// dumpValue returns the encoded document of a single input, or a list of
// path and document pairs for several inputs.
func dumpValue(result *runner.Result) any {
	if len(result.Files) == 1 {
		if doc := result.Files[0].Document; doc != nil {
			return ast.Encode(doc)
		}
		return nil
	}

	workDir, _ := os.Getwd()
	entries := make([]map[string]any, 0, len(result.Files))
	for _, file := range result.Files {
		if file.Document == nil {
			continue
		}
		path := file.Path
		if rel, err := filepath.Rel(workDir, path); err == nil && filepath.IsAbs(path) {
			path = filepath.ToSlash(rel)
		}
		entries = append(entries, map[string]any{
			"path":     path,
			"document": ast.Encode(file.Document),
		})
	}
	return entries
}

func writeDump(out io.Writer, format config.OutputFormat, value any) error {
	if value == nil {
		return nil
	}

	switch format {
	case config.FormatYAML:
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(dumpIndent)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("%w: encode YAML: %w", ErrIO, err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("%w: encode YAML: %w", ErrIO, err)
		}
	default:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("%w: encode JSON: %w", ErrIO, err)
		}
	}
	return nil
}
