package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gomdparse/internal/ui/pretty"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

// diffIndent prefixes outline diff lines under a file line.
const diffIndent = "    "

// TextReporter writes one styled line per file that needs attention.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to process."))
		}
		return 0, nil
	}

	for _, file := range result.Files {
		if !r.opts.Verbose && !needsAttention(file) && !file.Written {
			continue
		}
		r.writeFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, r.opts.Task))
	}

	return countAttention(result), nil
}

func (r *TextReporter) writeFile(file runner.FileOutcome) {
	path := r.styles.FilePath.Render(r.opts.displayPath(file.Path))
	row := pretty.OutcomeToTableRow(file)

	switch row.Status {
	case pretty.StatusError:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
	case pretty.StatusChanged:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Warning.Render("needs formatting"))
	case pretty.StatusWritten:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Success.Render("formatted"))
	case pretty.StatusDiverged:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Warning.Render("outline differs from goldmark"))
		r.writeOutlineDiff(file.Check.Diff)
	default:
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Success.Render(row.Status))
	}
}

// writeOutlineDiff writes the changed outline lines, skipping the file headers.
func (r *TextReporter) writeOutlineDiff(diff string) {
	for line := range strings.SplitSeq(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "@@"):
			continue
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(r.bw, diffIndent+r.styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(r.bw, diffIndent+r.styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(r.bw, diffIndent+r.styles.DiffContext.Render(line))
		}
	}
}
