package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func pluralFiles(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "2 of 5 files need formatting, 1 error".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, task runner.Task) string {
	var parts []string

	switch task {
	case runner.TaskFormat:
		switch {
		case stats.FilesWritten > 0:
			parts = append(parts, s.Success.Render(fmt.Sprintf("%d %s formatted", stats.FilesWritten, pluralFiles(stats.FilesWritten))))
		case stats.FilesChanged > 0:
			parts = append(parts, s.Warning.Render(fmt.Sprintf("%d of %d %s need formatting",
				stats.FilesChanged, stats.FilesProcessed, pluralFiles(stats.FilesProcessed))))
		default:
			parts = append(parts, s.Success.Render("All files formatted")+
				s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, pluralFiles(stats.FilesProcessed))))
		}
	case runner.TaskCheck:
		if stats.FilesDiverged > 0 {
			parts = append(parts, s.Warning.Render(fmt.Sprintf("%d of %d %s diverge from goldmark",
				stats.FilesDiverged, stats.FilesProcessed, pluralFiles(stats.FilesProcessed))))
		} else {
			parts = append(parts, s.Success.Render("No divergences")+
				s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, pluralFiles(stats.FilesProcessed))))
		}
	default:
		parts = append(parts, fmt.Sprintf("%d %s parsed", stats.FilesProcessed, pluralFiles(stats.FilesProcessed)))
	}

	if stats.FilesErrored > 0 {
		word := "errors"
		if stats.FilesErrored == 1 {
			word = "error"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.FilesErrored, word)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, task runner.Task) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files processed:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesErrored > 0 {
		builder.WriteString("  Files with errors: " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
		if stats.ParseErrors > 0 {
			builder.WriteString("    Parse errors:    " +
				s.Error.Render(strconv.Itoa(stats.ParseErrors)) + "\n")
		}
	}

	switch task {
	case runner.TaskFormat:
		builder.WriteString("  Files changed:     " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
		if stats.FilesWritten > 0 {
			builder.WriteString("  Files written:     " +
				s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
		}
	case runner.TaskCheck:
		builder.WriteString("  Files diverged:    " +
			s.SummaryValue.Render(strconv.Itoa(stats.FilesDiverged)) + "\n")
	default:
		total := 0
		for _, n := range stats.Nodes {
			total += n
		}
		builder.WriteString("  Nodes:             " +
			s.SummaryValue.Render(strconv.Itoa(total)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render(task.String() + " failed"))
	case task == runner.TaskFormat && stats.FilesChanged > stats.FilesWritten:
		builder.WriteString(s.Warning.Render("Some files need formatting"))
	case task == runner.TaskCheck && stats.FilesDiverged > 0:
		builder.WriteString(s.Warning.Render("Some outlines diverge"))
	default:
		builder.WriteString(s.Success.Render(task.String() + " passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
