package pretty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/runner"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minFileWidth     = 20
	minDetailWidth   = 20
	statusWidth      = 8
	timeWidth        = 8
	heavySeparator   = "="
	lightSeparator   = "-"
	ellipsis         = "..."
	kindColumnHeader = "KIND"
)

// File statuses shown in the STATUS column.
const (
	StatusOK       = "ok"
	StatusChanged  = "changed"
	StatusWritten  = "written"
	StatusDiverged = "diverged"
	StatusError    = "error"
)

// TableRow represents a single row in the file table.
type TableRow struct {
	File     string
	Status   string
	Duration time.Duration
	Detail   string
}

// TableFormatter formats run results as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTable formats one row per processed file.
func (t *TableFormatter) FormatTable(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := lo.Map(result.Files, func(file runner.FileOutcome, _ int) TableRow {
		return OutcomeToTableRow(file)
	})

	fileWidth := runewidth.StringWidth("FILE")
	for _, row := range rows {
		fileWidth = max(fileWidth, runewidth.StringWidth(row.File))
	}
	fixed := statusWidth + timeWidth + tablePadding*4
	fileWidth = min(fileWidth, max(minFileWidth, t.termWidth-fixed-minDetailWidth))
	detailWidth := max(minDetailWidth, t.termWidth-fixed-fileWidth)

	var builder strings.Builder
	header := fmt.Sprintf(" %s  %s  %s  %s",
		padRight("FILE", fileWidth),
		padRight("STATUS", statusWidth),
		padLeft("TIME", timeWidth),
		"DETAIL",
	)
	builder.WriteString(t.styles.TableHeader.Render(header))
	builder.WriteString("\n")
	builder.WriteString(t.separator(fileWidth+detailWidth+fixed, heavySeparator))
	builder.WriteString("\n")

	for _, row := range rows {
		status := t.statusStyle(row.Status).Render(padRight(row.Status, statusWidth))
		line := fmt.Sprintf(" %s  %s  %s  %s",
			padRight(truncateFilePath(row.File, fileWidth), fileWidth),
			status,
			t.styles.Dim.Render(padLeft(formatDuration(row.Duration), timeWidth)),
			truncateString(row.Detail, detailWidth),
		)
		builder.WriteString(strings.TrimRight(line, " "))
		builder.WriteString("\n")
	}

	builder.WriteString(t.separator(fileWidth+detailWidth+fixed, heavySeparator))
	builder.WriteString("\n")
	return builder.String()
}

// FormatNodeCounts formats node counts as a two-column table, in kind order.
func (t *TableFormatter) FormatNodeCounts(counts map[ast.Kind]int) string {
	if len(counts) == 0 {
		return ""
	}

	kinds := lo.Keys(counts)
	slices.Sort(kinds)

	kindWidth := runewidth.StringWidth(kindColumnHeader)
	countWidth := runewidth.StringWidth("COUNT")
	total := 0
	for _, kind := range kinds {
		kindWidth = max(kindWidth, runewidth.StringWidth(kind.String()))
		countWidth = max(countWidth, len(strconv.Itoa(counts[kind])))
		total += counts[kind]
	}
	countWidth = max(countWidth, len(strconv.Itoa(total)))

	var builder strings.Builder
	width := kindWidth + countWidth + tablePadding + 1
	builder.WriteString(t.styles.TableHeader.Render(
		fmt.Sprintf(" %s  %s", padRight(kindColumnHeader, kindWidth), padLeft("COUNT", countWidth))))
	builder.WriteString("\n")
	builder.WriteString(t.separator(width, lightSeparator))
	builder.WriteString("\n")
	for _, kind := range kinds {
		fmt.Fprintf(&builder, " %s  %s\n",
			padRight(kind.String(), kindWidth),
			t.styles.SummaryValue.Render(padLeft(strconv.Itoa(counts[kind]), countWidth)))
	}
	builder.WriteString(t.separator(width, lightSeparator))
	builder.WriteString("\n")
	fmt.Fprintf(&builder, " %s  %s\n",
		t.styles.Bold.Render(padRight("total", kindWidth)),
		t.styles.Bold.Render(padLeft(strconv.Itoa(total), countWidth)))
	return builder.String()
}

func (t *TableFormatter) separator(width int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, width))
}

func (t *TableFormatter) statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusError:
		return t.styles.Error
	case StatusChanged, StatusDiverged:
		return t.styles.Warning
	default:
		return t.styles.Success
	}
}

// OutcomeToTableRow converts a file outcome to a table row.
func OutcomeToTableRow(file runner.FileOutcome) TableRow {
	row := TableRow{
		File:     file.Path,
		Status:   StatusOK,
		Duration: file.Duration,
	}

	switch {
	case file.Error != nil:
		row.Status = StatusError
		row.Detail = file.Error.Error()
	case file.Written:
		row.Status = StatusWritten
	case file.Changed:
		row.Status = StatusChanged
	case file.Check != nil && !file.Check.Equal():
		row.Status = StatusDiverged
		row.Detail = firstLine(file.Check.Diff)
	case file.Document != nil:
		row.Detail = fmt.Sprintf("%d blocks", len(file.Document.Blocks))
	}
	return row
}

// firstLine returns the first changed line of a unified diff.
func firstLine(diff string) string {
	for line := range strings.SplitSeq(diff, "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "@@") {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
			return line
		}
	}
	return ""
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func padRight(str string, width int) string {
	return runewidth.FillRight(str, width)
}

func padLeft(str string, width int) string {
	return runewidth.FillLeft(str, width)
}

// truncateString truncates a string to maxWidth cells, adding "..." if truncated.
func truncateString(str string, maxWidth int) string {
	if runewidth.StringWidth(str) <= maxWidth {
		return str
	}
	if maxWidth <= len(ellipsis) {
		return runewidth.Truncate(str, maxWidth, "")
	}
	return runewidth.Truncate(str, maxWidth, ellipsis)
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxWidth int) string {
	if runewidth.StringWidth(path) <= maxWidth {
		return path
	}
	runes := []rune(path)
	keep := maxWidth - len(ellipsis)
	if maxWidth <= len(ellipsis) {
		keep = maxWidth
	}
	tail := ""
	for i := len(runes) - 1; i >= 0; i-- {
		candidate := string(runes[i:])
		if runewidth.StringWidth(candidate) > keep {
			break
		}
		tail = candidate
	}
	if maxWidth <= len(ellipsis) {
		return tail
	}
	return ellipsis + tail
}
