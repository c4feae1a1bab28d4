package reporter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Format names a reporter.
type Format string

// Report formats.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatDiff    Format = "diff"
	FormatSummary Format = "summary"
)

// Formats returns every report format in the order they are listed in help.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatDiff, FormatSummary}
}

// FormatNames returns the report formats joined for flag help.
func FormatNames() string {
	return strings.Join(lo.Map(Formats(), func(f Format, _ int) string { return string(f) }), ", ")
}

// ParseFormat converts a format name. The empty name selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: %s", name, FormatNames())
	}
	return f, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f names a reporter.
func (f Format) IsValid() bool {
	return slices.Contains(Formats(), f)
}
