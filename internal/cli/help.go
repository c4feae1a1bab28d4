package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/gomdparse/internal/ui/pretty"
)

const usageTemplate = `{{heading "Usage:"}}
{{- if .Runnable}}
  {{command .UseLine}}{{end}}
{{- if .HasAvailableSubCommands}}
  {{command .CommandPath}} [command]{{end}}
{{- if .HasExample}}

{{heading "Examples:"}}
{{dim .Example}}{{end}}
{{- if .HasAvailableSubCommands}}

{{heading "Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{subcommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}{{end}}
{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flags .LocalFlags}}{{end}}
{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flags .InheritedFlags}}{{end}}
{{- if hasRuleFlags .}}

{{heading "Rule modes:"}}
  parse, ignore, skip (run "{{command (print .Root.Name " config --rules")}}" for rule names){{end}}
{{- if .HasAvailableSubCommands}}

Run "{{command (print .CommandPath " [command] --help")}}" for more information about a command.{{end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{trimTrailing .}}

{{end}}` + usageTemplate

// helpFormatter renders cobra help and usage text with the pretty styles.
type helpFormatter struct {
	styles *pretty.Styles
}

func newHelpFormatter(colorMode string, w io.Writer) *helpFormatter {
	return &helpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, w))}
}

// applyHelp installs styled help and usage output on cmd and its subcommands.
// Colour is decided when the text is printed, after --color has been parsed.
func applyHelp(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		out := c.OutOrStderr()
		return newHelpFormatter(colorMode(c), out).execute(out, usageTemplate, c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		if err := newHelpFormatter(colorMode(c), out).execute(out, helpTemplate, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func (h *helpFormatter) execute(w io.Writer, text string, cmd *cobra.Command) error {
	tmpl, err := template.New("help").Funcs(h.funcs()).Parse(text)
	if err != nil {
		return fmt.Errorf("parse help template: %w", err)
	}
	if err := tmpl.Execute(w, cmd); err != nil {
		return fmt.Errorf("render help: %w", err)
	}
	return nil
}

func (h *helpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading":      h.styles.SummaryTitle.Render,
		"command":      h.styles.Bold.Render,
		"subcommand":   h.styles.Success.Render,
		"dim":          h.styles.Dim.Render,
		"flags":        h.flags,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespace,
		"hasRuleFlags": hasRuleFlags,
	}
}

// flagRow is one flag's help line before styling.
type flagRow struct {
	names string
	typ   string
	usage string
	def   string
}

// flags lays out a flag set as aligned columns of names, value type and usage.
func (h *helpFormatter) flags(set *pflag.FlagSet) string {
	var rows []flagRow
	width := 0

	set.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		typ, usage := pflag.UnquoteUsage(f)
		row := flagRow{names: "    --" + f.Name, typ: typ, usage: usage, def: flagDefault(f)}
		if f.Shorthand != "" {
			row.names = "-" + f.Shorthand + ", --" + f.Name
		}
		rows = append(rows, row)
		width = max(width, runewidth.StringWidth(row.left()))
	})

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString("  ")
		sb.WriteString(h.styles.TreeAttr.Render(row.names))
		if row.typ != "" {
			sb.WriteString(" " + h.styles.Dim.Render(row.typ))
		}
		sb.WriteString(strings.Repeat(" ", width-runewidth.StringWidth(row.left())+3))
		sb.WriteString(row.usage)
		if row.def != "" {
			sb.WriteString(" " + h.styles.Dim.Render("(default "+row.def+")"))
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}

func (r flagRow) left() string {
	if r.typ == "" {
		return r.names
	}
	return r.names + " " + r.typ
}

// flagDefault returns the default worth showing for f, or "" for zero values.
func flagDefault(f *pflag.Flag) string {
	switch f.DefValue {
	case "", "false", "0", "[]":
		return ""
	}
	if f.Value.Type() == "string" {
		return fmt.Sprintf("%q", f.DefValue)
	}
	return f.DefValue
}

// hasRuleFlags reports whether cmd accepts --block and --inline.
func hasRuleFlags(cmd *cobra.Command) bool {
	return cmd.Flags().Lookup("block") != nil
}

func rpad(s string, padding int) string {
	return runewidth.FillRight(s, padding)
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
