package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// table parses a header row, a delimiter row with the same number of cells,
// and any following data rows. Data rows are padded with empty cells or
// truncated to the header's width.
func (s *state) table(in string) (string, ast.Block, bool) {
	p, header, ok := s.tableRow(in)
	if !ok {
		return in, nil, false
	}
	p, aligns, ok := delimiterRow(p)
	if !ok || len(aligns) != len(header) {
		return in, nil, false
	}

	rows := []ast.Row{header}
	for p != "" {
		rest, row, ok := s.tableRow(p)
		if !ok {
			break
		}
		rows = append(rows, fitRow(row, len(aligns)))
		p = rest
	}

	return p, &ast.Table{Alignments: aligns, Rows: rows}, true
}

func fitRow(row ast.Row, width int) ast.Row {
	if len(row) > width {
		return row[:width]
	}
	for len(row) < width {
		row = append(row, ast.Cell{&ast.Text{}})
	}
	return row
}

// splitRow splits "| a | b |" into its raw cells. The leading and trailing
// pipes are required; "\|" does not delimit a cell and is unescaped.
func splitRow(in string) (string, []string, bool) {
	p := skipIndent(in)
	if !strings.HasPrefix(p, "|") {
		return in, nil, false
	}
	line, rest := line0(p[1:])
	line = strings.TrimRight(line, " \t")
	if !strings.HasSuffix(line, "|") || strings.HasSuffix(line, `\|`) {
		return in, nil, false
	}
	line = line[:len(line)-1]

	var cells []string
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '\\' && i+1 < len(line) && line[i+1] == '|':
			sb.WriteByte('|')
			i++
		case line[i] == '|':
			cells = append(cells, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(line[i])
		}
	}
	cells = append(cells, sb.String())
	return rest, cells, true
}

// tableRow parses a row and the inline content of its trimmed cells.
func (s *state) tableRow(in string) (string, ast.Row, bool) {
	rest, raw, ok := splitRow(in)
	if !ok {
		return in, nil, false
	}
	row := make(ast.Row, 0, len(raw))
	for _, cell := range raw {
		content, ok := s.inlines(strings.TrimSpace(cell))
		if !ok {
			return in, nil, false
		}
		row = append(row, ast.Cell(content))
	}
	return rest, row, true
}

// delimiterRow parses "| --- | :-- | --: | :-: |"; the trailing pipe is
// optional.
func delimiterRow(in string) (string, []ast.Alignment, bool) {
	p := skipIndent(in)
	if !strings.HasPrefix(p, "|") {
		return in, nil, false
	}
	line, rest := line0(p[1:])
	line = strings.TrimRight(line, " \t")
	line = strings.TrimSuffix(line, "|")

	parts := strings.Split(line, "|")
	aligns := make([]ast.Alignment, 0, len(parts))
	for _, part := range parts {
		align, ok := cellAlignment(strings.Trim(part, " \t"))
		if !ok {
			return in, nil, false
		}
		aligns = append(aligns, align)
	}
	return rest, aligns, true
}

func cellAlignment(cell string) (ast.Alignment, bool) {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":") && len(cell) > 1
	dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
	if dashes == "" || strings.Trim(dashes, "-") != "" {
		return ast.AlignNone, false
	}
	switch {
	case left && right:
		return ast.AlignCenter, true
	case left:
		return ast.AlignLeft, true
	case right:
		return ast.AlignRight, true
	}
	return ast.AlignNone, true
}
