package markdown

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

func table(w *writer, t *ast.Table) {
	if len(t.Rows) == 0 {
		return
	}

	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = make([]string, len(t.Alignments))
		for j := range t.Alignments {
			if j < len(row) {
				cells[i][j] = strings.ReplaceAll(flat(inlineTokens(row[j])), "|", `\|`)
			}
		}
	}

	widths := make([]int, len(t.Alignments))
	for j, align := range t.Alignments {
		widths[j] = minColumnWidth(align)
		for i := range cells {
			widths[j] = max(widths[j], runewidth.StringWidth(cells[i][j]))
		}
	}

	tableRow(w, cells[0], widths, t.Alignments)
	w.newline()
	delimiterRow(w, widths, t.Alignments)
	for _, row := range cells[1:] {
		w.newline()
		tableRow(w, row, widths, t.Alignments)
	}
}

// minColumnWidth is the narrowest delimiter cell that expresses align.
func minColumnWidth(align ast.Alignment) int {
	switch align {
	case ast.AlignCenter:
		return 3
	case ast.AlignLeft, ast.AlignRight:
		return 2
	default:
		return 1
	}
}

func tableRow(w *writer, row []string, widths []int, aligns []ast.Alignment) {
	parts := make([]string, len(row))
	for j, cell := range row {
		pad := widths[j] - runewidth.StringWidth(cell)
		switch aligns[j] {
		case ast.AlignRight:
			parts[j] = strings.Repeat(" ", pad) + cell
		case ast.AlignCenter:
			left := pad / 2
			parts[j] = strings.Repeat(" ", left) + cell + strings.Repeat(" ", pad-left)
		default:
			parts[j] = cell + strings.Repeat(" ", pad)
		}
	}
	w.write("| " + strings.Join(parts, " | ") + " |")
}

func delimiterRow(w *writer, widths []int, aligns []ast.Alignment) {
	parts := make([]string, len(widths))
	for j, width := range widths {
		switch aligns[j] {
		case ast.AlignLeft:
			parts[j] = ":" + strings.Repeat("-", width-1)
		case ast.AlignRight:
			parts[j] = strings.Repeat("-", width-1) + ":"
		case ast.AlignCenter:
			parts[j] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			parts[j] = strings.Repeat("-", width)
		}
	}
	w.write("| " + strings.Join(parts, " | ") + " |")
}
