package parser

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// listItemStart describes the first line of a list item.
type listItemStart struct {
	kind ast.ListKind
	// prefix is the indentation continuation lines need to stay in the item.
	prefix int
	task   ast.TaskState
	// first is the text after the marker on the first line.
	first string
}

// bulletOrNumber parses a list marker: '-', '*', '+', or a number followed
// by '.' or ')'.
func bulletOrNumber(in string) (string, ast.ListKind, bool) {
	if in == "" {
		return in, ast.ListKind{}, false
	}
	switch in[0] {
	case '-':
		return in[1:], ast.ListKind{Bullet: ast.BulletDash}, true
	case '*':
		return in[1:], ast.ListKind{Bullet: ast.BulletStar}, true
	case '+':
		return in[1:], ast.ListKind{Bullet: ast.BulletPlus}, true
	}

	n := 0
	for n < len(in) && isASCIIDigit(in[n]) {
		n++
	}
	if n == 0 || n == len(in) || (in[n] != '.' && in[n] != ')') {
		return in, ast.ListKind{}, false
	}
	start, err := strconv.ParseUint(in[:n], 10, 64)
	if err != nil {
		return in, ast.ListKind{}, false
	}
	return in[n+1:], ast.ListKind{Ordered: true, Start: start}, true
}

// taskBox parses "[ ]", "[x]" or "[X]".
func taskBox(in string) (string, ast.TaskState, bool) {
	switch {
	case strings.HasPrefix(in, "[ ]"):
		return in[3:], ast.TaskIncomplete, true
	case strings.HasPrefix(in, "[x]"), strings.HasPrefix(in, "[X]"):
		return in[3:], ast.TaskComplete, true
	}
	return in, ast.TaskNone, false
}

// listMarker parses the first line of a list item. The marker is either
// followed by the end of the line (optionally holding only a task box), or
// by one to four spaces and the item text.
func listMarker(in string) (string, listItemStart, bool) {
	if rest, start, ok := listMarkerAlone(in); ok {
		return rest, start, true
	}
	return listMarkerWithText(in)
}

func listMarkerAlone(in string) (string, listItemStart, bool) {
	afterMarker, kind, ok := bulletOrNumber(skipIndent(in))
	if !ok {
		return in, listItemStart{}, false
	}

	if rest, ok := blankLine(afterMarker); ok {
		return rest, listItemStart{kind: kind, prefix: len(consumed(in, afterMarker)) + 1}, true
	}

	p, _, _ := spaces(afterMarker, 0, 3)
	prefix := len(consumed(in, p)) + 1
	p, task, ok := taskBox(p)
	if !ok {
		return in, listItemStart{}, false
	}
	rest, ok := eofOrEOL(p)
	if !ok {
		return in, listItemStart{}, false
	}
	return rest, listItemStart{kind: kind, prefix: prefix, task: task}, true
}

func listMarkerWithText(in string) (string, listItemStart, bool) {
	p, kind, ok := bulletOrNumber(skipIndent(in))
	if !ok {
		return in, listItemStart{}, false
	}
	p, _, ok = spaces(p, 1, 4)
	if !ok {
		return in, listItemStart{}, false
	}
	start := listItemStart{kind: kind, prefix: len(consumed(in, p))}

	if after, task, ok := taskBox(p); ok && strings.HasPrefix(after, " ") {
		start.task = task
		p = after[1:]
	}

	start.first, p = line0(p)
	return p, start, true
}

// indentation counts leading spaces.
func indentation(in string) int {
	return runOf(in, ' ')
}

// listItemLine parses one continuation line of an item with the given
// prefix. A line indented by fewer than prefix spaces ends the item when it
// starts a thematic break or another item. Otherwise the line continues the
// item when it is non-blank, or when it follows blank lines and is indented
// by exactly prefix spaces. The returned text keeps any blank lines it
// crossed.
func listItemLine(in string, prefix int) (string, string, bool) {
	if in == "" {
		return in, "", false
	}
	if indentation(in) < prefix {
		if _, ok := thematicBreakLine(in); ok {
			return in, "", false
		}
		if _, _, ok := listMarker(in); ok {
			return in, "", false
		}
	}

	p, _, _ := spaces(in, 0, prefix)
	if content, rest, ok := line1(p); ok {
		return rest, content, true
	}

	p = in
	for p != "" {
		rest, ok := blankLine(p)
		if !ok {
			break
		}
		p = rest
	}
	blanks := consumed(in, p)
	if blanks == "" {
		return in, "", false
	}
	p, _, ok := spaces(p, prefix, prefix)
	if !ok {
		return in, "", false
	}
	content, rest, ok := line1(p)
	if !ok {
		return in, "", false
	}
	return rest, blanks + content, true
}

// listItem parses one item: its first line, its continuation lines, and the
// blocks of the joined content.
func (s *state) listItem(in string) (string, ast.ListKind, *ast.ListItem, bool) {
	p, start, ok := listMarker(in)
	if !ok {
		return in, ast.ListKind{}, nil, false
	}

	var sb strings.Builder
	sb.WriteString(start.first)
	for {
		rest, text, ok := listItemLine(p, start.prefix)
		if !ok {
			break
		}
		sb.WriteByte('\n')
		sb.WriteString(text)
		p = rest
	}

	_, blocks := s.blocks(sb.String())
	return p, start.kind, &ast.ListItem{Task: start.task, Blocks: blocks}, true
}

// list parses consecutive items of the same kind. Blank lines between items
// do not end the list; an item with a different marker does.
func (s *state) list(in string) (string, ast.Block, bool) {
	rest, kind, item, ok := s.listItem(in)
	if !ok {
		return in, nil, false
	}
	list := &ast.List{Type: kind, Items: []*ast.ListItem{item}}

	for {
		next, nextKind, item, ok := s.listItem(skipBlankLines(rest))
		if !ok || !kind.Compatible(nextKind) {
			break
		}
		list.Items = append(list.Items, item)
		rest = next
	}

	return rest, list, true
}
