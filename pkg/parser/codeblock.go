package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// codeBlock parses an indented code block, or failing that a fenced one.
func (s *state) codeBlock(in string) (string, ast.Block, bool) {
	if rest, block, ok := indentedCode(in); ok {
		return rest, block, true
	}
	return fencedCode(in)
}

// indentedCode parses lines starting with four spaces or a tab.
func indentedCode(in string) (string, ast.Block, bool) {
	var lines []string
	p := in
	for {
		after, ok := codeIndent(p)
		if !ok {
			break
		}
		line, rest := line0(after)
		lines = append(lines, line)
		p = rest
	}
	if len(lines) == 0 {
		return in, nil, false
	}
	return p, &ast.CodeBlock{Literal: joinLines(lines)}, true
}

func codeIndent(in string) (string, bool) {
	switch {
	case strings.HasPrefix(in, "    "):
		return in[4:], true
	case strings.HasPrefix(in, "\t"):
		return in[1:], true
	}
	return in, false
}

// fencedCode parses a block opened by three or more backticks or tildes.
// Body lines lose up to as many leading spaces as the opening fence had.
// Without a closing fence the block runs to the end of the input.
func fencedCode(in string) (string, ast.Block, bool) {
	p, indent, _ := spaces(in, 0, 3)
	if p == "" || (p[0] != '`' && p[0] != '~') {
		return in, nil, false
	}
	fenceChar := p[0]
	n := runOf(p, fenceChar)
	if n < 3 {
		return in, nil, false
	}
	fence := p[:n]

	info, p := line0(p[n:])
	info = strings.TrimSpace(info)
	if fenceChar == '`' && strings.ContainsRune(info, '`') {
		return in, nil, false
	}

	var lines []string
	for {
		if rest, ok := closingFence(p, fence); ok {
			p = rest
			break
		}
		if p == "" {
			break
		}
		body, _, _ := spaces(p, 0, indent)
		line, rest := line0(body)
		lines = append(lines, line)
		p = rest
	}

	return p, &ast.CodeBlock{Fenced: true, Info: info, Literal: joinLines(lines)}, true
}

// closingFence matches up to three spaces, at least the opening fence, and
// the end of the line.
func closingFence(in, fence string) (string, bool) {
	p := skipIndent(in)
	if !strings.HasPrefix(p, fence) {
		return in, false
	}
	p = p[runOf(p, fence[0]):]
	return eofOrEOL(space0(p))
}
