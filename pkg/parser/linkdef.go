package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// linkDefinition parses "[label]: destination 'title'". The destination may
// sit on the next line and the title may start on the line after the
// destination.
func (s *state) linkDefinition(in string) (string, ast.Block, bool) {
	p, _, label, ok := linkLabel(skipIndent(in))
	if !ok || !strings.HasPrefix(p, ":") {
		return in, nil, false
	}
	p = space0(p[1:])
	if rest, ok := eol(p); ok {
		p = space0(rest)
	}

	p, dest, ok := linkDestination(p)
	if !ok {
		return in, nil, false
	}
	def := &ast.Definition{Label: label, Destination: dest}

	if t, ok := oneLineSpace1(p); ok {
		if t, title, ok := linkTitle(t); ok {
			if rest, ok := eofOrEOL(space0(t)); ok {
				def.Title = title
				return rest, def, true
			}
		}
	}

	rest, ok := eofOrEOL(space0(p))
	if !ok {
		return in, nil, false
	}
	return rest, def, true
}

// oneLineSpace1 skips a non-empty run of whitespace holding at most one
// line ending.
func oneLineSpace1(in string) (string, bool) {
	p := space0(in)
	if rest, ok := eol(p); ok {
		p = space0(rest)
	}
	if p == in {
		return in, false
	}
	return p, true
}

// footnoteDefinition parses "[^label]: text" followed by lines indented by
// exactly three spaces. The body is parsed as blocks.
func (s *state) footnoteDefinition(in string) (string, ast.Block, bool) {
	p := skipIndent(in)
	if !strings.HasPrefix(p, "[^") {
		return in, nil, false
	}
	p = p[2:]
	end := strings.IndexByte(p, ']')
	if end <= 0 || strings.ContainsAny(p[:end], "\r\n") || !strings.HasPrefix(p[end:], "]:") {
		return in, nil, false
	}
	label := p[:end]
	p = p[end+2:]

	p, _, _ = spaces(p, 0, 3)
	first, p, ok := line1(p)
	if !ok {
		return in, nil, false
	}

	lines := []string{first}
	for {
		body, _, ok := spaces(p, 3, 3)
		if !ok {
			break
		}
		line, rest, ok := line1(body)
		if !ok {
			break
		}
		lines = append(lines, line)
		p = rest
	}

	_, blocks := s.blocks(joinLines(lines))
	return p, &ast.FootnoteDefinition{Label: label, Blocks: blocks}, true
}
