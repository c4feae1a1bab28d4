package parser

import (
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// atxHeading parses "# title" through "###### title".
func (s *state) atxHeading(in string) (string, ast.Block, bool) {
	p := skipIndent(in)
	level := runOf(p, '#')
	if level < 1 || level > 6 {
		return in, nil, false
	}
	p = p[level:]

	after := space0(p)
	if len(after) == len(p) && !s.cfg.allowNoSpaceInHeadings {
		return in, nil, false
	}
	content, rest, ok := line1(after)
	if !ok {
		return in, nil, false
	}

	inlines, ok := s.inlines(trimClosingSequence(content))
	if !ok {
		return in, nil, false
	}

	return rest, &ast.Heading{Style: ast.HeadingATX, Level: level, Content: inlines}, true
}

// trimClosingSequence drops trailing blanks and an optional run of '#'
// separated from the title by a blank.
func trimClosingSequence(content string) string {
	content = strings.TrimRight(content, " \t")
	trimmed := strings.TrimRight(content, "#")
	if trimmed == content || trimmed == "" {
		return content
	}
	if strings.HasSuffix(trimmed, " ") || strings.HasSuffix(trimmed, "\t") {
		if t := strings.TrimRight(trimmed, " \t"); t != "" {
			return t
		}
	}
	return content
}

// setextUnderline parses a line of '=' (level 1) or '-' (level 2).
func setextUnderline(in string) (string, int, bool) {
	p := skipIndent(in)
	if p == "" {
		return in, 0, false
	}

	var level int
	switch p[0] {
	case '=':
		level = 1
	case '-':
		level = 2
	default:
		return in, 0, false
	}

	p = space0(p[runOf(p, p[0]):])
	rest, ok := eofOrEOL(p)
	if !ok {
		return in, 0, false
	}
	return rest, level, true
}

// setextOrParagraph parses a paragraph and turns it into a Setext heading
// when an underline follows. Without an underline the paragraph behavior
// decides what happens to the content.
func (s *state) setextOrParagraph(in string) (string, ast.Block, bool) {
	if !s.blockOn(RuleSetextHeading) {
		return in, nil, false
	}

	rest, content, ok := s.paragraphContent(in)
	if !ok {
		return in, nil, false
	}

	if after, level, ok := setextUnderline(rest); ok {
		heading := &ast.Heading{Style: ast.HeadingSetext, Level: level, Content: content}
		return after, s.finishBlock(RuleSetextHeading, heading), true
	}

	if !s.blockOn(RuleParagraph) {
		return in, nil, false
	}
	return rest, s.finishBlock(RuleParagraph, &ast.Paragraph{Content: content}), true
}

// thematicBreak parses three or more '-', '_' or '*' on a line of their own,
// optionally separated by blanks.
func (s *state) thematicBreak(in string) (string, ast.Block, bool) {
	rest, ok := thematicBreakLine(in)
	if !ok {
		return in, nil, false
	}
	return rest, &ast.ThematicBreak{}, true
}

func thematicBreakLine(in string) (string, bool) {
	p := skipIndent(in)
	if p == "" {
		return in, false
	}
	c := p[0]
	if c != '-' && c != '_' && c != '*' {
		return in, false
	}
	n := 0
	for p != "" && !isEOL(p) {
		switch p[0] {
		case c:
			n++
		case ' ', '\t':
		default:
			return in, false
		}
		p = p[1:]
	}
	if n < 3 {
		return in, false
	}
	rest, _ := eofOrEOL(p)
	return rest, true
}
