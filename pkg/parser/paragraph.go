package parser

import "github.com/yaklabco/gomdparse/pkg/ast"

// paragraph parses a run of lines that cannot start any other block.
func (s *state) paragraph(in string) (string, ast.Block, bool) {
	rest, content, ok := s.paragraphContent(in)
	if !ok {
		return in, nil, false
	}
	return rest, &ast.Paragraph{Content: content}, true
}

// paragraphContent collects paragraph lines, strips their leading blanks,
// and parses the joined text as inline content.
func (s *state) paragraphContent(in string) (string, []ast.Inline, bool) {
	var lines []string
	p := in
	for {
		if !s.isParagraphLine(p, len(lines) == 0) {
			break
		}
		line, rest, ok := line1(space0(p))
		if !ok {
			break
		}
		lines = append(lines, line)
		p = rest
	}
	if len(lines) == 0 {
		return in, nil, false
	}

	content, ok := s.inlines1(joinLines(lines))
	if !ok {
		return in, nil, false
	}
	return p, content, true
}

// isParagraphLine reports whether in may continue (or start) a paragraph:
// no other enabled block may begin there and the line is not blank. A
// Setext underline cannot start a paragraph, so it is only checked for
// continuation lines.
func (s *state) isParagraphLine(in string, first bool) bool {
	if in == "" {
		return false
	}
	if first {
		if _, ok := codeIndent(in); ok && s.blockOn(RuleCodeBlock) {
			return false
		}
	}
	if _, ok := blankLine(in); ok {
		return false
	}
	return !s.interrupts(in, first)
}

// interrupts reports whether another block can start at in.
func (s *state) interrupts(in string, first bool) bool {
	if s.blockOn(RuleATXHeading) {
		if _, _, ok := s.atxHeading(in); ok {
			return true
		}
	}
	if !first && s.blockOn(RuleSetextHeading) {
		if _, _, ok := setextUnderline(in); ok {
			return true
		}
	}
	if s.blockOn(RuleThematicBreak) {
		if _, ok := thematicBreakLine(in); ok {
			return true
		}
	}
	if s.blockOn(RuleBlockQuote) && startsBlockQuote(in) {
		if _, _, ok := s.blockQuote(in); ok {
			return true
		}
	}
	if s.blockOn(RuleList) {
		if _, _, ok := listMarker(in); ok {
			return true
		}
	}
	// An indented code block cannot interrupt a paragraph.
	if s.blockOn(RuleCodeBlock) {
		if _, _, ok := fencedCode(in); ok {
			return true
		}
	}
	if s.blockOn(RuleHTMLBlock) {
		if _, _, ok := s.htmlBlock(in); ok {
			return true
		}
	}
	if s.blockOn(RuleLinkDefinition) {
		if _, _, ok := s.linkDefinition(in); ok {
			return true
		}
	}
	if s.blockOn(RuleFootnoteDefinition) {
		if _, _, ok := s.footnoteDefinition(in); ok {
			return true
		}
	}
	if s.blockOn(RuleTable) {
		if _, _, ok := s.table(in); ok {
			return true
		}
	}
	if _, _, ok := s.customBlock(in); ok {
		return true
	}
	return false
}
