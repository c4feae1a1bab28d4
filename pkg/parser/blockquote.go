package parser

import "github.com/yaklabco/gomdparse/pkg/ast"

// startsBlockQuote reports whether in starts with up to three spaces and '>'.
func startsBlockQuote(in string) bool {
	p := skipIndent(in)
	return p != "" && p[0] == '>'
}

// quoteMarker consumes up to three spaces, one '>' and one optional space.
func quoteMarker(in string) (string, bool) {
	p := skipIndent(in)
	if p == "" || p[0] != '>' {
		return in, false
	}
	p = p[1:]
	if p != "" && p[0] == ' ' {
		p = p[1:]
	}
	return p, true
}

// blockQuote parses lines prefixed with '>'. One marker is removed from each
// line and the remaining text is parsed again as a sequence of blocks, so
// "> > a" nests one quote inside another. A paragraph may continue lazily on
// lines without a marker.
func (s *state) blockQuote(in string) (string, ast.Block, bool) {
	if !startsBlockQuote(in) {
		return in, nil, false
	}

	var lines []string
	lazy := false
	p := in
	for p != "" {
		if after, ok := quoteMarker(p); ok {
			line, rest := line0(after)
			lines = append(lines, line)
			lazy = s.continuesParagraph(line)
			p = rest
			continue
		}
		if lazy && s.isParagraphLine(p, false) {
			line, rest := line0(p)
			lines = append(lines, line)
			p = rest
			continue
		}
		break
	}

	_, blocks := s.blocks(joinLines(lines))
	if len(blocks) == 0 {
		return in, nil, false
	}
	return p, &ast.BlockQuote{Blocks: blocks}, true
}

// continuesParagraph reports whether a quoted line leaves an open paragraph
// that a following unmarked line may lazily continue.
func (s *state) continuesParagraph(line string) bool {
	return s.isParagraphLine(line, true)
}
