package parser

import "github.com/yaklabco/gomdparse/pkg/ast"

type (
	blockFn  func(in string) (string, ast.Block, bool)
	inlineFn func(in string, prev rune) (string, ast.Inline, bool)
)

// state carries the read-only configuration through one parse together with
// the ordered alternatives of both dispatchers.
type state struct {
	cfg *Config

	blockAlts  []blockFn
	inlineAlts []inlineFn
}

func newState(cfg *Config) *state {
	s := &state{cfg: cfg}

	s.blockAlts = []blockFn{
		s.blockRule(RuleATXHeading, s.atxHeading),
		s.setextOrParagraph,
		s.blockRule(RuleThematicBreak, s.thematicBreak),
		s.blockRule(RuleBlockQuote, s.blockQuote),
		s.blockRule(RuleList, s.list),
		s.blockRule(RuleCodeBlock, s.codeBlock),
		s.blockRule(RuleHTMLBlock, s.htmlBlock),
		s.blockRule(RuleFootnoteDefinition, s.footnoteDefinition),
		s.blockRule(RuleLinkDefinition, s.linkDefinition),
		s.blockRule(RuleTable, s.table),
		s.customBlock,
		s.blockRule(RuleParagraph, s.paragraph),
	}

	s.inlineAlts = []inlineFn{
		s.inlineRule(RuleAutolink, s.autolink),
		s.inlineRule(RuleInlineHTML, s.inlineHTML),
		s.inlineRule(RuleLink, s.inlineLink),
		s.inlineRule(RuleFootnoteReference, s.footnoteReference),
		s.inlineRule(RuleReferenceLink, s.referenceLink),
		s.inlineRule(RuleHardBreak, s.hardBreak),
		s.inlineRule(RuleImage, s.image),
		s.inlineRule(RuleCodeSpan, s.codeSpan),
		s.inlineRule(RuleEmphasis, s.emphasis),
		s.inlineRule(RuleStrikethrough, s.strikethrough),
		s.customInline,
		s.inlineRule(RuleText, s.text),
	}

	return s
}

// blockRule wraps parse with the behavior configured for rule.
func (s *state) blockRule(rule BlockRule, parse blockFn) blockFn {
	return func(in string) (string, ast.Block, bool) {
		if !s.blockOn(rule) {
			return in, nil, false
		}
		rest, node, ok := parse(in)
		if !ok {
			return in, nil, false
		}
		return rest, s.finishBlock(rule, node), true
	}
}

// finishBlock applies the Skip and Map modes of rule to a parsed node.
func (s *state) finishBlock(rule BlockRule, node ast.Block) ast.Block {
	b := s.cfg.blocks[rule]
	switch b.Mode {
	case ModeSkip:
		return &ast.EmptyBlock{}
	case ModeMap:
		if b.Map != nil {
			return b.Map(node)
		}
	}
	return node
}

// blockOn reports whether rule takes part in parsing. Lookaheads use it to
// decide which constructs may interrupt a paragraph.
func (s *state) blockOn(rule BlockRule) bool {
	return s.cfg.blocks[rule].Mode != ModeIgnore
}

func (s *state) inlineRule(rule InlineRule, parse inlineFn) inlineFn {
	return func(in string, prev rune) (string, ast.Inline, bool) {
		if !s.inlineOn(rule) {
			return in, nil, false
		}
		rest, node, ok := parse(in, prev)
		if !ok {
			return in, nil, false
		}
		b := s.cfg.inlines[rule]
		switch b.Mode {
		case ModeSkip:
			node = &ast.EmptyInline{}
		case ModeMap:
			if b.Map != nil {
				node = b.Map(node)
			}
		}
		return rest, node, true
	}
}

func (s *state) inlineOn(rule InlineRule) bool {
	return s.cfg.inlines[rule].Mode != ModeIgnore
}

func (s *state) customBlock(in string) (string, ast.Block, bool) {
	if s.cfg.customBlock == nil {
		return in, nil, false
	}
	rest, node, ok := s.cfg.customBlock.ParseBlock(in)
	if !ok || node == nil || len(rest) >= len(in) {
		return in, nil, false
	}
	return rest, node, true
}

func (s *state) customInline(in string, _ rune) (string, ast.Inline, bool) {
	if s.cfg.customInline == nil {
		return in, nil, false
	}
	rest, node, ok := s.cfg.customInline.ParseInline(in)
	if !ok || node == nil || len(rest) >= len(in) {
		return in, nil, false
	}
	return rest, node, true
}

// block parses one block after skipping blank lines.
func (s *state) block(in string) (string, ast.Block, bool) {
	start := skipBlankLines(in)
	if start == "" {
		return in, nil, false
	}
	for _, alt := range s.blockAlts {
		if rest, node, ok := alt(start); ok {
			return rest, node, true
		}
	}
	return in, nil, false
}

// blocks parses as many blocks as possible.
func (s *state) blocks(in string) (string, []ast.Block) {
	var out []ast.Block
	for {
		rest, node, ok := s.block(in)
		if !ok {
			return in, out
		}
		out = append(out, node)
		in = rest
	}
}

// inline parses one inline element at the start of in. prev is the rune
// immediately before in, or noRune at the start of the content.
func (s *state) inline(in string, prev rune) (string, ast.Inline, bool) {
	if in == "" {
		return in, nil, false
	}
	for _, alt := range s.inlineAlts {
		if rest, node, ok := alt(in, prev); ok {
			return rest, node, true
		}
	}
	return in, nil, false
}

// inlines parses all of in into inline elements. It fails when the content
// cannot be fully consumed.
func (s *state) inlines(in string) ([]ast.Inline, bool) {
	var out []ast.Inline
	prev := noRune
	for in != "" {
		rest, node, ok := s.inline(in, prev)
		if !ok {
			return out, false
		}
		out = append(out, node)
		prev = lastRune(consumed(in, rest))
		in = rest
	}
	return out, true
}

// inlines1 is inlines for content that must produce at least one element.
func (s *state) inlines1(in string) ([]ast.Inline, bool) {
	out, ok := s.inlines(in)
	if !ok || len(out) == 0 {
		return nil, false
	}
	return out, true
}
