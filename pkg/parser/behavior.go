package parser

import (
	"fmt"
	"strings"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// Mode selects how a grammar rule takes part in parsing.
type Mode uint8

// Rule modes.
const (
	// ModeParse parses the construct normally.
	ModeParse Mode = iota
	// ModeIgnore disables the rule so the next alternative is tried instead.
	ModeIgnore
	// ModeSkip parses the construct but replaces it with an empty placeholder.
	ModeSkip
	// ModeMap parses the construct and passes the node through a transform.
	ModeMap
)

//nolint:gochecknoglobals // Lookup table for Mode.String.
var modeNames = [...]string{
	ModeParse:  "parse",
	ModeIgnore: "ignore",
	ModeSkip:   "skip",
	ModeMap:    "map",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// ParseMode converts a mode name into a Mode.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(n, name) {
			return Mode(i), nil
		}
	}
	return ModeParse, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// BlockBehavior controls one block rule.
type BlockBehavior struct {
	Mode Mode
	// Map is applied to the parsed block when Mode is ModeMap.
	Map func(ast.Block) ast.Block
}

// InlineBehavior controls one inline rule.
type InlineBehavior struct {
	Mode Mode
	// Map is applied to the parsed inline when Mode is ModeMap.
	Map func(ast.Inline) ast.Inline
}

// Parse, Ignore and Skip behaviors, usable for both block and inline rules.
//
//nolint:gochecknoglobals // Convenience values.
var (
	ParseBlock   = BlockBehavior{Mode: ModeParse}
	IgnoreBlock  = BlockBehavior{Mode: ModeIgnore}
	SkipBlock    = BlockBehavior{Mode: ModeSkip}
	ParseInline  = InlineBehavior{Mode: ModeParse}
	IgnoreInline = InlineBehavior{Mode: ModeIgnore}
	SkipInline   = InlineBehavior{Mode: ModeSkip}
)

// MapBlock returns a behavior that rewrites every parsed block with fn.
func MapBlock(fn func(ast.Block) ast.Block) BlockBehavior {
	return BlockBehavior{Mode: ModeMap, Map: fn}
}

// MapInline returns a behavior that rewrites every parsed inline with fn.
func MapInline(fn func(ast.Inline) ast.Inline) InlineBehavior {
	return InlineBehavior{Mode: ModeMap, Map: fn}
}

// BlockRule identifies a block grammar rule.
type BlockRule uint8

// Block rules in dispatch order.
const (
	RuleATXHeading BlockRule = iota
	RuleSetextHeading
	RuleThematicBreak
	RuleBlockQuote
	RuleList
	RuleCodeBlock
	RuleHTMLBlock
	RuleFootnoteDefinition
	RuleLinkDefinition
	RuleTable
	RuleParagraph

	blockRuleCount
)

//nolint:gochecknoglobals // Lookup table for BlockRule.String.
var blockRuleNames = [blockRuleCount]string{
	RuleATXHeading:         "atx-heading",
	RuleSetextHeading:      "setext-heading",
	RuleThematicBreak:      "thematic-break",
	RuleBlockQuote:         "blockquote",
	RuleList:               "list",
	RuleCodeBlock:          "code-block",
	RuleHTMLBlock:          "html-block",
	RuleFootnoteDefinition: "footnote-definition",
	RuleLinkDefinition:     "link-definition",
	RuleTable:              "table",
	RuleParagraph:          "paragraph",
}

// String returns the rule name used in configuration files.
func (r BlockRule) String() string {
	if r < blockRuleCount {
		return blockRuleNames[r]
	}
	return fmt.Sprintf("block-rule(%d)", r)
}

// BlockRules returns every block rule in dispatch order.
func BlockRules() []BlockRule {
	rules := make([]BlockRule, blockRuleCount)
	for i := range rules {
		rules[i] = BlockRule(i)
	}
	return rules
}

// ParseBlockRule converts a rule name into a BlockRule.
func ParseBlockRule(name string) (BlockRule, error) {
	for i, n := range blockRuleNames {
		if n == name {
			return BlockRule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: block rule %q", ErrUnknownRule, name)
}

// InlineRule identifies an inline grammar rule.
type InlineRule uint8

// Inline rules in dispatch order.
const (
	RuleAutolink InlineRule = iota
	RuleInlineHTML
	RuleLink
	RuleFootnoteReference
	RuleReferenceLink
	RuleHardBreak
	RuleImage
	RuleCodeSpan
	RuleEmphasis
	RuleStrikethrough
	RuleText

	inlineRuleCount
)

//nolint:gochecknoglobals // Lookup table for InlineRule.String.
var inlineRuleNames = [inlineRuleCount]string{
	RuleAutolink:          "autolink",
	RuleInlineHTML:        "html",
	RuleLink:              "link",
	RuleFootnoteReference: "footnote-reference",
	RuleReferenceLink:     "reference-link",
	RuleHardBreak:         "hard-break",
	RuleImage:             "image",
	RuleCodeSpan:          "code-span",
	RuleEmphasis:          "emphasis",
	RuleStrikethrough:     "strikethrough",
	RuleText:              "text",
}

// String returns the rule name used in configuration files.
func (r InlineRule) String() string {
	if r < inlineRuleCount {
		return inlineRuleNames[r]
	}
	return fmt.Sprintf("inline-rule(%d)", r)
}

// InlineRules returns every inline rule in dispatch order.
func InlineRules() []InlineRule {
	rules := make([]InlineRule, inlineRuleCount)
	for i := range rules {
		rules[i] = InlineRule(i)
	}
	return rules
}

// ParseInlineRule converts a rule name into an InlineRule.
func ParseInlineRule(name string) (InlineRule, error) {
	for i, n := range inlineRuleNames {
		if n == name {
			return InlineRule(i), nil
		}
	}
	return 0, fmt.Errorf("%w: inline rule %q", ErrUnknownRule, name)
}
