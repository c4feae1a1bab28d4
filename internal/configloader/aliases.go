package configloader

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/yaklabco/gomdparse/pkg/parser"
)

// blockAliases maps alternative block rule names to canonical rule names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var blockAliases = map[string]string{
	"heading":     parser.RuleATXHeading.String(),
	"atx":         parser.RuleATXHeading.String(),
	"setext":      parser.RuleSetextHeading.String(),
	"hr":          parser.RuleThematicBreak.String(),
	"quote":       parser.RuleBlockQuote.String(),
	"block-quote": parser.RuleBlockQuote.String(),
	"code":        parser.RuleCodeBlock.String(),
	"fence":       parser.RuleCodeBlock.String(),
	"html":        parser.RuleHTMLBlock.String(),
	"footnote":    parser.RuleFootnoteDefinition.String(),
	"definition":  parser.RuleLinkDefinition.String(),
}

// inlineAliases maps alternative inline rule names to canonical rule names.
//
//nolint:gochecknoglobals // Read-only lookup table.
var inlineAliases = map[string]string{
	"inline-html": parser.RuleInlineHTML.String(),
	"footnote":    parser.RuleFootnoteReference.String(),
	"reference":   parser.RuleReferenceLink.String(),
	"br":          parser.RuleHardBreak.String(),
	"code":        parser.RuleCodeSpan.String(),
	"strong":      parser.RuleEmphasis.String(),
	"strike":      parser.RuleStrikethrough.String(),
}

// blockGroups maps group names to the block rules they contain.
// A group can be used as a key to set the mode of several rules at once.
//
//nolint:gochecknoglobals // Read-only lookup table.
var blockGroups = map[string][]string{
	"headings": {parser.RuleATXHeading.String(), parser.RuleSetextHeading.String()},
	"gfm":      {parser.RuleTable.String(), parser.RuleFootnoteDefinition.String()},
}

// inlineGroups maps group names to the inline rules they contain.
//
//nolint:gochecknoglobals // Read-only lookup table.
var inlineGroups = map[string][]string{
	"links": {
		parser.RuleAutolink.String(),
		parser.RuleLink.String(),
		parser.RuleReferenceLink.String(),
		parser.RuleImage.String(),
	},
	"gfm": {parser.RuleStrikethrough.String(), parser.RuleFootnoteReference.String()},
}

// canonicalKey lower-cases a key and turns underscores and spaces into dashes.
func canonicalKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("_", "-", " ", "-").Replace(key)
}

// NormalizeBlockRule converts a block rule name or alias to its canonical name.
// Returns empty string if the key is not recognized.
func NormalizeBlockRule(key string) string {
	return normalizeRule(key, blockRuleNames(), blockAliases)
}

// NormalizeInlineRule converts an inline rule name or alias to its canonical name.
// Returns empty string if the key is not recognized.
func NormalizeInlineRule(key string) string {
	return normalizeRule(key, inlineRuleNames(), inlineAliases)
}

func normalizeRule(key string, names []string, aliases map[string]string) string {
	key = canonicalKey(key)
	if slices.Contains(names, key) {
		return key
	}
	return aliases[key]
}

// BlockGroup returns the block rules in a group, or nil if the group is unknown.
func BlockGroup(name string) []string {
	return blockGroups[canonicalKey(name)]
}

// InlineGroup returns the inline rules in a group, or nil if the group is unknown.
func InlineGroup(name string) []string {
	return inlineGroups[canonicalKey(name)]
}

// GetAliasesForRule returns the aliases of a canonical block or inline rule name.
func GetAliasesForRule(name string) []string {
	var aliases []string
	for alias, target := range blockAliases {
		if target == name {
			aliases = append(aliases, alias)
		}
	}
	for alias, target := range inlineAliases {
		if target == name {
			aliases = append(aliases, alias)
		}
	}
	slices.Sort(aliases)
	return slices.Compact(aliases)
}

func blockRuleNames() []string {
	return lo.Map(parser.BlockRules(), func(r parser.BlockRule, _ int) string { return r.String() })
}

func inlineRuleNames() []string {
	return lo.Map(parser.InlineRules(), func(r parser.InlineRule, _ int) string { return r.String() })
}
