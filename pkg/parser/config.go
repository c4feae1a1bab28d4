package parser

import "github.com/yaklabco/gomdparse/pkg/ast"

// BlockParser is a user-supplied block rule tried after the table rule and
// before the paragraph fallback. It reports ok=false when it does not match.
type BlockParser interface {
	ParseBlock(input string) (rest string, block ast.Block, ok bool)
}

// BlockParserFunc adapts a function to BlockParser.
type BlockParserFunc func(input string) (string, ast.Block, bool)

// ParseBlock implements BlockParser.
func (f BlockParserFunc) ParseBlock(input string) (string, ast.Block, bool) {
	return f(input)
}

// InlineParser is a user-supplied inline rule tried after strikethrough and
// before the text fallback.
type InlineParser interface {
	ParseInline(input string) (rest string, inline ast.Inline, ok bool)
}

// InlineParserFunc adapts a function to InlineParser.
type InlineParserFunc func(input string) (string, ast.Inline, bool)

// ParseInline implements InlineParser.
func (f InlineParserFunc) ParseInline(input string) (string, ast.Inline, bool) {
	return f(input)
}

// Config holds the behavior of every rule and the optional hooks.
// A Config is read-only once built.
type Config struct {
	blocks  [blockRuleCount]BlockBehavior
	inlines [inlineRuleCount]InlineBehavior

	allowNoSpaceInHeadings bool
	entities               EntityTable

	customBlock  BlockParser
	customInline InlineParser
}

// Option configures a Config.
type Option func(*Config)

// NewConfig builds a configuration where every rule parses normally,
// headings need a space after the markers, and entities are resolved
// against the HTML5 named character references.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{entities: HTMLEntities()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithBlockBehavior sets the behavior of a block rule.
func WithBlockBehavior(rule BlockRule, behavior BlockBehavior) Option {
	return func(c *Config) {
		if rule < blockRuleCount {
			c.blocks[rule] = behavior
		}
	}
}

// WithInlineBehavior sets the behavior of an inline rule.
func WithInlineBehavior(rule InlineRule, behavior InlineBehavior) Option {
	return func(c *Config) {
		if rule < inlineRuleCount {
			c.inlines[rule] = behavior
		}
	}
}

// WithAllowNoSpaceInHeadings accepts ATX headings such as "##title".
func WithAllowNoSpaceInHeadings() Option {
	return func(c *Config) {
		c.allowNoSpaceInHeadings = true
	}
}

// WithEntities replaces the named entity table. A nil table disables
// named entities; numeric references are always decoded.
func WithEntities(table EntityTable) Option {
	return func(c *Config) {
		c.entities = table
	}
}

// WithCustomBlockParser installs a user block rule.
func WithCustomBlockParser(p BlockParser) Option {
	return func(c *Config) {
		c.customBlock = p
	}
}

// WithCustomInlineParser installs a user inline rule.
func WithCustomInlineParser(p InlineParser) Option {
	return func(c *Config) {
		c.customInline = p
	}
}

// BlockBehavior returns the behavior configured for rule.
func (c *Config) BlockBehavior(rule BlockRule) BlockBehavior {
	if rule >= blockRuleCount {
		return BlockBehavior{}
	}
	return c.blocks[rule]
}

// InlineBehavior returns the behavior configured for rule.
func (c *Config) InlineBehavior(rule InlineRule) InlineBehavior {
	if rule >= inlineRuleCount {
		return InlineBehavior{}
	}
	return c.inlines[rule]
}

// AllowNoSpaceInHeadings reports whether "#title" is a heading.
func (c *Config) AllowNoSpaceInHeadings() bool {
	return c.allowNoSpaceInHeadings
}
