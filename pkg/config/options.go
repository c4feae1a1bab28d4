package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/yaklabco/gomdparse/pkg/langdetect"
	"github.com/yaklabco/gomdparse/pkg/parser"
	"github.com/yaklabco/gomdparse/pkg/render/html"
	"github.com/yaklabco/gomdparse/pkg/render/markdown"
)

// ErrMapMode is returned when a rule is set to "map" in a configuration file.
// Map behaviors carry a function and can only be installed from code.
var ErrMapMode = errors.New(`mode "map" cannot be set from configuration`)

// RuleMode resolves a configured mode name. Map is rejected.
func RuleMode(name string) (parser.Mode, error) {
	mode, err := parser.ParseMode(name)
	if err != nil {
		return parser.ModeParse, err
	}
	if mode == parser.ModeMap {
		return parser.ModeParse, ErrMapMode
	}
	return mode, nil
}

// ParserOptions converts the configuration into parser options.
// Rules are applied in name order so the result is deterministic.
func (c *Config) ParserOptions() ([]parser.Option, error) {
	if c == nil {
		return nil, nil
	}

	var opts []parser.Option
	codeBlock := parser.ModeParse

	for _, name := range sortedKeys(c.Blocks) {
		rule, err := parser.ParseBlockRule(name)
		if err != nil {
			return nil, fmt.Errorf("blocks.%s: %w", name, err)
		}
		mode, err := RuleMode(c.Blocks[name])
		if err != nil {
			return nil, fmt.Errorf("blocks.%s: %w", name, err)
		}
		if rule == parser.RuleCodeBlock {
			codeBlock = mode
		}
		opts = append(opts, parser.WithBlockBehavior(rule, parser.BlockBehavior{Mode: mode}))
	}

	for _, name := range sortedKeys(c.Inlines) {
		rule, err := parser.ParseInlineRule(name)
		if err != nil {
			return nil, fmt.Errorf("inlines.%s: %w", name, err)
		}
		mode, err := RuleMode(c.Inlines[name])
		if err != nil {
			return nil, fmt.Errorf("inlines.%s: %w", name, err)
		}
		opts = append(opts, parser.WithInlineBehavior(rule, parser.InlineBehavior{Mode: mode}))
	}

	if c.AllowNoSpaceInHeadings {
		opts = append(opts, parser.WithAllowNoSpaceInHeadings())
	}

	// Language detection replaces the code block behavior, so it only applies
	// while code blocks are parsed normally.
	if c.DetectLanguage && codeBlock == parser.ModeParse {
		opts = append(opts, langdetect.Option())
	}

	return opts, nil
}

// ParserConfig builds a read-only parser configuration.
func (c *Config) ParserConfig() (*parser.Config, error) {
	opts, err := c.ParserOptions()
	if err != nil {
		return nil, err
	}
	return parser.NewConfig(opts...), nil
}

// HTMLOptions converts the renderer settings into HTML renderer options.
func (c *Config) HTMLOptions() []html.Option {
	if c == nil {
		return nil
	}
	var opts []html.Option
	if c.AnchorPrefix != "" {
		opts = append(opts, html.WithAnchorPrefix(c.AnchorPrefix))
	}
	if c.HeadingIDs {
		opts = append(opts, html.WithHeadingIDs())
	}
	return opts
}

// MarkdownOptions converts the printer settings into Markdown printer options.
func (c *Config) MarkdownOptions() []markdown.Option {
	if c == nil || c.Width <= 0 {
		return nil
	}
	return []markdown.Option{markdown.WithWidth(c.Width)}
}

func sortedKeys(m map[string]string) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
