package langdetect

import (
	"github.com/yaklabco/gomdparse/pkg/ast"
	"github.com/yaklabco/gomdparse/pkg/parser"
)

// Fill sets the info string of a fenced code block that has none to the
// detected language. Other blocks are returned unchanged.
func Fill(b ast.Block) ast.Block {
	code, ok := b.(*ast.CodeBlock)
	if !ok || !code.Fenced || code.Info != "" {
		return b
	}
	lang := Detect(code.Literal)
	if lang == "" {
		return b
	}
	filled := *code
	filled.Info = lang
	return &filled
}

// Behavior maps every parsed code block through Fill.
func Behavior() parser.BlockBehavior {
	return parser.MapBlock(Fill)
}

// Option installs Behavior for the code block rule.
func Option() parser.Option {
	return parser.WithBlockBehavior(parser.RuleCodeBlock, Behavior())
}
