// Package parser turns CommonMark and GFM source text into an ast.Document.
//
// The grammar is a recursive descent over string slices. Every rule either
// consumes a prefix of its input and returns the remainder, or fails without
// consuming anything so that the next alternative can be tried. Block rules
// are tried in a fixed order at the start of each block and inline rules in
// a fixed order at each position; every rule can be switched to Ignore, Skip
// or Map through a Config.
package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/gomdparse/pkg/ast"
)

// Parse parses text into a document. A nil cfg uses NewConfig().
//
// The whole input must be consumed; anything but blank lines left after the
// last block is reported as a *ParseError.
func Parse(cfg *Config, text string) (*ast.Document, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	s := newState(cfg)

	rest, blocks := s.blocks(text)
	rest = strings.TrimLeft(rest, " \t\r\n")
	if rest != "" {
		return nil, newParseError(text, len(text)-len(rest))
	}

	return &ast.Document{Blocks: blocks}, nil
}

func newParseError(text string, pos int) *ParseError {
	before := text[:pos]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	return &ParseError{Pos: pos, Line: line, Column: col}
}
