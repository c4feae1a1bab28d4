package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("parse failed")

	// ErrUnknownRule is returned when a rule name is not recognised.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrUnknownMode is returned when a mode name is not recognised.
	ErrUnknownMode = errors.New("unknown mode")
)

// ParseError reports input that no rule could consume.
type ParseError struct {
	// Pos is the byte offset of the first unconsumed character.
	Pos int
	// Line and Column are 1-based; Column counts runes.
	Line   int
	Column int
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed at position %d (line %d, column %d)", e.Pos, e.Line, e.Column)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error {
	return ErrParse
}
