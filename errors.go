package regexdfa

import (
	"errors"
	"fmt"
)

var (
	ErrUnbalancedParenthesis = errors.New("unbalanced parenthesis")
	ErrInvalidSymbol         = errors.New("invalid symbol")
	ErrMalformedExpression   = errors.New("malformed expression")

	ErrStackUnderflow   = errors.New("stack underflow")
	ErrMalformedPostfix = errors.New("malformed postfix")

	ErrWrongKind = errors.New("wrong automaton kind")
	ErrNoStates  = errors.New("automaton has no states")

	ErrTooComplex = errors.New("too complex")
)

// ParseError Reports a regex that cannot be turned into postfix. Err is one of ErrUnbalancedParenthesis,
// ErrInvalidSymbol or ErrMalformedExpression.
type ParseError struct {
	Regex string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v at position %d", e.Regex, e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BuildError Reports postfix input the Thompson builder cannot consume. Pos is the token index.
type BuildError struct {
	Pos int
	Err error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build nfa: %v at token %d", e.Err, e.Pos)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ConversionError Reports an automaton of the wrong kind handed to a pipeline stage.
type ConversionError struct {
	Op   string
	Want Kind
	Got  Kind
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: want %v, got %v", e.Op, e.Want, e.Got)
}

func (e *ConversionError) Unwrap() error {
	return ErrWrongKind
}

// ResourceLimitError Reports a construction that would exceed a configured bound.
type ResourceLimitError struct {
	Resource string
	Limit    int
	Actual   int
}

func (e *ResourceLimitError) Error() string {
	return fmt.Sprintf("too complex: %s %d exceeds limit %d", e.Resource, e.Actual, e.Limit)
}

func (e *ResourceLimitError) Unwrap() error {
	return ErrTooComplex
}
