package regexdfa

import (
	"errors"
	"fmt"
	"slices"
)

// Validation Outcome of a validator: Valid is true iff Errors is empty.
type Validation struct {
	Valid  bool
	Errors []string
}

func newValidation(errs []string) Validation {
	return Validation{Valid: len(errs) == 0, Errors: errs}
}

// Validator Checks regexes before parsing and inputs before simulation.
type Validator interface {
	ValidateRegex(regex string) Validation
	ValidateInputString(input string, alphabet []rune) Validation
}

var _ Validator = DefaultValidator{}

// DefaultValidator Validator backed by the regex parser.
type DefaultValidator struct {
	Options []Option
}

// ValidateRegex Reports every invalid symbol in regex, then any structural error the parser finds.
func (v DefaultValidator) ValidateRegex(regex string) Validation {
	o := newOptions(v.Options...)
	errs := make([]string, 0)
	for i, r := range []rune(regex) {
		if r == o.epsilonMarker || IsSymbol(r) || isOperator(r) {
			continue
		}
		errs = append(errs, fmt.Sprintf("invalid symbol %q at position %d", r, i))
	}
	if len(errs) > 0 {
		return newValidation(errs)
	}

	if _, err := ParsePostfix(regex, v.Options...); err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			errs = append(errs, fmt.Sprintf("%v at position %d", perr.Err, perr.Pos))
		} else {
			errs = append(errs, err.Error())
		}
	}
	return newValidation(errs)
}

// ValidateInputString Reports every rune of input outside alphabet.
func (v DefaultValidator) ValidateInputString(input string, alphabet []rune) Validation {
	errs := make([]string, 0)
	for i, r := range []rune(input) {
		if !slices.Contains(alphabet, r) {
			errs = append(errs, fmt.Sprintf("symbol %q at position %d is not in the alphabet", r, i))
		}
	}
	return newValidation(errs)
}

// ValidateRegex Validates regex with the DefaultValidator.
func ValidateRegex(regex string) Validation {
	return DefaultValidator{}.ValidateRegex(regex)
}

// ValidateInputString Validates input with the DefaultValidator.
func ValidateInputString(input string, alphabet []rune) Validation {
	return DefaultValidator{}.ValidateInputString(input, alphabet)
}

func isOperator(r rune) bool {
	switch r {
	case '|', '*', '+', '?', '(', ')':
		return true
	}
	return false
}
