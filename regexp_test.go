package regexdfa

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePostfix(t *testing.T) {
	tests := []struct {
		regex string
		want  string
	}{
		{"a", "a"},
		{"ab", "ab."},
		{"abc", "ab.c."},
		{"a|b", "ab|"},
		{"a|b|c", "ab|c|"},
		{"a|bc", "abc.|"},
		{"ab*", "ab*."},
		{"a?b", "a?b."},
		{"a**", "a**"},
		{"(ab)*", "ab.*"},
		{"(a|b)*abb", "ab|*a.b.b."},
		{"a*b+", "a*b+."},
		{"(a)(b)", "ab."},
		{"ε|a", "εa|"},
		{"x1|2y", "x1.2y.|"},
	}

	for _, tt := range tests {
		t.Run(tt.regex, func(t *testing.T) {
			postfix, err := ParsePostfix(tt.regex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, postfix.String())
		})
	}
}

func TestParsePostfixTokens(t *testing.T) {
	postfix, err := ParsePostfix("a|bc")
	require.NoError(t, err)

	kinds := make([]TokenKind, len(postfix))
	for i, tok := range postfix {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{TOKEN_SYMBOL, TOKEN_SYMBOL, TOKEN_SYMBOL, TOKEN_CONCAT, TOKEN_UNION}, kinds)

	// The inserted concatenation sits at the position of the token that follows it.
	assert.Equal(t, 3, postfix[3].Pos)
	assert.Equal(t, 1, postfix[4].Pos)
}

func TestParsePostfixErrors(t *testing.T) {
	tests := []struct {
		regex string
		err   error
		pos   int
	}{
		{")", ErrUnbalancedParenthesis, 0},
		{"a)", ErrUnbalancedParenthesis, 1},
		{"(a", ErrUnbalancedParenthesis, 0},
		{"((a)", ErrUnbalancedParenthesis, 0},
		{"a|(", ErrUnbalancedParenthesis, 2},
		{"a.b", ErrInvalidSymbol, 1},
		{"a b", ErrInvalidSymbol, 1},
		{"a-b", ErrInvalidSymbol, 1},
		{"", ErrMalformedExpression, 0},
		{"|a", ErrMalformedExpression, 0},
		{"a|", ErrMalformedExpression, 1},
		{"a||b", ErrMalformedExpression, 2},
		{"*a", ErrMalformedExpression, 0},
		{"a|*", ErrMalformedExpression, 2},
		{"()", ErrMalformedExpression, 1},
		{"(|a)", ErrMalformedExpression, 1},
		{"(a|)", ErrMalformedExpression, 3},
	}

	for _, tt := range tests {
		t.Run(tt.regex, func(t *testing.T) {
			_, err := ParsePostfix(tt.regex)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.pos, perr.Pos)
			assert.Equal(t, tt.regex, perr.Regex)
		})
	}
}

func TestParsePostfixEpsilonMarker(t *testing.T) {
	postfix, err := ParsePostfix("a|#", WithEpsilonMarker('#'))
	require.NoError(t, err)
	assert.Equal(t, TOKEN_EPSILON, postfix[1].Kind)

	_, err = ParsePostfix("a|#")
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestParsePostfixLengthLimit(t *testing.T) {
	_, err := ParsePostfix(strings.Repeat("a", 11), WithMaxRegexLength(10))
	require.Error(t, err)

	var lerr *ResourceLimitError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 10, lerr.Limit)
	assert.Equal(t, 11, lerr.Actual)
	assert.ErrorIs(t, err, ErrTooComplex)

	_, err = ParsePostfix(strings.Repeat("a", 11), WithMaxRegexLength(0))
	assert.NoError(t, err)
}
