package regexdfa

import (
	"strings"
	"unicode"
)

type TokenKind int

const (
	TOKEN_SYMBOL   = TokenKind(iota) // An alphabet symbol
	TOKEN_EPSILON                    // The empty string
	TOKEN_UNION                      // Alternation of two expressions
	TOKEN_CONCAT                     // Concatenation of two expressions, inserted by the parser
	TOKEN_STAR                       // Zero or more repetitions
	TOKEN_PLUS                       // One or more repetitions
	TOKEN_OPTIONAL                   // Zero or one occurrence
	TOKEN_LPAREN                     // Group start, never emitted in postfix
	TOKEN_RPAREN                     // Group end, never emitted in postfix
)

// Token One regex token. Pos is the rune offset in the source regex; inserted concatenations take the
// position of the token that follows them.
type Token struct {
	Kind   TokenKind
	Symbol rune
	Pos    int
}

func (t Token) String() string {
	switch t.Kind {
	case TOKEN_SYMBOL:
		return string(t.Symbol)
	case TOKEN_EPSILON:
		return string(Epsilon)
	case TOKEN_UNION:
		return "|"
	case TOKEN_CONCAT:
		return "."
	case TOKEN_STAR:
		return "*"
	case TOKEN_PLUS:
		return "+"
	case TOKEN_OPTIONAL:
		return "?"
	case TOKEN_LPAREN:
		return "("
	case TOKEN_RPAREN:
		return ")"
	}
	return "<invalid>"
}

func (t Token) isOperand() bool {
	return t.Kind == TOKEN_SYMBOL || t.Kind == TOKEN_EPSILON
}

func (t Token) isUnary() bool {
	return t.Kind == TOKEN_STAR || t.Kind == TOKEN_PLUS || t.Kind == TOKEN_OPTIONAL
}

func (t Token) isBinary() bool {
	return t.Kind == TOKEN_UNION || t.Kind == TOKEN_CONCAT
}

// Token can close an operand: a concatenation may follow it.
func (t Token) endsOperand() bool {
	return t.isOperand() || t.isUnary() || t.Kind == TOKEN_RPAREN
}

// Token can open an operand: a concatenation may precede it.
func (t Token) startsOperand() bool {
	return t.isOperand() || t.Kind == TOKEN_LPAREN
}

func (t Token) precedence() int {
	switch t.Kind {
	case TOKEN_UNION:
		return 1
	case TOKEN_CONCAT:
		return 2
	case TOKEN_STAR, TOKEN_PLUS, TOKEN_OPTIONAL:
		return 3
	}
	return 0
}

// Postfix A token sequence in reverse polish order with explicit concatenation.
type Postfix []Token

func (p Postfix) String() string {
	b := new(strings.Builder)
	for _, t := range p {
		b.WriteString(t.String())
	}
	return b.String()
}

type regexpParser struct {
	originalString []rune
	pos            int
	epsilonMarker  rune
}

// ParsePostfix Converts an infix regex into postfix tokens using the shunting yard algorithm.
func ParsePostfix(regex string, opts ...Option) (Postfix, error) {
	o := newOptions(opts...)
	p := &regexpParser{
		originalString: []rune(regex),
		epsilonMarker:  o.epsilonMarker,
	}
	if err := checkLimit("regex length", o.maxRegexLength, len(p.originalString)); err != nil {
		return nil, err
	}

	tokens, err := p.tokenize()
	if err != nil {
		return nil, err
	}
	tokens, err = p.insertConcat(tokens)
	if err != nil {
		return nil, err
	}
	postfix, err := p.toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	o.debugf("parsed regex %q postfix=%s", regex, postfix.String())
	return postfix, nil
}

func (p *regexpParser) errorAt(pos int, err error) *ParseError {
	return &ParseError{Regex: string(p.originalString), Pos: pos, Err: err}
}

func (p *regexpParser) more() bool {
	return p.pos < len(p.originalString)
}

func (p *regexpParser) next() rune {
	ch := p.originalString[p.pos]
	p.pos++
	return ch
}

func (p *regexpParser) tokenize() ([]Token, error) {
	tokens := make([]Token, 0, len(p.originalString))
	for p.more() {
		pos := p.pos
		ch := p.next()
		kind := TOKEN_SYMBOL
		switch {
		case ch == p.epsilonMarker:
			kind = TOKEN_EPSILON
		case ch == '|':
			kind = TOKEN_UNION
		case ch == '*':
			kind = TOKEN_STAR
		case ch == '+':
			kind = TOKEN_PLUS
		case ch == '?':
			kind = TOKEN_OPTIONAL
		case ch == '(':
			kind = TOKEN_LPAREN
		case ch == ')':
			kind = TOKEN_RPAREN
		case IsSymbol(ch):
		default:
			return nil, p.errorAt(pos, ErrInvalidSymbol)
		}
		tokens = append(tokens, Token{Kind: kind, Symbol: ch, Pos: pos})
	}
	return tokens, nil
}

// IsSymbol Reports whether r may be used as an alphabet symbol.
func IsSymbol(r rune) bool {
	return r != Epsilon && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// Validates operator placement and inserts TOKEN_CONCAT between adjacent operands.
func (p *regexpParser) insertConcat(tokens []Token) ([]Token, error) {
	if len(tokens) == 0 {
		return nil, p.errorAt(0, ErrMalformedExpression)
	}

	out := make([]Token, 0, 2*len(tokens))
	open := make([]int, 0)
	var prev *Token
	for i := range tokens {
		t := tokens[i]
		switch {
		case t.Kind == TOKEN_UNION || t.isUnary():
			if prev == nil || !prev.endsOperand() {
				return nil, p.errorAt(t.Pos, ErrMalformedExpression)
			}
		case t.Kind == TOKEN_LPAREN:
			open = append(open, t.Pos)
		case t.Kind == TOKEN_RPAREN:
			if len(open) == 0 {
				return nil, p.errorAt(t.Pos, ErrUnbalancedParenthesis)
			}
			if prev == nil || !prev.endsOperand() {
				return nil, p.errorAt(t.Pos, ErrMalformedExpression)
			}
			open = open[:len(open)-1]
		}

		if prev != nil && prev.endsOperand() && t.startsOperand() {
			out = append(out, Token{Kind: TOKEN_CONCAT, Symbol: '.', Pos: t.Pos})
		}
		out = append(out, t)
		prev = &tokens[i]
	}

	if len(open) > 0 {
		return nil, p.errorAt(open[len(open)-1], ErrUnbalancedParenthesis)
	}
	if !prev.endsOperand() {
		return nil, p.errorAt(prev.Pos, ErrMalformedExpression)
	}
	return out, nil
}

// Operands go straight to the output. An operator first pops every stacked operator of higher
// precedence, or of equal precedence since all operators are left-associative.
func (p *regexpParser) toPostfix(tokens []Token) (Postfix, error) {
	output := make(Postfix, 0, len(tokens))
	stack := make([]Token, 0)

	for _, t := range tokens {
		switch {
		case t.isOperand():
			output = append(output, t)
		case t.Kind == TOKEN_LPAREN:
			stack = append(stack, t)
		case t.Kind == TOKEN_RPAREN:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TOKEN_LPAREN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, p.errorAt(t.Pos, ErrUnbalancedParenthesis)
			}
		default:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind == TOKEN_LPAREN || top.precedence() < t.precedence() {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, t)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TOKEN_LPAREN {
			return nil, p.errorAt(top.Pos, ErrUnbalancedParenthesis)
		}
		output = append(output, top)
	}
	return output, nil
}
