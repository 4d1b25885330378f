package regexdfa

// A partial NFA with one start and one accept state. Fragments only live on the builder stack: an
// operator pops its operands and pushes the composed result, so a consumed fragment has no handle left.
type fragment struct {
	start  int
	accept int
}

type thompsonBuilder struct {
	nfa       *NFA
	stack     []fragment
	maxStates int
	pos       int
}

// BuildNFA Builds an NFA from postfix tokens with Thompson's construction.
func BuildNFA(postfix Postfix, opts ...Option) (*NFA, error) {
	o := newOptions(opts...)
	b := &thompsonBuilder{
		nfa:       NewNFAV1(2 * len(postfix)),
		stack:     make([]fragment, 0, len(postfix)),
		maxStates: o.maxNFAStates,
	}

	for i, t := range postfix {
		b.pos = i
		var err error
		switch t.Kind {
		case TOKEN_SYMBOL:
			if !IsSymbol(t.Symbol) {
				return nil, &BuildError{Pos: i, Err: ErrMalformedPostfix}
			}
			err = b.makeSymbol(t.Symbol)
		case TOKEN_EPSILON:
			err = b.makeEmptyString()
		case TOKEN_CONCAT:
			err = b.concatenate()
		case TOKEN_UNION:
			err = b.union()
		case TOKEN_STAR:
			err = b.repeat()
		case TOKEN_PLUS:
			err = b.repeatMin()
		case TOKEN_OPTIONAL:
			err = b.optional()
		default:
			err = &BuildError{Pos: i, Err: ErrMalformedPostfix}
		}
		if err != nil {
			return nil, err
		}
	}

	if len(b.stack) != 1 {
		return nil, &BuildError{Pos: len(postfix), Err: ErrMalformedPostfix}
	}
	result := b.stack[0]
	b.stack = nil
	if err := b.nfa.SetStart(result.start); err != nil {
		return nil, err
	}
	if err := checkLimit("alphabet size", o.maxAlphabetSize, len(b.nfa.symbols)); err != nil {
		return nil, err
	}

	o.debugf("built nfa states=%d postfix=%s", b.nfa.NumStates(), postfix.String())
	return b.nfa, nil
}

func (b *thompsonBuilder) createState() (int, error) {
	if err := checkLimit("nfa states", b.maxStates, b.nfa.NumStates()+1); err != nil {
		return -1, err
	}
	return b.nfa.CreateState(), nil
}

func (b *thompsonBuilder) push(f fragment) {
	b.stack = append(b.stack, f)
}

// Moves the top n fragments off the stack, in push order.
func (b *thompsonBuilder) pop(n int) ([]fragment, error) {
	if len(b.stack) < n {
		return nil, &BuildError{Pos: b.pos, Err: ErrStackUnderflow}
	}
	operands := make([]fragment, n)
	copy(operands, b.stack[len(b.stack)-n:])
	b.stack = b.stack[:len(b.stack)-n]
	return operands, nil
}

// A.accept --ε--> B.start
func (b *thompsonBuilder) concatenate() error {
	operands, err := b.pop(2)
	if err != nil {
		return err
	}
	first, second := operands[0], operands[1]
	if err := b.nfa.AddEpsilon(first.accept, second.start); err != nil {
		return err
	}
	b.nfa.SetAccept(first.accept, false)
	b.push(fragment{start: first.start, accept: second.accept})
	return nil
}

// new start --ε--> A.start, B.start; A.accept, B.accept --ε--> new accept
func (b *thompsonBuilder) union() error {
	operands, err := b.pop(2)
	if err != nil {
		return err
	}
	s, a, err := b.createPair()
	if err != nil {
		return err
	}
	for _, f := range operands {
		if err := b.nfa.AddEpsilon(s, f.start); err != nil {
			return err
		}
		if err := b.nfa.AddEpsilon(f.accept, a); err != nil {
			return err
		}
		b.nfa.SetAccept(f.accept, false)
	}
	b.nfa.SetAccept(a, true)
	b.push(fragment{start: s, accept: a})
	return nil
}

// new start --ε--> A.start, new accept; A.accept --ε--> new accept, A.start
func (b *thompsonBuilder) repeat() error {
	operands, err := b.pop(1)
	if err != nil {
		return err
	}
	f := operands[0]
	s, a, err := b.createPair()
	if err != nil {
		return err
	}
	for _, e := range [][2]int{{s, f.start}, {s, a}, {f.accept, a}, {f.accept, f.start}} {
		if err := b.nfa.AddEpsilon(e[0], e[1]); err != nil {
			return err
		}
	}
	b.nfa.SetAccept(f.accept, false)
	b.nfa.SetAccept(a, true)
	b.push(fragment{start: s, accept: a})
	return nil
}

// A.start stays the start; A.accept --ε--> new accept, A.start
func (b *thompsonBuilder) repeatMin() error {
	operands, err := b.pop(1)
	if err != nil {
		return err
	}
	f := operands[0]
	a, err := b.createState()
	if err != nil {
		return err
	}
	for _, e := range [][2]int{{f.accept, a}, {f.accept, f.start}} {
		if err := b.nfa.AddEpsilon(e[0], e[1]); err != nil {
			return err
		}
	}
	b.nfa.SetAccept(f.accept, false)
	b.nfa.SetAccept(a, true)
	b.push(fragment{start: f.start, accept: a})
	return nil
}

// new start --ε--> A.start, new accept; A.accept --ε--> new accept
func (b *thompsonBuilder) optional() error {
	operands, err := b.pop(1)
	if err != nil {
		return err
	}
	f := operands[0]
	s, a, err := b.createPair()
	if err != nil {
		return err
	}
	for _, e := range [][2]int{{s, f.start}, {s, a}, {f.accept, a}} {
		if err := b.nfa.AddEpsilon(e[0], e[1]); err != nil {
			return err
		}
	}
	b.nfa.SetAccept(f.accept, false)
	b.nfa.SetAccept(a, true)
	b.push(fragment{start: s, accept: a})
	return nil
}

func (b *thompsonBuilder) createPair() (int, int, error) {
	s, err := b.createState()
	if err != nil {
		return -1, -1, err
	}
	a, err := b.createState()
	if err != nil {
		return -1, -1, err
	}
	return s, a, nil
}
