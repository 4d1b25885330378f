package regexdfa

// Compiled Every stage of one regex compilation. Each stage is an independent automaton.
type Compiled struct {
	Regex   string
	Postfix Postfix
	NFA     *NFA
	DFA     *DFA
	MinDFA  *MinDFA
}

// Compile Runs the whole pipeline: regex -> postfix -> NFA -> DFA -> minimal DFA.
func Compile(regex string, opts ...Option) (*Compiled, error) {
	postfix, err := ParsePostfix(regex, opts...)
	if err != nil {
		return nil, err
	}
	nfa, err := BuildNFA(postfix, opts...)
	if err != nil {
		return nil, err
	}
	dfa, err := Determinize(nfa, opts...)
	if err != nil {
		return nil, err
	}
	minDFA, err := Minimize(dfa, opts...)
	if err != nil {
		return nil, err
	}
	return &Compiled{
		Regex:   regex,
		Postfix: postfix,
		NFA:     nfa,
		DFA:     dfa,
		MinDFA:  minDFA,
	}, nil
}

// MustCompile Like Compile but panics if the regex cannot be compiled.
func MustCompile(regex string, opts ...Option) *Compiled {
	c, err := Compile(regex, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Accepts Returns true if the minimal DFA accepts input.
func (c *Compiled) Accepts(input string) bool {
	return c.MinDFA.Accepts(input)
}

// Stage Returns the automaton produced by the given stage.
func (c *Compiled) Stage(kind Kind) Automaton {
	switch kind {
	case KindNFA:
		return c.NFA
	case KindDFA:
		return c.DFA
	default:
		return c.MinDFA
	}
}
