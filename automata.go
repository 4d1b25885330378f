package regexdfa

// Atomic automata the pipeline composes from.

// Returns a new minimal automaton with the empty language: a single non-accepting start state.
func makeEmptyMinDFA(alphabet []rune) *MinDFA {
	m := newMinDFA(1)
	m.CreateState()
	for _, r := range alphabet {
		m.symbols[r] = struct{}{}
	}
	return m
}

// Pushes start --symbol--> accept.
func (b *thompsonBuilder) makeSymbol(symbol rune) error {
	s, err := b.createState()
	if err != nil {
		return err
	}
	a, err := b.createState()
	if err != nil {
		return err
	}
	if err := b.nfa.AddTransition(s, a, symbol); err != nil {
		return err
	}
	b.nfa.SetAccept(a, true)
	b.push(fragment{start: s, accept: a})
	return nil
}

// Pushes start --ε--> accept, accepting only the empty string.
func (b *thompsonBuilder) makeEmptyString() error {
	s, err := b.createState()
	if err != nil {
		return err
	}
	a, err := b.createState()
	if err != nil {
		return err
	}
	if err := b.nfa.AddEpsilon(s, a); err != nil {
		return err
	}
	b.nfa.SetAccept(a, true)
	b.push(fragment{start: s, accept: a})
	return nil
}
