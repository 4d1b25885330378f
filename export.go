package regexdfa

import (
	"fmt"
	"unicode/utf8"
)

// RecordTransition One edge of an exported automaton. Epsilon edges use the reserved "ε" symbol.
type RecordTransition struct {
	From   int    `json:"from"`
	Symbol string `json:"symbol"`
	To     int    `json:"to"`
}

// Record Stable export form of an automaton, consumed by serialization and visualization tools.
// States are listed in order, Alphabet and AcceptStates are sorted, and Transitions are sorted by
// from, symbol, to. The alphabet never contains the epsilon symbol.
type Record struct {
	Kind         string             `json:"kind"`
	States       []int              `json:"states"`
	Alphabet     []string           `json:"alphabet"`
	Start        int                `json:"start"`
	AcceptStates []int              `json:"acceptStates"`
	Transitions  []RecordTransition `json:"transitions"`
}

// Export Returns the export record of a.
func Export(a Automaton) Record {
	r := Record{
		Kind:         a.Kind().String(),
		States:       make([]int, a.NumStates()),
		Alphabet:     make([]string, 0),
		Start:        a.Start(),
		AcceptStates: a.AcceptStates(),
		Transitions:  make([]RecordTransition, 0),
	}
	for i := range r.States {
		r.States[i] = i
	}
	for _, symbol := range a.Alphabet() {
		r.Alphabet = append(r.Alphabet, string(symbol))
	}
	for _, t := range a.Transitions() {
		r.Transitions = append(r.Transitions, RecordTransition{From: t.Source, Symbol: string(t.Symbol), To: t.Dest})
	}
	return r
}

type automatonBuilder interface {
	CreateState() int
	SetAccept(state int, accept bool)
	SetStart(state int) error
	AddTransition(source, dest int, symbol rune) error
}

// FromRecord Rebuilds an automaton of the recorded kind. State ids are renumbered densely in the order
// they are listed. A record without states has no start state and is rejected with ErrNoStates.
func FromRecord(r Record) (Automaton, error) {
	kind, ok := ParseKind(r.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown automaton kind %q", r.Kind)
	}

	if len(r.States) == 0 {
		return nil, fmt.Errorf("record: %w", ErrNoStates)
	}

	var (
		result  Automaton
		builder automatonBuilder
		symbols map[rune]struct{}
	)
	switch kind {
	case KindNFA:
		n := NewNFAV1(len(r.States))
		result, builder, symbols = n, n, n.symbols
	case KindDFA:
		d := NewDFAV1(len(r.States))
		result, builder, symbols = d, d, d.symbols
	default:
		m := newMinDFA(len(r.States))
		result, builder, symbols = m, m, m.symbols
	}

	ids := make(map[int]int, len(r.States))
	for _, id := range r.States {
		if _, dup := ids[id]; dup {
			return nil, fmt.Errorf("duplicate state %d", id)
		}
		ids[id] = builder.CreateState()
	}
	lookup := func(id int) (int, error) {
		state, ok := ids[id]
		if !ok {
			return -1, fmt.Errorf("unknown state %d", id)
		}
		return state, nil
	}

	start, err := lookup(r.Start)
	if err != nil {
		return nil, err
	}
	if err := builder.SetStart(start); err != nil {
		return nil, err
	}
	for _, id := range r.AcceptStates {
		state, err := lookup(id)
		if err != nil {
			return nil, err
		}
		builder.SetAccept(state, true)
	}

	for _, s := range r.Alphabet {
		symbol, err := parseSymbol(s)
		if err != nil {
			return nil, err
		}
		if symbol == Epsilon {
			return nil, fmt.Errorf("alphabet contains the epsilon symbol")
		}
		symbols[symbol] = struct{}{}
	}

	for _, t := range r.Transitions {
		symbol, err := parseSymbol(t.Symbol)
		if err != nil {
			return nil, err
		}
		from, err := lookup(t.From)
		if err != nil {
			return nil, err
		}
		to, err := lookup(t.To)
		if err != nil {
			return nil, err
		}
		if err := builder.AddTransition(from, to, symbol); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func parseSymbol(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("symbol %q is not a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
