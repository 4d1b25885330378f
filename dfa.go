package regexdfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	_ Automaton = &DFA{}
	_ Automaton = &MinDFA{}
)

// State storage shared by DFA and MinDFA. The transition table maps a symbol to exactly one dest, so
// no state can have two transitions leaving with the same symbol.
type dfaGraph struct {
	delta []map[rune]int

	isAccept *bitset.BitSet

	start int

	symbols map[rune]struct{}

	// NFA state ids each state was built from; nil for states without provenance.
	origins [][]int

	// Accept ids of the NFA the origins refer to; nil when the automaton was not built from an NFA.
	nfaAccept *bitset.BitSet
}

func newDFAGraph(numStates int) dfaGraph {
	return dfaGraph{
		delta:    make([]map[rune]int, 0, numStates),
		isAccept: bitset.New(uint(numStates)),
		symbols:  make(map[rune]struct{}),
		origins:  make([][]int, 0, numStates),
	}
}

// CreateState Create a new state.
func (g *dfaGraph) CreateState() int {
	state := len(g.delta)
	g.delta = append(g.delta, make(map[rune]int))
	g.origins = append(g.origins, nil)
	return state
}

// SetAccept Set or clear this state as an accept state.
func (g *dfaGraph) SetAccept(state int, accept bool) {
	g.isAccept.SetTo(uint(state), accept)
}

// SetStart Mark state as the start state.
func (g *dfaGraph) SetStart(state int) error {
	if err := g.checkState(state); err != nil {
		return err
	}
	g.start = state
	return nil
}

// AddTransition Add a new transition with the specified source, dest and symbol. Returns an error if the
// source already leaves on symbol to another state.
func (g *dfaGraph) AddTransition(source, dest int, symbol rune) error {
	if symbol == Epsilon {
		return fmt.Errorf("epsilon transition from state %d in deterministic automaton", source)
	}
	if err := g.checkState(source); err != nil {
		return err
	}
	if err := g.checkState(dest); err != nil {
		return err
	}
	if prev, ok := g.delta[source][symbol]; ok && prev != dest {
		return fmt.Errorf("state %d already has a transition on %q", source, symbol)
	}
	g.delta[source][symbol] = dest
	g.symbols[symbol] = struct{}{}
	return nil
}

func (g *dfaGraph) checkState(state int) error {
	if state < 0 || state >= len(g.delta) {
		return fmt.Errorf("state %d does not exist", state)
	}
	return nil
}

// NumStates How many states this automaton has.
func (g *dfaGraph) NumStates() int {
	return len(g.delta)
}

func (g *dfaGraph) Start() int {
	return g.start
}

// IsAccept Returns true if this state is an accept state.
func (g *dfaGraph) IsAccept(state int) bool {
	return g.isAccept.Test(uint(state))
}

func (g *dfaGraph) AcceptStates() []int {
	return setBits(g.isAccept, g.NumStates())
}

func (g *dfaGraph) Alphabet() []rune {
	return sortedAlphabet(g.symbols)
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (g *dfaGraph) Step(state int, symbol rune) int {
	if dest, ok := g.delta[state][symbol]; ok {
		return dest
	}
	return -1
}

// Origin Returns the sorted NFA state ids this state was built from, or nil if unknown.
func (g *dfaGraph) Origin(state int) []int {
	return g.origins[state]
}

func (g *dfaGraph) Transitions() []Transition {
	transitions := make([]Transition, 0)
	for s, row := range g.delta {
		for symbol, d := range row {
			transitions = append(transitions, Transition{Source: s, Symbol: symbol, Dest: d})
		}
	}
	return sortTransitions(transitions)
}

// Reports whether state's origin subset intersects the NFA accept ids. ok is false when the state has
// no provenance.
func (g *dfaGraph) originAccepts(state int) (accept bool, ok bool) {
	if g.nfaAccept == nil || g.origins[state] == nil {
		return false, false
	}
	for _, id := range g.origins[state] {
		if g.nfaAccept.Test(uint(id)) {
			return true, true
		}
	}
	return false, true
}

// DFA Deterministic automaton produced by subset construction. Transitions may be partial: a missing
// transition rejects the input.
type DFA struct {
	dfaGraph
}

func NewDFA() *DFA {
	return NewDFAV1(2)
}

func NewDFAV1(numStates int) *DFA {
	return &DFA{dfaGraph: newDFAGraph(numStates)}
}

func (d *DFA) Kind() Kind {
	return KindDFA
}

// MinDFA Minimal deterministic automaton produced by partition refinement.
type MinDFA struct {
	dfaGraph
}

func newMinDFA(numStates int) *MinDFA {
	return &MinDFA{dfaGraph: newDFAGraph(numStates)}
}

func (m *MinDFA) Kind() Kind {
	return KindMinDFA
}
