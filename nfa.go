package regexdfa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var _ Automaton = &NFA{}

// NFA Represents a nondeterministic automaton with epsilon transitions. States are integers and must be
// created using CreateState. A symbol may lead to several targets, and epsilon targets are kept apart
// from symbol targets.
type NFA struct {
	// Per state: symbol -> target ids, in insertion order without duplicates.
	moves []map[rune][]int

	// Per state: epsilon target ids, in insertion order without duplicates.
	epsilons [][]int

	isAccept *bitset.BitSet

	start int

	// Every symbol used by a non-epsilon transition.
	symbols map[rune]struct{}
}

func NewNFA() *NFA {
	return NewNFAV1(2)
}

func NewNFAV1(numStates int) *NFA {
	return &NFA{
		moves:    make([]map[rune][]int, 0, numStates),
		epsilons: make([][]int, 0, numStates),
		isAccept: bitset.New(uint(numStates)),
		symbols:  make(map[rune]struct{}),
	}
}

// CreateState Create a new state.
func (n *NFA) CreateState() int {
	state := len(n.moves)
	n.moves = append(n.moves, nil)
	n.epsilons = append(n.epsilons, nil)
	return state
}

// SetAccept Set or clear this state as an accept state.
func (n *NFA) SetAccept(state int, accept bool) {
	n.isAccept.SetTo(uint(state), accept)
}

// SetStart Mark state as the start state.
func (n *NFA) SetStart(state int) error {
	if err := n.checkState(state); err != nil {
		return err
	}
	n.start = state
	return nil
}

// AddTransition Add a new transition with the specified source, dest and symbol. Passing Epsilon adds an
// epsilon transition.
func (n *NFA) AddTransition(source, dest int, symbol rune) error {
	if symbol == Epsilon {
		return n.AddEpsilon(source, dest)
	}
	if err := n.checkState(source); err != nil {
		return err
	}
	if err := n.checkState(dest); err != nil {
		return err
	}
	if n.moves[source] == nil {
		n.moves[source] = make(map[rune][]int)
	}
	n.moves[source][symbol] = appendUnique(n.moves[source][symbol], dest)
	n.symbols[symbol] = struct{}{}
	return nil
}

// AddEpsilon Add an epsilon transition between source and dest.
func (n *NFA) AddEpsilon(source, dest int) error {
	if err := n.checkState(source); err != nil {
		return err
	}
	if err := n.checkState(dest); err != nil {
		return err
	}
	n.epsilons[source] = appendUnique(n.epsilons[source], dest)
	return nil
}

func (n *NFA) checkState(state int) error {
	if state < 0 || state >= len(n.moves) {
		return fmt.Errorf("state %d does not exist", state)
	}
	return nil
}

func appendUnique(ids []int, id int) []int {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

func (n *NFA) Kind() Kind {
	return KindNFA
}

// NumStates How many states this automaton has.
func (n *NFA) NumStates() int {
	return len(n.moves)
}

func (n *NFA) Start() int {
	return n.start
}

// IsAccept Returns true if this state is an accept state.
func (n *NFA) IsAccept(state int) bool {
	return n.isAccept.Test(uint(state))
}

func (n *NFA) AcceptStates() []int {
	return setBits(n.isAccept, n.NumStates())
}

func (n *NFA) Alphabet() []rune {
	return sortedAlphabet(n.symbols)
}

// Targets Returns the states reachable from state by consuming symbol, without epsilon closure.
func (n *NFA) Targets(state int, symbol rune) []int {
	return n.moves[state][symbol]
}

// EpsilonTargets Returns the direct epsilon successors of state.
func (n *NFA) EpsilonTargets(state int) []int {
	return n.epsilons[state]
}

func (n *NFA) Transitions() []Transition {
	transitions := make([]Transition, 0)
	for s := range n.moves {
		for symbol, dests := range n.moves[s] {
			for _, d := range dests {
				transitions = append(transitions, Transition{Source: s, Symbol: symbol, Dest: d})
			}
		}
		for _, d := range n.epsilons[s] {
			transitions = append(transitions, Transition{Source: s, Symbol: Epsilon, Dest: d})
		}
	}
	return sortTransitions(transitions)
}

// EpsilonClosure Returns the sorted set of states reachable from states through zero or more epsilon
// transitions.
func (n *NFA) EpsilonClosure(states []int) []int {
	return setBits(n.epsilonClosure(states), n.NumStates())
}

func (n *NFA) epsilonClosure(states []int) *bitset.BitSet {
	seen := bitset.New(uint(n.NumStates()))
	workList := make([]int, 0, len(states))
	for _, s := range states {
		if !seen.Test(uint(s)) {
			seen.Set(uint(s))
			workList = append(workList, s)
		}
	}

	for len(workList) > 0 {
		s := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for _, d := range n.epsilons[s] {
			if !seen.Test(uint(d)) {
				seen.Set(uint(d))
				workList = append(workList, d)
			}
		}
	}
	return seen
}

// Returns the union of symbol targets over states; epsilon edges are not followed.
func (n *NFA) move(states []int, symbol rune) []int {
	seen := bitset.New(uint(n.NumStates()))
	for _, s := range states {
		for _, d := range n.moves[s][symbol] {
			seen.Set(uint(d))
		}
	}
	return setBits(seen, n.NumStates())
}

// Returns true if any of states is an accept state.
func (n *NFA) anyAccept(states []int) bool {
	for _, s := range states {
		if n.IsAccept(s) {
			return true
		}
	}
	return false
}
