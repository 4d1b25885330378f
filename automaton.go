package regexdfa

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Epsilon is the reserved symbol for epsilon transitions. It never appears in an alphabet.
const Epsilon = 'ε'

// Kind tags which pipeline stage produced an automaton.
type Kind int

const (
	KindNFA    = Kind(iota) // Thompson construction output
	KindDFA                 // Subset construction output
	KindMinDFA              // Partition refinement output
)

func (k Kind) String() string {
	switch k {
	case KindNFA:
		return "NFA"
	case KindDFA:
		return "DFA"
	case KindMinDFA:
		return "MinDFA"
	default:
		return "Unknown"
	}
}

// ParseKind Returns the Kind named by s, as produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "NFA":
		return KindNFA, true
	case "DFA":
		return KindDFA, true
	case "MinDFA":
		return KindMinDFA, true
	}
	return 0, false
}

// Automaton Read-only view shared by NFA, DFA and MinDFA. States are integers in [0, NumStates()).
// Transitions reference states of the same automaton only.
type Automaton interface {
	// Kind Which stage produced this automaton.
	Kind() Kind

	// NumStates How many states this automaton has.
	NumStates() int

	// Start Id of the single start state.
	Start() int

	// IsAccept Returns true if this state is an accept state.
	IsAccept(state int) bool

	// AcceptStates Returns the sorted accept state ids.
	AcceptStates() []int

	// Alphabet Returns the sorted input symbols, never including Epsilon.
	Alphabet() []rune

	// Transitions Returns every edge sorted by source, then symbol, then dest. Epsilon edges use
	// the Epsilon symbol.
	Transitions() []Transition
}

// Transition Holds one edge of an automaton.
type Transition struct {
	Source int
	Symbol rune
	Dest   int
}

// Sorts transitions by source, ascending, then symbol ascending, then dest ascending
type transitionSorter []Transition

func (r transitionSorter) Len() int {
	return len(r)
}

func (r transitionSorter) Less(i, j int) bool {
	if r[i].Source != r[j].Source {
		return r[i].Source < r[j].Source
	}
	if r[i].Symbol != r[j].Symbol {
		return r[i].Symbol < r[j].Symbol
	}
	return r[i].Dest < r[j].Dest
}

func (r transitionSorter) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

func sortTransitions(transitions []Transition) []Transition {
	sort.Sort(transitionSorter(transitions))
	return transitions
}

// Returns the set bits of b that are below limit, in ascending order.
func setBits(b *bitset.BitSet, limit int) []int {
	ids := make([]int, 0, b.Count())
	state := uint(0)
	var ok bool
	for {
		if state < uint(limit) {
			if state, ok = b.NextSet(state); ok && state < uint(limit) {
				ids = append(ids, int(state))
				state++
				continue
			}
		}
		break
	}
	return ids
}

func sortedAlphabet(symbols map[rune]struct{}) []rune {
	alphabet := make([]rune, 0, len(symbols))
	for r := range symbols {
		alphabet = append(alphabet, r)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })
	return alphabet
}
