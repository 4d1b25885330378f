package regexdfa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Determinize Determinizes the given NFA with the subset construction.
// Worst case complexity: exponential in number of states. Returns a ResourceLimitError once the DFA
// would grow past the configured state limit.
//
// Each DFA state is keyed by the sorted ids of its NFA subset, so equal reachable subsets always map
// to the same DFA state. The result only holds states reachable from the start.
func Determinize(n *NFA, opts ...Option) (*DFA, error) {
	o := newOptions(opts...)
	if n.NumStates() == 0 {
		return nil, fmt.Errorf("determinize: %w", ErrNoStates)
	}
	alphabet := n.Alphabet()
	if err := checkLimit("alphabet size", o.maxAlphabetSize, len(alphabet)); err != nil {
		return nil, err
	}

	d := NewDFA()
	d.nfaAccept = n.isAccept.Clone()
	for _, r := range alphabet {
		d.symbols[r] = struct{}{}
	}

	newState := NewHashMap[int](WithCapacity(16))
	worklist := make([]*FrozenIntSet, 0)

	initialSet := newFrozenIntSetOf(n.EpsilonClosure([]int{n.Start()}), d.CreateState())
	d.origins[initialSet.state] = initialSet.values
	d.SetAccept(initialSet.state, n.anyAccept(initialSet.values))
	d.start = initialSet.state
	newState.Set(initialSet, initialSet.state)
	worklist = append(worklist, initialSet)

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, symbol := range alphabet {
			move := n.move(current.GetArray(), symbol)
			if len(move) == 0 {
				continue
			}

			closure := newFrozenIntSetOf(n.EpsilonClosure(move), -1)
			dest, ok := newState.Get(closure)
			if !ok {
				if err := checkLimit("dfa states", o.maxDFAStates, d.NumStates()+1); err != nil {
					return nil, err
				}
				dest = d.CreateState()
				closure.state = dest
				d.origins[dest] = closure.values
				d.SetAccept(dest, n.anyAccept(closure.values))
				newState.Set(closure, dest)
				worklist = append(worklist, closure)
			}
			if err := d.AddTransition(current.state, dest, symbol); err != nil {
				return nil, err
			}
		}
	}

	o.debugf("determinized nfaStates=%d dfaStates=%d subsets=%d", n.NumStates(), d.NumStates(), newState.Size())
	return d, nil
}

// DeterminizeAutomaton Determinizes an automaton known only through the Automaton interface. Returns a
// ConversionError unless it is an NFA.
func DeterminizeAutomaton(a Automaton, opts ...Option) (*DFA, error) {
	n, ok := a.(*NFA)
	if !ok {
		return nil, &ConversionError{Op: "determinize", Want: KindNFA, Got: a.Kind()}
	}
	return Determinize(n, opts...)
}

// RemoveUnreachable Returns a copy of d without the states unreachable from the start. Acceptance of
// every kept state is recomputed from its origin NFA subset intersected with the NFA accept ids;
// states without provenance keep their flag.
func RemoveUnreachable(d *DFA) *DFA {
	return &DFA{dfaGraph: removeUnreachable(&d.dfaGraph)}
}

func removeUnreachable(g *dfaGraph) dfaGraph {
	numStates := g.NumStates()
	live := getLiveStatesFromInitial(g)

	mp := make([]int, numStates)
	result := newDFAGraph(int(live.Count()))
	for r := range g.symbols {
		result.symbols[r] = struct{}{}
	}
	if g.nfaAccept != nil {
		result.nfaAccept = g.nfaAccept.Clone()
	}

	for i := 0; i < numStates; i++ {
		mp[i] = -1
		if !live.Test(uint(i)) {
			continue
		}
		mp[i] = result.CreateState()
		result.origins[mp[i]] = slices.Clone(g.origins[i])
		accept, ok := g.originAccepts(i)
		if !ok {
			accept = g.IsAccept(i)
		}
		result.SetAccept(mp[i], accept)
	}

	for i := 0; i < numStates; i++ {
		if mp[i] == -1 {
			continue
		}
		for symbol, dest := range g.delta[i] {
			// dest is live whenever i is.
			result.delta[mp[i]][symbol] = mp[dest]
		}
	}
	if numStates > 0 {
		result.start = mp[g.start]
	}
	return result
}

func getLiveStatesFromInitial(g *dfaGraph) *bitset.BitSet {
	numStates := g.NumStates()
	live := bitset.New(uint(numStates))
	if numStates == 0 {
		return live
	}
	workList := make([]int, 0)
	live.Set(uint(g.start))
	workList = append(workList, g.start)

	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, dest := range g.delta[s] {
			if !live.Test(uint(dest)) {
				live.Set(uint(dest))
				workList = append(workList, dest)
			}
		}
	}

	return live
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(a Automaton) bool {
	numStates := a.NumStates()
	if numStates == 0 {
		return true
	}

	adjacency := make([][]int, numStates)
	for _, t := range a.Transitions() {
		adjacency[t.Source] = append(adjacency[t.Source], t.Dest)
	}

	workList := make([]int, 0)
	seen := bitset.New(uint(numStates))
	workList = append(workList, a.Start())
	seen.Set(uint(a.Start()))

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.IsAccept(state) {
			return false
		}
		for _, dest := range adjacency[state] {
			if !seen.Test(uint(dest)) {
				workList = append(workList, dest)
				seen.Set(uint(dest))
			}
		}
	}
	return true
}
