package regexdfa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Minimize
// Minimizes the given DFA by partition refinement. Unreachable states are pruned first, so callers may
// pass any DFA.
func Minimize(d *DFA, opts ...Option) (*MinDFA, error) {
	o := newOptions(opts...)
	if d.NumStates() == 0 {
		return nil, fmt.Errorf("minimize: %w", ErrNoStates)
	}
	if err := checkLimit("alphabet size", o.maxAlphabetSize, len(d.symbols)); err != nil {
		return nil, err
	}
	m := minimize(&d.dfaGraph)
	o.debugf("minimized dfaStates=%d minStates=%d", d.NumStates(), m.NumStates())
	return m, nil
}

// MinimizeAutomaton Minimizes an automaton known only through the Automaton interface. Returns a
// ConversionError unless it is a DFA.
func MinimizeAutomaton(a Automaton, opts ...Option) (*MinDFA, error) {
	d, ok := a.(*DFA)
	if !ok {
		return nil, &ConversionError{Op: "minimize", Want: KindDFA, Got: a.Kind()}
	}
	return Minimize(d, opts...)
}

// Minimize Minimizes again; the result is isomorphic to m.
func (m *MinDFA) Minimize() *MinDFA {
	return minimize(&m.dfaGraph)
}

// IntPair A (block index, symbol index) pair waiting in the refinement worklist.
type IntPair struct {
	n1 int
	n2 int
}

// Refinement state of one minimization call.
//
// Missing transitions lead to an implicit non-accepting sink with id numStates. The sink and every
// state equivalent to it are dead and dropped when the result is built.
type refinement struct {
	g          *dfaGraph
	alphabet   []rune
	sink       int
	partitions [][]int
	blockOf    []int
	worklist   []IntPair
}

func (r *refinement) target(state int, symbol rune) int {
	if state == r.sink {
		return r.sink
	}
	if dest, ok := r.g.delta[state][symbol]; ok {
		return dest
	}
	return r.sink
}

func minimize(in *dfaGraph) *MinDFA {
	pruned := removeUnreachable(in)
	alphabet := pruned.Alphabet()
	numStates := pruned.NumStates()

	if numStates == 0 {
		return &MinDFA{dfaGraph: pruned}
	}

	r := &refinement{
		g:        &pruned,
		alphabet: alphabet,
		sink:     numStates,
		blockOf:  make([]int, numStates+1),
		worklist: make([]IntPair, 0),
	}

	accept := make([]int, 0)
	reject := make([]int, 0)
	for s := 0; s <= numStates; s++ {
		if s < numStates && pruned.IsAccept(s) {
			accept = append(accept, s)
		} else {
			reject = append(reject, s)
		}
	}
	for _, block := range [][]int{accept, reject} {
		if len(block) == 0 {
			continue
		}
		idx := len(r.partitions)
		r.partitions = append(r.partitions, block)
		for _, s := range block {
			r.blockOf[s] = idx
		}
	}

	for p := range r.partitions {
		r.enqueue(p)
	}
	for len(r.worklist) > 0 {
		pair := r.worklist[0]
		r.worklist = r.worklist[1:]
		r.split(pair.n1, r.alphabet[pair.n2])
	}

	return r.build()
}

func (r *refinement) enqueue(block int) {
	for i := range r.alphabet {
		r.worklist = append(r.worklist, IntPair{n1: block, n2: i})
	}
}

// Divides every block Q into the states whose symbol-target lies in block p and the rest. A block that
// splits keeps its index for the first half, the second half is appended, and both are re-enqueued for
// every symbol.
func (r *refinement) split(p int, symbol rune) {
	for q := 0; q < len(r.partitions); q++ {
		block := r.partitions[q]
		if len(block) < 2 {
			continue
		}

		in := make([]int, 0, len(block))
		out := make([]int, 0)
		for _, s := range block {
			if r.blockOf[r.target(s, symbol)] == p {
				in = append(in, s)
			} else {
				out = append(out, s)
			}
		}
		if len(in) == 0 || len(out) == 0 {
			continue
		}

		r.partitions[q] = in
		r.partitions = append(r.partitions, out)
		newBlock := len(r.partitions) - 1
		for _, s := range out {
			r.blockOf[s] = newBlock
		}
		r.enqueue(q)
		r.enqueue(newBlock)
	}
}

// One state per live block, numbered in breadth first order from the start block. All members of a
// block agree on the target block of every symbol, so the first member stands for the block.
func (r *refinement) build() *MinDFA {
	dead := r.blockOf[r.sink]
	startBlock := r.blockOf[r.g.start]
	if startBlock == dead {
		m := makeEmptyMinDFA(r.alphabet)
		if r.g.nfaAccept != nil {
			m.nfaAccept = r.g.nfaAccept.Clone()
		}
		return m
	}

	m := newMinDFA(len(r.partitions))
	for _, symbol := range r.alphabet {
		m.symbols[symbol] = struct{}{}
	}
	if r.g.nfaAccept != nil {
		m.nfaAccept = r.g.nfaAccept.Clone()
	}

	newID := make(map[int]int, len(r.partitions))
	visit := func(block int) int {
		if id, ok := newID[block]; ok {
			return id
		}
		id := m.CreateState()
		newID[block] = id
		members := r.partitions[block]
		m.origins[id] = r.unionOrigins(members)
		m.SetAccept(id, slices.ContainsFunc(members, r.g.IsAccept))
		return id
	}

	m.start = visit(startBlock)
	queue := []int{startBlock}
	for len(queue) > 0 {
		block := queue[0]
		queue = queue[1:]
		rep := r.partitions[block][0]
		for _, symbol := range r.alphabet {
			destBlock := r.blockOf[r.target(rep, symbol)]
			if destBlock == dead {
				continue
			}
			_, seen := newID[destBlock]
			dest := visit(destBlock)
			if !seen {
				queue = append(queue, destBlock)
			}
			m.delta[newID[block]][symbol] = dest
		}
	}
	return m
}

// Returns the sorted union of the members' origin subsets, or nil if any member has none.
func (r *refinement) unionOrigins(members []int) []int {
	var union *bitset.BitSet
	for _, s := range members {
		origin := r.g.origins[s]
		if origin == nil {
			return nil
		}
		if union == nil {
			union = bitset.New(0)
		}
		for _, id := range origin {
			union.Set(uint(id))
		}
	}
	if union == nil {
		return nil
	}
	return setBits(union, int(union.Len()))
}
