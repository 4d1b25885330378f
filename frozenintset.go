package regexdfa

import "slices"

// IntSet A set of state ids usable as a HashMap key.
type IntSet interface {
	Hashable

	GetArray() []int

	Size() int
}

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet Immutable sorted set of NFA state ids. It is the canonical key of a DFA state during
// subset construction: two subsets are equal iff their sorted id vectors are equal.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

// Returns a FrozenIntSet over already sorted, duplicate free ids.
func newFrozenIntSetOf(sorted []int, state int) *FrozenIntSet {
	return NewFrozenIntSet(sorted, hashIDs(sorted), state)
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	if f == nil {
		ptr, ok := other.(*FrozenIntSet)
		return ok && ptr == nil
	}

	if isNilIntSet(other) {
		return false
	}
	iset, ok := other.(IntSet)
	if !ok {
		return false
	}
	if iset.Hash() != f.Hash() {
		return false
	}
	return slices.Equal(f.values, iset.GetArray())
}

func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State The DFA state this set was assigned to.
func (f *FrozenIntSet) State() int {
	return f.state
}

func isNilIntSet(h Hashable) bool {
	switch ptr := h.(type) {
	case nil:
		return true
	case *FrozenIntSet:
		return ptr == nil
	}
	return false
}
