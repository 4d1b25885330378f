package regexdfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	for _, k := range []Kind{KindNFA, KindDFA, KindMinDFA} {
		parsed, ok := ParseKind(k.String())
		require.True(t, ok)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "Unknown", Kind(7).String())

	_, ok := ParseKind("nfa")
	assert.False(t, ok)
}

func TestNFAModel(t *testing.T) {
	n := NewNFA()
	s0, s1 := n.CreateState(), n.CreateState()

	require.NoError(t, n.AddTransition(s0, s1, 'a'))
	require.NoError(t, n.AddTransition(s0, s1, 'a'))
	require.NoError(t, n.AddTransition(s0, s0, 'a'))
	require.NoError(t, n.AddTransition(s1, s0, Epsilon))

	// Several targets per symbol, duplicates collapse.
	assert.Equal(t, []int{1, 0}, n.Targets(s0, 'a'))
	assert.Equal(t, []int{0}, n.EpsilonTargets(s1))
	assert.Equal(t, []rune{'a'}, n.Alphabet())

	assert.Error(t, n.AddTransition(s0, 5, 'a'))
	assert.Error(t, n.AddEpsilon(-1, s0))
	assert.Error(t, n.SetStart(2))
	require.NoError(t, n.SetStart(s1))
	assert.Equal(t, s1, n.Start())
}

func TestDFAModel(t *testing.T) {
	d := NewDFA()
	s0, s1 := d.CreateState(), d.CreateState()

	require.NoError(t, d.AddTransition(s0, s1, 'a'))
	require.NoError(t, d.AddTransition(s0, s1, 'a'))
	assert.Error(t, d.AddTransition(s0, s0, 'a'))
	assert.Error(t, d.AddTransition(s0, s1, Epsilon))
	assert.Error(t, d.AddTransition(s0, 3, 'b'))

	assert.Equal(t, s1, d.Step(s0, 'a'))
	assert.Equal(t, -1, d.Step(s0, 'b'))
	assert.Nil(t, d.Origin(s0))

	d.SetAccept(s1, true)
	assert.Equal(t, []int{1}, d.AcceptStates())
	d.SetAccept(s1, false)
	assert.Empty(t, d.AcceptStates())
}

func TestTransitionsSorted(t *testing.T) {
	d := NewDFA()
	for i := 0; i < 3; i++ {
		d.CreateState()
	}
	require.NoError(t, d.AddTransition(2, 0, 'b'))
	require.NoError(t, d.AddTransition(0, 2, 'c'))
	require.NoError(t, d.AddTransition(0, 1, 'a'))
	require.NoError(t, d.AddTransition(2, 1, 'a'))

	assert.Equal(t, []Transition{
		{Source: 0, Symbol: 'a', Dest: 1},
		{Source: 0, Symbol: 'c', Dest: 2},
		{Source: 2, Symbol: 'a', Dest: 1},
		{Source: 2, Symbol: 'b', Dest: 0},
	}, d.Transitions())
	assert.Equal(t, []rune{'a', 'b', 'c'}, d.Alphabet())
}
