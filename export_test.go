package regexdfa

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	r := Export(MustCompile("a*").NFA)

	want := Record{
		Kind:         "NFA",
		States:       []int{0, 1, 2, 3},
		Alphabet:     []string{"a"},
		Start:        2,
		AcceptStates: []int{3},
		Transitions: []RecordTransition{
			{From: 0, Symbol: "a", To: 1},
			{From: 1, Symbol: "ε", To: 0},
			{From: 1, Symbol: "ε", To: 3},
			{From: 2, Symbol: "ε", To: 0},
			{From: 2, Symbol: "ε", To: 3},
		},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestExportJSON(t *testing.T) {
	data, err := json.Marshal(Export(MustCompile("a").MinDFA))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"kind": "MinDFA",
		"states": [0, 1],
		"alphabet": ["a"],
		"start": 0,
		"acceptStates": [1],
		"transitions": [{"from": 0, "symbol": "a", "to": 1}]
	}`, string(data))
}

func TestFromRecordRoundTrip(t *testing.T) {
	c := MustCompile("(a|b)*abb")
	inputs := enumerate([]rune{'a', 'b', 'c'}, 5)

	for _, a := range []Automaton{c.NFA, c.DFA, c.MinDFA} {
		t.Run(a.Kind().String(), func(t *testing.T) {
			rebuilt, err := FromRecord(Export(a))
			require.NoError(t, err)
			assert.Equal(t, a.Kind(), rebuilt.Kind())
			assert.Equal(t, Export(a), Export(rebuilt))

			for _, s := range inputs {
				assert.Equal(t, Run(a, s), Run(rebuilt, s), "%q", s)
			}
		})
	}
}

func TestRecordTextRoundTrip(t *testing.T) {
	c := MustCompile("a*b+|ε")
	for _, a := range []Automaton{c.NFA, c.DFA, c.MinDFA} {
		t.Run(a.Kind().String(), func(t *testing.T) {
			r := Export(a)
			parsed, err := ParseRecord(r.String())
			require.NoError(t, err)
			if diff := cmp.Diff(r, parsed); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordString(t *testing.T) {
	r := Export(MustCompile("a").DFA)
	assert.Equal(t, "kind DFA;\n"+
		"states 0, 1;\n"+
		"alphabet \"a\";\n"+
		"start 0;\n"+
		"accept 1;\n"+
		"edge 0 \"a\" 1;\n", r.String())
}

func TestParseRecordEmptyLists(t *testing.T) {
	r, err := ParseRecord("kind MinDFA; states 0; alphabet; start 0; accept;")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.States)
	assert.Empty(t, r.Alphabet)
	assert.Empty(t, r.AcceptStates)
	assert.Empty(t, r.Transitions)

	a, err := FromRecord(r)
	require.NoError(t, err)
	assert.True(t, IsEmpty(a))
}

func TestParseRecordErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"kind DFA;",
		"kind DFA; states 0; alphabet \"a\"; start 0; accept; edge 0 a 0;",
	} {
		_, err := ParseRecord(text)
		assert.Error(t, err, text)
	}
}

func TestFromRecordErrors(t *testing.T) {
	base := func() Record {
		return Record{
			Kind:         "DFA",
			States:       []int{0, 1},
			Alphabet:     []string{"a"},
			Start:        0,
			AcceptStates: []int{1},
			Transitions:  []RecordTransition{{From: 0, Symbol: "a", To: 1}},
		}
	}

	tests := []struct {
		name   string
		modify func(r *Record)
	}{
		{"unknown kind", func(r *Record) { r.Kind = "PDA" }},
		{"no states", func(r *Record) {
			r.States, r.AcceptStates, r.Transitions = nil, nil, nil
		}},
		{"duplicate state", func(r *Record) { r.States = []int{0, 0} }},
		{"unknown start", func(r *Record) { r.Start = 7 }},
		{"unknown accept state", func(r *Record) { r.AcceptStates = []int{5} }},
		{"unknown target", func(r *Record) { r.Transitions[0].To = 9 }},
		{"long symbol", func(r *Record) { r.Transitions[0].Symbol = "ab" }},
		{"epsilon in alphabet", func(r *Record) { r.Alphabet = append(r.Alphabet, "ε") }},
		{"epsilon edge in dfa", func(r *Record) {
			r.Transitions = append(r.Transitions, RecordTransition{From: 1, Symbol: "ε", To: 0})
		}},
		{"conflicting edges", func(r *Record) {
			r.Transitions = append(r.Transitions, RecordTransition{From: 0, Symbol: "a", To: 0})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base()
			tt.modify(&r)
			_, err := FromRecord(r)
			assert.Error(t, err)
		})
	}

	_, err := FromRecord(base())
	assert.NoError(t, err)
}

func TestFromRecordNFAKeepsEpsilon(t *testing.T) {
	a, err := FromRecord(Record{
		Kind:         "NFA",
		States:       []int{10, 20},
		Start:        10,
		AcceptStates: []int{20},
		Transitions:  []RecordTransition{{From: 10, Symbol: "ε", To: 20}},
	})
	require.NoError(t, err)

	n, ok := a.(*NFA)
	require.True(t, ok)
	assert.Equal(t, []int{1}, n.EpsilonTargets(0))
	assert.Empty(t, n.Alphabet())
	assert.True(t, n.Accepts(""))
}

func TestFromRecordWithoutStates(t *testing.T) {
	for _, kind := range []string{"NFA", "DFA", "MinDFA"} {
		_, err := FromRecord(Record{Kind: kind})
		assert.ErrorIs(t, err, ErrNoStates, kind)
	}
}
