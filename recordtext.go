package regexdfa

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Text form of a Record:
//
//	kind DFA;
//	states 0, 1, 2;
//	alphabet "a", "b";
//	start 0;
//	accept 2;
//	edge 0 "a" 1;
//	edge 1 "b" 2;
type recordText struct {
	Kind     string      `parser:"'kind' @Ident ';'"`
	States   []int       `parser:"'states' (@Int (',' @Int)*)? ';'"`
	Alphabet []string    `parser:"'alphabet' (@String (',' @String)*)? ';'"`
	Start    int         `parser:"'start' @Int ';'"`
	Accept   []int       `parser:"'accept' (@Int (',' @Int)*)? ';'"`
	Edges    []*edgeText `parser:"@@*"`
}

type edgeText struct {
	From   int    `parser:"'edge' @Int"`
	Symbol string `parser:"@String"`
	To     int    `parser:"@Int ';'"`
}

var recordParser = participle.MustBuild[recordText](participle.Unquote("String"))

// ParseRecord Parses the text form written by Record.String.
func ParseRecord(text string) (Record, error) {
	parsed, err := recordParser.ParseString("record", text)
	if err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}

	r := Record{
		Kind:         parsed.Kind,
		States:       orEmpty(parsed.States),
		Alphabet:     make([]string, 0, len(parsed.Alphabet)),
		Start:        parsed.Start,
		AcceptStates: orEmpty(parsed.Accept),
		Transitions:  make([]RecordTransition, 0, len(parsed.Edges)),
	}
	r.Alphabet = append(r.Alphabet, parsed.Alphabet...)
	for _, e := range parsed.Edges {
		r.Transitions = append(r.Transitions, RecordTransition{From: e.From, Symbol: e.Symbol, To: e.To})
	}
	return r, nil
}

func orEmpty(ids []int) []int {
	if ids == nil {
		return make([]int, 0)
	}
	return ids
}

// String Renders the record in its line oriented text form.
func (r Record) String() string {
	b := new(strings.Builder)
	fmt.Fprintf(b, "kind %s;\n", r.Kind)
	fmt.Fprintf(b, "states %s;\n", joinInts(r.States))

	quoted := make([]string, len(r.Alphabet))
	for i, s := range r.Alphabet {
		quoted[i] = strconv.Quote(s)
	}
	fmt.Fprintf(b, "alphabet %s;\n", strings.Join(quoted, ", "))
	fmt.Fprintf(b, "start %d;\n", r.Start)
	fmt.Fprintf(b, "accept %s;\n", joinInts(r.AcceptStates))
	for _, t := range r.Transitions {
		fmt.Fprintf(b, "edge %d %s %d;\n", t.From, strconv.Quote(t.Symbol), t.To)
	}
	return b.String()
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
