package regexdfa

import "fmt"

// Action Tags what happened at one step of a simulation.
type Action int

const (
	ActionStart   = Action(iota) // Initial configuration, nothing consumed yet
	ActionConsume                // One symbol consumed
	ActionStuck                  // No transition for the symbol; the input is rejected
	ActionAccept                 // Final record of an accepted input
	ActionReject                 // Final record of a rejected input
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionConsume:
		return "consume"
	case ActionStuck:
		return "stuck"
	case ActionAccept:
		return "accept"
	case ActionReject:
		return "reject"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Step One record of a simulation trace. Symbol is zero on start and final records. States holds the
// single current state of a DFA, or the sorted frontier of an NFA; it is empty on a stuck record.
type Step struct {
	Index     int
	States    []int
	Symbol    rune
	Remaining string
	Action    Action
}

// Trace Ordered, replayable record of one simulation: a start step, one step per consumed symbol (or a
// stuck step), and a final accept or reject step.
//
// Err is set when the automaton could not be simulated at all; the trace then rejects without
// consuming anything.
type Trace struct {
	Kind     Kind
	Input    string
	Steps    []Step
	Accepted bool
	Err      error
}

func (t *Trace) add(states []int, symbol rune, remaining []rune, action Action) {
	t.Steps = append(t.Steps, Step{
		Index:     len(t.Steps),
		States:    states,
		Symbol:    symbol,
		Remaining: string(remaining),
		Action:    action,
	})
}

func (t *Trace) finish(states []int, remaining []rune, accepted bool) *Trace {
	t.Accepted = accepted
	action := ActionReject
	if accepted {
		action = ActionAccept
	}
	t.add(states, 0, remaining, action)
	return t
}

// Final Returns the last step of the trace.
func (t *Trace) Final() Step {
	return t.Steps[len(t.Steps)-1]
}

// Deterministic walk. A missing transition rejects immediately.
func (g *dfaGraph) simulate(kind Kind, input string) *Trace {
	runes := []rune(input)
	trace := &Trace{Kind: kind, Input: input}
	if g.NumStates() == 0 {
		trace.add(nil, 0, runes, ActionStart)
		return trace.finish(nil, runes, false)
	}

	state := g.start
	trace.add([]int{state}, 0, runes, ActionStart)
	for i, r := range runes {
		next := g.Step(state, r)
		if next == -1 {
			trace.add(nil, r, runes[i+1:], ActionStuck)
			return trace.finish(nil, runes[i+1:], false)
		}
		state = next
		trace.add([]int{state}, r, runes[i+1:], ActionConsume)
	}
	return trace.finish([]int{state}, nil, g.IsAccept(state))
}

func (g *dfaGraph) accepts(input string) bool {
	if g.NumStates() == 0 {
		return false
	}
	state := g.start
	for _, r := range input {
		state = g.Step(state, r)
		if state == -1 {
			return false
		}
	}
	return g.IsAccept(state)
}

// Simulate Runs input through the DFA and returns the full trace.
func (d *DFA) Simulate(input string) *Trace {
	return d.simulate(KindDFA, input)
}

// Accepts Returns true if the DFA accepts input.
func (d *DFA) Accepts(input string) bool {
	return d.accepts(input)
}

// Simulate Runs input through the minimal DFA and returns the full trace.
func (m *MinDFA) Simulate(input string) *Trace {
	return m.simulate(KindMinDFA, input)
}

// Accepts Returns true if the minimal DFA accepts input.
func (m *MinDFA) Accepts(input string) bool {
	return m.accepts(input)
}

// Simulate Runs input through the NFA by tracking the epsilon-closed frontier of all states it can be
// in. An empty frontier rejects immediately.
func (n *NFA) Simulate(input string) *Trace {
	runes := []rune(input)
	trace := &Trace{Kind: KindNFA, Input: input}
	if n.NumStates() == 0 {
		trace.add(nil, 0, runes, ActionStart)
		return trace.finish(nil, runes, false)
	}

	frontier := n.EpsilonClosure([]int{n.start})
	trace.add(frontier, 0, runes, ActionStart)
	for i, r := range runes {
		moved := n.move(frontier, r)
		if len(moved) == 0 {
			trace.add(nil, r, runes[i+1:], ActionStuck)
			return trace.finish(nil, runes[i+1:], false)
		}
		frontier = n.EpsilonClosure(moved)
		trace.add(frontier, r, runes[i+1:], ActionConsume)
	}
	return trace.finish(frontier, nil, n.anyAccept(frontier))
}

// Accepts Returns true if the NFA accepts input.
func (n *NFA) Accepts(input string) bool {
	return n.Simulate(input).Accepted
}

// Simulate Runs input through any automaton. Implementations other than NFA, DFA and MinDFA are
// rebuilt from their export record first; if that fails the returned trace carries the error in Err.
func Simulate(a Automaton, input string) *Trace {
	switch t := a.(type) {
	case *NFA:
		return t.Simulate(input)
	case *DFA:
		return t.Simulate(input)
	case *MinDFA:
		return t.Simulate(input)
	}

	rebuilt, err := FromRecord(Export(a))
	if err != nil {
		runes := []rune(input)
		trace := &Trace{Kind: a.Kind(), Input: input, Err: fmt.Errorf("simulate: %w", err)}
		trace.add(nil, 0, runes, ActionStart)
		return trace.finish(nil, runes, false)
	}
	return Simulate(rebuilt, input)
}

// Run Returns true if the automaton accepts s.
func Run(a Automaton, s string) bool {
	switch t := a.(type) {
	case *DFA:
		return t.Accepts(s)
	case *MinDFA:
		return t.Accepts(s)
	}
	return Simulate(a, s).Accepted
}
