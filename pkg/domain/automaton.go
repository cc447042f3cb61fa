package domain

// StateID identifies a state inside one automaton. The start state of every
// automaton is state 0 by convention.
type StateID int

// StartState is the distinguished entry state of every automaton.
const StartState StateID = 0

// Edge is a single labeled transition between two states.
// The label is raw source text and may contain {placeholder} references
// that are resolved at enumeration time.
type Edge struct {
	From  StateID `json:"from" yaml:"from"`
	To    StateID `json:"to" yaml:"to"`
	Label string  `json:"label" yaml:"label"`
}

// Automaton is the parsed, immutable representation of one recognizer graph.
// Instances are produced by the loader and never mutated afterwards, so they
// are safe to share across concurrent enumerations.
type Automaton struct {
	// Path is the source file the automaton was loaded from. It is carried
	// for error context only and may be empty for in-memory automata.
	Path string

	// Graph-level attributes.
	Lang     string // locale code, e.g. "en"
	Title    string // display title
	Desc     string // one-line description
	LangName string // human-readable language name, e.g. "English"

	// Edges in source order. Source order is the traversal order, which is
	// what makes enumeration deterministic.
	Edges []Edge

	accepting map[StateID]struct{}
	outgoing  map[StateID][]Edge
}

// NewAutomaton assembles an automaton from its parts and precomputes the
// adjacency index. The edge slice is retained as-is; callers must not modify
// it afterwards.
func NewAutomaton(path string, edges []Edge, accepting []StateID) *Automaton {
	a := &Automaton{
		Path:      path,
		Edges:     edges,
		accepting: make(map[StateID]struct{}, len(accepting)),
		outgoing:  make(map[StateID][]Edge, len(edges)),
	}
	for _, s := range accepting {
		a.accepting[s] = struct{}{}
	}
	for _, e := range edges {
		a.outgoing[e.From] = append(a.outgoing[e.From], e)
	}
	return a
}

// Outgoing returns the edges leaving the given state, in source order.
func (a *Automaton) Outgoing(s StateID) []Edge {
	return a.outgoing[s]
}

// IsAccepting reports whether s is an accepting state.
func (a *Automaton) IsAccepting(s StateID) bool {
	_, ok := a.accepting[s]
	return ok
}

// AcceptingCount returns the number of accepting states.
func (a *Automaton) AcceptingCount() int {
	return len(a.accepting)
}
