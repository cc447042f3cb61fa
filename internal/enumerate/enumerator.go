// Package enumerate walks a phrase automaton and produces the bounded set
// of example phrases its documentation shows.
package enumerate

import (
	"errors"
	"strings"

	"github.com/voxkit/voxdoc/internal/template"
	"github.com/voxkit/voxdoc/pkg/domain"
)

const (
	// DefaultMaxPhrases is the documentation sample size per automaton.
	DefaultMaxPhrases = 16

	// maxPathEdges bounds the length of a single path so that cyclic
	// automata terminate. Any accepting path found within the bound is
	// valid regardless of cycles elsewhere in the graph.
	maxPathEdges = 24

	// maxSteps bounds the total number of edge expansions per automaton,
	// guarding against graphs that fan out faster than they accept.
	maxSteps = 4096
)

// Enumerator produces example phrases for automata against one shared
// template dictionary. It is stateless between calls and safe for
// concurrent use.
type Enumerator struct {
	resolver   *template.Resolver
	maxPhrases int
}

// New returns an enumerator over the given dictionary. maxPhrases <= 0
// selects DefaultMaxPhrases.
func New(resolver *template.Resolver, maxPhrases int) *Enumerator {
	if maxPhrases <= 0 {
		maxPhrases = DefaultMaxPhrases
	}
	return &Enumerator{resolver: resolver, maxPhrases: maxPhrases}
}

// Enumerate walks a from its start state and returns up to maxPhrases
// distinct phrases in discovery order. The walk is a depth-first traversal
// taking edges in source order and placeholder candidates first-candidate
// first, so the output is deterministic for a fixed automaton and
// dictionary.
//
// An automaton with no edges or no reachable accepting state yields an
// empty slice and no error. A label referencing an unknown or cyclic
// placeholder aborts enumeration for this automaton only.
func (e *Enumerator) Enumerate(a *domain.Automaton) ([]string, error) {
	w := &walker{
		enum: e,
		a:    a,
		seen: make(map[string]struct{}),
	}
	if err := w.walk(domain.StartState, "", 0); err != nil {
		return nil, err
	}
	return w.phrases, nil
}

type walker struct {
	enum    *Enumerator
	a       *domain.Automaton
	phrases []string
	seen    map[string]struct{}
	steps   int
}

func (w *walker) done() bool {
	return len(w.phrases) >= w.enum.maxPhrases || w.steps >= maxSteps
}

func (w *walker) walk(state domain.StateID, text string, depth int) error {
	if w.a.IsAccepting(state) {
		w.add(text)
	}
	if w.done() || depth >= maxPathEdges {
		return nil
	}

	for _, edge := range w.a.Outgoing(state) {
		if w.done() {
			return nil
		}
		w.steps++

		variants, err := w.enum.resolver.Expand(edge.Label)
		if err != nil {
			annotate(err, w.a, edge)
			return err
		}
		for _, v := range variants {
			if w.done() {
				return nil
			}
			if err := w.walk(edge.To, join(text, v), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *walker) add(phrase string) {
	phrase = strings.TrimSpace(phrase)
	if phrase == "" {
		return
	}
	if _, dup := w.seen[phrase]; dup {
		return
	}
	if len(w.phrases) >= w.enum.maxPhrases {
		return
	}
	w.seen[phrase] = struct{}{}
	w.phrases = append(w.phrases, phrase)
}

// annotate fills automaton/edge context into placeholder errors so they are
// actionable without re-deriving state.
func annotate(err error, a *domain.Automaton, edge domain.Edge) {
	var upe *domain.UnresolvedPlaceholderError
	if errors.As(err, &upe) {
		upe.Automaton = a.Path
		upe.Label = edge.Label
	}
}

func join(text, segment string) string {
	segment = strings.TrimSpace(segment)
	switch {
	case segment == "":
		return text
	case text == "":
		return segment
	default:
		return text + " " + segment
	}
}
