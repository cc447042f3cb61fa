package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/voxkit/voxdoc/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart for a phrase automaton.
// It applies semantic styling:
// - Start state: ((Circle))
// - Accepting state: (((Double circle)))
// - Other states: [Rectangle]
// Edge labels are shown on the arrows, with quotes escaped for Mermaid.
func GenerateMermaid(a *domain.Automaton) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range statesOf(a) {
		opener, closer := "[", "]"
		switch {
		case a.IsAccepting(s):
			opener, closer = "(((", ")))"
		case s == domain.StartState:
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    s%d%s\"%d\"%s\n", s, opener, s, closer)
	}

	for _, e := range a.Edges {
		arrow := "-->"
		if e.Label != "" {
			// Escape double quotes in the label for Mermaid
			safeLabel := strings.ReplaceAll(e.Label, "\"", "'")
			arrow = fmt.Sprintf("-- \"%s\" -->", safeLabel)
		}
		fmt.Fprintf(&sb, "    s%d %s s%d\n", e.From, arrow, e.To)
	}

	return sb.String()
}

// statesOf lists every state the automaton mentions, sorted, so the
// generated diagram is stable across runs.
func statesOf(a *domain.Automaton) []domain.StateID {
	set := map[domain.StateID]struct{}{domain.StartState: {}}
	for _, e := range a.Edges {
		set[e.From] = struct{}{}
		set[e.To] = struct{}{}
	}
	states := make([]domain.StateID, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}
