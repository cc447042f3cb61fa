package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMarkersNotFound is returned by the composer when a dispatch automaton
// has no (or misordered) generated-region markers. It is a skip condition,
// not a build failure: documentation proceeds with the automaton unchanged.
var ErrMarkersNotFound = errors.New("generated-region markers not found")

// GraphLoadError reports an automaton file that could not be loaded:
// unreadable, or structurally invalid (no start state, no accepting state).
// It is fatal for the owning command or module; sibling units continue.
type GraphLoadError struct {
	Path   string
	Reason string
	Err    error // underlying I/O error, if any
}

func (e *GraphLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load automaton %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("load automaton %s: %s", e.Path, e.Reason)
}

func (e *GraphLoadError) Unwrap() error { return e.Err }

// UnresolvedPlaceholderError reports an edge label referencing a placeholder
// that is absent from the template dictionary. Automaton and Label are filled
// in by the enumerator so the error is actionable without re-deriving state.
type UnresolvedPlaceholderError struct {
	Placeholder string
	Automaton   string // source path of the automaton whose edge referenced it
	Label       string // the raw edge label
}

func (e *UnresolvedPlaceholderError) Error() string {
	msg := fmt.Sprintf("unresolved placeholder %q", e.Placeholder)
	if e.Automaton != "" {
		msg += fmt.Sprintf(" in %s", e.Automaton)
	}
	if e.Label != "" {
		msg += fmt.Sprintf(" (label %q)", e.Label)
	}
	return msg
}

// TemplateCycleError reports a reference cycle in the template dictionary,
// e.g. A -> B -> A. Chain lists the placeholders in the order they were
// entered, ending with the one that closed the cycle.
type TemplateCycleError struct {
	Chain []string
}

func (e *TemplateCycleError) Error() string {
	return fmt.Sprintf("template reference cycle: %s", strings.Join(e.Chain, " -> "))
}

// RenderErrorKind classifies renderer failures so callers can tell a missing
// tool apart from malformed input or a timeout.
type RenderErrorKind int

const (
	// RenderToolMissing means the external renderer binary was not found.
	RenderToolMissing RenderErrorKind = iota
	// RenderBadInput means the renderer rejected the graph description.
	RenderBadInput
	// RenderTimeout means the renderer exceeded the caller-supplied deadline.
	RenderTimeout
)

func (k RenderErrorKind) String() string {
	switch k {
	case RenderToolMissing:
		return "tool missing"
	case RenderBadInput:
		return "bad input"
	case RenderTimeout:
		return "timeout"
	}
	return "unknown"
}

// RenderError reports a failed image rendering. It is fatal for that
// automaton's image only; Markdown generation proceeds with a best-effort
// image reference.
type RenderError struct {
	Kind   RenderErrorKind
	Graph  string // input graph path
	Stderr string // renderer diagnostics, if any
	Err    error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("render %s: %s", e.Graph, e.Kind)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf(" (stderr: %s)", e.Stderr)
	}
	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }
