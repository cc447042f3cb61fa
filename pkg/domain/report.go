package domain

// Failure records one unit of work that did not complete. The batch is a
// collection of independent units, so partial completion is an expected
// outcome and failures are collected rather than propagated.
type Failure struct {
	Module  string
	Command string // "" for module-level failures
	Lang    string // "" when the failure is not language-scoped
	Err     error
}

// Report summarizes one documentation build.
type Report struct {
	Modules  int // modules fully documented
	Commands int // commands fully documented
	Phrases  int // total phrases generated across all automata
	Failures []Failure
}

// OK reports whether the build completed without any recorded failure.
func (r *Report) OK() bool { return len(r.Failures) == 0 }
