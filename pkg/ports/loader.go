package ports

import "github.com/voxkit/voxdoc/pkg/domain"

// AutomatonLoader parses an automaton source file into the domain model.
// This decouples the pipeline from the concrete graph syntax; the default
// implementation reads the DOT subset under internal/dot.
type AutomatonLoader interface {
	// Load parses the file at path. Structural problems (no start state,
	// no accepting state) and I/O problems are reported as
	// *domain.GraphLoadError.
	Load(path string) (*domain.Automaton, error)
}
