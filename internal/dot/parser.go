// Package dot parses the DOT subset used for phrase automata.
//
// A phrase automaton file looks like:
//
//	digraph create {
//	    lang="en";
//	    title="Create file";
//	    desc="Creates a new file in the active folder.";
//	    langName="English";
//	    0 [shape=circle];
//	    1 [shape=doublecircle];
//	    0 -> 1 [label="create {file_type}"];
//	}
//
// State 0 is the start state; states drawn with shape=doublecircle are
// accepting. Lines the parser does not recognize (the digraph header,
// braces, comments, marker lines of composed module graphs) are skipped,
// so a composed file round-trips through the parser unchanged in meaning.
package dot

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/voxkit/voxdoc/pkg/domain"
)

var (
	attrRe  = regexp.MustCompile(`^(lang|title|desc|langName)\s*=\s*"((?:[^"\\]|\\.)*)"\s*;?$`)
	nodeRe  = regexp.MustCompile(`^(\d+)\s*\[([^\]]*)\]\s*;?$`)
	edgeRe  = regexp.MustCompile(`^(\d+)\s*->\s*(\d+)\s*(?:\[((?:[^\]"]|"(?:[^"\\]|\\.)*")*)\])?\s*;?$`)
	labelRe = regexp.MustCompile(`label\s*=\s*"((?:[^"\\]|\\.)*)"`)
)

// Loader is the default ports.AutomatonLoader reading the DOT subset.
type Loader struct{}

// NewLoader returns a Loader.
func NewLoader() *Loader { return &Loader{} }

// Load reads and parses the automaton file at path.
func (l *Loader) Load(path string) (*domain.Automaton, error) {
	return ParseFile(path)
}

// ParseFile reads and parses the automaton file at path.
func ParseFile(path string) (*domain.Automaton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.GraphLoadError{Path: path, Reason: "unreadable", Err: err}
	}
	return Parse(path, data)
}

// Parse parses an automaton from src. The path is carried into the model
// and errors for context only.
func Parse(path string, src []byte) (*domain.Automaton, error) {
	var (
		edges     []domain.Edge
		accepting []domain.StateID
		states    = make(map[domain.StateID]struct{})
		attrs     = make(map[string]string)
	)

	for _, raw := range strings.Split(string(src), "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || line == "}":
			continue
		case strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "digraph") || strings.HasPrefix(line, "graph"):
			continue
		}

		if m := attrRe.FindStringSubmatch(line); m != nil {
			attrs[m[1]] = unescape(m[2])
			continue
		}
		if m := edgeRe.FindStringSubmatch(line); m != nil {
			from, _ := strconv.Atoi(m[1])
			to, _ := strconv.Atoi(m[2])
			states[domain.StateID(from)] = struct{}{}
			states[domain.StateID(to)] = struct{}{}
			edges = append(edges, domain.Edge{
				From:  domain.StateID(from),
				To:    domain.StateID(to),
				Label: edgeLabel(m[3]),
			})
			continue
		}
		if m := nodeRe.FindStringSubmatch(line); m != nil {
			id, _ := strconv.Atoi(m[1])
			states[domain.StateID(id)] = struct{}{}
			if strings.Contains(m[2], "doublecircle") {
				accepting = append(accepting, domain.StateID(id))
			}
			continue
		}
		// Unrecognized lines (styling attributes, rankdir, ...) are ignored.
	}

	if _, ok := states[domain.StartState]; !ok {
		return nil, &domain.GraphLoadError{Path: path, Reason: "no start state (state 0)"}
	}
	if len(accepting) == 0 {
		return nil, &domain.GraphLoadError{Path: path, Reason: "no accepting state"}
	}

	a := domain.NewAutomaton(path, edges, accepting)
	a.Lang = attrs["lang"]
	a.Title = attrs["title"]
	a.Desc = attrs["desc"]
	a.LangName = attrs["langName"]
	return a, nil
}

// edgeLabel extracts the label attribute from an edge's bracket body.
// Other attributes (color, style, ...) are legal Graphviz and ignored.
func edgeLabel(attrs string) string {
	m := labelRe.FindStringSubmatch(attrs)
	if m == nil {
		return ""
	}
	return unescape(m[1])
}

func unescape(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	return strings.ReplaceAll(s, `\\`, `\`)
}
