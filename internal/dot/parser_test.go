package dot_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/voxkit/voxdoc/internal/dot"
	"github.com/voxkit/voxdoc/pkg/domain"
)

const sampleGraph = `digraph create {
    lang="en";
    title="Create file";
    desc="Creates a new file.";
    langName="English";
    0 [shape=circle];
    1 [shape=doublecircle];
    2 [shape=doublecircle];
    0 -> 1 [label="create {file_type}"];
    1 -> 2 [label="now"];
    // a comment the parser must skip
}
`

func TestParse(t *testing.T) {
	a, err := dot.Parse("create.gv", []byte(sampleGraph))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if a.Lang != "en" || a.Title != "Create file" || a.LangName != "English" {
		t.Errorf("attrs = %q/%q/%q, want en/Create file/English", a.Lang, a.Title, a.LangName)
	}
	if len(a.Edges) != 2 {
		t.Fatalf("len(Edges) = %d, want 2", len(a.Edges))
	}
	if got := a.Edges[0].Label; got != "create {file_type}" {
		t.Errorf("first edge label = %q", got)
	}
	if !a.IsAccepting(1) || !a.IsAccepting(2) || a.IsAccepting(0) {
		t.Errorf("accepting states wrong: 0=%v 1=%v 2=%v", a.IsAccepting(0), a.IsAccepting(1), a.IsAccepting(2))
	}
	if out := a.Outgoing(domain.StartState); len(out) != 1 || out[0].To != 1 {
		t.Errorf("Outgoing(0) = %+v", out)
	}
}

func TestParseEscapedLabel(t *testing.T) {
	src := `digraph q {
    1 [shape=doublecircle];
    0 -> 1 [label="say \"hello\""];
}`
	a, err := dot.Parse("q.gv", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := a.Edges[0].Label; got != `say "hello"` {
		t.Errorf("label = %q, want %q", got, `say "hello"`)
	}
}

func TestParseEdgeExtraAttributes(t *testing.T) {
	src := `digraph q {
    1 [shape=doublecircle];
    0 -> 1 [label="open {file_type}" color=red];
    1 -> 1 [color=blue, label="again"];
    1 -> 1 [style=dashed];
}`
	a, err := dot.Parse("q.gv", []byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(a.Edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3", len(a.Edges))
	}
	if got := a.Edges[0].Label; got != "open {file_type}" {
		t.Errorf("first edge label = %q, want %q", got, "open {file_type}")
	}
	if got := a.Edges[1].Label; got != "again" {
		t.Errorf("second edge label = %q, want %q", got, "again")
	}
	if got := a.Edges[2].Label; got != "" {
		t.Errorf("attribute-only edge label = %q, want empty", got)
	}
}

func TestParseStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "no start state",
			src:  "digraph g {\n1 [shape=doublecircle];\n1 -> 2 [label=\"x\"];\n}",
		},
		{
			name: "no accepting state",
			src:  "digraph g {\n0 [shape=circle];\n0 -> 1 [label=\"x\"];\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dot.Parse("bad.gv", []byte(tt.src))
			var gle *domain.GraphLoadError
			if !errors.As(err, &gle) {
				t.Fatalf("Parse() error = %v, want *GraphLoadError", err)
			}
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := dot.ParseFile(filepath.Join(t.TempDir(), "nope.gv"))
	var gle *domain.GraphLoadError
	if !errors.As(err, &gle) {
		t.Fatalf("ParseFile() error = %v, want *GraphLoadError", err)
	}
}

func TestLoaderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "create.gv")
	if err := os.WriteFile(path, []byte(sampleGraph), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := dot.NewLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if a.Path != path {
		t.Errorf("Path = %q, want %q", a.Path, path)
	}
}
