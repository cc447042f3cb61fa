package compose_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voxkit/voxdoc/internal/compose"
	"github.com/voxkit/voxdoc/pkg/domain"
)

const moduleGraph = `digraph files {
    lang="en";
    title="File commands";
    0 [shape=circle];
    // START GENERATED
    0 -> 9 [label="(stale)"]
    // END GENERATED
}
`

func TestCompose(t *testing.T) {
	out, err := compose.Compose([]byte(moduleGraph), []string{"create", "delete"})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	got := string(out)
	wantLines := []string{
		`    0 -> 1 [label="(create)"]`,
		`    0 -> 2 [label="(delete)"]`,
	}
	for _, want := range wantLines {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "stale") {
		t.Errorf("stale region content survived:\n%s", got)
	}
	// Order: create before delete.
	if strings.Index(got, "(create)") > strings.Index(got, "(delete)") {
		t.Errorf("commands out of order:\n%s", got)
	}
}

func TestComposeIdempotent(t *testing.T) {
	commands := []string{"create", "delete"}
	once, err := compose.Compose([]byte(moduleGraph), commands)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := compose.Compose(once, commands)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(once, twice) {
		t.Errorf("second pass differs:\n%s\n---\n%s", once, twice)
	}
}

func TestComposeMarkersMissing(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"no markers", "digraph g {\n0 [shape=circle];\n}\n"},
		{"begin only", "// START GENERATED\n0 [shape=circle];\n"},
		{"misordered", "// END GENERATED\n// START GENERATED\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := compose.Compose([]byte(tt.src), []string{"x"})
			if !errors.Is(err, domain.ErrMarkersNotFound) {
				t.Fatalf("error = %v, want ErrMarkersNotFound", err)
			}
			if string(out) != tt.src {
				t.Errorf("source modified despite missing markers")
			}
		})
	}
}

func TestComposeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "module.gv")
	if err := os.WriteFile(path, []byte(moduleGraph), 0644); err != nil {
		t.Fatal(err)
	}

	if err := compose.ComposeFile(path, []string{"create"}); err != nil {
		t.Fatalf("ComposeFile() error = %v", err)
	}
	first, _ := os.ReadFile(path)

	if err := compose.ComposeFile(path, []string{"create"}); err != nil {
		t.Fatal(err)
	}
	second, _ := os.ReadFile(path)

	if !bytes.Equal(first, second) {
		t.Errorf("ComposeFile not idempotent")
	}
	if !strings.Contains(string(first), `0 -> 1 [label="(create)"]`) {
		t.Errorf("generated transition missing:\n%s", first)
	}
}
