package discover_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/voxkit/voxdoc/internal/discover"
)

func write(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("digraph g {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestModules(t *testing.T) {
	root := t.TempDir()

	// files module: dispatch automata + two commands, one with a source file.
	write(t, filepath.Join(root, "files", "phrase_en.gv"))
	write(t, filepath.Join(root, "files", "phrase_de.gv"))
	write(t, filepath.Join(root, "files", "create", "phrase_en.gv"))
	write(t, filepath.Join(root, "files", "create", "create.py"))
	write(t, filepath.Join(root, "files", "create", "phrase_en.png"))
	write(t, filepath.Join(root, "files", "delete", "phrase_en.gv"))
	// assets dir has no automata: not a command.
	write(t, filepath.Join(root, "files", "assets", "icon.svg"))
	// second module, to check sorting.
	write(t, filepath.Join(root, "apps", "phrase_en.gv"))
	// hidden dirs are skipped.
	write(t, filepath.Join(root, ".git", "config"))

	mods, err := discover.Modules(root)
	if err != nil {
		t.Fatalf("Modules() error = %v", err)
	}

	if len(mods) != 2 {
		t.Fatalf("len(modules) = %d, want 2", len(mods))
	}
	if mods[0].Name != "apps" || mods[1].Name != "files" {
		t.Errorf("module order = %s, %s; want apps, files", mods[0].Name, mods[1].Name)
	}

	files := mods[1]
	if len(files.Automata) != 2 {
		t.Fatalf("files automata = %d, want 2", len(files.Automata))
	}
	if files.Automata[0].Lang != "de" || files.Automata[1].Lang != "en" {
		t.Errorf("automata langs = %s, %s", files.Automata[0].Lang, files.Automata[1].Lang)
	}
	if got := files.CommandNames(); len(got) != 2 || got[0] != "create" || got[1] != "delete" {
		t.Errorf("command names = %v", got)
	}

	create := files.Commands[0]
	if create.SourcePath != filepath.Join(root, "files", "create", "create.py") {
		t.Errorf("SourcePath = %q", create.SourcePath)
	}
	if create.Automata[0].ImagePath != filepath.Join(root, "files", "create", "phrase_en.png") {
		t.Errorf("ImagePath = %q", create.Automata[0].ImagePath)
	}

	delete := files.Commands[1]
	if delete.SourcePath != "" {
		t.Errorf("delete.SourcePath = %q, want empty", delete.SourcePath)
	}
}

func TestModulesMissingRoot(t *testing.T) {
	if _, err := discover.Modules(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("Modules() expected error for missing root")
	}
}
