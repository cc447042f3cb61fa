// Package discover maps the on-disk layout of a voice-command repository
// to modules and commands.
//
// The expected layout is a root directory of module directories, each
// containing command subdirectories. Automata are named phrase_<lang>.gv;
// the ones at module level are the dispatch automata. A command directory
// may additionally hold one implementation source file, which is excerpted
// into the documentation.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/voxkit/voxdoc/pkg/domain"
)

// AutomatonExt is the file extension of automaton source files.
const AutomatonExt = ".gv"

const readmeName = "README.md"

var phraseRe = regexp.MustCompile(`^phrase_([A-Za-z]{2}(?:[-_][A-Za-z]{2,3})?)\` + AutomatonExt + `$`)

// Modules scans root and returns its modules in sorted directory order.
// Command lists inside a module are sorted the same way; that order is
// what the composer wires into the dispatch automaton.
func Modules(root string) ([]domain.Module, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read module root %s: %w", root, err)
	}

	var modules []domain.Module
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		mod, err := module(filepath.Join(root, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		modules = append(modules, mod)
	}
	return modules, nil
}

func module(dir, name string) (domain.Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.Module{}, fmt.Errorf("read module %s: %w", dir, err)
	}

	mod := domain.Module{
		Name:       name,
		Dir:        dir,
		Automata:   phraseFiles(dir, entries),
		ReadmePath: filepath.Join(dir, readmeName),
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		cmd, ok, err := command(filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			return domain.Module{}, err
		}
		if ok {
			mod.Commands = append(mod.Commands, cmd)
		}
	}
	return mod, nil
}

// command builds a Command from a subdirectory. Directories without any
// phrase automaton are not commands (assets, fixtures) and are skipped.
func command(dir, name string) (domain.Command, bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return domain.Command{}, false, fmt.Errorf("read command %s: %w", dir, err)
	}

	automata := phraseFiles(dir, entries)
	if len(automata) == 0 {
		return domain.Command{}, false, nil
	}

	cmd := domain.Command{
		Name:       name,
		Dir:        dir,
		Automata:   automata,
		SourcePath: sourceFile(dir, entries),
		ReadmePath: filepath.Join(dir, readmeName),
	}
	return cmd, true, nil
}

func phraseFiles(dir string, entries []os.DirEntry) []domain.LangFile {
	var files []domain.LangFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := phraseRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		files = append(files, domain.LangFile{
			Lang:      m[1],
			Path:      path,
			ImagePath: strings.TrimSuffix(path, AutomatonExt) + ".png",
		})
	}
	return files
}

// sourceFile picks the command's implementation source: the first regular
// file, in sorted order, that is not an automaton, a produced artifact, or
// hidden. Returns "" when the command has no source file.
func sourceFile(dir string, entries []os.DirEntry) string {
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasPrefix(name, "."),
			name == readmeName,
			phraseRe.MatchString(name),
			strings.HasSuffix(name, AutomatonExt),
			strings.HasSuffix(name, ".png"):
			continue
		}
		return filepath.Join(dir, name)
	}
	return ""
}
