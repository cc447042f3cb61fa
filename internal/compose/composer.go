// Package compose rewrites the generated region of a module's dispatch
// automaton so it contains exactly one transition per command.
package compose

import (
	"fmt"
	"os"
	"strings"

	"github.com/voxkit/voxdoc/pkg/domain"
)

// Marker lines delimiting the generated region of a dispatch automaton.
const (
	MarkerBegin = "// START GENERATED"
	MarkerEnd   = "// END GENERATED"
)

// Compose replaces everything strictly between the marker lines with one
// transition per command, in list order, wired from state 0 to a unique
// 1-based index and labeled with the command's name. The full region is
// rewritten every time, so composing prior output with the same command
// list is byte-identical (idempotent).
//
// When either marker is missing, or they appear out of order, Compose
// returns src unchanged together with domain.ErrMarkersNotFound; callers
// treat this as a warning, not a failure.
func Compose(src []byte, commands []string) ([]byte, error) {
	lines := strings.Split(string(src), "\n")

	begin, end := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case MarkerBegin:
			if begin == -1 {
				begin = i
			}
		case MarkerEnd:
			if end == -1 {
				end = i
			}
		}
	}
	if begin == -1 || end == -1 || end < begin {
		return src, domain.ErrMarkersNotFound
	}

	// Generated lines inherit the begin marker's indentation.
	indent := lines[begin][:len(lines[begin])-len(strings.TrimLeft(lines[begin], " \t"))]
	generated := make([]string, 0, len(commands))
	for i, name := range commands {
		generated = append(generated, fmt.Sprintf("%s0 -> %d [label=\"(%s)\"]", indent, i+1, name))
	}

	out := make([]string, 0, begin+1+len(generated)+len(lines)-end)
	out = append(out, lines[:begin+1]...)
	out = append(out, generated...)
	out = append(out, lines[end:]...)
	return []byte(strings.Join(out, "\n")), nil
}

// ComposeFile rewrites the automaton file at path in place. The file is
// left untouched when the markers are not found.
func ComposeFile(path string, commands []string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read module automaton %s: %w", path, err)
	}
	out, err := Compose(src, commands)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write module automaton %s: %w", path, err)
	}
	return nil
}
