package domain

// LangFile pairs one automaton source file with its locale and the image the
// renderer is expected to produce next to it.
type LangFile struct {
	Lang      string
	Path      string
	ImagePath string
}

// Command is a single recognizable action discovered on disk: one automaton
// per supported locale plus an optional implementation source file whose
// prefix is excerpted into the documentation.
//
// Commands are build-time value objects. They hold only paths; all file
// content is read by the pipeline when the command is processed.
type Command struct {
	Name       string
	Dir        string
	Automata   []LangFile // sorted by locale
	SourcePath string     // "" when the command has no source file
	ReadmePath string
}

// Module groups related commands under a top-level dispatch automaton
// (one per locale, carrying the composition marker region).
type Module struct {
	Name       string
	Dir        string
	Automata   []LangFile // dispatch automata, sorted by locale
	Commands   []Command  // directory order
	ReadmePath string
}

// CommandNames returns the command names in list order, which is the order
// the composer wires them into the dispatch automaton.
func (m *Module) CommandNames() []string {
	names := make([]string, len(m.Commands))
	for i, c := range m.Commands {
		names[i] = c.Name
	}
	return names
}
