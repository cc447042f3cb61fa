// Package assemble builds the Markdown documentation for commands and
// modules. It contains string assembly only; every decision about which
// sections exist has been made upstream by the pipeline.
package assemble

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/voxkit/voxdoc/pkg/ports"
)

// excerptLimit is the length of the implementation excerpt shown in a
// command's documentation.
const excerptLimit = 600

// LanguageSection is the per-locale input for one command section.
type LanguageSection struct {
	Lang      string
	LangName  string // falls back to Lang when empty
	ImagePath string // relative to the README location
	Phrases   []string
}

// CommandDoc is everything needed to document one command. All fields are
// computed by the pipeline; the assembler only formats them.
type CommandDoc struct {
	Name     string
	Title    string // English title
	Desc     string // English description
	Source   string // raw implementation source, excerpted here; "" for none
	Sections []LanguageSection
}

// ModuleDoc is everything needed to document one module.
type ModuleDoc struct {
	Name      string
	Title     string
	Desc      string
	ImagePath string   // dispatch automaton image, relative to the README
	Commands  []string // rendered command Markdown, in command list order
}

// Command renders the Markdown documentation for one command: an English
// heading, a section per supported language with image reference and
// numbered phrase list, and the implementation excerpt.
func Command(doc CommandDoc, loc ports.Localizer) string {
	var sb strings.Builder

	title := doc.Title
	if title == "" {
		title = doc.Name
	}
	fmt.Fprintf(&sb, "# %s\n", title)
	if doc.Desc != "" {
		fmt.Fprintf(&sb, "\n%s\n", doc.Desc)
	}

	for _, sec := range doc.Sections {
		name := sec.LangName
		if name == "" {
			name = sec.Lang
		}
		fmt.Fprintf(&sb, "\n## %s\n", name)
		if sec.ImagePath != "" {
			fmt.Fprintf(&sb, "\n![%s (%s)](%s)\n", title, sec.Lang, sec.ImagePath)
		}
		if len(sec.Phrases) > 0 {
			fmt.Fprintf(&sb, "\n%s\n\n", loc.Strings(sec.Lang).SayOneOf)
			for i, phrase := range sec.Phrases {
				fmt.Fprintf(&sb, "%d. %s\n", i+1, phrase)
			}
		}
	}

	if doc.Source != "" {
		fmt.Fprintf(&sb, "\n## %s\n\n```\n%s\n```\n",
			loc.Strings("en").Implementation, Excerpt(doc.Source))
	}

	return sb.String()
}

// Module renders the Markdown for a module: title, description, dispatch
// graph image, and the already-rendered command documents concatenated in
// list order with separators.
func Module(doc ModuleDoc, loc ports.Localizer) string {
	var sb strings.Builder

	title := doc.Title
	if title == "" {
		title = doc.Name
	}
	fmt.Fprintf(&sb, "# %s\n", title)
	if doc.Desc != "" {
		fmt.Fprintf(&sb, "\n%s\n", doc.Desc)
	}
	if doc.ImagePath != "" {
		fmt.Fprintf(&sb, "\n![%s](%s)\n", title, doc.ImagePath)
	}

	if len(doc.Commands) > 0 {
		fmt.Fprintf(&sb, "\n## %s\n", loc.Strings("en").Commands)
		for _, cmd := range doc.Commands {
			sb.WriteString("\n---\n\n")
			sb.WriteString(strings.TrimRight(cmd, "\n"))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Excerpt returns the fixed-length documentation prefix of an
// implementation source, truncated with an ellipsis marker.
func Excerpt(src string) string {
	src = strings.TrimRight(src, "\n")
	if len(src) <= excerptLimit {
		return src
	}
	// Back off to a rune boundary so the cut never splits a multi-byte
	// character.
	cut := excerptLimit
	for cut > 0 && !utf8.RuneStart(src[cut]) {
		cut--
	}
	return strings.TrimRight(src[:cut], "\n") + "\n…"
}
