/*
Package voxdoc generates end-user documentation for voice-command
recognizers by statically analyzing, per command and per supported
language, the finite-state automaton that recognizes the spoken phrases.

For every automaton it synthesizes a bounded set of example phrases,
renders the graph to an image via Graphviz, and assembles per-command and
per-module Markdown. Module dispatch automata carry a marked generated
region that is rewritten on every build to reference exactly the commands
currently on disk.

# Concept

A repository is a directory of modules; a module is a directory of
commands; a command carries one automaton per supported locale, named
phrase_<lang>.gv. Phrase enumeration walks an automaton from its start
state to an accepting state, expanding {placeholder} references against a
shared YAML template dictionary. All traversal is deterministic, so two
builds over the same inputs produce identical documentation.

# Usage

	eng, err := voxdoc.New("./commands",
		voxdoc.WithLogger(logger),
		voxdoc.WithTemplates("./commands/templates.yaml"),
	)
	if err != nil {
		log.Fatal(err)
	}

	report, err := eng.Build(ctx)
	if err != nil {
		log.Fatal(err)
	}
	for _, f := range report.Failures {
		log.Printf("%s/%s [%s]: %v", f.Module, f.Command, f.Lang, f.Err)
	}

Failures scoped to one automaton, command, or module never abort the rest
of the batch; partial completion is an expected outcome and is reported,
not raised.
*/
package voxdoc
