/*
Package domain contains the core value types for the voxdoc documentation
engine: automata, commands, modules, and the error taxonomy of a build.

The package is kept pure and free of I/O. Automata are immutable once
constructed, which is what allows the pipeline to enumerate phrases for the
same template dictionary from many goroutines without synchronization.

# Key Entities

  - Automaton: a directed graph with a start state (0) and accepting states,
    describing recognizable phrases via labeled paths.
  - Command / Module: build-time value objects mapping the on-disk layout.
  - GraphLoadError, UnresolvedPlaceholderError, TemplateCycleError,
    RenderError: the failure modes of a build, each scoped to a single unit
    of work.
*/
package domain
