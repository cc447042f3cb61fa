/*
Package ports defines the driven ports (interfaces) for the voxdoc engine.

These interfaces decouple the core pipeline from external implementations:
the graph syntax, the image rendering tool, and the localization of the
produced documentation.

# Key Interfaces

  - AutomatonLoader: parses automaton source files into the domain model.
  - ImageRenderer: renders a graph description to an image (external tool).
  - Localizer: supplies the fixed per-locale strings used by the assembler.
*/
package ports
