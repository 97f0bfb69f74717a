// Package textutil provides the small text primitives shared by the title
// parser and the CLI.
//
// The primary use cases are:
//   - Removing emoji and other pictographs without splitting grapheme clusters
//   - Collapsing whitespace and counting words/runes the way the parser measures titles
//   - Building lowercase alphanumeric comparison keys for loose name matching
//
// Everything here is a pure function over strings; no package state is
// mutated after init.
package textutil
