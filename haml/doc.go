// Package haml parses indentation-sensitive Haml-dialect template source
// into a tree of typed nodes. Nesting is inferred purely from leading
// whitespace: the tab unit is learned from the first indentation change and
// frozen for the rest of the document. The resulting tree is consumed by the
// per-engine emitters in engines/, which turn it into the source text of a
// callable rendering function.
//
// Parsing is strict about structure and forgiving about content: inconsistent
// indentation and nesting jumps abort with a line-numbered ParseError, while
// unrecognized line markers degrade to plain text nodes.
package haml
