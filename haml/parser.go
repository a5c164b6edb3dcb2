package haml

import (
	"regexp"
	"strings"
)

// attrPairRe recognizes a line that is a continuation of a multi-line
// attribute list: the whole line must consist of key/value pairs in either
// of the two supported syntaxes, HTML-style key='value' or Ruby-style
// :key => 'value'. Anything looser would swallow filter content such as
// "y = 2".
var attrPairRe = regexp.MustCompile(
	`^\s*((:[\w-]+\s*=>\s*('[^']*'|"[^"]*"|[^\s,]+)\s*,?\s*)+|([\w-]+=('[^']*'|"[^"]*"|[^\s=]+)\s*)+)\)?\s*}?\s*$`)

// parseState is the entire mutable state of one Parse invocation. It is
// created per call and never escapes it, so concurrent parses of independent
// templates need no coordination.
type parseState struct {
	tracker tracker

	// stack holds ancestor parents; parent is the node new children attach
	// to; node is the most recently created node.
	stack  []NodeID
	parent NodeID
	node   NodeID

	codeBlockLevel int

	// line counts processed physical lines; diagnostics cite line+1.
	line int
}

// Parse scans template source line by line, infers block nesting from
// leading whitespace and returns the finished node tree. The first offending
// line aborts the parse with a *ParseError; there is no partial-tree
// recovery.
func Parse(source string, opts Options) (*Tree, error) {
	tree := NewTree()
	st := &parseState{
		parent: tree.Root(),
		node:   InvalidID,
	}

	lines := splitLines(source)
	for i := 0; i < len(lines); i++ {
		indent, expression := splitIndent(lines[i])

		// Attribute lookahead: merge continuation lines into the current
		// expression so attribute lists can span physical lines without
		// affecting indentation bookkeeping.
		for i+1 < len(lines) && attrPairRe.MatchString(lines[i+1]) {
			i++
			expression += " " + strings.TrimSpace(lines[i])
			st.line++
		}

		// Blank lines carry no indentation. They either continue an open
		// filter block or are skipped entirely.
		if expression == "" {
			if st.node != InvalidID && tree.Node(st.node).Kind == KindFilter {
				st.node = classify(tree, "", st.node, st.parent,
					st.tracker.currentBlockLevel, st.codeBlockLevel, opts)
			}
			st.line++
			continue
		}

		if indent != st.tracker.previousIndent {
			if err := st.tracker.observe(indent, st.line+1); err != nil {
				return nil, err
			}
			switch {
			case st.tracker.pushed():
				st.pushParent()
			case st.tracker.popped() > 0:
				st.popParent(st.tracker.popped())
			}
			st.updateCodeBlockLevel(tree)
		}

		st.node = classify(tree, expression, st.node, st.parent,
			st.tracker.currentBlockLevel, st.codeBlockLevel, opts)

		st.tracker.advance()
		st.line++
	}

	tree.TabSize = st.tracker.tabSize
	return tree, nil
}

// pushParent descends one level: the current parent is remembered on the
// stack and the most recently created node becomes the new parent.
func (st *parseState) pushParent() {
	if st.node == InvalidID {
		return
	}
	st.stack = append(st.stack, st.parent)
	st.parent = st.node
}

// popParent climbs the given number of levels, restoring that many ancestors
// from the stack and discarding the intermediate parents.
func (st *parseState) popParent(levels int) {
	for i := 0; i < levels; i++ {
		if len(st.stack) == 0 {
			return
		}
		st.parent = st.stack[len(st.stack)-1]
		st.stack = st.stack[:len(st.stack)-1]
	}
}

// updateCodeBlockLevel recomputes the generated-code nesting depth from the
// current parent. Only embedded-code parents open a new generated-code
// block; every other kind passes its own level through.
func (st *parseState) updateCodeBlockLevel(tree *Tree) {
	p := tree.Node(st.parent)
	if p.Kind == KindCode {
		st.codeBlockLevel = p.CodeBlockLevel + 1
	} else {
		st.codeBlockLevel = p.CodeBlockLevel
	}
}

// splitLines normalizes line endings and splits the source into physical
// lines. A single trailing newline does not count as an extra blank line.
func splitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(source, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// splitIndent separates a physical line into its leading-whitespace width
// and the remaining expression, with trailing whitespace dropped.
func splitIndent(line string) (int, string) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i, strings.TrimRight(line[i:], " \t\r")
}
