package haml

import (
	"regexp"
	"strings"
)

// The classification patterns, evaluated in fixed priority order. Order is
// significant because the categories overlap syntactically: '-#' would match
// the silent-code marker, and '#id' would match nothing else if text came
// first.
var (
	filterRe  = regexp.MustCompile(`^:(plain|escaped|preserve|cdata|css|javascript|code)(\s|$)`)
	commentRe = regexp.MustCompile(`^(-#|/\[|/)(.*)$`)
	codeRe    = regexp.MustCompile(`^(!=|&=|=|~|-)\s?(.*)$`)
	markupRe  = regexp.MustCompile(`^(%[a-zA-Z][\w:-]*|#[\w-]+|\.[\w-]+|!)`)
)

// CodeContent strips the embedded-code marker from an expression, returning
// the opaque code to splice into the generated function.
func CodeContent(expression string) string {
	if m := codeRe.FindStringSubmatch(expression); m != nil {
		return m[2]
	}
	return expression
}

// classify decides the node kind for an expression and appends the new node
// to the tree. The decision is a pure function of the expression text plus
// the immediate structural context (previous node, parent node); first match
// wins:
//
//  1. an empty expression whose previous node is a filter continues the
//     nearest enclosing top-level filter, preserving blank lines inside raw
//     blocks without closing them;
//  2. a line under a filter parent, or a line opening a named filter block,
//     is a filter node;
//  3. comment markers;
//  4. embedded-code markers;
//  5. markup shorthand markers;
//  6. anything else is literal text.
func classify(tree *Tree, expression string, previous, parent NodeID, blockLevel, codeBlockLevel int, opts Options) NodeID {
	n := Node{
		Parent:         parent,
		Expression:     expression,
		BlockLevel:     blockLevel,
		CodeBlockLevel: codeBlockLevel,
		FilterTop:      InvalidID,
	}

	switch {
	case expression == "" && previous != InvalidID && tree.Node(previous).Kind == KindFilter:
		// A blank line inside a filter block re-parents to the topmost
		// filter ancestor, so interior blank lines never end the block.
		top := tree.TopFilter(previous)
		n.Kind = KindFilter
		n.FilterTop = top
		n.Parent = top

	case tree.Node(parent).Kind == KindFilter:
		n.Kind = KindFilter
		n.FilterTop = tree.TopFilter(parent)

	case filterRe.MatchString(expression):
		n.Kind = KindFilter
		n.FilterName = filterRe.FindStringSubmatch(expression)[1]

	case commentRe.MatchString(expression):
		n.Kind = KindComment
		n.Silent = strings.HasPrefix(expression, "-#")

	case codeRe.MatchString(expression):
		m := codeRe.FindStringSubmatch(expression)
		n.Kind = KindCode
		switch m[1] {
		case "-":
			n.Silent = true
		case "=":
			n.Escape = opts.EscapeHTML
		case "!=":
			n.Escape = false
		case "&=":
			n.Escape = true
		case "~":
			n.Escape = opts.EscapeHTML
			n.Preserve = true
		}

	case markupRe.MatchString(expression):
		n.Kind = KindMarkup

	default:
		n.Kind = KindText
	}

	return tree.add(n)
}
