package haml

import "fmt"

// NodeKind identifies the syntactic category of a node. The set is closed;
// emitters switch over it exhaustively.
type NodeKind int

const (
	// KindRoot is the synthetic tree root. It carries no expression and
	// exists only to hold top-level children.
	KindRoot NodeKind = iota

	// KindText is a literal content line, possibly with #{} interpolation.
	KindText

	// KindMarkup is an element line (%tag, #id, .class shorthand) or a
	// doctype marker.
	KindMarkup

	// KindCode is an embedded-code line: a silent statement or an output
	// expression spliced into the generated function.
	KindCode

	// KindComment is a rendered (/) or silent (-#) comment line.
	KindComment

	// KindFilter is a raw-content block opener (:javascript, :css, ...) or
	// one of its continuation lines.
	KindFilter
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindText:
		return "text"
	case KindMarkup:
		return "markup"
	case KindCode:
		return "code"
	case KindComment:
		return "comment"
	case KindFilter:
		return "filter"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// NodeID addresses a node within its Tree's arena.
type NodeID int

// InvalidID marks the absence of a node reference.
const InvalidID NodeID = -1

// Node is one element of the parsed template tree. Nodes are created by the
// factory during parsing and are immutable afterwards, except for Children,
// which only grows by appending.
type Node struct {
	Kind       NodeKind
	Parent     NodeID
	Children   []NodeID
	Expression string

	// BlockLevel is the markup nesting depth the node was created at;
	// CodeBlockLevel is the nesting depth in generated-code terms, which
	// advances only below embedded-code parents.
	BlockLevel     int
	CodeBlockLevel int

	// Code refinements.
	Silent   bool // '-' statement, contributes no output of its own
	Escape   bool // output is passed through the escape helper
	Preserve bool // '~' output, newlines collapsed to entities

	// Filter refinements. FilterName is set on the block opener only;
	// continuation lines carry FilterTop, the ID of their originating
	// top-level opener.
	FilterName string
	FilterTop  NodeID
}

// Tree is the arena holding all nodes of one parsed template. Index 0 is the
// synthetic root. The tree is write-once during parsing and read-only once
// emission begins.
type Tree struct {
	nodes []Node

	// TabSize is the inferred tab unit in characters, 0 when the document
	// never changed indentation.
	TabSize int
}

// NewTree returns a tree containing only the synthetic root node.
func NewTree() *Tree {
	return &Tree{
		nodes: []Node{{
			Kind:      KindRoot,
			Parent:    InvalidID,
			FilterTop: InvalidID,
		}},
	}
}

// Root returns the ID of the synthetic root node.
func (t *Tree) Root() NodeID { return 0 }

// Node returns the node addressed by id. The pointer stays valid until the
// next add call.
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Len returns the number of nodes in the arena, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// add appends n to the arena and wires it into its parent's child list.
func (t *Tree) add(n Node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if n.Parent != InvalidID {
		p := &t.nodes[n.Parent]
		p.Children = append(p.Children, id)
	}
	return id
}

// Depth returns the maximum block level of any node in the tree.
func (t *Tree) Depth() int {
	depth := 0
	for i := range t.nodes {
		if t.nodes[i].BlockLevel > depth {
			depth = t.nodes[i].BlockLevel
		}
	}
	return depth
}

// TopFilter resolves the originating block opener for a filter node. For an
// opener it returns the node itself.
func (t *Tree) TopFilter(id NodeID) NodeID {
	if top := t.nodes[id].FilterTop; top != InvalidID {
		return top
	}
	return id
}

func (t *Tree) String() string {
	return fmt.Sprintf("haml.Tree{Nodes: %d, TabSize: %d}", len(t.nodes), t.TabSize)
}
