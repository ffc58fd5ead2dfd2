package hierarchy

import (
	"errors"
	"fmt"
)

// Sentinel errors for hierarchy operations.
var (
	// ErrNilTree is returned when a nil *Tree is passed to a helper.
	ErrNilTree = errors.New("hierarchy: tree is nil")

	// ErrEmptyLabel indicates a zero-length node label.
	ErrEmptyLabel = errors.New("hierarchy: label is empty")

	// ErrNotFound indicates that no node carries the requested label.
	ErrNotFound = errors.New("hierarchy: node not found")

	// ErrDuplicateLabel indicates that the label is already used in the tree.
	ErrDuplicateLabel = errors.New("hierarchy: duplicate label")

	// ErrFrozen indicates a structural change after Finalize.
	ErrFrozen = errors.New("hierarchy: tree is finalized")

	// ErrRelationsComputed indicates a second relation pass, which would double count.
	ErrRelationsComputed = errors.New("hierarchy: relations already computed")

	// ErrNotFinalized indicates relation counts were read before they were computed.
	ErrNotFinalized = errors.New("hierarchy: relations not computed")

	// ErrNoEdges indicates an edge list without any row.
	ErrNoEdges = errors.New("hierarchy: edge list is empty")

	// ErrParse indicates a malformed edge-list line.
	ErrParse = errors.New("hierarchy: parse error")
)

// ParseError reports a malformed edge-list line (1-based).
type ParseError struct {
	Line int
	Text string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("hierarchy: line %d: %q: want \"parent,child\"", e.Line, e.Text)
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// NumRelations is the number of relation kinds tracked per node.
const NumRelations = 5

// Relation holds the five relation counts of a node.
// Column order everywhere (tables, Row) is the field order below.
type Relation struct {
	DirectManagement      int
	DirectSubordination   int
	IndirectManagement    int
	IndirectSubordination int
	Subordination         int
}

// Row returns the counts in fixed column order.
func (r Relation) Row() [NumRelations]int {
	return [NumRelations]int{
		r.DirectManagement,
		r.DirectSubordination,
		r.IndirectManagement,
		r.IndirectSubordination,
		r.Subordination,
	}
}

// RelationFromRow is the inverse of Row.
func RelationFromRow(row [NumRelations]int) Relation {
	return Relation{
		DirectManagement:      row[0],
		DirectSubordination:   row[1],
		IndirectManagement:    row[2],
		IndirectSubordination: row[3],
		Subordination:         row[4],
	}
}

// Node is a labeled tree vertex. Nodes are owned by their Tree; the parent
// and children are arena indices resolved through Tree.Parent/Tree.Children.
type Node struct {
	// Label uniquely identifies the node within its Tree.
	Label string

	// Relation is populated by the relation pass (zero before it).
	Relation Relation

	// N is the total number of nodes in the tree, set on every node by SetNodeCount.
	N int

	index    int   // position in Tree.nodes
	parent   int   // arena index of the parent, -1 for the root
	children []int // arena indices in insertion order
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent < 0 }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// NumChildren returns the number of immediate children.
func (n *Node) NumChildren() int { return len(n.children) }

// Tree is an arena-backed labeled tree.
//
// nodes[0] is the root. index maps every label to its arena position and is
// what keeps labels globally unique.
type Tree struct {
	nodes []*Node
	index map[string]int

	relationsDone bool // relation pass ran (or relations were restored)
	countDone     bool // N assigned on every node
}
