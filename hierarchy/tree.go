// File: tree.go
// Role: tree construction and queries.
//
// Determinism:
//   - Children are kept in insertion order; Walk, Nodes and Pprint follow it.
//   - Labels() is sorted lexicographically.
package hierarchy

import (
	"fmt"
	"sort"
	"strings"
)

// NewTree creates a tree holding a single root node.
func NewTree(rootLabel string) (*Tree, error) {
	if rootLabel == "" {
		return nil, ErrEmptyLabel
	}
	root := &Node{Label: rootLabel, index: 0, parent: -1}

	return &Tree{
		nodes: []*Node{root},
		index: map[string]int{rootLabel: 0},
	}, nil
}

// Append creates childLabel as the last child of parentLabel.
//
// Errors:
//   - ErrEmptyLabel if childLabel is empty.
//   - ErrFrozen once the relation pass has run.
//   - ErrNotFound if parentLabel is not in the tree.
//   - ErrDuplicateLabel if childLabel already exists anywhere in the tree.
//
// Complexity: O(1) amortized.
func (t *Tree) Append(parentLabel, childLabel string) (*Node, error) {
	if childLabel == "" {
		return nil, ErrEmptyLabel
	}
	if t.relationsDone {
		return nil, ErrFrozen
	}
	pi, ok := t.index[parentLabel]
	if !ok {
		return nil, fmt.Errorf("append %q under %q: %w", childLabel, parentLabel, ErrNotFound)
	}
	if _, exists := t.index[childLabel]; exists {
		return nil, fmt.Errorf("append %q under %q: %w", childLabel, parentLabel, ErrDuplicateLabel)
	}

	child := &Node{Label: childLabel, index: len(t.nodes), parent: pi}
	t.nodes = append(t.nodes, child)
	t.index[childLabel] = child.index
	parent := t.nodes[pi]
	parent.children = append(parent.children, child.index)
	t.countDone = false // node count is stale until SetNodeCount runs again

	return child, nil
}

// Find returns the node carrying label.
// Complexity: O(1) through the label index.
func (t *Tree) Find(label string) (*Node, error) {
	i, ok := t.index[label]
	if !ok {
		return nil, fmt.Errorf("find %q: %w", label, ErrNotFound)
	}

	return t.nodes[i], nil
}

// FindFrom searches the subtree rooted at startLabel for label.
// A node checks itself, then compares each child before descending into that
// child's own subtree, so shallow matches are found first.
func (t *Tree) FindFrom(startLabel, label string) (*Node, error) {
	start, err := t.Find(startLabel)
	if err != nil {
		return nil, err
	}
	if n := t.search(start, label); n != nil {
		return n, nil
	}

	return nil, fmt.Errorf("find %q under %q: %w", label, startLabel, ErrNotFound)
}

// search is the recursive body of FindFrom; nil means no match.
func (t *Tree) search(n *Node, label string) *Node {
	if n.Label == label {
		return n
	}
	var c *Node
	for _, ci := range n.children {
		c = t.nodes[ci]
		if c.Label == label {
			return c
		}
		if found := t.search(c, label); found != nil {
			return found
		}
	}

	return nil
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.nodes[0] }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Parent returns the parent of n, or nil for the root.
func (t *Tree) Parent(n *Node) *Node {
	if n.parent < 0 {
		return nil
	}

	return t.nodes[n.parent]
}

// Children returns the children of n in insertion order.
// The returned slice is a fresh copy.
func (t *Tree) Children(n *Node) []*Node {
	out := make([]*Node, len(n.children))
	for i, ci := range n.children {
		out[i] = t.nodes[ci]
	}

	return out
}

// Depth returns the number of edges between n and the root.
func (t *Tree) Depth(n *Node) int {
	d := 0
	for p := n.parent; p >= 0; p = t.nodes[p].parent {
		d++
	}

	return d
}

// Nodes returns every node in pre-order.
func (t *Tree) Nodes() []*Node {
	out := make([]*Node, 0, len(t.nodes))
	t.preorder(0, func(n *Node) { out = append(out, n) })

	return out
}

// Labels returns every label sorted ascending.
func (t *Tree) Labels() []string {
	out := make([]string, 0, len(t.nodes))
	for _, n := range t.nodes {
		out = append(out, n.Label)
	}
	sort.Strings(out)

	return out
}

// SetRelation overwrites the relation record of label. It is meant for
// loaders that restore previously computed counts; call Seal afterwards.
func (t *Tree) SetRelation(label string, r Relation) error {
	if t.relationsDone {
		return ErrFrozen
	}
	n, err := t.Find(label)
	if err != nil {
		return err
	}
	n.Relation = r

	return nil
}

// Pprint renders one line per node in pre-order: the node label, its
// children labels, then its parent label (absent for the root).
//
//	1 2
//	2 3 4 1
//	3 2
func (t *Tree) Pprint() string {
	var sb strings.Builder
	t.preorder(0, func(n *Node) {
		sb.WriteString(n.Label)
		for _, ci := range n.children {
			sb.WriteByte(' ')
			sb.WriteString(t.nodes[ci].Label)
		}
		if n.parent >= 0 {
			sb.WriteByte(' ')
			sb.WriteString(t.nodes[n.parent].Label)
		}
		sb.WriteByte('\n')
	})

	return sb.String()
}
