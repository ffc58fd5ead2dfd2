package hierarchy

import (
	"fmt"
	"sort"
	"strings"
)

// Edge is a single "parent,child" row.
type Edge struct {
	Parent string
	Child  string
}

// Nested is a label → children mapping. A valid Nested value for
// BuildFromNested has exactly one top-level key, the root.
type Nested map[string]Nested

// ParseEdgeList splits edge-list text into rows. Blank lines are skipped,
// fields are trimmed. A line that does not hold exactly two non-empty fields
// fails with *ParseError.
func ParseEdgeList(text string) ([]Edge, error) {
	var edges []Edge
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, &ParseError{Line: i + 1, Text: line}
		}
		parent, child := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
		if parent == "" || child == "" {
			return nil, &ParseError{Line: i + 1, Text: line}
		}
		edges = append(edges, Edge{Parent: parent, Child: child})
	}

	return edges, nil
}

// BuildFromEdges grows a tree row by row. The first row's parent becomes the
// root; every later parent must already be present when its row is applied,
// otherwise the build fails with ErrNotFound. The tree is not finalized.
func BuildFromEdges(edges []Edge) (*Tree, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	t, err := NewTree(edges[0].Parent)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if _, err = t.Append(e.Parent, e.Child); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i+1, err)
		}
	}

	return t, nil
}

// BuildTreeFromEdgeListText parses, builds and finalizes a tree from
// edge-list text. The returned tree is ready for entropy evaluation.
func BuildTreeFromEdgeListText(text string) (*Tree, error) {
	edges, err := ParseEdgeList(text)
	if err != nil {
		return nil, err
	}
	t, err := BuildFromEdges(edges)
	if err != nil {
		return nil, err
	}
	if err = t.Finalize(); err != nil {
		return nil, err
	}

	return t, nil
}

// BuildFromNested instantiates a tree that mirrors the nesting of m, label
// for label. Go maps are unordered, so siblings are appended in ascending
// label order. The tree is not finalized.
func BuildFromNested(m Nested) (*Tree, error) {
	if len(m) != 1 {
		return nil, fmt.Errorf("nested: %d top-level keys, want 1: %w", len(m), ErrParse)
	}
	var rootLabel string
	for k := range m {
		rootLabel = k
	}
	t, err := NewTree(rootLabel)
	if err != nil {
		return nil, err
	}
	if err = t.appendNested(rootLabel, m[rootLabel]); err != nil {
		return nil, err
	}

	return t, nil
}

// appendNested appends children of parent recursively.
func (t *Tree) appendNested(parent string, children Nested) error {
	keys := make([]string, 0, len(children))
	for k := range children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := t.Append(parent, k); err != nil {
			return err
		}
		if err := t.appendNested(k, children[k]); err != nil {
			return err
		}
	}

	return nil
}

// ToNested returns the label structure of the tree as a Nested mapping.
func (t *Tree) ToNested() Nested {
	return Nested{t.Root().Label: t.nestedOf(t.Root())}
}

// nestedOf returns the children mapping of n.
func (t *Tree) nestedOf(n *Node) Nested {
	out := make(Nested, len(n.children))
	for _, ci := range n.children {
		c := t.nodes[ci]
		out[c.Label] = t.nestedOf(c)
	}

	return out
}
