// Package hierarchy models an organization as a labeled multi-way tree and
// computes, for every node, how it relates to the rest of the tree.
//
// What:
//
//   - Tree: an arena of Nodes with a global label index. Labels are unique
//     across the whole tree, children keep insertion order, and the parent
//     link is an index into the arena (no ownership cycles).
//   - Relation: five counts per node
//     DirectManagement      immediate children
//     DirectSubordination   1 when the node has a parent
//     IndirectManagement    descendants two or more levels below
//     IndirectSubordination ancestors two or more levels above
//     Subordination         siblings under the same parent
//   - Walk: pre-order traversal with an optional post-order hook, a start
//     label and a depth limit.
//
// Lifecycle:
//
//	t, _ := hierarchy.NewTree("1")
//	_, _ = t.Append("1", "2")     // build
//	_ = t.Finalize()              // relations + node count, tree is frozen
//	n, _ := t.Find("2")           // read
//
// Relation counts are zero until Finalize (or ComputeRelations) has run.
// Readers that depend on them check Ready and return ErrNotFinalized.
//
// Edge-list text:
//
//	1,2
//	2,3
//
// Each line is "parent,child"; the first parent becomes the root and every
// parent must already be in the tree when its line is applied.
//
// Errors:
//
//	ErrNotFound          - no node carries the label.
//	ErrDuplicateLabel    - label already present anywhere in the tree.
//	ErrEmptyLabel        - empty label.
//	ErrFrozen            - mutation after Finalize.
//	ErrRelationsComputed - relation pass requested twice.
//	ErrNotFinalized      - counts requested before the relation pass.
//	ErrNoEdges           - edge list without rows.
//	ErrParse             - malformed edge-list line (see *ParseError).
package hierarchy
