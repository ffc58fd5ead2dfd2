// File: relations.go
// Role: relation counter and node-count pass.
//
// Invariants after Finalize (or Seal):
//   - Σ DirectManagement = Σ DirectSubordination = Len()-1.
//   - DirectManagement+IndirectManagement = descendant count.
//   - DirectSubordination+IndirectSubordination = depth.
//   - Siblings share the same Subordination value.
//   - N == Len() on every node.
package hierarchy

// ComputeRelations fills the Relation record of every node in one recursive
// pass from the root. For each node and each of its children:
//
//   - the node gains one DirectManagement, the child one DirectSubordination;
//   - the child's Subordination becomes the node's child count minus one;
//   - every node in each grandchild's subtree adds one IndirectManagement to
//     the node and one IndirectSubordination to itself;
//
// and the pass recurses into the child.
//
// The pass runs once: a second call returns ErrRelationsComputed rather than
// doubling the counts. Structural changes are rejected afterwards (ErrFrozen).
//
// Errors:
//   - ErrRelationsComputed if the counts are already in place, whether from
//     an earlier call or from Seal.
//
// Complexity:
//   - Time O(Σ depth), which is O(V²) on a chain and O(V log V) on a
//     balanced tree. Space O(height) for the recursion.
//
// Notes:
//   - N is not touched here; run SetNodeCount (or Finalize) before the
//     entropy functions will accept the tree.
func (t *Tree) ComputeRelations() error {
	if t.relationsDone {
		return ErrRelationsComputed
	}
	t.relate(t.nodes[0])
	t.relationsDone = true

	return nil
}

// relate applies the relation rules to the children of n, then recurses.
//
// Implementation:
//   - Stage 1: per child, bump the direct counts and set Subordination to
//     the sibling count.
//   - Stage 2: walk each grandchild subtree in pre-order; every node visited
//     is an indirect subordinate of n.
//   - Stage 3: recurse into the child.
//
// Complexity:
//   - Each node is visited once per proper ancestor above its parent, so the
//     whole pass is O(Σ depth).
func (t *Tree) relate(n *Node) {
	siblings := len(n.children) - 1
	var child *Node
	for _, ci := range n.children {
		child = t.nodes[ci]
		n.Relation.DirectManagement++
		child.Relation.DirectSubordination++
		child.Relation.Subordination = siblings

		for _, gi := range child.children {
			t.preorder(gi, func(d *Node) {
				n.Relation.IndirectManagement++
				d.Relation.IndirectSubordination++
			})
		}
		t.relate(child)
	}
}

// count folds the subtree rooted at arena index i into its node count.
func (t *Tree) count(i int) int {
	total := 1
	for _, ci := range t.nodes[i].children {
		total += t.count(ci)
	}

	return total
}

// SetNodeCount counts every node of the tree and stores the total in N on
// every node. It is idempotent and returns the total.
//
// Implementation:
//   - Stage 1: fold subtree sizes up from the root with count.
//   - Stage 2: copy the total onto every arena slot.
//
// Complexity:
//   - Time O(V), Space O(height).
//
// Notes:
//   - The total is recounted from the child links, not read from Len().
func (t *Tree) SetNodeCount() int {
	total := t.count(0)
	for _, n := range t.nodes {
		n.N = total
	}
	t.countDone = true

	return total
}

// Finalize runs ComputeRelations followed by SetNodeCount. Afterwards the
// tree is read-only.
func (t *Tree) Finalize() error {
	if err := t.ComputeRelations(); err != nil {
		return err
	}
	t.SetNodeCount()

	return nil
}

// Seal marks restored relation records as authoritative without recomputing
// them, sets the node count and freezes the tree. Loaders call it after
// SetRelation.
func (t *Tree) Seal() error {
	if t.relationsDone {
		return ErrRelationsComputed
	}
	t.relationsDone = true
	t.SetNodeCount()

	return nil
}

// Ready reports whether relation counts and node counts are both in place.
func (t *Tree) Ready() bool {
	return t != nil && t.relationsDone && t.countDone
}
