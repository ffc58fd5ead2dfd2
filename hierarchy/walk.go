package hierarchy

import "fmt"

// WalkOption configures optional behavior of Walk.
type WalkOption func(*WalkOptions)

// WalkOptions holds configurable parameters for a tree walk.
type WalkOptions struct {
	// Start is the label of the subtree root; empty means the tree root.
	Start string

	// OnExit, if non-nil, is invoked after all descendants of a node have been
	// visited (post-order). Returning an error aborts the walk.
	OnExit func(n *Node) error

	// MaxDepth, if non-negative, limits the walk to nodes at most MaxDepth
	// edges below Start. Default is -1 (no limit).
	MaxDepth int
}

// DefaultWalkOptions returns options for a full pre-order walk from the root.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{MaxDepth: -1}
}

// WithStart restricts the walk to the subtree rooted at label.
func WithStart(label string) WalkOption {
	return func(o *WalkOptions) { o.Start = label }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(n *Node) error) WalkOption {
	return func(o *WalkOptions) { o.OnExit = fn }
}

// WithMaxDepth limits the walk depth; 0 visits only the start node.
func WithMaxDepth(limit int) WalkOption {
	return func(o *WalkOptions) { o.MaxDepth = limit }
}

// walker encapsulates state during a walk.
type walker struct {
	tree  *Tree
	visit func(n *Node) error
	opts  WalkOptions
}

// Walk applies visit to every node in pre-order (node before its children,
// children in insertion order). An error from visit or OnExit stops the walk
// and is returned wrapped with the node label.
//
// Errors:
//   - ErrNotFound if WithStart names an unknown label.
//   - any error returned by visit or OnExit.
func (t *Tree) Walk(visit func(n *Node) error, opts ...WalkOption) error {
	wopts := DefaultWalkOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	start := t.Root()
	if wopts.Start != "" {
		var err error
		if start, err = t.Find(wopts.Start); err != nil {
			return fmt.Errorf("walk: %w", err)
		}
	}

	w := &walker{tree: t, visit: visit, opts: wopts}

	return w.traverse(start, 0)
}

// traverse visits n at the given depth, then recurses into its children.
func (w *walker) traverse(n *Node, depth int) error {
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	if w.visit != nil {
		if err := w.visit(n); err != nil {
			return fmt.Errorf("walk: visit %q: %w", n.Label, err)
		}
	}

	for _, ci := range n.children {
		if err := w.traverse(w.tree.nodes[ci], depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(n); err != nil {
			return fmt.Errorf("walk: exit %q: %w", n.Label, err)
		}
	}

	return nil
}

// preorder is the internal infallible walk used by the relation passes.
func (t *Tree) preorder(i int, fn func(n *Node)) {
	n := t.nodes[i]
	fn(n)
	for _, ci := range n.children {
		t.preorder(ci, fn)
	}
}
