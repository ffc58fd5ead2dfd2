package hierarchy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// collect walks the tree and returns visited labels.
func collect(t *testing.T, tree *hierarchy.Tree, opts ...hierarchy.WalkOption) []string {
	t.Helper()
	var out []string
	err := tree.Walk(func(n *hierarchy.Node) error {
		out = append(out, n.Label)
		return nil
	}, opts...)
	require.NoError(t, err)

	return out
}

func TestWalk_PreOrder(t *testing.T) {
	tree := buildCanonical(t)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "7", "8", "6"}, collect(t, tree))
}

func TestWalk_StartAndMaxDepth(t *testing.T) {
	tree := buildCanonical(t)

	assert.Equal(t, []string{"4", "5", "7", "8", "6"}, collect(t, tree, hierarchy.WithStart("4")))
	assert.Equal(t, []string{"4", "5", "6"}, collect(t, tree, hierarchy.WithStart("4"), hierarchy.WithMaxDepth(1)))
	assert.Equal(t, []string{"1"}, collect(t, tree, hierarchy.WithMaxDepth(0)))

	err := tree.Walk(nil, hierarchy.WithStart("missing"))
	assert.ErrorIs(t, err, hierarchy.ErrNotFound)
}

func TestWalk_OnExitPostOrder(t *testing.T) {
	tree := buildCanonical(t)
	var post []string
	err := tree.Walk(nil, hierarchy.WithOnExit(func(n *hierarchy.Node) error {
		post = append(post, n.Label)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "7", "8", "5", "6", "4", "2", "1"}, post)
}

func TestWalk_HookErrorAborts(t *testing.T) {
	tree := buildCanonical(t)
	stop := errors.New("stop")

	var seen []string
	err := tree.Walk(func(n *hierarchy.Node) error {
		seen = append(seen, n.Label)
		if n.Label == "4" {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"1", "2", "3", "4"}, seen)

	err = tree.Walk(nil, hierarchy.WithOnExit(func(n *hierarchy.Node) error { return stop }))
	assert.ErrorIs(t, err, stop)
}
