package hierarchy_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// canonicalEdges is the reference org chart:
//
//	1
//	└─ 2
//	   ├─ 3
//	   └─ 4
//	      ├─ 5
//	      │  ├─ 7
//	      │  └─ 8
//	      └─ 6
const canonicalEdges = "1,2\n2,3\n2,4\n4,5\n4,6\n5,7\n5,8"

// buildCanonical returns the finalized reference tree.
func buildCanonical(t *testing.T) *hierarchy.Tree {
	t.Helper()
	tree, err := hierarchy.BuildTreeFromEdgeListText(canonicalEdges)
	require.NoError(t, err)

	return tree
}

// buildChain returns a finalized chain N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) *hierarchy.Tree {
	t.Helper()
	tree, err := hierarchy.NewTree("N0")
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		_, err = tree.Append(label(i-1), label(i))
		require.NoError(t, err)
	}
	require.NoError(t, tree.Finalize())

	return tree
}

func label(i int) string {
	return "N" + strconv.Itoa(i)
}

// mustFind looks a label up or fails the test.
func mustFind(t *testing.T, tree *hierarchy.Tree, lbl string) *hierarchy.Node {
	t.Helper()
	n, err := tree.Find(lbl)
	require.NoError(t, err)

	return n
}
