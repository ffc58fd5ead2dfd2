package hierarchy_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

func TestParseEdgeList(t *testing.T) {
	edges, err := hierarchy.ParseEdgeList("a, b\n\n b,c \r\n")
	require.NoError(t, err)
	assert.Equal(t, []hierarchy.Edge{{Parent: "a", Child: "b"}, {Parent: "b", Child: "c"}}, edges)

	for _, bad := range []string{"a,b\na", "a,b,c", "a,"} {
		_, err = hierarchy.ParseEdgeList(bad)
		require.ErrorIs(t, err, hierarchy.ErrParse, bad)
		var pe *hierarchy.ParseError
		require.True(t, errors.As(err, &pe))
	}

	_, err = hierarchy.ParseEdgeList("a,b\nc")
	var pe *hierarchy.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

func TestBuildFromEdges(t *testing.T) {
	_, err := hierarchy.BuildFromEdges(nil)
	assert.ErrorIs(t, err, hierarchy.ErrNoEdges)

	// parent "9" does not exist yet when its row is applied
	_, err = hierarchy.BuildFromEdges([]hierarchy.Edge{{"1", "2"}, {"9", "3"}})
	assert.ErrorIs(t, err, hierarchy.ErrNotFound)

	_, err = hierarchy.BuildFromEdges([]hierarchy.Edge{{"1", "2"}, {"1", "3"}, {"2", "3"}})
	assert.ErrorIs(t, err, hierarchy.ErrDuplicateLabel)

	tree, err := hierarchy.BuildFromEdges([]hierarchy.Edge{{"r", "a"}, {"r", "b"}, {"a", "c"}})
	require.NoError(t, err)
	assert.Equal(t, "r", tree.Root().Label)
	assert.Equal(t, 4, tree.Len())
	assert.False(t, tree.Ready(), "BuildFromEdges does not finalize")
}

func TestBuildTreeFromEdgeListText(t *testing.T) {
	tree := buildCanonical(t)
	assert.True(t, tree.Ready())
	assert.Equal(t, 8, tree.Root().N)

	_, err := hierarchy.BuildTreeFromEdgeListText("1,2\n3,4")
	assert.ErrorIs(t, err, hierarchy.ErrNotFound)

	_, err = hierarchy.BuildTreeFromEdgeListText("")
	assert.ErrorIs(t, err, hierarchy.ErrNoEdges)
}

func TestNested_RoundTrip(t *testing.T) {
	nested := hierarchy.Nested{"1": {"2": {"3": {}, "4": {"5": {}, "6": {}}}}}
	tree, err := hierarchy.BuildFromNested(nested)
	require.NoError(t, err)
	assert.Equal(t, 6, tree.Len())
	assert.Equal(t, "4", tree.Parent(mustFind(t, tree, "6")).Label)
	assert.Equal(t, nested, tree.ToNested())

	_, err = hierarchy.BuildFromNested(hierarchy.Nested{"a": {}, "b": {}})
	assert.ErrorIs(t, err, hierarchy.ErrParse)

	_, err = hierarchy.BuildFromNested(hierarchy.Nested{"a": {"b": {"a": {}}}})
	assert.ErrorIs(t, err, hierarchy.ErrDuplicateLabel)
}
