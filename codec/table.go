package codec

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orgentropy/hierarchy"
	"github.com/katalvlaran/orgentropy/matrix"
)

// ToTable returns the relation table of tree: one row per node sorted by
// label, columns in hierarchy.Relation.Row order.
//
// Errors:
//   - hierarchy.ErrNilTree for nil.
//   - hierarchy.ErrNotFinalized before the relation pass.
func ToTable(tree *hierarchy.Tree) (*matrix.Dense, error) {
	if tree == nil {
		return nil, hierarchy.ErrNilTree
	}
	if !tree.Ready() {
		return nil, fmt.Errorf("to table: %w", hierarchy.ErrNotFinalized)
	}

	nodes := tree.Nodes()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Label < nodes[j].Label })

	m, err := matrix.NewDense(len(nodes), hierarchy.NumRelations)
	if err != nil {
		return nil, err
	}
	for i, n := range nodes {
		for j, v := range n.Relation.Row() {
			if err = m.Set(i, j, float64(v)); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// TableText renders ToTable(tree) in the relation-table text format.
func TableText(tree *hierarchy.Tree) (string, error) {
	m, err := ToTable(tree)
	if err != nil {
		return "", err
	}

	return matrix.FormatCSV(m)
}

// FromTable parses relation-table text. Only the flat table is recovered,
// which is all entropy.FromTable needs.
func FromTable(text string) (*matrix.Dense, error) {
	return matrix.ParseCSV(text)
}
