package entropy

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/orgentropy/hierarchy"
	"github.com/katalvlaran/orgentropy/matrix"
)

// Sentinel errors for entropy evaluation.
var (
	// ErrDegenerate indicates a non-positive normalizer.
	ErrDegenerate = errors.New("entropy: normalizer must be > 0")

	// ErrEmptyTable indicates a relation table without rows.
	ErrEmptyTable = errors.New("entropy: relation table is empty")

	// ErrNilNode indicates a nil node argument.
	ErrNilNode = errors.New("entropy: node is nil")

	// ErrCountOutOfRange indicates a relation count outside [0, n-1]. Ancestors,
	// descendants and siblings of a node are disjoint subsets of the other
	// n-1 nodes, so no valid count exceeds n-1.
	ErrCountOutOfRange = errors.New("entropy: relation count out of range")
)

// Term returns p·log2(p), or 0 for p <= 0.
func Term(p float64) float64 {
	if p <= 0 {
		return 0
	}

	return p * math.Log2(p)
}

// Shannon returns -Σ Term(p) over ps. The probabilities are not required to
// sum to one.
func Shannon(ps []float64) float64 {
	h := 0.0
	for _, p := range ps {
		h += Term(p)
	}
	if h == 0 {
		return 0 // avoid -0
	}

	return -h
}

// FromCounts returns the entropy of counts scaled by 1/denom.
func FromCounts(counts []float64, denom float64) (float64, error) {
	if denom <= 0 {
		return 0, ErrDegenerate
	}
	ps := make([]float64, len(counts))
	for i, c := range counts {
		ps[i] = c / denom
	}

	return Shannon(ps), nil
}

// rowFloats converts a relation record to float frequencies.
func rowFloats(r hierarchy.Relation) []float64 {
	row := r.Row()
	out := make([]float64, len(row))
	for i, v := range row {
		out[i] = float64(v)
	}

	return out
}

// nodeEntropy evaluates one node of an n-node tree.
// A single-node tree carries no relation mass.
//
// Every count must lie in [0, n-1]; a larger one would give p > 1 and a
// negative result. The error names the offending column.
func nodeEntropy(counts []float64, n int) (float64, error) {
	limit := float64(n - 1)
	for j, c := range counts {
		if c < 0 || c > limit {
			return 0, fmt.Errorf("column %d: %g not in [0, %d]: %w", j+1, c, n-1, ErrCountOutOfRange)
		}
	}
	if n <= 1 {
		return 0, nil
	}

	return FromCounts(counts, limit)
}

// SelfEntropy returns the entropy of node's relation distribution within tree.
//
// Errors:
//   - hierarchy.ErrNilTree, ErrNilNode for nil arguments.
//   - hierarchy.ErrNotFinalized if the relation and node-count passes have not run.
//   - ErrCountOutOfRange if a restored count exceeds N-1 or is negative.
func SelfEntropy(tree *hierarchy.Tree, node *hierarchy.Node) (float64, error) {
	if tree == nil {
		return 0, hierarchy.ErrNilTree
	}
	if node == nil {
		return 0, ErrNilNode
	}
	if !tree.Ready() {
		return 0, fmt.Errorf("self entropy of %q: %w", node.Label, hierarchy.ErrNotFinalized)
	}

	h, err := nodeEntropy(rowFloats(node.Relation), node.N)
	if err != nil {
		return 0, fmt.Errorf("self entropy of %q: %w", node.Label, err)
	}

	return h, nil
}

// Full returns the sum of SelfEntropy over every node, in pre-order.
func Full(tree *hierarchy.Tree) (float64, error) {
	if tree == nil {
		return 0, hierarchy.ErrNilTree
	}
	if !tree.Ready() {
		return 0, fmt.Errorf("full entropy: %w", hierarchy.ErrNotFinalized)
	}

	total := 0.0
	err := tree.Walk(func(n *hierarchy.Node) error {
		h, err := nodeEntropy(rowFloats(n.Relation), n.N)
		if err != nil {
			return err
		}
		total += h

		return nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// FromTable returns the full entropy of a relation table: each row is one
// node, n is the row count, and every row is evaluated like SelfEntropy.
// Row order does not matter. A cell outside [0, n-1] fails with
// ErrCountOutOfRange wrapped with its row and column, so the result is
// never negative.
func FromTable(m matrix.Matrix) (float64, error) {
	if m == nil {
		return 0, matrix.ErrNilMatrix
	}
	n := m.Rows()
	if n == 0 {
		return 0, ErrEmptyTable
	}

	total := 0.0
	row := make([]float64, m.Cols())
	var i, j int
	var err error
	var h float64
	for i = 0; i < n; i++ {
		for j = range row {
			if row[j], err = m.At(i, j); err != nil {
				return 0, err
			}
		}
		if h, err = nodeEntropy(row, n); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		total += h
	}

	return total, nil
}

// FromRelationTableText parses relation-table text and returns its full
// entropy. Parse failures surface as *matrix.ParseError.
func FromRelationTableText(text string) (float64, error) {
	m, err := matrix.ParseCSV(text)
	if err != nil {
		if errors.Is(err, matrix.ErrEmpty) {
			return 0, fmt.Errorf("%w: %w", ErrEmptyTable, err)
		}

		return 0, err
	}

	return FromTable(m)
}
