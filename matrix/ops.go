// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and shape operations used by the order-relation and
//     probability-table exercises.
//
// Determinism:
//   - Fixed i→j traversal for all loops; *Dense operands use flat fast paths.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose       = "Transpose"
	opHadamard        = "Hadamard"
	opOr              = "Or"
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// validateSameShape checks both operands are non-nil and equally shaped.
func validateSameShape(a, b Matrix) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped. It turns
// "row i precedes column j" into "row j follows column i" for the
// order-relation exercises; m is never mutated.
//
// Implementation:
//   - Stage 1: reject nil, allocate Dense(cols, rows).
//   - Stage 2: *Dense input is copied slice to slice; any other Matrix goes
//     through At in i→j order.
//
// Errors:
//   - ErrNilMatrix, or the first At failure, both wrapped with "Transpose".
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.vals[j*rows+i] = dm.vals[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.vals[j*rows+i] = v
		}
	}

	return res, nil
}

// zipWith applies f element-wise to two equally shaped matrices and returns
// the result as a fresh Dense. Hadamard and Or are thin wrappers over it.
//
// Implementation:
//   - Stage 1: validateSameShape; the error carries both shapes.
//   - Stage 2: when both operands are *Dense the flat slices are zipped
//     directly, otherwise cells are read through At.
//
// Complexity:
//   - Time O(r*c) calls of f, Space O(r*c).
//
// Notes:
//   - f sees cells in row-major order on both paths.
func zipWith(op string, a, b Matrix, f func(x, y float64) float64) (*Dense, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range res.vals {
			res.vals[idx] = f(da.vals[idx], db.vals[idx])
		}

		return res, nil
	}

	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			res.vals[i*cols+j] = f(av, bv)
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product a∘b.
func Hadamard(a, b Matrix) (*Dense, error) {
	return zipWith(opHadamard, a, b, func(x, y float64) float64 { return x * y })
}

// Or returns the element-wise logical OR of two 0/1 matrices:
// 1 where either operand is non-zero, 0 elsewhere.
func Or(a, b Matrix) (*Dense, error) {
	return zipWith(opOr, a, b, func(x, y float64) float64 {
		if x != 0 || y != 0 {
			return 1
		}

		return 0
	})
}

// RowSums returns Σ_j m[i,j] for every row i. On a relation table the sum
// of a row is the number of relation slots the node takes part in.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(m Matrix) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opRowSums, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, rows)

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// NormalizeRowsL1 returns a copy of m whose rows sum (in absolute value) to 1,
// plus the original L1 norms. It turns count rows into probability rows.
//
// Implementation:
//   - Stage 1: copy m into a new Dense while accumulating |m[i,j]| per row.
//   - Stage 2: divide every row with a non-zero norm by that norm.
//
// Returns:
//   - *Dense: the normalized copy.
//   - []float64: the L1 norm of each original row, index-aligned with rows.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Rows with zero norm are left as all zeros rather than becoming NaN.
func NormalizeRowsL1(m Matrix) (*Dense, []float64, error) {
	if m == nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, ErrNilMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	norms := make([]float64, rows)

	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			res.vals[i*cols+j] = v
			if v < 0 {
				v = -v
			}
			norms[i] += v
		}
	}

	for i = 0; i < rows; i++ {
		if norms[i] == 0 {
			continue // degenerate row stays as is
		}
		for j = 0; j < cols; j++ {
			res.vals[i*cols+j] /= norms[i]
		}
	}

	return res, norms, nil
}
