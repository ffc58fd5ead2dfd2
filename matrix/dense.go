// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Backing store for relation tables and order-relation matrices: one flat
//     slice, cell (i,j) lives at i*cols+j.
//   - Out-of-range access is reported as ErrIndexOutOfBounds with the
//     coordinates attached; nothing here panics on caller input.
//
// Complexity:
//   - NewDense, NewFromRows, Clone: O(rows*cols). At, Set: O(1). Row: O(cols).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// cellError tags err with the accessor name and the offending cell.
func cellError(op string, i, j int, err error) error {
	return fmt.Errorf("matrix: %s at (%d,%d): %w", op, i, j, err)
}

// Dense stores a rows×cols table of float64 in a single row-major slice.
type Dense struct {
	rows, cols int
	vals       []float64 // len(vals) == rows*cols
}

var _ Matrix = (*Dense)(nil)

// NewDense allocates a zero-filled rows×cols table.
// Both dimensions must be positive, otherwise ErrInvalidDimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{rows: rows, cols: cols, vals: make([]float64, rows*cols)}, nil
}

// NewFromRows copies a rectangular [][]float64 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when a later row differs in length from the first.
func NewFromRows(src [][]float64) (*Dense, error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(src), len(src[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range src {
		if len(row) != m.cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w",
				i, len(row), m.cols, ErrDimensionMismatch)
		}
		copy(m.vals[i*m.cols:], row)
	}

	return m, nil
}

func (m *Dense) Rows() int { return m.rows }

func (m *Dense) Cols() int { return m.cols }

// offset maps (i,j) onto vals, failing for cells outside the table.
func (m *Dense) offset(op string, i, j int) (int, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, cellError(op, i, j, ErrIndexOutOfBounds)
	}

	return i*m.cols + j, nil
}

func (m *Dense) At(i, j int) (float64, error) {
	k, err := m.offset("At", i, j)
	if err != nil {
		return 0, err
	}

	return m.vals[k], nil
}

func (m *Dense) Set(i, j int, v float64) error {
	k, err := m.offset("Set", i, j)
	if err != nil {
		return err
	}
	m.vals[k] = v

	return nil
}

// Row copies out row i; the caller may keep or modify the result.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, cellError("Row", i, 0, ErrIndexOutOfBounds)
	}

	return append([]float64(nil), m.vals[i*m.cols:(i+1)*m.cols]...), nil
}

func (m *Dense) Clone() Matrix {
	return &Dense{rows: m.rows, cols: m.cols, vals: append([]float64(nil), m.vals...)}
}

// String prints one bracketed row per line using the shortest float form,
// e.g. "[0, 1, 0.5]".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j, v := range m.vals[i*m.cols : (i+1)*m.cols] {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
