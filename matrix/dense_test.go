// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 5)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 5, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestSetGetAndClone(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 2, 7))

	c := m.Clone()
	require.NoError(t, m.Set(1, 2, 9)) // mutate original after cloning

	v, err := c.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.0, v, "clone must not share storage")

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 9}, row)
}

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestString(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 0.5}})
	require.NoError(t, err)
	require.Equal(t, "[1, 0.5]\n", m.String())
}

func TestAt_ErrorNamesCell(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	assert.Contains(t, err.Error(), "At at (2,1)")

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 9
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}
