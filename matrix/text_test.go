package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/matrix"
)

func TestParseCSV_Valid(t *testing.T) {
	m, err := matrix.ParseCSV("0,1,3,0,0\n0,0,1,0,1\n\n")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, [][]float64{{0, 1, 3, 0, 0}, {0, 0, 1, 0, 1}}, toRows(t, m))
}

func TestParseCSV_Errors(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		line   int
		column int
		cause  error
	}{
		{name: "token", text: "0,1\n0,x", line: 2, column: 2},
		{name: "negative", text: "0,-1", line: 1, column: 2},
		{name: "ragged", text: "0,1,2\n0,1", line: 2, column: 2, cause: matrix.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.ParseCSV(tc.text)
			require.ErrorIs(t, err, matrix.ErrParse)

			var pe *matrix.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Equal(t, tc.column, pe.Column)
			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}

	_, err := matrix.ParseCSV(" \n\n")
	assert.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestFormatCSV_RoundTrip(t *testing.T) {
	text := "1,0,6,0,0\n2,1,2,1,1"
	m, err := matrix.ParseCSV(text)
	require.NoError(t, err)

	out, err := matrix.FormatCSV(m)
	require.NoError(t, err)
	assert.Equal(t, text, out)

	half := mustRows(t, [][]float64{{0.5, 2}})
	out, err = matrix.FormatCSV(half)
	require.NoError(t, err)
	assert.Equal(t, "0.5,2", out)
}

func TestFingerprint(t *testing.T) {
	a, err := matrix.ParseCSV("1,2\n3,4")
	require.NoError(t, err)
	b, err := matrix.ParseCSV(" 1, 2\n3,4\n")
	require.NoError(t, err)
	c, err := matrix.ParseCSV("1,2\n4,3")
	require.NoError(t, err)

	fa, err := matrix.Fingerprint(a)
	require.NoError(t, err)
	fb, err := matrix.Fingerprint(b)
	require.NoError(t, err)
	fc, err := matrix.Fingerprint(c)
	require.NoError(t, err)

	assert.Len(t, fa, 16)
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}
