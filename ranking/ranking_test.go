package ranking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/matrix"
	"github.com/katalvlaran/orgentropy/ranking"
)

const (
	firstExpert  = `["1", ["2","3"], "4", ["5","6","7"], "8", "9", "10"]`
	secondExpert = `[["1","2"],["3","4","5"],"6","7","9",["8","10"]]`
)

func mustParse(t *testing.T, text string) ranking.Ranking {
	t.Helper()
	r, err := ranking.Parse(text)
	require.NoError(t, err)

	return r
}

func rowsOf(t *testing.T, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestParse(t *testing.T) {
	r := mustParse(t, `["1", ["2","3"], "4"]`)
	assert.Equal(t, ranking.Ranking{{"1"}, {"2", "3"}, {"4"}}, r)
	assert.Equal(t, `["1",["2","3"],"4"]`, r.String())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]error{
		`{"a":1}`:           ranking.ErrMalformed,
		`[]`:                ranking.ErrMalformed,
		`[1, 2]`:            ranking.ErrMalformed,
		`["1", []]`:         ranking.ErrMalformed,
		`["1", null]`:       ranking.ErrMalformed,
		`["1", ["2", "1"]]`: ranking.ErrDuplicate,
		`not json`:          ranking.ErrMalformed,
	}
	for text, want := range cases {
		t.Run(text, func(t *testing.T) {
			_, err := ranking.Parse(text)
			assert.ErrorIs(t, err, want)
		})
	}
}

func TestLabels_NumericAndLexicographic(t *testing.T) {
	assert.Equal(t,
		[]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
		mustParse(t, firstExpert).Labels())
	assert.Equal(t,
		[]string{"a", "b", "c"},
		mustParse(t, `["c", ["a","b"]]`).Labels())

	mixed := []string{"10", "x", "9"}
	ranking.SortLabels(mixed)
	assert.Equal(t, []string{"10", "9", "x"}, mixed)
}

func TestRelationMatrix(t *testing.T) {
	r := mustParse(t, `["1", ["2","3"]]`)
	m, err := ranking.RelationMatrix(r, r.Labels())
	require.NoError(t, err)
	assert.Equal(t, [][]float64{
		{1, 0, 0},
		{1, 1, 1},
		{1, 1, 1},
	}, rowsOf(t, m))

	_, err = ranking.RelationMatrix(r, []string{"1", "2", "4"})
	assert.ErrorIs(t, err, ranking.ErrLabelMismatch)
}

func TestControversyPairs(t *testing.T) {
	a, b := mustParse(t, firstExpert), mustParse(t, secondExpert)
	labels := a.Labels()
	ma, err := ranking.RelationMatrix(a, labels)
	require.NoError(t, err)
	mb, err := ranking.RelationMatrix(b, labels)
	require.NoError(t, err)

	cm, err := ranking.ControversyMatrix(ma, mb)
	require.NoError(t, err)
	pairs, err := ranking.ControversyPairs(cm, labels)
	require.NoError(t, err)
	assert.Equal(t, []ranking.Pair{{"8", "9"}}, pairs)

	_, err = ranking.ControversyPairs(cm, labels[:3])
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestControversyMatrix_IdenticalRankings(t *testing.T) {
	a := mustParse(t, firstExpert)
	ma, err := ranking.RelationMatrix(a, a.Labels())
	require.NoError(t, err)
	cm, err := ranking.ControversyMatrix(ma, ma)
	require.NoError(t, err)
	pairs, err := ranking.ControversyPairs(cm, a.Labels())
	require.NoError(t, err)
	assert.Empty(t, pairs)
}
