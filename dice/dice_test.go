package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/dice"
	"github.com/katalvlaran/orgentropy/matrix"
)

const eps = 1e-9

func TestSumDistribution(t *testing.T) {
	d, err := dice.SumDistribution(dice.StandardFaces)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, d.Values)
	assert.InDelta(t, 6.0/36, d.P(7), eps)
	assert.InDelta(t, 1.0/36, d.P(12), eps)
	assert.Equal(t, 0.0, d.P(13))

	total := 0.0
	for _, p := range d.Probs {
		total += p
	}
	assert.InDelta(t, 1.0, total, eps)
}

func TestProductDistribution(t *testing.T) {
	d, err := dice.ProductDistribution(dice.StandardFaces)
	require.NoError(t, err)
	assert.Len(t, d.Values, 18)
	assert.InDelta(t, 4.0/36, d.P(6), eps) // 1·6 6·1 2·3 3·2
	assert.InDelta(t, 4.0/36, d.P(12), eps)
}

func TestCountMatrix(t *testing.T) {
	m, err := dice.CountMatrix([]int{1, 2})
	require.NoError(t, err)
	// products 1,2,4 × sums 2,3,4
	want := [][]float64{{1, 0, 0}, {0, 2, 0}, {0, 0, 1}}
	for i := range want {
		row, err := m.Row(i)
		require.NoError(t, err)
		assert.Equal(t, want[i], row)
	}

	total := 0.0
	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	for _, s := range sums {
		total += s
	}
	assert.Equal(t, 4.0, total)
}

func TestConditionalMatrix_RowsAreDistributions(t *testing.T) {
	cond, err := dice.ConditionalMatrix(dice.StandardFaces)
	require.NoError(t, err)
	assert.Equal(t, 11, cond.Rows())

	sums, err := matrix.RowSums(cond)
	require.NoError(t, err)
	for _, s := range sums {
		assert.InDelta(t, 1.0, s, eps)
	}
}

func TestAnalyze_StandardDie(t *testing.T) {
	r, err := dice.Analyze(dice.StandardFaces)
	require.NoError(t, err)

	assert.InDelta(t, 4.336591668108978, r.Joint, eps)
	assert.InDelta(t, 3.2744019192887706, r.Sum, eps)
	assert.InDelta(t, 4.037844793048882, r.Product, eps)
	assert.InDelta(t, 1.0621897488202077, r.Conditional, eps)
	assert.InDelta(t, 2.9756550442286747, r.Mutual, eps)

	assert.Equal(t, []float64{r.Joint, r.Sum, r.Product, r.Conditional, r.Mutual}, r.Values())
	assert.GreaterOrEqual(t, r.Mutual, 0.0)
	assert.LessOrEqual(t, r.Mutual, r.Product)
}

func TestAnalyze_SumDeterminesProduct(t *testing.T) {
	r, err := dice.Analyze([]int{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r.Conditional, eps)
	assert.InDelta(t, 1.5, r.Mutual, eps)
	assert.InDelta(t, r.Sum, r.Joint, eps)
}

func TestAnalyze_NoFaces(t *testing.T) {
	_, err := dice.Analyze(nil)
	assert.ErrorIs(t, err, dice.ErrNoFaces)
	_, err = dice.CountMatrix([]int{})
	assert.ErrorIs(t, err, dice.ErrNoFaces)
}
