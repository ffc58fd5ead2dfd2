package ranking_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgentropy/ranking"
)

func TestMerge_ReferenceExperts(t *testing.T) {
	res, err := ranking.Merge(mustParse(t, firstExpert), mustParse(t, secondExpert))
	require.NoError(t, err)

	assert.Equal(t, `["1","2","3","4","5","6","7",["8","9"],"10"]`, res.Ranking.String())
	assert.Equal(t, []ranking.Pair{{"8", "9"}}, res.Controversies)

	out, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"ranking":["1","2","3","4","5","6","7",["8","9"],"10"],"controversies":[["8","9"]]}`,
		string(out))
}

func TestMerge_SameRankingIsIdentity(t *testing.T) {
	a := mustParse(t, `["b", ["a","c"], "d"]`)
	res, err := ranking.Merge(a, a)
	require.NoError(t, err)
	assert.Equal(t, a, res.Ranking)
	assert.Empty(t, res.Controversies)
}

func TestMerge_FullReversalTiesEverything(t *testing.T) {
	res, err := ranking.Merge(mustParse(t, `["1","2","3"]`), mustParse(t, `["3","2","1"]`))
	require.NoError(t, err)
	assert.Equal(t, ranking.Ranking{{"1", "2", "3"}}, res.Ranking)
	assert.Len(t, res.Controversies, 3)
}

func TestMerge_LabelMismatch(t *testing.T) {
	_, err := ranking.Merge(mustParse(t, `["1","2"]`), mustParse(t, `["1","3"]`))
	assert.ErrorIs(t, err, ranking.ErrLabelMismatch)

	_, err = ranking.Merge(ranking.Ranking{{"1"}, {"1"}}, mustParse(t, `["1"]`))
	assert.ErrorIs(t, err, ranking.ErrDuplicate)
}
