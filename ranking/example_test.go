package ranking_test

import (
	"fmt"

	"github.com/katalvlaran/orgentropy/ranking"
)

// ExampleMerge merges two expert opinions that disagree on one pair.
func ExampleMerge() {
	a, _ := ranking.Parse(`["1", ["2","3"], "4", ["5","6","7"], "8", "9", "10"]`)
	b, _ := ranking.Parse(`[["1","2"],["3","4","5"],"6","7","9",["8","10"]]`)

	res, _ := ranking.Merge(a, b)
	fmt.Println(res.Ranking)
	fmt.Println(res.Controversies)
	// Output:
	// ["1","2","3","4","5","6","7",["8","9"],"10"]
	// [[8 9]]
}
