package dice_test

import (
	"fmt"

	"github.com/katalvlaran/orgentropy/dice"
)

// ExampleAnalyze shows that the sum of two dice carries about three bits of
// information about their product.
func ExampleAnalyze() {
	r, _ := dice.Analyze(dice.StandardFaces)
	for _, v := range r.Values() {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// 4.3366
	// 3.2744
	// 4.0378
	// 1.0622
	// 2.9757
}
