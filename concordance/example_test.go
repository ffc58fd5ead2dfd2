package concordance_test

import (
	"fmt"

	"github.com/katalvlaran/orgentropy/concordance"
)

func ExampleCompute() {
	w, _ := concordance.Compute(`["a","b","c"]`, `["b","a","c"]`)
	fmt.Printf("W = %.2f\n", w)
	// Output:
	// W = 0.75
}
