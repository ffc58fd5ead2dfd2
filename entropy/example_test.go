package entropy_test

import (
	"fmt"

	"github.com/katalvlaran/orgentropy/entropy"
	"github.com/katalvlaran/orgentropy/hierarchy"
)

// ExampleFull evaluates the full entropy of a three-person team and checks
// it against the flat relation table of the same team.
func ExampleFull() {
	tree, _ := hierarchy.BuildTreeFromEdgeListText("lead,ann\nlead,bob")
	full, _ := entropy.Full(tree)

	// rows sorted by label: ann, bob, lead
	table, _ := entropy.FromRelationTableText("0,1,0,0,1\n0,1,0,0,1\n2,0,0,0,0")

	fmt.Printf("%.4f %.4f\n", full, table)
	// Output:
	// 2.0000 2.0000
}
