package hierarchy_test

import (
	"fmt"

	"github.com/katalvlaran/orgentropy/hierarchy"
)

// ExampleBuildTreeFromEdgeListText builds a small org chart and prints the
// relation counts of every employee.
//
//	CEO
//	 ├─ CTO
//	 │   └─ Dev
//	 └─ CFO
func ExampleBuildTreeFromEdgeListText() {
	tree, err := hierarchy.BuildTreeFromEdgeListText("CEO,CTO\nCTO,Dev\nCEO,CFO")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, n := range tree.Nodes() {
		fmt.Println(n.Label, n.Relation.Row())
	}

	// Output:
	// CEO [2 0 1 0 0]
	// CTO [1 1 0 0 1]
	// Dev [0 1 0 1 0]
	// CFO [0 1 0 0 1]
}
