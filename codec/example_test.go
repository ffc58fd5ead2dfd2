package codec_test

import (
	"fmt"

	"github.com/katalvlaran/orgentropy/codec"
	"github.com/katalvlaran/orgentropy/hierarchy"
)

// ExampleEncodeYAML prints a two-level team as a nested YAML document.
func ExampleEncodeYAML() {
	tree, _ := hierarchy.BuildTreeFromEdgeListText("lead,ann")
	data, _ := codec.EncodeYAML(tree)
	fmt.Print(string(data))
	// Output:
	// lead:
	//   relation:
	//     direct_management: 1
	//     direct_subordination: 0
	//     indirect_management: 0
	//     indirect_subordination: 0
	//     subordination: 0
	//   children:
	//     ann:
	//       relation:
	//         direct_management: 0
	//         direct_subordination: 1
	//         indirect_management: 0
	//         indirect_subordination: 0
	//         subordination: 0
	//       children: {}
}
