// Command orgentropy evaluates hierarchy entropy and the companion exercises
// (relation sets, dice information, ranking merge, concordance) from the
// command line.
//
//	orgentropy tree org.csv --format json
//	orgentropy table relations.csv
//	orgentropy convert org.csv org.yaml
//	orgentropy dice 1 2 3 4 5 6
//	orgentropy merge '["1",["2","3"]]' '[["1","2"],"3"]'
//	orgentropy concordance '[2,3,1]' '[1,2,3]' '[3,1,2]'
package main

import (
	"log/slog"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
