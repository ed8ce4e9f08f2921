// Command gridpath generates obstacle grids and compares uniform-cost search
// with heuristic-guided search on them.
//
// Usage:
//
//	gridpath generate --size 20 --seed 7
//	gridpath run --mode adaptive --grid-file maze.txt --start 0,0 --goal 9,9
//	gridpath compare --config gridpath.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}
