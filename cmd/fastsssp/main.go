// Command fastsssp is a small CLI around the sssp package: it reads a
// DIMACS .gr graph (or generates one), runs fast_sssp or classical
// Dijkstra, and prints distances or a benchmark comparison.
package main

import "context"

func main() {
	Execute(context.Background())
}
