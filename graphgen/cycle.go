package graphgen

import (
	"fmt"

	"github.com/pmaojo/fast-sssp/graph"
)

// minCycleNodes is the smallest vertex count that forms a genuine ring.
const minCycleNodes = 3

// Cycle builds a bidirectional n-vertex ring: edges i->(i+1)%n and
// (i+1)%n->i for i=0..n-1. n must be at least 3.
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("graphgen: Cycle n=%d < min=%d", n, minCycleNodes)
	}
	cfg := newConfig(opts)

	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		w := cfg.weightFn(cfg.rng)
		if err := b.AddEdge(i, j, w); err != nil {
			return nil, err
		}
		if err := b.AddEdge(j, i, w); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
