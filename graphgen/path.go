package graphgen

import (
	"fmt"

	"github.com/pmaojo/fast-sssp/graph"
)

// minPathNodes is the smallest vertex count that forms an actual path.
const minPathNodes = 2

// Path builds a simple bidirectional path 0 - 1 - ... - (n-1): edges
// (i-1)->i and i->(i-1) for i=1..n-1, so every vertex is reachable from
// every other regardless of chosen source. n must be at least 2.
func Path(n int, opts ...Option) (*graph.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("graphgen: Path n=%d < min=%d", n, minPathNodes)
	}
	cfg := newConfig(opts)

	b := graph.NewBuilder(n)
	for i := 1; i < n; i++ {
		w := cfg.weightFn(cfg.rng)
		if err := b.AddEdge(i-1, i, w); err != nil {
			return nil, err
		}
		if err := b.AddEdge(i, i-1, w); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
