package graphgen

import (
	"fmt"

	"github.com/pmaojo/fast-sssp/graph"
)

// minRandomSparseVertices is the smallest vertex count accepted.
const minRandomSparseVertices = 1

// RandomSparse builds an Erdős-Rényi-style directed graph over n vertices:
// every ordered pair (i, j), i != j, is included independently with
// probability p. Edge-trial order is i ascending, then j ascending, so
// results are reproducible for a fixed seed.
func RandomSparse(n int, p float64, opts ...Option) (*graph.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("graphgen: RandomSparse n=%d < min=%d", n, minRandomSparseVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("graphgen: RandomSparse p=%g not in [0,1]", p)
	}
	cfg := newConfig(opts)

	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if cfg.rng.Float64() <= p {
				if err := b.AddEdge(i, j, cfg.weightFn(cfg.rng)); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build()
}
