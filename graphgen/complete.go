package graphgen

import (
	"fmt"

	"github.com/pmaojo/fast-sssp/graph"
)

// minCompleteNodes is the smallest vertex count accepted.
const minCompleteNodes = 1

// Complete builds the complete directed graph K_n: an edge i->j for every
// ordered pair i != j.
func Complete(n int, opts ...Option) (*graph.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("graphgen: Complete n=%d < min=%d", n, minCompleteNodes)
	}
	cfg := newConfig(opts)

	b := graph.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := b.AddEdge(i, j, cfg.weightFn(cfg.rng)); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}

// RandomDense builds a graph by including every ordered pair i != j with
// a high fixed probability p (recommended p >= 0.5), giving a dense but
// not necessarily complete directed graph — the "random dense" oracle
// agreement fixture.
func RandomDense(n int, p float64, opts ...Option) (*graph.Graph, error) {
	return RandomSparse(n, p, opts...)
}
