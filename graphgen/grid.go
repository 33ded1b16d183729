package graphgen

import (
	"fmt"

	"github.com/pmaojo/fast-sssp/graph"
)

// minGridDim is the smallest row/column count accepted.
const minGridDim = 1

// Grid builds a rows x cols orthogonal 4-neighborhood grid, vertex (r, c)
// mapped to index r*cols+c (row-major), with bidirectional edges to the
// right and bottom neighbor of every cell.
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("graphgen: Grid rows=%d cols=%d below min=%d", rows, cols, minGridDim)
	}
	cfg := newConfig(opts)

	n := rows * cols
	b := graph.NewBuilder(n)
	idx := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := idx(r, c)
			if c+1 < cols {
				v := idx(r, c+1)
				w := cfg.weightFn(cfg.rng)
				if err := b.AddEdge(u, v, w); err != nil {
					return nil, err
				}
				if err := b.AddEdge(v, u, w); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				v := idx(r+1, c)
				w := cfg.weightFn(cfg.rng)
				if err := b.AddEdge(u, v, w); err != nil {
					return nil, err
				}
				if err := b.AddEdge(v, u, w); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Build()
}
