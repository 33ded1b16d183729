package graphgen

import (
	"fmt"
	"sort"

	"github.com/pmaojo/fast-sssp/graph"
)

// minScaleFreeSeed mirrors the other generators' minimum-parameter
// convention: the seed clique needs at least one vertex to attach to.
const minScaleFreeSeed = 1

// ScaleFree builds a directed Barabási-Albert-style graph: a seed clique
// of m0 vertices, then n-m0 further vertices each attaching m0 directed
// edges to existing vertices chosen with probability proportional to
// their current in-degree plus one (Laplace smoothing, so vertex 0 is
// never permanently unreachable from later attachments). Every new vertex
// also gets one incoming edge from a uniformly random earlier vertex, so the
// whole graph stays connected for SSSP purposes even though preferential
// attachment alone would leave some seed vertices as pure sinks.
//
// Preferential attachment is implemented directly over math/rand, using
// the same functional-option idiom (Option/config) and RNG determinism
// contract as the other topologies in this package.
func ScaleFree(n, m0 int, opts ...Option) (*graph.Graph, error) {
	if m0 < minScaleFreeSeed {
		return nil, fmt.Errorf("graphgen: ScaleFree m0=%d < min=%d", m0, minScaleFreeSeed)
	}
	if n < m0 {
		return nil, fmt.Errorf("graphgen: ScaleFree n=%d smaller than seed m0=%d", n, m0)
	}
	cfg := newConfig(opts)

	b := graph.NewBuilder(n)

	// Seed: a clique over the first m0 vertices so preferential attachment
	// has somewhere non-trivial to start from.
	for i := 0; i < m0; i++ {
		for j := 0; j < m0; j++ {
			if i == j {
				continue
			}
			if err := b.AddEdge(i, j, cfg.weightFn(cfg.rng)); err != nil {
				return nil, err
			}
		}
	}

	inDegree := make([]int, n)
	for v := 0; v < m0; v++ {
		inDegree[v] = m0 - 1
	}

	for v := m0; v < n; v++ {
		targets := pickPreferential(cfg, inDegree[:v], m0)
		for _, t := range targets {
			if err := b.AddEdge(v, t, cfg.weightFn(cfg.rng)); err != nil {
				return nil, err
			}
			inDegree[t]++
		}
		// Guarantee v itself is reachable from the rest of the graph.
		back := cfg.rng.Intn(v)
		if err := b.AddEdge(back, v, cfg.weightFn(cfg.rng)); err != nil {
			return nil, err
		}
		inDegree[v]++
	}

	return b.Build()
}

// pickPreferential draws up to m distinct targets from [0, len(inDegree))
// weighted by inDegree[i]+1 (roulette-wheel selection, resampling on
// collision since m is always small relative to len(inDegree)).
func pickPreferential(cfg config, inDegree []int, m int) []int {
	if m > len(inDegree) {
		m = len(inDegree)
	}
	chosen := make(map[int]bool, m)
	total := len(inDegree)
	for i := range inDegree {
		total += inDegree[i]
	}

	for len(chosen) < m {
		r := cfg.rng.Intn(total)
		cursor := 0
		pick := len(inDegree) - 1
		for i, d := range inDegree {
			cursor += d + 1
			if r < cursor {
				pick = i
				break
			}
		}
		chosen[pick] = true
	}

	out := make([]int, 0, len(chosen))
	for v := range chosen {
		out = append(out, v)
	}
	// Map iteration order is randomized; sort so weight draws below consume
	// cfg.rng in a fixed order and stay reproducible for a fixed seed.
	sort.Ints(out)
	return out
}
