package bmssp

import (
	"context"
	"math"

	"github.com/pmaojo/fast-sssp/distance"
	"github.com/pmaojo/fast-sssp/dstructure"
	"github.com/pmaojo/fast-sssp/graph"
)

// Run executes one BMSSP frame at recursion level against a frontier S
// whose distances are already finalized and strictly below bound. It
// returns a tightened bound Bprime and the set U of vertices it finalized
// (at level 0 this can include a vertex at exactly Bprime); U always holds every vertex with true distance below
// Bprime, and |U| stays at or under k*2^(level*t) unless Bprime equals
// bound (full completion).
//
// ctx is checked once per frame; a cancelled context aborts the recursion
// immediately, leaving whatever partial relaxations already landed in dt
// as valid (if possibly loose) upper bounds.
func Run(ctx context.Context, g *graph.Graph, dt *distance.Table, params Params, level int, bound float64, S []int) (newBound float64, U []int, err error) {
	if err := ctx.Err(); err != nil {
		return bound, nil, err
	}

	if level == 0 {
		nb, u := baseCase(g, dt, params, bound, S)
		return nb, u, nil
	}

	P, W := findPivots(g, dt, S, bound, params.K)

	block := blockSize(level, params.T)
	d := dstructure.New(block, bound)
	for _, p := range P {
		d.Insert(p, dt.Dist(p))
	}

	lastChildBound := minDist(dt, P, bound)
	cap := levelCap(params.K, level, params.T)

	seen := make(map[int]bool, len(S))
	for !d.Empty() && len(U) < cap {
		si, bi := d.Pull()

		bPrimeI, ui, rerr := Run(ctx, g, dt, params, level-1, bi, si)
		if rerr != nil {
			return bound, nil, rerr
		}

		for _, v := range ui {
			if !seen[v] {
				seen[v] = true
				U = append(U, v)
			}
		}

		var batch []dstructure.Item
		for _, u := range ui {
			g.ForEachOutEdge(u, func(v int, w float64) {
				nd, tightened := dt.Relax(u, v, w)
				if !tightened || nd >= bound {
					return
				}
				switch {
				case nd >= bi:
					d.Insert(v, nd)
				case nd >= bPrimeI:
					batch = append(batch, dstructure.Item{Vertex: v, Key: nd})
				}
			})
		}
		for _, x := range si {
			dx := dt.Dist(x)
			if dx >= bPrimeI && dx < bi {
				batch = append(batch, dstructure.Item{Vertex: x, Key: dx})
			}
		}
		d.BatchPrepend(batch)

		lastChildBound = bPrimeI
	}

	newBound = bound
	if len(U) >= cap {
		newBound = math.Min(bound, lastChildBound)
	}

	for _, v := range W {
		if !seen[v] && dt.Dist(v) < newBound {
			seen[v] = true
			U = append(U, v)
		}
	}

	return newBound, U, nil
}

func minDist(dt *distance.Table, vertices []int, fallback float64) float64 {
	if len(vertices) == 0 {
		return fallback
	}
	m := dt.Dist(vertices[0])
	for _, v := range vertices[1:] {
		if dv := dt.Dist(v); dv < m {
			m = dv
		}
	}
	return m
}

// levelCap and blockSize guard against exponent overflow: level*t is
// bounded by the derived recursion depth in practice, far short of 62, but
// any caller-supplied override is clamped rather than trusted blindly.
func levelCap(k, level, t int) int {
	exp := level * t
	if exp > 30 {
		return math.MaxInt32
	}
	return k * (1 << uint(exp))
}

func blockSize(level, t int) int {
	if level <= 0 {
		return 1
	}
	exp := (level - 1) * t
	if exp > 30 {
		return math.MaxInt32
	}
	return 1 << uint(exp)
}
