package bmssp

import (
	"sort"

	"github.com/pmaojo/fast-sssp/distance"
	"github.com/pmaojo/fast-sssp/graph"
)

// findPivots performs k synchronous rounds of bounded relaxation outward
// from S (a level-by-level frontier walk, the weighted generalization of a
// plain BFS layer expansion), accumulating the work set W = S ∪ F1 ∪ ... ∪
// Fk. If W grew past k*|S|, every source is its own pivot. Otherwise a
// predecessor forest restricted to W selects as pivots the sources whose
// subtree holds at least k vertices, falling back to the single source
// with the largest subtree if none qualify.
func findPivots(g *graph.Graph, dt *distance.Table, S []int, bound float64, k int) (P, W []int) {
	visited := make(map[int]bool, len(S))
	for _, s := range S {
		visited[s] = true
	}
	W = append(W, S...)

	frontier := append([]int(nil), S...)
	for round := 0; round < k && len(frontier) > 0; round++ {
		var next []int
		for _, u := range frontier {
			g.ForEachOutEdge(u, func(v int, w float64) {
				nd := dt.Dist(u) + w
				if nd < bound && nd < dt.Dist(v) {
					dt.Relax(u, v, w)
					if !visited[v] {
						visited[v] = true
						W = append(W, v)
						next = append(next, v)
					}
				}
			})
		}
		frontier = next
	}

	if len(W) > k*len(S) {
		return append([]int(nil), S...), W
	}

	isSource := make(map[int]bool, len(S))
	for _, s := range S {
		isSource[s] = true
	}
	subtreeSize := make(map[int]int, len(S))
	for _, s := range S {
		subtreeSize[s] = 1
	}
	for _, v := range W {
		if isSource[v] {
			continue
		}
		if dt.Pred(v) == distance.NoPred {
			continue
		}
		subtreeSize[rootOf(dt, isSource, v)]++
	}

	for _, s := range S {
		if subtreeSize[s] >= k {
			P = append(P, s)
		}
	}
	if len(P) == 0 {
		best := S[0]
		for _, s := range S[1:] {
			if subtreeSize[s] > subtreeSize[best] {
				best = s
			}
		}
		P = []int{best}
	}

	sort.Ints(P)
	return P, W
}

// rootOf walks v's predecessor chain up to the source it descends from.
// Predecessors always point to a strictly-or-equally smaller distance, so
// the chain is acyclic in practice, but zero-weight edges can in principle
// produce a pointer cycle across separate relaxation rounds; the seen set
// guards against looping forever if that happens.
func rootOf(dt *distance.Table, isSource map[int]bool, v int) int {
	seen := map[int]bool{v: true}
	cur := v
	for {
		if isSource[cur] {
			return cur
		}
		p := dt.Pred(cur)
		if p == distance.NoPred {
			return cur
		}
		next := int(p)
		if seen[next] {
			return cur
		}
		seen[next] = true
		cur = next
	}
}
