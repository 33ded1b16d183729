package bmssp

import (
	"container/heap"

	"github.com/pmaojo/fast-sssp/distance"
	"github.com/pmaojo/fast-sssp/graph"
)

// nodeItem is a (vertex, tentative distance) pair held in the bounded
// Dijkstra heap.
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, using the
// lazy-decrease-key pattern: a tighter relaxation pushes a fresh entry
// rather than mutating one already in the heap, and stale entries are
// skipped on pop by comparing against the live distance table.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// miniDijkstra runs a bounded, limited binary-heap Dijkstra seeded from
// every vertex in sources at its current tentative distance. It finalizes
// at most limit vertices, and only relaxes edges whose tightened distance
// stays strictly below bound.
//
// Returns the vertices finalized during this call and a new bound: if the
// limit was reached, the smallest tentative key left outstanding (or bound
// if none remained); otherwise bound unchanged.
func miniDijkstra(g *graph.Graph, dt *distance.Table, sources []int, bound float64, limit int) (U []int, newBound float64) {
	pq := make(nodePQ, 0, limit*2+len(sources))
	heap.Init(&pq)
	for _, s := range sources {
		if dt.Dist(s) < bound {
			heap.Push(&pq, &nodeItem{vertex: s, dist: dt.Dist(s)})
		}
	}

	finalized := make(map[int]bool, limit)
	for pq.Len() > 0 && len(U) < limit {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.vertex, item.dist

		if finalized[u] || d > dt.Dist(u) || d >= bound {
			continue
		}

		finalized[u] = true
		U = append(U, u)

		g.ForEachOutEdge(u, func(v int, w float64) {
			nd, tightened := dt.Relax(u, v, w)
			if tightened && nd < bound {
				heap.Push(&pq, &nodeItem{vertex: v, dist: nd})
			}
		})
	}

	if len(U) < limit {
		return U, bound
	}

	newBound = bound
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if finalized[item.vertex] || item.dist > dt.Dist(item.vertex) {
			continue
		}
		newBound = item.dist
		break
	}
	return U, newBound
}

// baseCase is the level-0 BMSSP frame: a single-source bounded Dijkstra
// capped at k²+1 finalized vertices. If the cap is not reached, every
// vertex reachable under bound was finalized, so the bound is returned
// unchanged; otherwise the returned bound tightens to the largest distance
// among the finalized set, letting the caller split the remaining work.
func baseCase(g *graph.Graph, dt *distance.Table, params Params, bound float64, S []int) (newBound float64, U []int) {
	x := S[0]
	limit := params.K*params.K + 1

	U, _ = miniDijkstra(g, dt, []int{x}, bound, limit)
	if len(U) < limit {
		return bound, U
	}

	maxD := dt.Dist(U[0])
	for _, v := range U[1:] {
		if dt.Dist(v) > maxD {
			maxD = dt.Dist(v)
		}
	}
	return maxD, U
}
