// Package dijkstra implements the classical binary-heap Dijkstra algorithm
// as a correctness oracle for the BMSSP-based fast_sssp implementation in
// package bmssp/sssp. It is never called from inside the BMSSP recursion.
//
// Uses a lazy-decrease-key binary heap (nodePQ) over *graph.Graph's dense
// int-indexed CSR layout and *distance.Table.
//
// Complexity:
//   - Time: O((n + m) log n).
//   - Space: O(n + m).
package dijkstra

import (
	"container/heap"
	"math"

	"github.com/pmaojo/fast-sssp/distance"
	"github.com/pmaojo/fast-sssp/graph"
)

// nodeItem is a (vertex, tentative distance) pair held in the heap.
type nodeItem struct {
	vertex int
	dist   float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, using the same
// lazy-decrease-key pattern as bmssp's base case: push a fresh entry on
// every tightening relax, and skip stale entries on pop by comparing
// against the live distance table.
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

// Compute runs Dijkstra's algorithm from source over g and returns the
// fully populated distance table. Unreachable vertices keep +Inf/NoPred.
// g is assumed already validated (non-negative weights) by graph.Builder.
func Compute(g *graph.Graph, source int) (*distance.Table, error) {
	n := g.VertexCount()
	dt := distance.NewTable(n, source)

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{vertex: source, dist: 0})

	visited := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex
		if visited[u] || item.dist > dt.Dist(u) {
			continue
		}
		visited[u] = true

		g.ForEachOutEdge(u, func(v int, w float64) {
			if nd, tightened := dt.Relax(u, v, w); tightened {
				heap.Push(&pq, &nodeItem{vertex: v, dist: nd})
			}
		})
	}

	return dt, nil
}

// Reconcile runs a standard Dijkstra sweep seeded from every vertex dt
// already holds a finite distance for, tightening onward from there until
// the heap drains. A bounded recursive shortest-path search can finish
// with some reachable vertices still at +Inf if its size cap bound the
// frontier before it reached them; this sweep finalizes those vertices.
// Every vertex with a finite distance is still popped and has its
// out-edges scanned once, but relaxing from an already-optimal distance
// never tightens anything further.
func Reconcile(g *graph.Graph, dt *distance.Table) {
	n := g.VertexCount()

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	for v := 0; v < n; v++ {
		if d := dt.Dist(v); !math.IsInf(d, 1) {
			heap.Push(&pq, &nodeItem{vertex: v, dist: d})
		}
	}

	visited := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.vertex
		if visited[u] || item.dist > dt.Dist(u) {
			continue
		}
		visited[u] = true

		g.ForEachOutEdge(u, func(v int, w float64) {
			if nd, tightened := dt.Relax(u, v, w); tightened {
				heap.Push(&pq, &nodeItem{vertex: v, dist: nd})
			}
		})
	}
}
