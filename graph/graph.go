// Package graph defines the immutable directed Graph type that BMSSP and
// the classical Dijkstra oracle both operate on.
//
// Graph uses a compressed-sparse-row layout: vertices are dense indices
// 0..n-1, and the out-edges of vertex v live in head[offsets[v]:offsets[v+1]]
// / weight[offsets[v]:offsets[v+1]]. The layout is built once via Builder
// and never mutated afterward, so OutEdges needs no locking.
//
// Complexity:
//   - Build: O(V + E) time and space.
//   - OutEdges(v): O(deg(v)), since it copies the edges into a new slice.
package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction. Callers branch on these with
// errors.Is; context is attached via fmt.Errorf("%w: ...") at the call site.
var (
	// ErrInvalidVertex indicates a vertex index outside [0, n).
	ErrInvalidVertex = errors.New("graph: vertex index out of range")

	// ErrInvalidEdge indicates a structurally malformed edge.
	ErrInvalidEdge = errors.New("graph: invalid edge")

	// ErrNegativeWeight indicates a negative edge weight, which BMSSP and
	// Dijkstra both require to be absent.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// Edge is a single out-edge: the target vertex and its non-negative weight.
type Edge struct {
	To     int
	Weight float64
}

// Graph is an immutable directed graph in CSR form.
type Graph struct {
	n       int
	offsets []int32 // len n+1
	head    []int32 // len m
	weight  []float64
}

// VertexCount returns n, the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns m, the number of directed edges (parallel edges and
// self-loops are each counted once).
func (g *Graph) EdgeCount() int { return len(g.head) }

// OutEdges returns the out-edges of v in the order they were added to the
// Builder. The returned slice is freshly allocated on every call, so the
// caller may keep or modify it without affecting the Graph.
func (g *Graph) OutEdges(v int) []Edge {
	lo, hi := g.offsets[v], g.offsets[v+1]
	edges := make([]Edge, 0, hi-lo)
	for e := lo; e < hi; e++ {
		edges = append(edges, Edge{To: int(g.head[e]), Weight: g.weight[e]})
	}
	return edges
}

// ForEachOutEdge invokes fn for every out-edge of v, in storage order,
// without allocating an intermediate slice. BMSSP's hot relax loops use
// this instead of OutEdges.
func (g *Graph) ForEachOutEdge(v int, fn func(to int, w float64)) {
	lo, hi := g.offsets[v], g.offsets[v+1]
	for e := lo; e < hi; e++ {
		fn(int(g.head[e]), g.weight[e])
	}
}

// rawEdge is a pre-validation edge captured by the Builder.
type rawEdge struct {
	from, to int
	weight   float64
}

// Builder accumulates edges and produces an immutable Graph via Build.
// Every AddEdge is checked immediately, and Build only assembles CSR
// arrays from already-valid data.
type Builder struct {
	n     int
	edges []rawEdge
}

// NewBuilder returns a Builder for a graph with n vertices (0..n-1).
func NewBuilder(n int) *Builder {
	return &Builder{n: n}
}

// AddEdge stages a directed edge u->v with weight w. Self-loops (u == v)
// are accepted — they simply never help any relaxation, since d[u]+w >=
// d[u] for w >= 0. Parallel edges are accepted; relaxation naturally keeps
// whichever copy yields the smaller distance.
func (b *Builder) AddEdge(u, v int, w float64) error {
	if u < 0 || u >= b.n {
		return fmt.Errorf("%w: u=%d (n=%d)", ErrInvalidVertex, u, b.n)
	}
	if v < 0 || v >= b.n {
		return fmt.Errorf("%w: v=%d (n=%d)", ErrInvalidVertex, v, b.n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, v, w)
	}
	b.edges = append(b.edges, rawEdge{from: u, to: v, weight: w})
	return nil
}

// Build assembles the CSR layout from the staged edges and returns the
// finished immutable Graph. The Builder may be reused afterward; Build
// takes a snapshot of the edges added so far.
func (b *Builder) Build() (*Graph, error) {
	n := b.n
	if n < 0 {
		return nil, fmt.Errorf("%w: vertex_count=%d", ErrInvalidVertex, n)
	}

	// Counting-sort the staged edges into CSR buckets by source vertex.
	// Two passes: count out-degree per vertex to build offsets, then place
	// each edge at its vertex's next free slot. Edges sharing a source
	// land in the order they were added to the Builder (insertion order).
	offsets := make([]int32, n+1)
	for _, e := range b.edges {
		offsets[e.from+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	head := make([]int32, len(b.edges))
	weight := make([]float64, len(b.edges))
	cursor := make([]int32, n)
	copy(cursor, offsets[:n])
	for _, e := range b.edges {
		pos := cursor[e.from]
		head[pos] = int32(e.to)
		weight[pos] = e.weight
		cursor[e.from]++
	}

	return &Graph{n: n, offsets: offsets, head: head, weight: weight}, nil
}
