// Package distance holds the tentative-distance and predecessor arrays
// shared by every frame of the BMSSP recursion and by the classical
// Dijkstra oracle. It is the one long-lived mutable structure in the whole
// computation: every write is a relaxation, so d[v] only ever decreases,
// and no locking is needed because a single call stack performs every
// mutation.
package distance

import "math"

// NoPred marks the absence of a predecessor (the source, or an
// unreached vertex).
const NoPred = int32(-1)

// Table holds d[v] (tentative shortest distance from the source) and
// pred[v] (the edge's tail that last tightened d[v]) for every vertex.
type Table struct {
	d    []float64
	pred []int32
}

// NewTable allocates a Table for n vertices with d[source] = 0 and every
// other distance +Inf, pred all NoPred.
func NewTable(n, source int) *Table {
	d := make([]float64, n)
	pred := make([]int32, n)
	for v := range d {
		d[v] = math.Inf(1)
		pred[v] = NoPred
	}
	d[source] = 0
	return &Table{d: d, pred: pred}
}

// Len returns the number of vertices the table was sized for.
func (t *Table) Len() int { return len(t.d) }

// Dist returns the current tentative distance of v.
func (t *Table) Dist(v int) float64 { return t.d[v] }

// Pred returns the current predecessor of v, or NoPred.
func (t *Table) Pred(v int) int32 { return t.pred[v] }

// Relax attempts to tighten d[v] via the edge (u, v, w). It uses strict
// less-than: ties never overwrite pred[v], which keeps relaxation
// order-independent and oracle agreement deterministic. Returns the
// (possibly unchanged) distance of v and whether this call tightened it.
func (t *Table) Relax(u, v int, w float64) (newDist float64, tightened bool) {
	cand := t.d[u] + w
	if cand < t.d[v] {
		t.d[v] = cand
		t.pred[v] = int32(u)
		return cand, true
	}
	return t.d[v], false
}

// Snapshot returns copies of the current d and pred arrays, safe for the
// caller to retain after the Table is mutated further.
func (t *Table) Snapshot() (d []float64, pred []int32) {
	d = make([]float64, len(t.d))
	pred = make([]int32, len(t.pred))
	copy(d, t.d)
	copy(pred, t.pred)
	return d, pred
}
