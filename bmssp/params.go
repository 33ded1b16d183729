// Package bmssp implements the bounded multi-source shortest path
// recursion: Find-Pivots, the block-based pull loop, and mini-Dijkstra as
// its base case.
package bmssp

// Params holds the frame parameters k and t, derived once by the caller
// and threaded through the recursion unchanged rather than recomputed at
// every level.
type Params struct {
	K int
	T int
}
