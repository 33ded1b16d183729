// Package graph provides the CSR (compressed sparse row) directed-graph
// representation shared by the bmssp, sssp, and dijkstra packages.
package graph
