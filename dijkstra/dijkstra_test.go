package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmaojo/fast-sssp/dijkstra"
	"github.com/pmaojo/fast-sssp/graph"
)

func buildDiamond(t *testing.T) *graph.Graph {
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(0, 2, 4))
	require.NoError(t, b.AddEdge(1, 2, 2))
	require.NoError(t, b.AddEdge(1, 3, 7))
	require.NoError(t, b.AddEdge(2, 3, 3))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestCompute_Diamond(t *testing.T) {
	g := buildDiamond(t)
	dt, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dt.Dist(0))
	require.Equal(t, 1.0, dt.Dist(1))
	require.Equal(t, 3.0, dt.Dist(2))
	require.Equal(t, 6.0, dt.Dist(3))
}

func TestCompute_Unreachable(t *testing.T) {
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 1, 2))
	require.NoError(t, b.AddEdge(2, 3, 5))
	g, err := b.Build()
	require.NoError(t, err)

	dt, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dt.Dist(0))
	require.Equal(t, 2.0, dt.Dist(1))
	require.True(t, math.IsInf(dt.Dist(2), 1))
	require.True(t, math.IsInf(dt.Dist(3), 1))
}

func TestCompute_ParallelEdgesMinWins(t *testing.T) {
	b := graph.NewBuilder(2)
	require.NoError(t, b.AddEdge(0, 1, 5))
	require.NoError(t, b.AddEdge(0, 1, 2))
	g, err := b.Build()
	require.NoError(t, err)

	dt, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, dt.Dist(1))
	require.Equal(t, int32(0), dt.Pred(1))
}

func TestCompute_SelfLoopIgnored(t *testing.T) {
	b := graph.NewBuilder(2)
	require.NoError(t, b.AddEdge(0, 0, 3))
	require.NoError(t, b.AddEdge(0, 1, 1))
	g, err := b.Build()
	require.NoError(t, err)

	dt, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dt.Dist(0))
	require.Equal(t, 1.0, dt.Dist(1))
}

func TestCompute_ZeroWeightCycle(t *testing.T) {
	b := graph.NewBuilder(3)
	require.NoError(t, b.AddEdge(0, 1, 0))
	require.NoError(t, b.AddEdge(1, 2, 0))
	require.NoError(t, b.AddEdge(2, 0, 0))
	g, err := b.Build()
	require.NoError(t, err)

	dt, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, dt.Dist(0))
	require.Equal(t, 0.0, dt.Dist(1))
	require.Equal(t, 0.0, dt.Dist(2))
}
