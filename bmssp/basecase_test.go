package bmssp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmaojo/fast-sssp/distance"
	"github.com/pmaojo/fast-sssp/graph"
)

func chainGraph(t *testing.T) *graph.Graph {
	b := graph.NewBuilder(5)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(1, 2, 1))
	require.NoError(t, b.AddEdge(2, 3, 1))
	require.NoError(t, b.AddEdge(3, 4, 1))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestMiniDijkstra_UnboundedFinalizesEverything(t *testing.T) {
	g := chainGraph(t)
	dt := distance.NewTable(5, 0)

	U, newBound := miniDijkstra(g, dt, []int{0}, math.Inf(1), 10)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, U)
	require.True(t, math.IsInf(newBound, 1))
	require.Equal(t, 4.0, dt.Dist(4))
}

func TestMiniDijkstra_LimitTightensBound(t *testing.T) {
	g := chainGraph(t)
	dt := distance.NewTable(5, 0)

	U, newBound := miniDijkstra(g, dt, []int{0}, math.Inf(1), 2)
	require.Len(t, U, 2)
	require.ElementsMatch(t, []int{0, 1}, U)
	require.Equal(t, 2.0, newBound) // smallest tentative key left outstanding (vertex 2)
}

func TestMiniDijkstra_BoundExcludesFartherVertices(t *testing.T) {
	g := chainGraph(t)
	dt := distance.NewTable(5, 0)

	U, newBound := miniDijkstra(g, dt, []int{0}, 2.5, 10)
	require.ElementsMatch(t, []int{0, 1, 2}, U)
	require.Equal(t, 2.5, newBound)
}

func TestBaseCase_BelowLimitReturnsBoundUnchanged(t *testing.T) {
	g := chainGraph(t)
	dt := distance.NewTable(5, 0)
	params := Params{K: 10, T: 2} // k^2+1 = 101, far above the 5-vertex chain

	newBound, U := baseCase(g, dt, params, math.Inf(1), []int{0})
	require.True(t, math.IsInf(newBound, 1))
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, U)
}

func TestBaseCase_AtLimitTightensToMaxFinalizedDistance(t *testing.T) {
	g := chainGraph(t)
	dt := distance.NewTable(5, 0)
	params := Params{K: 2, T: 2} // k^2+1 = 5, exactly the chain length

	newBound, U := baseCase(g, dt, params, math.Inf(1), []int{0})
	require.Len(t, U, 5)
	require.Equal(t, 4.0, newBound)
}
