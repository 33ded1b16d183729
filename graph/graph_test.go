package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmaojo/fast-sssp/graph"
)

func TestBuilder_InvalidVertex(t *testing.T) {
	b := graph.NewBuilder(3)
	err := b.AddEdge(0, 5, 1)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)

	err = b.AddEdge(-1, 1, 1)
	require.ErrorIs(t, err, graph.ErrInvalidVertex)
}

func TestBuilder_NegativeWeight(t *testing.T) {
	b := graph.NewBuilder(2)
	err := b.AddEdge(0, 1, -3)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestBuilder_Build_CSRLayout(t *testing.T) {
	b := graph.NewBuilder(4)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(0, 2, 4))
	require.NoError(t, b.AddEdge(1, 2, 2))
	require.NoError(t, b.AddEdge(1, 3, 7))
	require.NoError(t, b.AddEdge(2, 3, 3))

	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 5, g.EdgeCount())

	e0 := g.OutEdges(0)
	require.Len(t, e0, 2)
	require.Equal(t, graph.Edge{To: 1, Weight: 1}, e0[0])
	require.Equal(t, graph.Edge{To: 2, Weight: 4}, e0[1])

	require.Empty(t, g.OutEdges(3))
}

func TestBuilder_SelfLoopAndParallelEdgesAccepted(t *testing.T) {
	b := graph.NewBuilder(2)
	require.NoError(t, b.AddEdge(0, 0, 3)) // self-loop, contributes nothing
	require.NoError(t, b.AddEdge(0, 1, 5))
	require.NoError(t, b.AddEdge(0, 1, 2)) // parallel edge, min wins at relax time

	g, err := b.Build()
	require.NoError(t, err)
	require.Len(t, g.OutEdges(0), 3)
}

func TestForEachOutEdge_MatchesOutEdges(t *testing.T) {
	b := graph.NewBuilder(3)
	require.NoError(t, b.AddEdge(0, 1, 1))
	require.NoError(t, b.AddEdge(0, 2, 2))
	g, err := b.Build()
	require.NoError(t, err)

	var seen []graph.Edge
	g.ForEachOutEdge(0, func(to int, w float64) {
		seen = append(seen, graph.Edge{To: to, Weight: w})
	})
	require.Equal(t, g.OutEdges(0), seen)
}

func TestBuild_NegativeVertexCount(t *testing.T) {
	b := graph.NewBuilder(-1)
	_, err := b.Build()
	require.True(t, errors.Is(err, graph.ErrInvalidVertex))
}
