package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmaojo/fast-sssp/graph"
	"github.com/pmaojo/fast-sssp/graphio"
)

const sampleGr = `c a small DIMACS graph
p sp 4 3
a 1 2 1
c another comment
a 2 3 2.5
a 1 3 10
`

func TestReadGr_ParsesArcsZeroBased(t *testing.T) {
	g, err := graphio.ReadGr(strings.NewReader(sampleGr))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, []graph.Edge{{To: 1, Weight: 1}, {To: 2, Weight: 10}}, g.OutEdges(0))
	require.Equal(t, []graph.Edge{{To: 2, Weight: 2.5}}, g.OutEdges(1))
}

func TestReadGr_NegativeWeight(t *testing.T) {
	src := "p sp 2 1\na 1 2 -3\n"
	_, err := graphio.ReadGr(strings.NewReader(src))
	require.ErrorIs(t, err, graphio.ErrNegativeWeight)
}

func TestReadGr_InvalidVertex(t *testing.T) {
	src := "p sp 2 1\na 1 9 3\n"
	_, err := graphio.ReadGr(strings.NewReader(src))
	require.ErrorIs(t, err, graphio.ErrInvalidVertex)
}

func TestReadGr_MissingProblemLine(t *testing.T) {
	src := "a 1 2 3\n"
	_, err := graphio.ReadGr(strings.NewReader(src))
	require.ErrorIs(t, err, graphio.ErrMissingProblemLine)
}

func TestWriteGr_RoundTrips(t *testing.T) {
	g, err := graphio.ReadGr(strings.NewReader(sampleGr))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGr(&buf, g))

	g2, err := graphio.ReadGr(&buf)
	require.NoError(t, err)
	require.Equal(t, g.VertexCount(), g2.VertexCount())
	require.Equal(t, g.EdgeCount(), g2.EdgeCount())
	for v := 0; v < g.VertexCount(); v++ {
		require.Equal(t, g.OutEdges(v), g2.OutEdges(v))
	}
}
