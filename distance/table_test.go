package distance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pmaojo/fast-sssp/distance"
)

func TestNewTable_SourceZeroRestInf(t *testing.T) {
	tbl := distance.NewTable(4, 1)
	require.Equal(t, 0.0, tbl.Dist(1))
	require.Equal(t, distance.NoPred, tbl.Pred(1))
	for _, v := range []int{0, 2, 3} {
		require.True(t, math.IsInf(tbl.Dist(v), 1))
	}
}

func TestRelax_TightensAndSetsPred(t *testing.T) {
	tbl := distance.NewTable(3, 0)
	d, tightened := tbl.Relax(0, 1, 5)
	require.True(t, tightened)
	require.Equal(t, 5.0, d)
	require.Equal(t, int32(0), tbl.Pred(1))

	// A worse candidate does not tighten.
	_, tightened = tbl.Relax(0, 1, 10)
	require.False(t, tightened)
	require.Equal(t, 5.0, tbl.Dist(1))

	// A strictly better candidate tightens again.
	d, tightened = tbl.Relax(0, 1, 2)
	require.True(t, tightened)
	require.Equal(t, 2.0, d)
}

func TestRelax_TieDoesNotOverwritePred(t *testing.T) {
	tbl := distance.NewTable(3, 0)
	tbl.Relax(0, 1, 3)
	require.Equal(t, int32(0), tbl.Pred(1))

	// Equal candidate distance from a different predecessor must not win.
	_, tightened := tbl.Relax(2, 1, 3)
	require.False(t, tightened)
	require.Equal(t, int32(0), tbl.Pred(1))
}

func TestSnapshot_IsIndependentCopy(t *testing.T) {
	tbl := distance.NewTable(2, 0)
	tbl.Relax(0, 1, 4)
	d, pred := tbl.Snapshot()
	tbl.Relax(0, 1, 1)
	require.Equal(t, 4.0, d[1])
	require.Equal(t, int32(0), pred[1])
	require.Equal(t, 1.0, tbl.Dist(1))
}
