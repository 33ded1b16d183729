package dstructure_test

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/pmaojo/fast-sssp/dstructure"
)

func TestInsertAndPull_OrdersBySmallestKeyFirst(t *testing.T) {
	d := dstructure.New(2, 100)
	d.Insert(1, 5)
	d.Insert(2, 1)
	d.Insert(3, 3)
	require.Equal(t, 3, d.Len())

	vs, sep := d.Pull()
	sort.Ints(vs)
	require.Equal(t, []int{2, 3}, vs)
	require.Equal(t, 5.0, sep)
	require.Equal(t, 1, d.Len())

	vs, sep = d.Pull()
	require.Equal(t, []int{1}, vs)
	require.Equal(t, 100.0, sep) // B, fewer than m items remained
	require.True(t, d.Empty())
}

func TestInsert_KeyAtOrAboveBoundIsDropped(t *testing.T) {
	d := dstructure.New(4, 10)
	d.Insert(1, 10)
	d.Insert(2, 15)
	require.True(t, d.Empty())
}

func TestInsert_SmallerKeySupersedesOlder(t *testing.T) {
	d := dstructure.New(4, 100)
	d.Insert(1, 9)
	d.Insert(1, 3)
	d.Insert(1, 20) // worse, ignored

	vs, _ := d.Pull()
	require.Equal(t, []int{1}, vs)
}

func TestBatchPrepend_DeduplicatesToSmallestKeyPerVertex(t *testing.T) {
	d := dstructure.New(4, 100)
	d.BatchPrepend([]dstructure.Item{
		{Vertex: 1, Key: 8},
		{Vertex: 1, Key: 2},
		{Vertex: 2, Key: 5},
	})
	require.Equal(t, 2, d.Len())

	vs, _ := d.Pull()
	sort.Ints(vs)
	require.Equal(t, []int{1, 2}, vs)
}

func TestBatchPrepend_ComesOutBeforeExistingD1Entries(t *testing.T) {
	d := dstructure.New(1, 100)
	d.Insert(10, 50)
	d.BatchPrepend([]dstructure.Item{{Vertex: 20, Key: 1}})

	vs, _ := d.Pull()
	require.Equal(t, []int{20}, vs)
}

func TestSplit_KeepsEveryVertexRetrievable(t *testing.T) {
	d := dstructure.New(2, 1000)
	n := 50
	for v := 0; v < n; v++ {
		d.Insert(v, float64(n-v))
	}
	require.Equal(t, n, d.Len())

	seen := make(map[int]bool)
	for !d.Empty() {
		vs, _ := d.Pull()
		for _, v := range vs {
			require.False(t, seen[v], "vertex %d pulled twice", v)
			seen[v] = true
		}
	}
	require.Len(t, seen, n)
}

// Pull never returns keys out of order across successive calls: every
// vertex pulled in round i has key <= separator_i <= every key pulled in
// round i+1.
func TestProperty_SuccessivePullsAreNonDecreasing(t *testing.T) {
	f := func(keys []uint16) bool {
		if len(keys) == 0 || len(keys) > 200 {
			return true
		}
		d := dstructure.New(3, 1<<20)
		for i, k := range keys {
			d.Insert(i, float64(k))
		}
		prevSep := -1.0
		for !d.Empty() {
			vs, sep := d.Pull()
			if prevSep >= 0 && sep < prevSep {
				return false
			}
			for _, v := range vs {
				if k := float64(keys[v]); k < prevSep || k > sep {
					return false
				}
			}
			prevSep = sep
		}
		return true
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 200}))
}
