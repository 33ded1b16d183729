// Package dstructure implements a block-based partial-sort queue: Insert,
// BatchPrepend, and Pull, amortized to O(log(N/M)) per element instead of
// the O(log n) a plain heap would cost, by fully sorting only
// block-representatives rather than every element.
//
// Two block sequences: D0 (batch-prepended blocks, always holding keys
// below every key in D1) and D1 (individually-inserted blocks, split by
// median on overflow), plus a map for O(1) membership and "smaller key
// supersedes" semantics.
package dstructure

import (
	"math"
	"sort"
)

// entry is one (vertex, key) pair tracked by the structure.
type entry struct {
	vertex int
	key    float64
}

// Item is one (vertex, key) pair passed to BatchPrepend.
type Item struct {
	Vertex int
	Key    float64
}

// located pairs an entry with the block it currently lives in, used while
// a Pull is in flight.
type located struct {
	e   entry
	blk *block
}

// block is a small, unordered bag of entries together with cached low/high
// bounds on the keys it holds: upper is what locates a D1 block for a new
// Insert, and low is what Pull reports as the next separator without
// having to rescan a block it isn't otherwise touching.
type block struct {
	items []entry
	upper float64 // every item.key <= upper; new inserts with key <= upper land here
	low   float64 // min(item.key for item in items), or +Inf if empty
}

// D is the block-based partial-sort queue. M is the target block size and
// B is the upper bound: Insert silently drops any key >= B.
type D struct {
	m int
	b float64

	d0 []*block // batch-prepended blocks, always below every D1 key
	d1 []*block // individually inserted blocks, ordered by ascending upper bound

	loc map[int]*block  // vertex -> the block currently holding it
	key map[int]float64 // vertex -> its current key, for O(1) supersede checks
}

// New constructs an empty D-structure with block-size target m and upper
// bound b. D1 starts with a single block so Insert always has somewhere
// to land.
func New(m int, b float64) *D {
	if m < 1 {
		m = 1
	}
	return &D{
		m:   m,
		b:   b,
		d1:  []*block{{upper: b, low: math.Inf(1)}},
		loc: make(map[int]*block),
		key: make(map[int]float64),
	}
}

// Len returns the number of distinct vertices currently tracked.
func (d *D) Len() int { return len(d.key) }

// Empty reports whether the structure holds no vertices.
func (d *D) Empty() bool { return len(d.key) == 0 }

// Insert places (v, key) into D1, unless key >= B (no-op) or v is already
// present with a key <= the new one (no-op — a smaller or equal key always
// wins).
func (d *D) Insert(v int, key float64) {
	if key >= d.b {
		return
	}
	if old, ok := d.key[v]; ok {
		if old <= key {
			return
		}
		d.removeFromBlock(v)
	}

	d.key[v] = key
	blk := d.findD1Block(key)
	blk.items = append(blk.items, entry{vertex: v, key: key})
	if key < blk.low {
		blk.low = key
	}
	d.loc[v] = blk

	if len(blk.items) > d.m {
		d.splitD1Block(blk)
	}
}

// BatchPrepend inserts a batch of (vertex, key) pairs known to all lie
// strictly below every key currently held by the structure. They are
// partitioned into one or more new blocks of size <= m via recursive
// median splits and prepended to D0. Duplicate vertices within items keep
// only their smallest key; duplicates against already-tracked vertices
// follow ordinary supersede-on-smaller-key semantics.
func (d *D) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}

	best := make(map[int]float64, len(items))
	for _, it := range items {
		if cur, ok := best[it.Vertex]; !ok || it.Key < cur {
			best[it.Vertex] = it.Key
		}
	}

	fresh := make([]entry, 0, len(best))
	for v, key := range best {
		if key >= d.b {
			continue
		}
		if old, ok := d.key[v]; ok {
			if old <= key {
				continue
			}
			d.removeFromBlock(v)
		}
		d.key[v] = key
		fresh = append(fresh, entry{vertex: v, key: key})
	}
	if len(fresh) == 0 {
		return
	}

	newBlocks := blockify(fresh, d.m)
	for _, blk := range newBlocks {
		for i := range blk.items {
			d.loc[blk.items[i].vertex] = blk
		}
	}
	d.d0 = append(newBlocks, d.d0...)
}

// Pull removes and returns up to m vertices with the smallest keys overall,
// as an unordered collection, together with the separator key: the
// smallest key among the structure's remaining contents (equal to the
// largest returned key when keys tie), or B if fewer than m items remained
// in total. Pulling an empty structure returns an empty collection and
// separator = B.
//
// D0 sits entirely below D1, and every block is itself below the next one
// in its sequence, so the smallest m items always live in a short prefix
// of blocks. Pull walks that prefix only: it accumulates whole blocks
// (each of size <= m by construction) until it has at least m items, sorts
// just that small candidate set to pick the exact smallest m, and reads
// the next block's cached low key for the separator instead of scanning
// or sorting the rest of the live set.
func (d *D) Pull() (vertices []int, separator float64) {
	if d.Empty() {
		return nil, d.b
	}

	ordered := make([]*block, 0, len(d.d0)+len(d.d1))
	ordered = append(ordered, d.d0...)
	ordered = append(ordered, d.d1...)

	var collected []*block
	total := 0
	cut := len(ordered)
	for i, blk := range ordered {
		if len(blk.items) == 0 {
			continue
		}
		collected = append(collected, blk)
		total += len(blk.items)
		if total >= d.m {
			cut = i + 1
			break
		}
	}
	rest := ordered[cut:]

	var all []located
	for _, blk := range collected {
		for _, e := range blk.items {
			all = append(all, located{e: e, blk: blk})
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].e.key < all[j].e.key })

	take := d.m
	if take > len(all) {
		take = len(all)
	}

	taken := all[:take]
	vertices = make([]int, 0, take)
	for _, r := range taken {
		vertices = append(vertices, r.e.vertex)
		delete(d.key, r.e.vertex)
		delete(d.loc, r.e.vertex)
	}

	switch {
	case take < len(all):
		separator = all[take].e.key
	default:
		separator = d.b
		for _, blk := range rest {
			if len(blk.items) > 0 {
				separator = blk.low
				break
			}
		}
	}

	d.rebuildAfterPull(taken)
	return vertices, separator
}

// findD1Block locates the D1 block whose upper bound a key should land in:
// the first block (in ascending-upper-bound order) whose upper bound is
// >= key, defaulting to the last block.
func (d *D) findD1Block(key float64) *block {
	for _, blk := range d.d1 {
		if key <= blk.upper {
			return blk
		}
	}
	return d.d1[len(d.d1)-1]
}

// splitD1Block performs a deterministic median split: select the median by
// value, keep the smaller half in place (with its upper bound lowered to
// the median), and insert a new block holding the larger half immediately
// after.
func (d *D) splitD1Block(blk *block) {
	sort.Slice(blk.items, func(i, j int) bool { return blk.items[i].key < blk.items[j].key })
	mid := len(blk.items) / 2
	medianKey := blk.items[mid].key

	upperHalf := make([]entry, len(blk.items)-mid)
	copy(upperHalf, blk.items[mid:])
	lowerHalf := blk.items[:mid]

	originalUpper := blk.upper
	blk.items = lowerHalf
	blk.upper = medianKey
	// blk.low is untouched: items were sorted ascending before splitting, so
	// the block's previous minimum is necessarily within the lower half.

	newBlk := &block{items: upperHalf, upper: originalUpper, low: medianKey}
	for i := range newBlk.items {
		d.loc[newBlk.items[i].vertex] = newBlk
	}

	idx := indexOfBlock(d.d1, blk)
	d.d1 = append(d.d1, nil)
	copy(d.d1[idx+2:], d.d1[idx+1:])
	d.d1[idx+1] = newBlk
}

// removeFromBlock deletes v's current entry from whichever block holds it,
// used when a smaller key supersedes an older one. If the removed entry
// held the block's cached low key, that cache is recomputed from the
// block's remaining items — at most m of them, so this stays cheap.
func (d *D) removeFromBlock(v int) {
	blk, ok := d.loc[v]
	if !ok {
		return
	}
	var removedKey float64
	for i, e := range blk.items {
		if e.vertex == v {
			removedKey = e.key
			blk.items = append(blk.items[:i], blk.items[i+1:]...)
			break
		}
	}
	delete(d.loc, v)
	if removedKey == blk.low {
		blk.low = blockLow(blk.items)
	}
}

// rebuildAfterPull drops now-empty blocks and removes the pulled entries
// from whichever block they came from, keeping D1 non-empty (Insert always
// needs a target block). Every block that lost items gets its cached low
// key recomputed from what remains.
func (d *D) rebuildAfterPull(taken []located) {
	touched := make(map[*block]bool, len(taken))
	for _, t := range taken {
		blk := t.blk
		for i, e := range blk.items {
			if e.vertex == t.e.vertex {
				blk.items = append(blk.items[:i], blk.items[i+1:]...)
				break
			}
		}
		touched[blk] = true
	}
	for blk := range touched {
		blk.low = blockLow(blk.items)
	}

	filtered := d.d0[:0]
	for _, blk := range d.d0 {
		if len(blk.items) > 0 {
			filtered = append(filtered, blk)
		}
	}
	d.d0 = filtered

	filtered1 := d.d1[:0]
	for _, blk := range d.d1 {
		if len(blk.items) > 0 {
			filtered1 = append(filtered1, blk)
		}
	}
	d.d1 = filtered1
	if len(d.d1) == 0 {
		d.d1 = []*block{{upper: d.b, low: math.Inf(1)}}
	}
}

// blockify partitions entries into blocks of size <= m, returning blocks in
// ascending order of their contents.
func blockify(entries []entry, m int) []*block {
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	var blocks []*block
	for len(entries) > 0 {
		n := m
		if n > len(entries) {
			n = len(entries)
		}
		chunk := make([]entry, n)
		copy(chunk, entries[:n])
		upper := chunk[len(chunk)-1].key
		low := chunk[0].key
		blocks = append(blocks, &block{items: chunk, upper: upper, low: low})
		entries = entries[n:]
	}
	return blocks
}

// blockLow scans items for their minimum key, or +Inf if items is empty.
// Block sizes are capped at m, so this scan is never more than O(m).
func blockLow(items []entry) float64 {
	if len(items) == 0 {
		return math.Inf(1)
	}
	low := items[0].key
	for _, e := range items[1:] {
		if e.key < low {
			low = e.key
		}
	}
	return low
}

func indexOfBlock(blocks []*block, target *block) int {
	for i, b := range blocks {
		if b == target {
			return i
		}
	}
	return -1
}
