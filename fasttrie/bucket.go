package fasttrie

import "sort"

// bucket is a sorted, duplicate-free sequence of uint64 values backed
// by a slice: bisect, membership and neighbor lookups in O(log k);
// insert and remove add an O(k) slice shift — k being the bucket size,
// kept at most 2w by the Y-fast layer, so the shift cost is O(w).
type bucket struct {
	values []uint64
}

func newBucket(values ...uint64) *bucket {
	b := &bucket{values: append([]uint64(nil), values...)}
	sort.Sort(uint64Slice(b.values))
	return b
}

func (b *bucket) len() int { return len(b.values) }

func (b *bucket) min() (uint64, bool) {
	if len(b.values) == 0 {
		return 0, false
	}
	return b.values[0], true
}

func (b *bucket) max() (uint64, bool) {
	if len(b.values) == 0 {
		return 0, false
	}
	return b.values[len(b.values)-1], true
}

// bisectLeft returns the index of the first value >= x.
func (b *bucket) bisectLeft(x uint64) int {
	return sort.Search(len(b.values), func(i int) bool { return b.values[i] >= x })
}

// bisectRight returns the index of the first value > x.
func (b *bucket) bisectRight(x uint64) int {
	return sort.Search(len(b.values), func(i int) bool { return b.values[i] > x })
}

func (b *bucket) contains(x uint64) bool {
	i := b.bisectLeft(x)
	return i < len(b.values) && b.values[i] == x
}

// insert adds x, reporting whether it was newly added.
func (b *bucket) insert(x uint64) bool {
	i := b.bisectLeft(x)
	if i < len(b.values) && b.values[i] == x {
		return false
	}
	b.values = append(b.values, 0)
	copy(b.values[i+1:], b.values[i:])
	b.values[i] = x
	return true
}

// remove deletes x, reporting whether it was present.
func (b *bucket) remove(x uint64) bool {
	i := b.bisectLeft(x)
	if i >= len(b.values) || b.values[i] != x {
		return false
	}
	b.values = append(b.values[:i], b.values[i+1:]...)
	return true
}

// predecessor returns the largest stored value strictly less than x.
func (b *bucket) predecessor(x uint64) (uint64, bool) {
	i := b.bisectLeft(x)
	if i == 0 {
		return 0, false
	}
	return b.values[i-1], true
}

// successor returns the smallest stored value strictly greater than x.
func (b *bucket) successor(x uint64) (uint64, bool) {
	i := b.bisectRight(x)
	if i == len(b.values) {
		return 0, false
	}
	return b.values[i], true
}

// splitAt halves the bucket, returning a new bucket holding the upper
// half. The split point is a plain len/2 midpoint, which is adequate
// given set semantics (no duplicate keys to weigh unevenly).
func (b *bucket) splitAt() *bucket {
	mid := len(b.values) / 2
	upper := append([]uint64(nil), b.values[mid:]...)
	b.values = b.values[:mid:mid]
	return &bucket{values: upper}
}

// merge absorbs other's values into b, which must sort entirely
// before or after b's own values (the Y-fast layer only merges
// adjacent buckets, never overlapping ones).
func (b *bucket) merge(other *bucket) {
	b.values = append(b.values, other.values...)
	sort.Sort(uint64Slice(b.values))
}

type uint64Slice []uint64

func (s uint64Slice) Len() int           { return len(s) }
func (s uint64Slice) Less(i, j int) bool { return s[i] < s[j] }
func (s uint64Slice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
