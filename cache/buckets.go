package cache

import "slices"

// buckets groups entries by access frequency and tracks the smallest
// frequency that has a non-empty bucket.
//
// Only frequencies currently in use have a bucket: a bucket that drains is
// dropped from the map, so len(levels) is the number of distinct
// frequencies held by the engine. The map is unbounded; an entry stays
// reachable for eviction no matter how often it was accessed.
type buckets[K comparable, V any] struct {
	levels map[int]*bucket[K, V]

	// min is the eviction cursor. 0 means "no entries".
	min int
}

func newBuckets[K comparable, V any]() buckets[K, V] {
	return buckets[K, V]{levels: make(map[int]*bucket[K, V])}
}

// bucket returns the bucket for freq, creating an empty one if needed.
func (bs *buckets[K, V]) bucket(freq int) *bucket[K, V] {
	b, ok := bs.levels[freq]
	if !ok {
		b = &bucket[K, V]{}
		bs.levels[freq] = b
	}
	return b
}

// admit places a brand-new entry at the front of bucket 1.
// A new entry is always a minimum candidate, so min resets to 1.
func (bs *buckets[K, V]) admit(e *entry[K, V]) {
	e.freq = 1
	bs.bucket(1).pushFront(e)
	bs.min = 1
}

// promote moves e from bucket f to the front of bucket f+1.
// If bucket f drains and was the minimum, the minimum becomes f+1,
// which is exactly where e now lives.
func (bs *buckets[K, V]) promote(e *entry[K, V]) {
	old := e.freq
	if b := bs.levels[old]; b != nil {
		b.remove(e)
		if b.empty() {
			delete(bs.levels, old)
			if old == bs.min {
				bs.min = old + 1
			}
		}
	}
	e.freq = old + 1
	bs.bucket(e.freq).pushFront(e)
}

// victim unlinks and returns the least recently touched entry of the
// minimum-frequency bucket, or nil when there is nothing to evict.
func (bs *buckets[K, V]) victim() *entry[K, V] {
	b := bs.levels[bs.min]
	if b == nil {
		return nil
	}
	e := b.popBack()
	if b.empty() {
		delete(bs.levels, bs.min)
		bs.min = bs.nextMin(bs.min)
	}
	return e
}

// nextMin returns the smallest frequency above floor that still has a
// bucket, or 0 when no bucket is left. It walks the frequencies in use,
// so its cost is bounded by their number rather than by capacity or by
// the gap between consecutive frequencies.
func (bs *buckets[K, V]) nextMin(floor int) int {
	next := 0
	for f := range bs.levels {
		if f > floor && (next == 0 || f < next) {
			next = f
		}
	}
	return next
}

// frequencies returns the frequencies in use in ascending order.
func (bs *buckets[K, V]) frequencies() []int {
	fs := make([]int, 0, len(bs.levels))
	for f := range bs.levels {
		fs = append(fs, f)
	}
	slices.Sort(fs)
	return fs
}
