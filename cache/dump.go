package cache

import (
	"fmt"
	"strings"
)

// Item is one key/value pair in a Snapshot.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// Level lists the entries sharing one frequency, most recently touched first.
type Level[K comparable, V any] struct {
	Freq  int
	Items []Item[K, V]
}

// Snapshot is a diagnostic copy of the engine layout. It is meant for
// humans and tests; the engine never reads it back.
type Snapshot[K comparable, V any] struct {
	Capacity int
	Len      int

	// MinFreq is 0 when the engine is empty.
	MinFreq int

	// Levels are ordered by ascending frequency; empty levels are omitted.
	Levels []Level[K, V]
}

// Dump copies the current layout. It does not count as an access and
// costs O(Len + F log F) where F is the number of distinct frequencies.
func (c *LFU[K, V]) Dump() Snapshot[K, V] {
	s := Snapshot[K, V]{
		Capacity: c.cap,
		Len:      c.len,
		MinFreq:  c.buckets.min,
	}
	for _, f := range c.buckets.frequencies() {
		b := c.buckets.levels[f]
		lvl := Level[K, V]{Freq: f, Items: make([]Item[K, V], 0, b.len())}
		for e := b.head; e != nil; e = e.next {
			lvl.Items = append(lvl.Items, Item[K, V]{Key: e.key, Value: e.val})
		}
		s.Levels = append(s.Levels, lvl)
	}
	return s
}

// Keys returns the keys of a level in bucket order.
func (l Level[K, V]) Keys() []K {
	ks := make([]K, len(l.Items))
	for i, it := range l.Items {
		ks[i] = it.Key
	}
	return ks
}

// String renders the snapshot as:
//
//	LFU cache (capacity: 2, size: 2):
//	freq 1: c:3
//	freq 2: a:1
//	min frequency: 1
func (s Snapshot[K, V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "LFU cache (capacity: %d, size: %d):\n", s.Capacity, s.Len)
	for _, lvl := range s.Levels {
		fmt.Fprintf(&sb, "freq %d:", lvl.Freq)
		for _, it := range lvl.Items {
			fmt.Fprintf(&sb, " %v:%v", it.Key, it.Value)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "min frequency: %d\n", s.MinFreq)
	return sb.String()
}
