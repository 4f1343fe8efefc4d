// Package cache provides a bounded, generic, in-memory key/value cache
// that evicts the least frequently used entry when full, breaking ties by
// recency (the entry touched longest ago goes first).
//
// Design
//
//   - Storage: a map[K]*entry index for lookups plus one intrusive doubly
//     linked list per access frequency. Each list is ordered by recency:
//     head is the most recently touched entry at that level, tail the least.
//
//   - Frequencies: a brand-new entry starts at 1. Every Get hit and every
//     Set of an existing key increments the frequency by one and moves the
//     entry to the head of the next level. Frequencies never decrease.
//
//   - Eviction: the engine tracks the smallest frequency that has entries.
//     Admitting a new key into a full cache removes the tail of that level.
//     The frequency→list map is unbounded, so heavily used entries never
//     fall out of reach of eviction.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Size signals.
//     NoopMetrics is the default; package metrics/prom exports them to
//     Prometheus.
//
//   - Callbacks: Options.OnEvict(k, v, freq) is called for every victim.
//
// Basic usage
//
//	c, err := cache.New[string, string](cache.Options[string, string]{Capacity: 2})
//	if err != nil {
//	    return err // negative capacity
//	}
//	c.Set("a", "1")
//	c.Set("b", "2")
//	c.Get("a")      // a -> freq 2
//	c.Set("c", "3") // evicts b (freq 1, oldest)
//	fmt.Print(c.Dump())
//
// Thread-safety & complexity
//
// An engine is NOT safe for concurrent use; guard it with one external
// mutex or give each goroutine its own engine. Get and Set cost O(1)
// amortized. After an eviction drains the lowest level, finding the next
// minimum walks the frequencies in use, which are at most Len().
package cache
