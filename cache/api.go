package cache

// Cache is a bounded in-memory key/value cache with LFU eviction.
// Ties among equally frequent entries are broken by recency: the entry
// touched longest ago is evicted first.
//
// Implementations are NOT safe for concurrent use. Callers that share one
// Cache between goroutines must serialize every call themselves.
//
// Get and Set run in amortized O(1): a map lookup plus constant-time
// list splices. The only non-constant step is picking the next minimum
// frequency after an eviction drains the lowest bucket, which is bounded
// by the number of distinct frequencies currently held.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a presence flag.
	// On hit, the entry's frequency grows by one and it becomes the most
	// recently touched entry at its new level. A miss changes nothing.
	Get(k K) (V, bool)

	// Set inserts or updates k→v. Updating counts as an access.
	// Admitting a new key into a full cache evicts the least frequently
	// used entry first. With zero capacity Set does nothing.
	Set(k K, v V)

	// Peek returns the value for k without counting an access.
	Peek(k K) (V, bool)

	// Frequency returns the access count recorded for k.
	Frequency(k K) (int, bool)

	// Len returns the number of resident entries.
	Len() int

	// Capacity returns the entry limit given at construction.
	Capacity() int

	// Stats returns a copy of the hit/miss/eviction counters.
	Stats() Stats

	// Dump returns a diagnostic view of every frequency level.
	Dump() Snapshot[K, V]
}
