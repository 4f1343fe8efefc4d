package cache

// entry is an intrusive doubly linked list element owned by the engine.
// It lives in the key index and in exactly one frequency bucket: the one
// keyed by freq.
type entry[K comparable, V any] struct {
	key K
	val V

	// Access count. Starts at 1 on admission and only ever grows.
	freq int

	// Intrusive bucket links: front is the most recently touched entry,
	// back the least recently touched one.
	prev *entry[K, V]
	next *entry[K, V]
}
