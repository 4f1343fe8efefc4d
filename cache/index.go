package cache

// keyIndex maps a key to the entry that owns it. It has no ordering;
// it only accelerates lookups for the engine.
type keyIndex[K comparable, V any] struct {
	m map[K]*entry[K, V]
}

func newKeyIndex[K comparable, V any](capacity int) keyIndex[K, V] {
	return keyIndex[K, V]{m: make(map[K]*entry[K, V], capacity)}
}

func (ix keyIndex[K, V]) lookup(k K) (*entry[K, V], bool) {
	e, ok := ix.m[k]
	return e, ok
}

func (ix keyIndex[K, V]) insert(k K, e *entry[K, V]) { ix.m[k] = e }

func (ix keyIndex[K, V]) remove(k K) { delete(ix.m, k) }

func (ix keyIndex[K, V]) len() int { return len(ix.m) }
