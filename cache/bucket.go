package cache

// bucket holds every entry currently at one frequency level, ordered by
// recency (head = most recently touched, tail = least). All operations are
// O(1); removal needs only the entry pointer, no scan.
type bucket[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	n    int
}

// pushFront links e in as the most recently touched member.
func (b *bucket[K, V]) pushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = b.head
	if b.head != nil {
		b.head.prev = e
	}
	b.head = e
	if b.tail == nil {
		b.tail = e
	}
	b.n++
}

// remove unlinks e. e must be a member of b.
func (b *bucket[K, V]) remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		b.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		b.tail = e.prev
	}
	e.prev, e.next = nil, nil
	b.n--
}

// popBack unlinks and returns the least recently touched member,
// or nil if the bucket is empty.
func (b *bucket[K, V]) popBack() *entry[K, V] {
	e := b.tail
	if e == nil {
		return nil
	}
	b.remove(e)
	return e
}

func (b *bucket[K, V]) empty() bool { return b.n == 0 }

func (b *bucket[K, V]) len() int { return b.n }
