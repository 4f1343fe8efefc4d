package cache

// LFU is the least-frequently-used eviction engine.
//
// It owns every entry exclusively. The key index and the frequency buckets
// only reference entries, and no structure is ever shared between two
// engines. LFU is not synchronized; see Cache.
type LFU[K comparable, V any] struct {
	index   keyIndex[K, V]
	buckets buckets[K, V]
	len     int
	cap     int

	stats Stats
	opt   Options[K, V]
}

// New constructs an engine with the provided Options.
// Defaults:
//   - nil Metrics -> NoopMetrics
//   - nil Logger  -> NoopLogger
//
// A negative Capacity is a configuration error and is never clamped.
func New[K comparable, V any](opt Options[K, V]) (*LFU[K, V], error) {
	if opt.Capacity < 0 {
		return nil, NewErrInvalidCapacity(opt.Capacity)
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = NoopLogger{}
	}

	c := &LFU[K, V]{
		index:   newKeyIndex[K, V](opt.Capacity),
		buckets: newBuckets[K, V](),
		cap:     opt.Capacity,
		opt:     opt,
	}
	opt.Logger.Debug("lfu: engine created", "capacity", opt.Capacity)
	return c, nil
}

// MustNew is like New but panics on invalid Options.
// Handy for tests and package-level variables.
func MustNew[K comparable, V any](opt Options[K, V]) *LFU[K, V] {
	c, err := New[K, V](opt)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value for k and promotes the entry on hit.
func (c *LFU[K, V]) Get(k K) (V, bool) {
	e, ok := c.index.lookup(k)
	if !ok {
		c.stats.Misses++
		c.opt.Metrics.Miss()
		var zero V
		return zero, false
	}
	c.buckets.promote(e)
	c.stats.Hits++
	c.opt.Metrics.Hit()
	c.reportSize()
	return e.val, true
}

// Set inserts or updates k→v.
func (c *LFU[K, V]) Set(k K, v V) {
	if c.cap == 0 {
		return
	}

	if e, ok := c.index.lookup(k); ok {
		// In-place update counts as an access.
		e.val = v
		c.buckets.promote(e)
		c.reportSize()
		return
	}

	if c.len >= c.cap {
		c.evict()
	}

	e := &entry[K, V]{key: k, val: v}
	c.buckets.admit(e)
	c.index.insert(k, e)
	c.len++
	c.reportSize()
}

// Peek returns the value for k without touching its frequency or recency.
func (c *LFU[K, V]) Peek(k K) (V, bool) {
	e, ok := c.index.lookup(k)
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Frequency returns the access count of k (1 right after admission).
func (c *LFU[K, V]) Frequency(k K) (int, bool) {
	e, ok := c.index.lookup(k)
	if !ok {
		return 0, false
	}
	return e.freq, true
}

// Len returns the number of resident entries.
func (c *LFU[K, V]) Len() int { return c.len }

// Capacity returns the entry limit.
func (c *LFU[K, V]) Capacity() int { return c.cap }

// Stats returns a copy of the engine counters.
func (c *LFU[K, V]) Stats() Stats { return c.stats }

// evict removes the victim: the least recently touched entry among those
// with the minimum frequency.
func (c *LFU[K, V]) evict() {
	e := c.buckets.victim()
	if e == nil {
		// len > 0 guarantees a victim; reaching this means the buckets and
		// the index disagree.
		c.opt.Logger.Error("lfu: no victim in a full engine", "len", c.len, "min_freq", c.buckets.min)
		return
	}
	c.index.remove(e.key)
	c.len--
	c.stats.Evictions++
	c.opt.Metrics.Evict(e.freq)
	c.opt.Logger.Debug("lfu: evicted", "key", e.key, "freq", e.freq)
	if cb := c.opt.OnEvict; cb != nil {
		cb(e.key, e.val, e.freq)
	}
}

func (c *LFU[K, V]) reportSize() { c.opt.Metrics.Size(c.len, c.buckets.min) }

// Compile-time check: ensure LFU implements Cache.
var _ Cache[string, string] = (*LFU[string, string])(nil)
