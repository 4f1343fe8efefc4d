package cache

// Metrics exposes engine-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Hooks are called synchronously from Get/Set on the caller's goroutine.
type Metrics interface {
	Hit()
	Miss()
	// Evict reports one capacity eviction and the frequency the victim had.
	Evict(freq int)
	// Size reports the resident entry count and the current minimum frequency
	// (0 when the engine is empty).
	Size(entries, minFreq int)
}

// Logger is a minimal structured logger: a message plus key/value pairs.
// NoopLogger is used when Options.Logger is nil.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// Options configures the engine. Zero values are safe;
// defaults are applied in New():
//   - nil Metrics => NoopMetrics
//   - nil Logger  => NoopLogger
type Options[K comparable, V any] struct {
	// Capacity is the entry count limit. Zero yields an engine that never
	// admits anything; a negative value is rejected by New.
	Capacity int

	// OnEvict is called for every victim, after it has been unlinked and
	// before the admitted entry is inserted. Keep it lightweight.
	OnEvict func(k K, v V, freq int)

	Metrics Metrics
	Logger  Logger
}
