//go:build go1.18

package cache

import (
	"strings"
	"testing"
)

// Fuzz Set/Get/Peek semantics under arbitrary string inputs.
// Guards against panics and checks the invariants after every step.
// NOTE: key/value lengths are capped to keep memory bounded while fuzzing.
func FuzzLFU_SetGet(f *testing.F) {
	f.Add("", "", uint8(1))
	f.Add("a", "1", uint8(2))
	f.Add("αβγ", "δ", uint8(0))
	f.Add("emoji🙂", "🙂🙂", uint8(3))
	f.Add("long", strings.Repeat("x", 1024), uint8(16))

	f.Fuzz(func(t *testing.T, k, v string, capacity uint8) {
		const limit = 1 << 12
		if len(k) > limit {
			k = k[:limit]
		}
		if len(v) > limit {
			v = v[:limit]
		}

		c := newStringLFU(t, int(capacity%8))

		c.Set(k, v)
		checkInvariants(t, c)
		if c.Capacity() == 0 {
			if _, ok := c.Get(k); ok {
				t.Fatal("zero-capacity engine returned a hit")
			}
			return
		}

		got, ok := c.Get(k)
		if !ok || got != v {
			t.Fatalf("after Set/Get: want %q, got %q ok=%v", v, got, ok)
		}

		// Update with a derived value keeps one resident entry for k.
		n := c.Len()
		c.Set(k, v+"'")
		if c.Len() != n {
			t.Fatalf("update changed Len from %d to %d", n, c.Len())
		}
		if got, _ := c.Peek(k); got != v+"'" {
			t.Fatalf("after update: want %q, got %q", v+"'", got)
		}
		if f, _ := c.Frequency(k); f != 3 {
			t.Fatalf("Set, Get, Set must leave freq 3, got %d", f)
		}

		// Fill past capacity with distinct keys: k is the most frequent, so
		// it survives while anything else is still evictable.
		for i := 0; i < c.Capacity()+2; i++ {
			c.Set(k+"#"+strings.Repeat("i", i+1), "x")
			checkInvariants(t, c)
		}
		if c.Capacity() > 1 {
			if _, ok := c.Peek(k); !ok {
				t.Fatal("most frequent key must survive churn of freq-1 keys")
			}
		}
	})
}
