package cache

import "testing"

func keysOf(b *bucket[string, int]) []string {
	var ks []string
	for e := b.head; e != nil; e = e.next {
		ks = append(ks, e.key)
	}
	return ks
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBucket_PushFrontPopBack(t *testing.T) {
	t.Parallel()

	b := &bucket[string, int]{}
	if !b.empty() || b.popBack() != nil {
		t.Fatal("new bucket must be empty")
	}

	a, c, d := &entry[string, int]{key: "a"}, &entry[string, int]{key: "c"}, &entry[string, int]{key: "d"}
	b.pushFront(a)
	b.pushFront(c)
	b.pushFront(d)
	if got := keysOf(b); !equalKeys(got, []string{"d", "c", "a"}) {
		t.Fatalf("order want [d c a], got %v", got)
	}

	if e := b.popBack(); e != a {
		t.Fatalf("popBack want a, got %v", e)
	}
	if a.prev != nil || a.next != nil {
		t.Fatal("popped entry must be unlinked")
	}
	if b.len() != 2 {
		t.Fatalf("len want 2, got %d", b.len())
	}
}

// remove must work for head, tail, middle and the sole member.
func TestBucket_RemoveAnyPosition(t *testing.T) {
	t.Parallel()

	mk := func() (*bucket[string, int], []*entry[string, int]) {
		b := &bucket[string, int]{}
		es := []*entry[string, int]{{key: "x"}, {key: "y"}, {key: "z"}}
		for _, e := range es {
			b.pushFront(e) // z y x
		}
		return b, es
	}

	cases := []struct {
		name string
		idx  int
		want []string
	}{
		{"tail", 0, []string{"z", "y"}},
		{"middle", 1, []string{"z", "x"}},
		{"head", 2, []string{"y", "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, es := mk()
			b.remove(es[tc.idx])
			if got := keysOf(b); !equalKeys(got, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
			if b.tail.next != nil || b.head.prev != nil {
				t.Fatal("list ends must stay terminated")
			}
		})
	}

	b := &bucket[string, int]{}
	e := &entry[string, int]{key: "only"}
	b.pushFront(e)
	b.remove(e)
	if !b.empty() || b.head != nil || b.tail != nil {
		t.Fatal("removing the sole member must empty the bucket")
	}
}

func TestBuckets_PromoteAdvancesMin(t *testing.T) {
	t.Parallel()

	bs := newBuckets[string, int]()
	a, b := &entry[string, int]{key: "a"}, &entry[string, int]{key: "b"}
	bs.admit(a)
	bs.admit(b)

	bs.promote(a)
	if bs.min != 1 {
		t.Fatalf("freq 1 still holds b: min want 1, got %d", bs.min)
	}
	bs.promote(b)
	if bs.min != 2 {
		t.Fatalf("freq 1 drained: min want 2, got %d", bs.min)
	}
	if _, ok := bs.levels[1]; ok {
		t.Fatal("drained bucket must be dropped")
	}

	// Promoting a non-minimum level leaves min alone.
	bs.promote(a) // a: 3
	if bs.min != 2 {
		t.Fatalf("min want 2, got %d", bs.min)
	}

	// A new entry always resets min to 1.
	bs.admit(&entry[string, int]{key: "c"})
	if bs.min != 1 {
		t.Fatalf("admit must reset min to 1, got %d", bs.min)
	}
}

func TestBuckets_VictimScansUpward(t *testing.T) {
	t.Parallel()

	bs := newBuckets[string, int]()
	lo, hi := &entry[string, int]{key: "lo"}, &entry[string, int]{key: "hi"}
	bs.admit(hi)
	for i := 0; i < 6; i++ {
		bs.promote(hi) // 7
	}
	bs.admit(lo)

	if v := bs.victim(); v != lo {
		t.Fatalf("victim want lo, got %v", v)
	}
	if bs.min != 7 {
		t.Fatalf("next min want 7, got %d", bs.min)
	}
	if v := bs.victim(); v != hi {
		t.Fatalf("victim want hi, got %v", v)
	}
	if bs.min != 0 || len(bs.levels) != 0 {
		t.Fatalf("empty buckets want min 0, got %d (%d levels)", bs.min, len(bs.levels))
	}
	if bs.victim() != nil {
		t.Fatal("no victim expected from empty buckets")
	}
}
