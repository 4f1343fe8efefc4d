package util

import (
	"strconv"
	"testing"
)

func TestFnv64a_KnownVectors(t *testing.T) {
	t.Parallel()

	cases := map[string]uint64{
		"":  0xcbf29ce484222325,
		"a": 0xaf63dc4c8601ec8c,
	}
	for in, want := range cases {
		if got := Fnv64a(in); got != want {
			t.Fatalf("Fnv64a(%q) = %#x, want %#x", in, got, want)
		}
	}
}

func TestNextPow2(t *testing.T) {
	t.Parallel()

	cases := []struct{ in, want uint64 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {64, 64}, {65, 128},
		{1<<63 + 1, 1 << 63},
	}
	for _, tc := range cases {
		if got := NextPow2(tc.in); got != tc.want {
			t.Fatalf("NextPow2(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPartition_StableAndInRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 3, 4, 7, 16} {
		for i := 0; i < 1_000; i++ {
			k := "k:" + strconv.Itoa(i)
			p := Partition(k, n)
			if p < 0 || (n > 0 && p >= n) || (n <= 1 && p != 0) {
				t.Fatalf("Partition(%q, %d) = %d out of range", k, n, p)
			}
			if p != Partition(k, n) {
				t.Fatalf("Partition(%q, %d) is not stable", k, n)
			}
		}
	}
}

func TestReasonablePartitionCount(t *testing.T) {
	t.Parallel()

	n := ReasonablePartitionCount()
	if n < 1 || n > 256 || n&(n-1) != 0 {
		t.Fatalf("want power of two in [1..256], got %d", n)
	}
}
