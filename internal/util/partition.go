// Package util contains internal helpers for routing keys to partitions.
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import "runtime"

const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Fnv64a hashes a string key with 64-bit FNV-1a without allocating.
func Fnv64a(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	return h
}

// NextPow2 returns the smallest power of two >= x.
// x <= 1 yields 1; a result that would overflow 64 bits is clamped to 1<<63.
func NextPow2(x uint64) uint64 {
	if x <= 1 {
		return 1
	}
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	x++
	if x == 0 {
		return 1 << 63
	}
	return x
}

// ReasonablePartitionCount picks a default partition count from CPU
// parallelism: nextPow2(GOMAXPROCS), clamped to [1..256]. Each partition is
// owned by exactly one goroutine, so more partitions than CPUs buys nothing.
func ReasonablePartitionCount() int {
	p := runtime.GOMAXPROCS(0)
	if p < 1 {
		p = 1
	}
	n := int(NextPow2(uint64(p)))
	if n > 256 {
		n = 256
	}
	return n
}

// Partition maps key to one of n partitions. n must be positive; a power of
// two takes the mask fast path, anything else falls back to modulo.
func Partition(key string, n int) int {
	if n <= 1 {
		return 0
	}
	h := Fnv64a(key)
	if un := uint64(n); un&(un-1) == 0 {
		return int(h & (un - 1))
	}
	return int(h % uint64(n))
}
