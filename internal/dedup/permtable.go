// Copyright 2025 James Ross
package dedup

import "math/rand"

// Mersenne61 is the modulus used for the MinHash universal hash family:
// P = 2^61 - 1.
const Mersenne61 uint64 = (1 << 61) - 1

// Mask32 extracts the low 32 bits of a permuted hash value.
const Mask32 uint64 = (1 << 32) - 1

// Init32 is the MinHash signature's initial sentinel value: 2^32 - 1.
const Init32 uint32 = uint32(Mask32)

// PermTable holds the k sampled (a, b) coefficient pairs of the universal
// hash family h(x) = (a*x + b) mod P used by the MinHash fingerprint. It
// is sampled once from a fixed seed and never mutated afterward.
type PermTable struct {
	A []uint64
	B []uint64
}

// NewPermTable draws k coefficient pairs deterministically from seed, with
// A[i] in [1, P) and B[i] in [0, P), matching the teacher's reproducible
// seeded-RNG convention (internal/config.Load's seed plumbing) in place of
// a global mutable RNG.
func NewPermTable(k int, seed int64) *PermTable {
	rng := rand.New(rand.NewSource(seed))
	a := make([]uint64, k)
	b := make([]uint64, k)
	for i := 0; i < k; i++ {
		a[i] = 1 + uint64(rng.Int63n(int64(Mersenne61-1)))
		b[i] = uint64(rng.Int63n(int64(Mersenne61)))
	}
	return &PermTable{A: a, B: b}
}
