// Copyright 2025 James Ross
package dedup

import (
	"encoding/binary"
	"math/bits"
)

// Signature is a length-k MinHash fingerprint: one 32-bit value per
// permutation, such that P(sig1[i] == sig2[i]) approximates the Jaccard
// similarity of the two underlying shingle sets.
type Signature []uint32

// ComputeSignature builds the MinHash signature of content's shingle set
// under perm. All arithmetic happens in unsigned 64-bit space; the
// multiply-then-add is never allowed to wrap before the modulo, and the
// final low-32 mask is applied only after the mod — generalized from the
// teacher's ad hoc MinHashSimilarityDetector.ComputeSignature into the
// spec's exact universal-hashing-mod-Mersenne-prime scheme.
func ComputeSignature(content string, n, minTokens int, perm *PermTable) Signature {
	k := len(perm.A)
	sig := make(Signature, k)
	for i := range sig {
		sig[i] = Init32
	}

	shingles := Shingles(content, n, minTokens)
	for token := range shingles {
		h := uint64(ShingleHash32(token))
		for i := 0; i < k; i++ {
			// (h*a + b) mod P: h, a, b are all < 2^61, and
			// mulAddMod forms the full 64x64->128 product with
			// bits.Mul64 before reducing, so nothing overflows.
			v := mulAddMod(h, perm.A[i], perm.B[i], Mersenne61)
			v &= Mask32
			if uint32(v) < sig[i] {
				sig[i] = uint32(v)
			}
		}
	}
	return sig
}

// mulAddMod computes (h*a + b) mod p for p = 2^61-1 without ever letting
// the 64-bit multiply wrap. It forms the full 128-bit product with
// math/bits.Mul64, folds in b, then reduces mod the Mersenne prime using
// the identity 2^64 ≡ 8 (mod 2^61-1), which holds because 2^61 ≡ 1.
func mulAddMod(h, a, b, p uint64) uint64 {
	hi, lo := bits.Mul64(h, a)
	lo, carry := bits.Add64(lo, b, 0)
	hi += carry

	// fold the high 64 bits down using 2^64 mod p == 8.
	lo, carry = bits.Add64(lo, hi*8, 0)
	hi = carry // at most 8, since hi*8 < 2^64 for our inputs; one more fold suffices.
	lo += hi * 8

	for lo >= p {
		lo -= p
	}
	return lo
}

// Fingerprint pairs a record's stable index with its banded MinHash keys.
type Fingerprint struct {
	Idx   int
	Bands [][]byte
}

// BandKeys slices signature into `bands` contiguous windows of `rows`
// entries and big-endian-encodes each window's uint32s into a raw band
// key byte string. Byte order is stable across runs by construction.
func BandKeys(sig Signature, bands, rows int) [][]byte {
	keys := make([][]byte, bands)
	for i := 0; i < bands; i++ {
		start := i * rows
		end := start + rows
		buf := make([]byte, rows*4)
		for j, v := range sig[start:end] {
			binary.BigEndian.PutUint32(buf[j*4:], v)
		}
		keys[i] = buf
	}
	return keys
}

// FingerprintRecord computes (idx, band keys) for one record: the full
// C3 pipeline stage, safe to run on any worker goroutine since it reads
// only the immutable perm table.
func FingerprintRecord(idx int, content string, n, minTokens int, perm *PermTable, bands, rows int) Fingerprint {
	sig := ComputeSignature(content, n, minTokens, perm)
	return Fingerprint{Idx: idx, Bands: BandKeys(sig, bands, rows)}
}
