// Copyright 2025 James Ross
package dedup

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// MD5Hex returns the lowercase hex MD5 digest of content, kept for legacy
// compatibility with corpora deduplicated under the md5 hash_func.
func MD5Hex(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

// SHA256Hex returns the lowercase hex SHA-256 digest of content.
func SHA256Hex(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// XXH3128 returns the raw 16-byte xxh3-128 digest of content. The exact
// engine compares these by value, not by any string rendering.
func XXH3128(content string) [16]byte {
	return xxh3.Hash128([]byte(content)).Bytes()
}

// ContentDigest computes the configured content hash as a comparable byte
// string usable as a map key.
func ContentDigest(hashFunc string, content string) (string, error) {
	switch hashFunc {
	case "md5":
		return MD5Hex(content), nil
	case "sha256":
		return SHA256Hex(content), nil
	case "xxh3":
		b := XXH3128(content)
		return string(b[:]), nil
	default:
		return "", NewConfigError("unknown hash_func %q", hashFunc)
	}
}

// ShingleHash32 hashes a single shingle token to the 32-bit value the
// MinHash stage universal-hashes. It takes the first 4 bytes of SHA-1 of
// the UTF-8 token, interpreted little-endian — this exact byte order and
// byte selection is required for cross-run reproducibility.
func ShingleHash32(token string) uint32 {
	sum := sha1.Sum([]byte(token))
	return binary.LittleEndian.Uint32(sum[:4])
}
