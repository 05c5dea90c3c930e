// Copyright 2025 James Ross
package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	toks := Tokenize("The quick, brown fox!! jumps_over the lazy dog.")
	assert.Equal(t, []string{"The", "quick", "brown", "fox", "jumps_over", "the", "lazy", "dog"}, toks)
}

func TestShinglesBelowMinTokens(t *testing.T) {
	out := Shingles("too short", 5, 5)
	assert.Empty(t, out)
}

func TestShinglesShorterThanNGram(t *testing.T) {
	out := Shingles("one two three four", 5, 1)
	assert.Len(t, out, 1)
	_, ok := out["one two three four"]
	assert.True(t, ok)
}

func TestShinglesSlidingWindow(t *testing.T) {
	out := Shingles("a b c d e f", 3, 1)
	assert.Len(t, out, 4)
	for _, want := range []string{"a b c", "b c d", "c d e", "d e f"} {
		_, ok := out[want]
		assert.True(t, ok, "missing shingle %q", want)
	}
}

func TestShinglesDeduplicate(t *testing.T) {
	out := Shingles("a b a b a b", 2, 1)
	assert.Len(t, out, 2)
}
