// Copyright 2025 James Ross
package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestAll(t *testing.T, engine *ExactEngine, contents []string) []string {
	t.Helper()
	digests := make([]string, len(contents))
	for i, c := range contents {
		d, err := engine.Digest(c)
		require.NoError(t, err)
		digests[i] = d
	}
	return digests
}

func TestExactEngineFirstOccurrenceWins(t *testing.T) {
	engine := NewExactEngine("xxh3")
	contents := []string{"alpha", "beta", "alpha", "gamma", "beta"}
	digests := digestAll(t, engine, contents)

	results := engine.Resolve(digests)

	assert.False(t, results[0].IsDuplicate)
	assert.False(t, results[1].IsDuplicate)
	assert.True(t, results[2].IsDuplicate)
	assert.Equal(t, 0, results[2].DuplicateOf)
	assert.False(t, results[3].IsDuplicate)
	assert.True(t, results[4].IsDuplicate)
	assert.Equal(t, 1, results[4].DuplicateOf)
}

func TestExactEngineNoDuplicatesWhenAllUnique(t *testing.T) {
	engine := NewExactEngine("sha256")
	contents := []string{"one", "two", "three"}
	digests := digestAll(t, engine, contents)

	results := engine.Resolve(digests)
	for _, r := range results {
		assert.False(t, r.IsDuplicate)
	}
}

func TestExactEngineAllHashFuncsAgreeOnUniqueness(t *testing.T) {
	for _, hf := range []string{"md5", "sha256", "xxh3"} {
		engine := NewExactEngine(hf)
		contents := []string{"same", "same", "different"}
		digests := digestAll(t, engine, contents)
		results := engine.Resolve(digests)
		assert.True(t, results[1].IsDuplicate, "hash_func %s", hf)
		assert.False(t, results[2].IsDuplicate, "hash_func %s", hf)
	}
}

func TestBatchesCoversEveryIndexExactlyOnce(t *testing.T) {
	batches := Batches(23, 5)
	require.Len(t, batches, 5)

	var covered []int
	for _, b := range batches {
		for i := b[0]; i < b[1]; i++ {
			covered = append(covered, i)
		}
	}
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22}, covered)
}

func TestBatchesExactMultipleOfBatchSize(t *testing.T) {
	batches := Batches(10, 5)
	assert.Equal(t, [][2]int{{0, 5}, {5, 10}}, batches)
}

func TestBatchesEmptyInput(t *testing.T) {
	assert.Empty(t, Batches(0, 5))
}

func TestBatchesBatchSizeBelowOneTreatedAsOne(t *testing.T) {
	batches := Batches(3, 0)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 3}}, batches)
}
