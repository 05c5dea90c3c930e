// Copyright 2025 James Ross
package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPermTableDeterministicForSeed(t *testing.T) {
	p1 := NewPermTable(16, 99)
	p2 := NewPermTable(16, 99)
	assert.Equal(t, p1.A, p2.A)
	assert.Equal(t, p1.B, p2.B)
}

func TestNewPermTableDiffersAcrossSeeds(t *testing.T) {
	p1 := NewPermTable(16, 1)
	p2 := NewPermTable(16, 2)
	assert.NotEqual(t, p1.A, p2.A)
}

func TestNewPermTableCoefficientsInRange(t *testing.T) {
	p := NewPermTable(32, 5)
	for i := range p.A {
		assert.GreaterOrEqual(t, p.A[i], uint64(1))
		assert.Less(t, p.A[i], Mersenne61)
		assert.Less(t, p.B[i], Mersenne61)
	}
}
