// Copyright 2025 James Ross
package dedup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesOnKind(t *testing.T) {
	err := NewInputError(7, "missing column %q", "text")
	assert.True(t, errors.Is(err, ErrInput))
	assert.False(t, errors.Is(err, ErrConfig))
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewResourceError(cause, "could not allocate shard map")
	assert.ErrorIs(t, err, cause)
}

func TestErrorMessageIncludesIdx(t *testing.T) {
	err := NewInputError(3, "field %q not a string", "text")
	assert.Contains(t, err.Error(), "idx=3")
}
