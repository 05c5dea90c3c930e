// Copyright 2025 James Ross
package dedup

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failure modes a dedup pipeline run can hit.
type ErrorKind string

const (
	// KindConfig: invalid parameters (num_perm < 1, threshold outside
	// (0,1), unknown hash function, ...). Surfaced before any stage runs.
	KindConfig ErrorKind = "config"
	// KindInput: a record's field is missing or not a string. Halts the
	// pipeline and is surfaced with the offending index.
	KindInput ErrorKind = "input"
	// KindResource: a resource the run needs could not be set up, such as
	// the zstd encoder behind CompressedRecordWriter.
	KindResource ErrorKind = "resource"
	// KindInternal: an invariant was violated. Should never occur.
	KindInternal ErrorKind = "internal"
)

// Error is a typed dedup failure carrying a kind, a cause, and optional
// context (e.g. the offending record index).
type Error struct {
	Kind    ErrorKind
	Message string
	Idx     int // valid when HasIdx is true
	HasIdx  bool
	Cause   error
}

func (e *Error) Error() string {
	if e.HasIdx {
		return fmt.Sprintf("%s: %s (idx=%d)", e.Kind, e.Message, e.Idx)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on Kind so callers can do errors.Is(err, dedup.ErrConfig) etc.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel values usable with errors.Is to test error kind without caring
// about the message.
var (
	ErrConfig   = &Error{Kind: KindConfig}
	ErrInput    = &Error{Kind: KindInput}
	ErrResource = &Error{Kind: KindResource}
	ErrInternal = &Error{Kind: KindInternal}
)

func NewConfigError(format string, args ...any) error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

func NewInputError(idx int, format string, args ...any) error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(format, args...), Idx: idx, HasIdx: true}
}

func NewResourceError(cause error, format string, args ...any) error {
	return &Error{Kind: KindResource, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func NewInternalError(format string, args ...any) error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}
