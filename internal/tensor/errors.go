package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrResourceExhausted = errors.New("allocation failed: resource exhausted")
	ErrInvalidSize       = errors.New("invalid storage size")
	ErrInvalidShape      = errors.New("invalid shape")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrRankMismatch      = errors.New("rank mismatch")
	ErrCapacityMismatch  = errors.New("shape exceeds storage capacity")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrReleased          = errors.New("storage already released")
)

// IndexError describes a multi-index that does not fit a view's extents.
type IndexError struct {
	Dim     int   // Offending dimension, or -1 when the index count is wrong
	Index   int   // Offending index value (or index count when Dim is -1)
	Extents Shape // Extents of the view
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("%v: expected %d indices, got %d", ErrIndexOutOfRange, len(e.Extents), e.Index)
	}
	return fmt.Sprintf("%v: index %d for dimension %d (size %d)", ErrIndexOutOfRange, e.Index, e.Dim, e.Extents[e.Dim])
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
