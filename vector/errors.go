package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports an input sequence whose length violates the
	// dimension contract.
	ErrValidation = errors.New("vector: invalid embedding")

	ErrDimensionTooSmall = fmt.Errorf("%w: dimension too small", ErrValidation)
	ErrDimensionTooLarge = fmt.Errorf("%w: dimension too large", ErrValidation)
	ErrWidthMismatch     = fmt.Errorf("%w: dimension does not match required width", ErrValidation)

	// ErrType reports a non-numeric element supplied at construction.
	ErrType = errors.New("vector: element is not numeric")

	// ErrDimensionMismatch reports two embeddings of different dimension used
	// together.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrDivideByZero reports an attempt to normalize a zero vector.
	ErrDivideByZero = errors.New("vector: cannot normalize zero vector")
)

// TypeError identifies the element that could not be coerced to float32.
type TypeError struct {
	Index int
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("vector: element at index %d is not numeric (%T)", e.Index, e.Value)
}

func (e *TypeError) Unwrap() error { return ErrType }

// DimensionMismatchError carries the dimensions of both operands.
type DimensionMismatchError struct {
	Left  int
	Right int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: dimension mismatch: %d vs %d", e.Left, e.Right)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

func dimensionError(kind error, got, limit int) error {
	switch kind {
	case ErrDimensionTooSmall:
		return fmt.Errorf("%w: got %d, need at least 1", kind, got)
	case ErrDimensionTooLarge:
		return fmt.Errorf("%w: got %d, maximum %d", kind, got, limit)
	default:
		return fmt.Errorf("%w: got %d, want %d", kind, got, limit)
	}
}
