package linalg

import "errors"

// Domain errors for linear algebra operations.
var (
	// ErrSingular indicates a pivot too small to divide by safely.
	ErrSingular = errors.New("linalg: singular or near-singular matrix")

	// ErrDimension indicates mismatched matrix/vector dimensions.
	ErrDimension = errors.New("linalg: dimension mismatch")
)
