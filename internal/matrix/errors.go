package matrix

import "errors"

// Common errors. Every constructor and operation validates its operands
// before allocating or mutating, so a returned error means nothing changed.
var (
	ErrInvalidDimension  = errors.New("matrix: rows and cols must be >= 1")
	ErrInvalidShape      = errors.New("matrix: rows have unequal length")
	ErrShapeMismatch     = errors.New("matrix: operand shapes differ")
	ErrDimensionMismatch = errors.New("matrix: inner dimensions do not match")
)
