// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense row-major matrix of float64 values.
type Matrix = matrix.Matrix

// Func is a per-element transform taking (value, row, col).
type Func = matrix.Func

// Errors returned by matrix operations.
var (
	ErrInvalidDimension  = matrix.ErrInvalidDimension
	ErrInvalidShape      = matrix.ErrInvalidShape
	ErrShapeMismatch     = matrix.ErrShapeMismatch
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// New creates a zero-filled rows×cols matrix.
//
// Example:
//
//	m, err := matrix.New(3, 2)
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// FromValues creates a matrix from a deep copy of a rectangular 2-D slice.
//
// Example:
//
//	m, err := matrix.FromValues([][]float64{{1, 2}, {3, 4}})
func FromValues(values [][]float64) (*Matrix, error) {
	return matrix.FromValues(values)
}

// FromColumn creates a len(values)×1 column matrix.
func FromColumn(values []float64) (*Matrix, error) {
	return matrix.FromColumn(values)
}
