// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix used by the network.
//
// # Overview
//
// A Matrix has a fixed shape (rows, cols >= 1) and mutable elements:
//   - Construction: New (zero-filled), FromValues (deep copy), FromColumn
//   - Element-wise: Add, Sub, MulElem (exact shape match, no broadcasting)
//   - Scalar: AddScalar, SubScalar, Scale
//   - Algebra: Mul (matrix product), T (transpose)
//   - In place: Transform, Randomize
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/matrix"
//
//	func main() {
//	    a, _ := matrix.FromValues([][]float64{{1, 2, 3}, {4, 5, 6}})
//	    x, _ := matrix.FromColumn([]float64{1, 0, -1})
//
//	    y, err := a.Mul(x) // 2×1
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(y.Flatten()) // [-2 -2]
//	}
//
// # Copy vs In-Place
//
// Arithmetic always allocates a new Matrix and never modifies its operands.
// Transform and Randomize modify the receiver and return it for chaining:
//
//	m.Randomize(rng).Transform(func(v float64, r, c int) float64 {
//	    return v * 0.5
//	})
//
// # Errors
//
// Shape problems are returned, never silently ignored:
//   - ErrInvalidDimension: rows or cols < 1
//   - ErrInvalidShape: ragged input to FromValues
//   - ErrShapeMismatch: element-wise operands differ in shape
//   - ErrDimensionMismatch: Mul with a.Cols() != b.Rows()
package matrix
