// Package matrix implements the dense 2-D float64 matrix used by the network.
//
// A Matrix has a fixed shape and mutable elements. Arithmetic (Add, Sub,
// MulElem, Mul, Scale, T, ...) always returns a freshly allocated result and
// leaves its operands untouched. Transform and Randomize are the only
// operations that mutate the receiver; they return it so calls can be chained:
//
//	m, _ := matrix.New(3, 1)
//	m.Randomize(rng).Transform(func(v float64, _, _ int) float64 {
//	    return v * v
//	})
//
// Storage and the matrix product are delegated to gonum's mat.Dense.
// Unlike gonum, shape errors are returned as values (ErrShapeMismatch,
// ErrDimensionMismatch) instead of panics, and there is no broadcasting.
package matrix
