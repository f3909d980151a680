package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// sameShape checks that a and b can be combined element-wise.
func sameShape(op string, a, b *Matrix) error {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%s: (%d×%d) vs (%d×%d): %w", op, ar, ac, br, bc, ErrShapeMismatch)
	}
	return nil
}

// Add returns m + other element-wise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := sameShape("Add", m, other); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Add(m.dense, other.dense)
	return &Matrix{dense: &out}, nil
}

// Sub returns m - other element-wise.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := sameShape("Sub", m, other); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Sub(m.dense, other.dense)
	return &Matrix{dense: &out}, nil
}

// MulElem returns the Hadamard (element-wise) product of m and other.
func (m *Matrix) MulElem(other *Matrix) (*Matrix, error) {
	if err := sameShape("MulElem", m, other); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.MulElem(m.dense, other.dense)
	return &Matrix{dense: &out}, nil
}

// AddScalar returns a new matrix with v added to every element.
func (m *Matrix) AddScalar(v float64) *Matrix {
	return m.Clone().Transform(func(x float64, _, _ int) float64 {
		return x + v
	})
}

// SubScalar returns a new matrix with v subtracted from every element.
func (m *Matrix) SubScalar(v float64) *Matrix {
	return m.AddScalar(-v)
}

// Scale returns a new matrix with every element multiplied by f.
func (m *Matrix) Scale(f float64) *Matrix {
	var out mat.Dense
	out.Scale(f, m.dense)
	return &Matrix{dense: &out}
}

// T returns a new (cols×rows) matrix with result[c][r] = m[r][c].
func (m *Matrix) T() *Matrix {
	return &Matrix{dense: mat.DenseCopyOf(m.dense.T())}
}

// Mul returns the matrix product m·other.
//
// m.Cols() must equal other.Rows(), otherwise ErrDimensionMismatch is returned.
// The result has shape (m.Rows(), other.Cols()).
//
// Example:
//
//	a, _ := matrix.FromValues([][]float64{{1, 2, 3}, {4, 5, 6}})    // 2×3
//	b, _ := matrix.FromValues([][]float64{{7, 8}, {9, 10}, {11, 12}}) // 3×2
//	c, _ := a.Mul(b) // [[58 64] [139 154]]
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	ar, ac := m.Dims()
	br, bc := other.Dims()
	if ac != br {
		return nil, fmt.Errorf("Mul: (%d×%d)·(%d×%d): %w", ar, ac, br, bc, ErrDimensionMismatch)
	}
	var out mat.Dense
	out.Mul(m.dense, other.dense)
	return &Matrix{dense: &out}, nil
}
