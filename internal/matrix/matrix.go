package matrix

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Func is a per-element transform. It receives the current value and its
// position and returns the replacement value.
type Func func(v float64, r, c int) float64

// Matrix is a dense row-major matrix of float64 values with rows, cols >= 1.
type Matrix struct {
	dense *mat.Dense
}

// New creates a zero-filled rows×cols matrix.
//
// Returns ErrInvalidDimension if rows < 1 or cols < 1.
func New(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrInvalidDimension)
	}
	return &Matrix{dense: mat.NewDense(rows, cols, nil)}, nil
}

// FromValues creates a matrix holding a deep copy of values.
//
// values[r][c] becomes element (r, c). Returns ErrInvalidDimension for an
// empty input and ErrInvalidShape if the rows are not all the same length.
//
// Example:
//
//	m, err := matrix.FromValues([][]float64{
//	    {1, 2, 3},
//	    {4, 5, 6},
//	})
func FromValues(values [][]float64) (*Matrix, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, fmt.Errorf("FromValues: %w", ErrInvalidDimension)
	}
	rows, cols := len(values), len(values[0])
	data := make([]float64, 0, rows*cols)
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("FromValues: row %d has %d elements, want %d: %w",
				r, len(row), cols, ErrInvalidShape)
		}
		data = append(data, row...)
	}
	return &Matrix{dense: mat.NewDense(rows, cols, data)}, nil
}

// FromColumn creates a len(values)×1 column matrix. This is how input and
// target vectors enter the network.
func FromColumn(values []float64) (*Matrix, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("FromColumn: %w", ErrInvalidDimension)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return &Matrix{dense: mat.NewDense(len(values), 1, data)}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	return m.dense.Dims()
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	r, _ := m.dense.Dims()
	return r
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	_, c := m.dense.Dims()
	return c
}

// At returns element (r, c). It panics if the index is out of range.
func (m *Matrix) At(r, c int) float64 {
	return m.dense.At(r, c)
}

// Set assigns element (r, c). It panics if the index is out of range.
func (m *Matrix) Set(r, c int, v float64) {
	m.dense.Set(r, c, v)
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	return mat.Row(nil, r, m.dense)
}

// Col returns a copy of column c.
func (m *Matrix) Col(c int) []float64 {
	return mat.Col(nil, c, m.dense)
}

// Flatten returns the elements in row-major order.
func (m *Matrix) Flatten() []float64 {
	rows, cols := m.dense.Dims()
	out := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		out = append(out, m.dense.RawRowView(r)...)
	}
	return out
}

// Clone returns a deep copy with independent storage.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{dense: mat.DenseCopyOf(m.dense)}
}

// Transform applies fn to every element in place, in row-major order, and
// returns the receiver.
func (m *Matrix) Transform(fn Func) *Matrix {
	m.dense.Apply(func(r, c int, v float64) float64 {
		return fn(v, r, c)
	}, m.dense)
	return m
}

// Randomize overwrites every element with a value drawn uniformly from
// [-1, 1) and returns the receiver.
func (m *Matrix) Randomize(rng *rand.Rand) *Matrix {
	return m.Transform(func(float64, int, int) float64 {
		return rng.Float64()*2 - 1
	})
}

// Equal reports whether both matrices have the same shape and identical elements.
func (m *Matrix) Equal(other *Matrix) bool {
	return mat.Equal(m.dense, other.dense)
}

// EqualApprox reports whether both matrices have the same shape and all
// elements are within tol of each other.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return mat.EqualApprox(m.dense, other.dense, tol)
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m.dense, mat.Squeeze()))
}
