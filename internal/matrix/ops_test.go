package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMul_Known(t *testing.T) {
	a := mustValues(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustValues(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := a.Mul(b)
	require.NoError(t, err)

	rows, cols := c.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Flatten())

	// Operands are untouched.
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Flatten())
}

func TestMul_ColumnVector(t *testing.T) {
	w := mustValues(t, [][]float64{{1, -1}, {2, 0.5}, {0, 3}})
	x, err := FromColumn([]float64{2, 4})
	require.NoError(t, err)

	y, err := w.Mul(x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, 6, 12}, y.Flatten())
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustValues(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	c, err := a.Mul(a)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Nil(t, c)
}

func TestElementwise(t *testing.T) {
	a := mustValues(t, [][]float64{{1, 2}, {3, 4}})
	b := mustValues(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 22, 33, 44}, sum.Flatten())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 18, 27, 36}, diff.Flatten())

	prod, err := a.MulElem(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 40, 90, 160}, prod.Flatten())

	assert.Equal(t, []float64{1, 2, 3, 4}, a.Flatten(), "left operand must be unmodified")
	assert.Equal(t, []float64{10, 20, 30, 40}, b.Flatten(), "right operand must be unmodified")
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := mustValues(t, [][]float64{{1, 2}, {3, 4}})
	b := mustValues(t, [][]float64{{1, 2}})
	col, err := FromColumn([]float64{1, 2})
	require.NoError(t, err)

	ops := map[string]func(x, y *Matrix) (*Matrix, error){
		"Add":     (*Matrix).Add,
		"Sub":     (*Matrix).Sub,
		"MulElem": (*Matrix).MulElem,
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			out, err := op(a, b)
			require.ErrorIs(t, err, ErrShapeMismatch)
			assert.Nil(t, out)

			// No broadcasting of a column against a square matrix.
			_, err = op(a, col)
			require.ErrorIs(t, err, ErrShapeMismatch)
		})
	}
}

func TestScalarOps(t *testing.T) {
	a := mustValues(t, [][]float64{{1, -2}, {0.5, 4}})

	assert.Equal(t, []float64{3, 0, 2.5, 6}, a.AddScalar(2).Flatten())
	assert.Equal(t, []float64{0, -3, -0.5, 3}, a.SubScalar(1).Flatten())
	assert.Equal(t, []float64{-2, 4, -1, -8}, a.Scale(-2).Flatten())
	assert.Equal(t, []float64{1, -2, 0.5, 4}, a.Flatten())
}

func TestTranspose(t *testing.T) {
	a := mustValues(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	at := a.T()

	rows, cols := at.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, at.Flatten())

	// The transpose owns its storage.
	at.Set(0, 0, 100)
	assert.Equal(t, 1.0, a.At(0, 0))
}

func TestTranspose_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, dims := range [][2]int{{1, 1}, {1, 5}, {4, 1}, {3, 7}, {6, 6}} {
		m, err := New(dims[0], dims[1])
		require.NoError(t, err)
		m.Randomize(rng)

		assert.True(t, m.T().T().Equal(m), "T(T(M)) != M for %v", dims)
	}
}

func TestAddSub_Inverse(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m, _ := New(4, 5)
	x, _ := New(4, 5)
	m.Randomize(rng)
	x.Randomize(rng)

	sum, err := m.Add(x)
	require.NoError(t, err)
	back, err := sum.Sub(x)
	require.NoError(t, err)

	assert.True(t, back.EqualApprox(m, 1e-12))
}
