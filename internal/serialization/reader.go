package serialization

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// ReadMatrices fills every element of ms, matrix by matrix in row-major order,
// from r and returns the number of bytes consumed.
//
// Each matrix is assigned only once all of its values have been read, so a
// short stream leaves the failing matrix and every later one untouched.
func ReadMatrices(r io.Reader, ms []*matrix.Matrix) (int64, error) {
	var read int64
	for i, m := range ms {
		rows, cols := m.Dims()
		buf := make([]byte, rows*cols*ValueSize)
		n, err := io.ReadFull(r, buf)
		read += int64(n)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return read, fmt.Errorf("read matrix %d (%d×%d): %w", i, rows, cols, err)
		}

		m.Transform(func(_ float64, row, col int) float64 {
			off := (row*cols + col) * ValueSize
			return math.Float64frombits(ByteOrder.Uint64(buf[off : off+ValueSize]))
		})
	}
	return read, nil
}
