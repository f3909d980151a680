package serialization

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// WriteMatrices writes every element of ms, matrix by matrix in row-major
// order, and returns the number of bytes written.
func WriteMatrices(w io.Writer, ms []*matrix.Matrix) (int64, error) {
	bw := bufio.NewWriter(w)
	var buf [ValueSize]byte
	var written int64

	for i, m := range ms {
		for _, v := range m.Flatten() {
			ByteOrder.PutUint64(buf[:], math.Float64bits(v))
			n, err := bw.Write(buf[:])
			written += int64(n)
			if err != nil {
				return written, fmt.Errorf("write matrix %d: %w", i, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("flush: %w", err)
	}
	return written, nil
}
