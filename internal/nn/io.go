package nn

import (
	"io"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/serialization"
)

// WriteTo writes all weights followed by all biases as big-endian float64
// values. It implements io.WriterTo.
func (n *Network) WriteTo(w io.Writer) (int64, error) {
	return serialization.WriteMatrices(w, n.matrices())
}

// ReadFrom overwrites all weights and biases with values read in the WriteTo
// order. It implements io.ReaderFrom.
//
// The stream carries no shape information. It must have been written by a
// network with the same topology; otherwise the result is undefined and a
// short stream is reported as io.ErrUnexpectedEOF.
func (n *Network) ReadFrom(r io.Reader) (int64, error) {
	return serialization.ReadMatrices(r, n.matrices())
}

func (n *Network) matrices() []*matrix.Matrix {
	ms := make([]*matrix.Matrix, 0, len(n.weights)+len(n.biases))
	ms = append(ms, n.weights...)
	return append(ms, n.biases...)
}
