package nn

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// Uniform creates a rows×cols matrix with values drawn uniformly from [-1, 1).
//
// All weights and biases of a new network are initialized this way.
func Uniform(rows, cols int, rng *rand.Rand) (*matrix.Matrix, error) {
	m, err := matrix.New(rows, cols)
	if err != nil {
		return nil, err
	}
	return m.Randomize(rng), nil
}
