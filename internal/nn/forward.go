package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// inputRange is the magnitude above which an input component is reported as
// out of the expected range. Such inputs are still processed.
const inputRange = 2.0

// Process runs a forward pass and returns the output vector.
//
// For each layer in order the current column vector becomes
// act(W[i]·current + b[i]). Inputs with |x| > 2 are logged at warn level
// but otherwise processed normally.
//
// Returns ErrInvalidArgument if len(input) != Topology().Inputs.
func (n *Network) Process(input []float64) ([]float64, error) {
	if err := n.checkInput(input); err != nil {
		return nil, err
	}
	n.warnOutOfRange(input)

	layers, err := n.forward(input)
	if err != nil {
		return nil, err
	}
	return layers[len(layers)-1].Flatten(), nil
}

// forward returns every activation from the input column (index 0) to the
// output column (index HiddenLayers+1). Callers validate input first.
func (n *Network) forward(input []float64) ([]*matrix.Matrix, error) {
	current, err := matrix.FromColumn(input)
	if err != nil {
		return nil, err
	}

	layers := make([]*matrix.Matrix, 0, len(n.weights)+1)
	layers = append(layers, current)
	for i, w := range n.weights {
		z, err := w.Mul(current)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		z, err = z.Add(n.biases[i])
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		current = z.Transform(n.activation.Func)
		layers = append(layers, current)
	}
	return layers, nil
}

func (n *Network) checkInput(input []float64) error {
	if len(input) != n.topology.Inputs {
		return fmt.Errorf("%w: input has %d elements, want %d", ErrInvalidArgument, len(input), n.topology.Inputs)
	}
	return nil
}

func (n *Network) checkTarget(target []float64) error {
	if len(target) != n.topology.Outputs {
		return fmt.Errorf("%w: target has %d elements, want %d", ErrInvalidArgument, len(target), n.topology.Outputs)
	}
	return nil
}

func (n *Network) warnOutOfRange(input []float64) {
	for i, v := range input {
		if math.Abs(v) > inputRange {
			n.logger.Warn("input out of expected range", "index", i, "value", v, "limit", inputRange)
		}
	}
}
