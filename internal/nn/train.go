package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// Sample is one input vector paired with its expected output.
type Sample struct {
	Input  []float64
	Target []float64
}

// Train performs one stochastic gradient step on a single sample.
//
// The forward pass keeps every layer activation. Walking from the output
// layer back to the first hidden layer, for layer i:
//
//	error    = target - layers[i]
//	gradient = lr * (act'(layers[i]) ⊙ error)
//	delta    = gradient · layers[i-1]ᵀ
//	b[i-1]  += gradient
//	W[i-1]  += delta
//	target   = W[i-1]ᵀ · error + layers[i-1]
//
// The last line uses the freshly updated weights and adds the previous
// activation back in, so the next iteration's error is exactly W[i-1]ᵀ·error.
// Trained networks and saved weights depend on this exact rule.
//
// Returns ErrInvalidArgument if either vector has the wrong length. Nothing is
// modified in that case.
func (n *Network) Train(input, target []float64) error {
	if err := n.checkInput(input); err != nil {
		return err
	}
	if err := n.checkTarget(target); err != nil {
		return err
	}

	layers, err := n.forward(input)
	if err != nil {
		return err
	}
	t, err := matrix.FromColumn(target)
	if err != nil {
		return err
	}

	for i := len(layers) - 1; i > 0; i-- {
		if t, err = n.backward(i, layers, t); err != nil {
			return fmt.Errorf("train: layer %d: %w", i-1, err)
		}
	}
	return nil
}

// backward updates weights[i-1] and biases[i-1] from layers[i] and target and
// returns the target for layer i-1.
func (n *Network) backward(i int, layers []*matrix.Matrix, target *matrix.Matrix) (*matrix.Matrix, error) {
	errM, err := target.Sub(layers[i])
	if err != nil {
		return nil, err
	}

	gradient, err := layers[i].Clone().Transform(n.activation.Derivative).MulElem(errM)
	if err != nil {
		return nil, err
	}
	gradient = gradient.Scale(n.lr)

	delta, err := gradient.Mul(layers[i-1].T())
	if err != nil {
		return nil, err
	}

	addInPlace(n.biases[i-1], gradient)
	addInPlace(n.weights[i-1], delta)

	back, err := n.weights[i-1].T().Mul(errM)
	if err != nil {
		return nil, err
	}
	return back.Add(layers[i-1])
}

// TrainEpochs runs Train over samples in order, epochs times.
//
// The first failing sample aborts training and is reported with its index.
func (n *Network) TrainEpochs(samples []Sample, epochs int) error {
	for e := 0; e < epochs; e++ {
		for j, s := range samples {
			if err := n.Train(s.Input, s.Target); err != nil {
				return fmt.Errorf("epoch %d, sample %d: %w", e, j, err)
			}
		}
	}
	return nil
}

// addInPlace adds src to dst element-wise. Shapes are guaranteed by the
// network invariants, so parameters keep their identity across updates.
func addInPlace(dst, src *matrix.Matrix) {
	dst.Transform(func(v float64, r, c int) float64 {
		return v + src.At(r, c)
	})
}
