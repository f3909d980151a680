package nn

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// MSE computes the mean squared error between predictions and targets.
//
// Loss = mean((predictions - targets)²)
func MSE(predictions, targets []float64) (float64, error) {
	if len(predictions) != len(targets) {
		return 0, fmt.Errorf("%w: %d predictions vs %d targets", ErrInvalidArgument, len(predictions), len(targets))
	}
	if len(predictions) == 0 {
		return 0, nil
	}
	diff := make([]float64, len(predictions))
	floats.SubTo(diff, predictions, targets)
	return floats.Dot(diff, diff) / float64(len(diff)), nil
}

// Loss returns the mean squared error of the network over samples, averaged
// over every output component of every sample.
func (n *Network) Loss(samples []Sample) (float64, error) {
	if len(samples) == 0 {
		return 0, nil
	}
	var total float64
	for j, s := range samples {
		if err := n.checkTarget(s.Target); err != nil {
			return 0, fmt.Errorf("sample %d: %w", j, err)
		}
		out, err := n.Process(s.Input)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", j, err)
		}
		l, err := MSE(out, s.Target)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", j, err)
		}
		total += l
	}
	return total / float64(len(samples)), nil
}
