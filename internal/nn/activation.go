package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// Activation pairs an element-wise activation function with its derivative.
//
// Derivative is expressed in terms of the function's output y = Func(x),
// not its input. For the logistic sigmoid that is y·(1-y).
//
// Activation is a plain value. Networks and their clones share the same
// function values, which are never modified after construction.
type Activation struct {
	Name       string
	Func       matrix.Func
	Derivative matrix.Func
}

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
var Sigmoid = Activation{
	Name: "sigmoid",
	Func: func(x float64, _, _ int) float64 {
		return 1 / (1 + math.Exp(-x))
	},
	Derivative: func(y float64, _, _ int) float64 {
		return y * (1 - y)
	},
}

// Tanh is the hyperbolic tangent. Its output is zero-centered in (-1, 1).
var Tanh = Activation{
	Name: "tanh",
	Func: func(x float64, _, _ int) float64 {
		return math.Tanh(x)
	},
	Derivative: func(y float64, _, _ int) float64 {
		return 1 - y*y
	},
}

// ActivationByName returns the built-in activation with the given name.
func ActivationByName(name string) (Activation, error) {
	switch name {
	case Sigmoid.Name:
		return Sigmoid, nil
	case Tanh.Name:
		return Tanh, nil
	default:
		return Activation{}, fmt.Errorf("unknown activation %q (want %q or %q)", name, Sigmoid.Name, Tanh.Name)
	}
}

// valid reports whether both halves of the pair are set.
func (a Activation) valid() bool {
	return a.Func != nil && a.Derivative != nil
}
