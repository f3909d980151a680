package nn

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// Network is a fully-connected feed-forward network.
//
// Layer i (0-indexed, 0..HiddenLayers) owns weights[i] with shape
// (width[i+1], width[i]) and the bias column biases[i] with shape
// (width[i+1], 1). The topology never changes after construction.
//
// A Network is not safe for concurrent use. To train in parallel, Clone one
// network per worker and merge the results with Crossover.
type Network struct {
	topology   Topology
	weights    []*matrix.Matrix
	biases     []*matrix.Matrix
	lr         float64
	activation Activation
	rng        *rand.Rand
	logger     *slog.Logger
}

// New creates a network with the given topology and DefaultConfig settings.
//
// Weights and biases are drawn uniformly from [-1, 1) using a process-seeded
// generator. Use NewWithConfig with a Seed or Rand for reproducible networks.
//
// Example:
//
//	net, err := nn.New(2, 1, 4, 1) // 2 inputs, one hidden layer of 4, 1 output
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := net.Process([]float64{0, 1})
func New(inputNodes, hiddenLayers, hiddenNodes, outputNodes int) (*Network, error) {
	t := Topology{
		Inputs:       inputNodes,
		HiddenLayers: hiddenLayers,
		HiddenNodes:  hiddenNodes,
		Outputs:      outputNodes,
	}
	return NewWithConfig(t, DefaultConfig())
}

// NewSingleHidden creates a network with exactly one hidden layer.
func NewSingleHidden(inputNodes, hiddenNodes, outputNodes int) (*Network, error) {
	return New(inputNodes, 1, hiddenNodes, outputNodes)
}

// NewWithConfig creates a network with the given topology and settings.
//
// Zero-valued Config fields fall back to their defaults. Note that Seed 0 is
// a valid deterministic seed; use -1 for a random one.
//
// Parameters:
//   - t: Layer sizes; validated with Topology.Validate
//   - config: Learning rate, activation, randomness and logging
//
// Returns ErrInvalidTopology if any layer would be empty.
func NewWithConfig(t Topology, config Config) (*Network, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	config = config.withDefaults()

	widths := t.Widths()
	n := &Network{
		topology:   t,
		weights:    make([]*matrix.Matrix, len(widths)-1),
		biases:     make([]*matrix.Matrix, len(widths)-1),
		lr:         config.LearningRate,
		activation: config.Activation,
		rng:        config.Rand,
		logger:     config.Logger,
	}

	// All weights first, then all biases.
	for i := range n.weights {
		w, err := Uniform(widths[i+1], widths[i], n.rng)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d weights: %w", ErrInvalidTopology, i, err)
		}
		n.weights[i] = w
	}
	for i := range n.biases {
		b, err := Uniform(widths[i+1], 1, n.rng)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d biases: %w", ErrInvalidTopology, i, err)
		}
		n.biases[i] = b
	}

	return n, nil
}

// Clone returns a deep copy of the network.
//
// Weights and biases are copied; the activation pair, learning rate and
// logger are shared by value. The clone gets its own generator, seeded from
// the receiver's, so the two can be used from different goroutines.
func (n *Network) Clone() *Network {
	c := &Network{
		topology:   n.topology,
		weights:    make([]*matrix.Matrix, len(n.weights)),
		biases:     make([]*matrix.Matrix, len(n.biases)),
		lr:         n.lr,
		activation: n.activation,
		rng:        rand.New(rand.NewSource(n.rng.Int63())), //nolint:gosec // Derived deterministic seed
		logger:     n.logger,
	}
	for i, w := range n.weights {
		c.weights[i] = w.Clone()
	}
	for i, b := range n.biases {
		c.biases[i] = b.Clone()
	}
	return c
}

// Topology returns the network's layer sizes.
func (n *Network) Topology() Topology {
	return n.topology
}

// Weights returns copies of the weight matrices in layer order.
func (n *Network) Weights() []*matrix.Matrix {
	return cloneAll(n.weights)
}

// Biases returns copies of the bias columns in layer order.
func (n *Network) Biases() []*matrix.Matrix {
	return cloneAll(n.biases)
}

// Parameters returns live views of all weights (layer order) followed by all
// biases (layer order). This is the persistence order.
func (n *Network) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+len(n.biases))
	for i, w := range n.weights {
		params = append(params, &Parameter{name: fmt.Sprintf("layers.%d.weight", i), value: w})
	}
	for i, b := range n.biases {
		params = append(params, &Parameter{name: fmt.Sprintf("layers.%d.bias", i), value: b})
	}
	return params
}

// LearningRate returns the gradient step size.
func (n *Network) LearningRate() float64 {
	return n.lr
}

// SetLearningRate sets the gradient step size and returns the network.
func (n *Network) SetLearningRate(lr float64) *Network {
	n.lr = lr
	return n
}

// Activation returns the activation pair.
func (n *Network) Activation() Activation {
	return n.activation
}

// SetActivation replaces the activation pair and returns the network.
func (n *Network) SetActivation(a Activation) *Network {
	n.activation = a
	return n
}

// Equal reports whether both networks have the same topology and identical
// weights and biases. Settings are not compared.
func (n *Network) Equal(other *Network) bool {
	if n.topology != other.topology {
		return false
	}
	for i := range n.weights {
		if !n.weights[i].Equal(other.weights[i]) || !n.biases[i].Equal(other.biases[i]) {
			return false
		}
	}
	return true
}

// randOr returns rng, or the network's own generator when rng is nil.
func (n *Network) randOr(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return n.rng
}

func cloneAll(ms []*matrix.Matrix) []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
