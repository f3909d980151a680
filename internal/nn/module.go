// Package nn implements a fully-connected feed-forward network trained by
// single-sample backpropagation.
//
// This package provides:
//   - Network: topology, weights and biases, forward inference, training
//   - Activation: function/derivative pairs (Sigmoid, Tanh)
//   - Evolutionary operators: MutateWeights, MutateBiases, Crossover
//   - Persistence through io.WriterTo / io.ReaderFrom
//
// Every layer computes act(W·x + b) on column vectors built with the matrix
// package. Gradients are derived by hand for this fixed architecture.
package nn

// Model is implemented by anything that can run inference and expose its
// trainable parameters in a stable order.
type Model interface {
	// Process runs a forward pass and returns the output vector.
	Process(input []float64) ([]float64, error)

	// Parameters returns the weight matrices in layer order followed by
	// the bias matrices in layer order.
	Parameters() []*Parameter
}
