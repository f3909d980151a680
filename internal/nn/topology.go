package nn

import (
	"fmt"
	"strconv"
	"strings"
)

// Topology describes the fixed shape of a network.
//
// HiddenLayers may be zero, in which case the single layer maps inputs
// straight to outputs and HiddenNodes is ignored.
type Topology struct {
	Inputs       int // Number of input nodes
	HiddenLayers int // Number of hidden layers
	HiddenNodes  int // Width of every hidden layer
	Outputs      int // Number of output nodes
}

// Validate checks that every layer has at least one node.
func (t Topology) Validate() error {
	switch {
	case t.Inputs < 1:
		return fmt.Errorf("%w: inputs must be >= 1, got %d", ErrInvalidTopology, t.Inputs)
	case t.Outputs < 1:
		return fmt.Errorf("%w: outputs must be >= 1, got %d", ErrInvalidTopology, t.Outputs)
	case t.HiddenLayers < 0:
		return fmt.Errorf("%w: hidden layers must be >= 0, got %d", ErrInvalidTopology, t.HiddenLayers)
	case t.HiddenLayers > 0 && t.HiddenNodes < 1:
		return fmt.Errorf("%w: hidden nodes must be >= 1, got %d", ErrInvalidTopology, t.HiddenNodes)
	}
	return nil
}

// Widths returns the node count of every layer, input first.
// The result has HiddenLayers+2 entries.
func (t Topology) Widths() []int {
	widths := make([]int, 0, t.HiddenLayers+2)
	widths = append(widths, t.Inputs)
	for i := 0; i < t.HiddenLayers; i++ {
		widths = append(widths, t.HiddenNodes)
	}
	return append(widths, t.Outputs)
}

// ParamCount returns the total number of weights and biases.
func (t Topology) ParamCount() int {
	widths := t.Widths()
	n := 0
	for i := 1; i < len(widths); i++ {
		n += widths[i]*widths[i-1] + widths[i]
	}
	return n
}

// String formats the topology as "inputs,hiddenLayers,hiddenNodes,outputs",
// the same form ParseTopology accepts.
func (t Topology) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", t.Inputs, t.HiddenLayers, t.HiddenNodes, t.Outputs)
}

// ParseTopology parses "inputs,hiddenLayers,hiddenNodes,outputs" or the
// single hidden layer shorthand "inputs,hiddenNodes,outputs".
func ParseTopology(s string) (Topology, error) {
	parts := strings.Split(s, ",")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Topology{}, fmt.Errorf("%w: %q: %v", ErrInvalidTopology, s, err)
		}
		nums[i] = n
	}

	var t Topology
	switch len(nums) {
	case 3:
		t = Topology{Inputs: nums[0], HiddenLayers: 1, HiddenNodes: nums[1], Outputs: nums[2]}
	case 4:
		t = Topology{Inputs: nums[0], HiddenLayers: nums[1], HiddenNodes: nums[2], Outputs: nums[3]}
	default:
		return Topology{}, fmt.Errorf("%w: %q: want 3 or 4 comma separated values", ErrInvalidTopology, s)
	}
	if err := t.Validate(); err != nil {
		return Topology{}, err
	}
	return t, nil
}
