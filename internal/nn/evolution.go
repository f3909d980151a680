package nn

import (
	"fmt"
	"math/rand"
)

// Perturbation bounds for the mutation operators.
const (
	weightMutationRange = 0.1
	biasMutationRange   = 1.5
)

// MutateWeights perturbs the weights in place and returns the network.
//
// Each weight independently, with probability chance, has a value drawn
// uniformly from (-0.1, 0.1) added to it. A nil rng uses the network's own
// generator.
func (n *Network) MutateWeights(chance float64, rng *rand.Rand) *Network {
	n.mutate(chance, weightMutationRange, n.randOr(rng))
	return n
}

// MutateBiases is the coarse mutation operator: with probability chance an
// element receives a perturbation drawn uniformly from (-1.5, 1.5).
//
// Note that the perturbation is applied to the weight matrices. The bias
// columns are left unchanged.
func (n *Network) MutateBiases(chance float64, rng *rand.Rand) *Network {
	n.mutate(chance, biasMutationRange, n.randOr(rng))
	return n
}

func (n *Network) mutate(chance, bound float64, rng *rand.Rand) {
	for _, w := range n.weights {
		w.Transform(func(v float64, _, _ int) float64 {
			if rng.Float64() < chance {
				return v + (rng.Float64()*2-1)*bound
			}
			return v
		})
	}
}

// Crossover returns a new network mixing the weights of n and other.
//
// The child starts as a clone of n (biases and settings included). Each
// weight element then independently keeps n's value or takes other's value
// with equal probability. Neither parent is modified. A nil rng uses n's
// generator.
//
// Returns ErrIncompatibleTopology unless both networks have the same topology.
func (n *Network) Crossover(other *Network, rng *rand.Rand) (*Network, error) {
	if n.topology != other.topology {
		return nil, fmt.Errorf("%w: %v vs %v", ErrIncompatibleTopology, n.topology, other.topology)
	}
	rng = n.randOr(rng)

	child := n.Clone()
	for i, w := range child.weights {
		src := other.weights[i]
		w.Transform(func(v float64, r, c int) float64 {
			if rng.Float64() >= 0.5 {
				return v
			}
			return src.At(r, c)
		})
	}
	return child, nil
}
