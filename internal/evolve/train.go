package evolve

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
)

// ParallelTrain trains one clone of base per shard with backpropagation and
// merges the clones into a new network with Crossover.
//
// Clones are taken before any worker starts, so base is never shared. The
// merge folds left: ((c0 × c1) × c2) × ..., which gives later shards a larger
// share of the final weights. Biases of the result come from the first clone.
// base itself is not modified apart from its generator advancing.
//
// Parameters:
//   - base: Starting point for every worker
//   - shards: Training samples per worker; must not be empty
//   - epochs: Passes over each shard
//   - cfg: Worker settings
//   - rng: Generator for the merge; nil uses base's generator
func ParallelTrain(base *nn.Network, shards [][]nn.Sample, epochs int, cfg parallel.Config, rng *rand.Rand) (*nn.Network, error) {
	if len(shards) == 0 {
		return nil, fmt.Errorf("%w: no shards", ErrInvalidConfig)
	}

	workers := make([]*nn.Network, len(shards))
	for i := range workers {
		workers[i] = base.Clone()
	}

	err := parallel.ForErr(len(shards), func(i int) error {
		if err := workers[i].TrainEpochs(shards[i], epochs); err != nil {
			return fmt.Errorf("shard %d: %w", i, err)
		}
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}

	merged := workers[0]
	for _, w := range workers[1:] {
		if merged, err = merged.Crossover(w, rng); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
