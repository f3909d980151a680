// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package evolve

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/evolve"
	"github.com/born-ml/mlp/internal/parallel"
	"github.com/born-ml/mlp/nn"
)

// Population is a set of networks sharing one topology.
type Population = evolve.Population

// Config holds population settings.
type Config = evolve.Config

// Stats summarizes the fitness of one generation.
type Stats = evolve.Stats

// Fitness scores a network; higher is better.
type Fitness = evolve.Fitness

// ParallelConfig controls how many goroutines evaluate or train networks.
type ParallelConfig = parallel.Config

// ErrInvalidConfig is returned for population settings that cannot work.
var ErrInvalidConfig = evolve.ErrInvalidConfig

// DefaultMutationChance is selected by DefaultConfig or a MutationChance of -1.
const DefaultMutationChance = evolve.DefaultMutationChance

// DefaultConfig returns 50 members, 10 elites and a 10% mutation chance.
func DefaultConfig() Config {
	return evolve.DefaultConfig()
}

// DefaultParallelConfig uses one worker per CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Sequential runs all work on the calling goroutine.
func Sequential() ParallelConfig {
	return parallel.Sequential()
}

// NewPopulation creates config.Size randomly initialized networks.
//
// netConfig supplies learning rate, activation and logger for every member.
// Its Seed and Rand are ignored; members draw from config.Seed.
//
// Example:
//
//	pop, err := evolve.NewPopulation(topo, nn.DefaultConfig(), evolve.DefaultConfig())
func NewPopulation(t nn.Topology, netConfig nn.Config, config Config) (*Population, error) {
	return evolve.NewPopulation(t, netConfig, config)
}

// ParallelTrain trains one clone of base per shard and merges the clones
// with Crossover.
//
// Example:
//
//	merged, err := evolve.ParallelTrain(net, [][]nn.Sample{a, b}, 100, evolve.DefaultParallelConfig(), nil)
func ParallelTrain(base *nn.Network, shards [][]nn.Sample, epochs int, cfg ParallelConfig, rng *rand.Rand) (*nn.Network, error) {
	return evolve.ParallelTrain(base, shards, epochs, cfg, rng)
}
