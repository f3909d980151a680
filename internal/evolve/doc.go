// Package evolve trains networks without gradients, or with gradients on
// several goroutines, by combining clones through the nn evolutionary
// operators.
//
// A Population keeps same-topology networks, scores them with a user fitness
// function (higher is better), keeps the elite and refills the rest with
// mutated crossovers of elite parents:
//
//	pop, err := evolve.NewPopulation(topology, nn.Config{Activation: nn.Tanh}, evolve.Config{Seed: 1})
//	for gen := 0; gen < 200; gen++ {
//	    stats, err := pop.Step(fitness)
//	    ...
//	}
//	best, score := pop.Best()
//
// ParallelTrain runs backpropagation on one clone per data shard and merges
// the trained clones with Crossover.
//
// Each member is only ever touched by one goroutine at a time, and every
// random draw comes from a generator derived from Config.Seed, so results do
// not depend on scheduling.
package evolve
