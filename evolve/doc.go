// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package evolve trains networks without gradients, or with gradients on
// several workers at once.
//
// # Overview
//
//   - Population: a fixed-size set of networks improved generation by
//     generation with elitism, Crossover and MutateWeights
//   - ParallelTrain: backpropagation on cloned networks, one per data shard,
//     merged with Crossover
//
// # Basic Usage
//
//	topo := nn.Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 4, Outputs: 1}
//	cfg := evolve.DefaultConfig()
//	cfg.Seed = 1
//
//	pop, err := evolve.NewPopulation(topo, nn.DefaultConfig(), cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fitness := func(net *nn.Network) (float64, error) {
//	    loss, err := net.Loss(samples)
//	    return -loss, err
//	}
//	for gen := 0; gen < 100; gen++ {
//	    stats, err := pop.Step(fitness)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    log.Printf("gen %d best %.4f", stats.Generation, stats.Best)
//	}
//	best, _ := pop.Best()
//
// # Determinism
//
// With a fixed Seed every random draw happens on the calling goroutine, so
// results do not depend on the number of workers.
package evolve
