// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a small fully-connected feed-forward network.
//
// # Overview
//
// This package contains:
//   - Network: construction, inference (Process) and training (Train)
//   - Activations: Sigmoid, Tanh
//   - Evolutionary operators: MutateWeights, MutateBiases, Crossover
//   - Persistence: WriteTo/ReadFrom, SaveFile/LoadFile, Checksum
//
// # Basic Usage
//
//	import "github.com/born-ml/mlp/nn"
//
//	func main() {
//	    cfg := nn.DefaultConfig()
//	    cfg.Activation = nn.Tanh
//	    cfg.LearningRate = 0.2
//	    cfg.Seed = 1
//
//	    net, err := nn.NewWithConfig(nn.Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 4, Outputs: 1}, cfg)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    samples := []nn.Sample{
//	        {Input: []float64{0, 0}, Target: []float64{0}},
//	        {Input: []float64{0, 1}, Target: []float64{1}},
//	        {Input: []float64{1, 0}, Target: []float64{1}},
//	        {Input: []float64{1, 1}, Target: []float64{0}},
//	    }
//	    if err := net.TrainEpochs(samples, 5000); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, _ := net.Process([]float64{1, 0})
//	    fmt.Println(out)
//	}
//
// # Topology
//
// A network has Inputs input nodes, HiddenLayers hidden layers of
// HiddenNodes each and Outputs output nodes. HiddenLayers may be zero.
// Layer i holds a weight matrix of shape (width[i+1], width[i]) and a bias
// column of shape (width[i+1], 1). The topology is fixed at construction.
//
// # Inputs
//
// Inputs are expected in [-2, 2]. Values outside the range are still
// processed but produce a warning on the configured slog.Logger.
//
// # Persistence
//
// The parameter stream is every weight matrix in layer order, row-major,
// followed by every bias column, as big-endian float64 values with no header.
// Loading requires a network with the same topology:
//
//	if err := nn.SaveFile("xor.bin", net); err != nil {
//	    log.Fatal(err)
//	}
//	restored, _ := nn.New(2, 1, 4, 1)
//	if err := nn.LoadFile("xor.bin", restored); err != nil {
//	    log.Fatal(err)
//	}
package nn
