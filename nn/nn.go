// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"io"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/serialization"
)

// Network is a fully-connected feed-forward network.
type Network = nn.Network

// Topology describes the fixed shape of a network.
type Topology = nn.Topology

// Config holds learning rate, activation, random source and logger settings.
type Config = nn.Config

// Sample is a single (input, target) training pair.
type Sample = nn.Sample

// Activation pairs an element-wise function with its derivative expressed
// in terms of the function's output.
type Activation = nn.Activation

// Parameter is a named, live view of a weight or bias matrix.
type Parameter = nn.Parameter

// Model is implemented by anything that can run inference and expose its
// parameters.
type Model = nn.Model

// DefaultLearningRate is the step size used when none is configured.
const DefaultLearningRate = nn.DefaultLearningRate

// Activations.
var (
	Sigmoid = nn.Sigmoid
	Tanh    = nn.Tanh
)

// Errors returned by network operations.
var (
	ErrInvalidArgument      = nn.ErrInvalidArgument
	ErrInvalidTopology      = nn.ErrInvalidTopology
	ErrIncompatibleTopology = nn.ErrIncompatibleTopology
	ErrChecksumMismatch     = serialization.ErrChecksumMismatch
)

// New creates a network with DefaultConfig settings.
//
// Example:
//
//	net, err := nn.New(2, 1, 4, 1)
func New(inputNodes, hiddenLayers, hiddenNodes, outputNodes int) (*Network, error) {
	return nn.New(inputNodes, hiddenLayers, hiddenNodes, outputNodes)
}

// NewSingleHidden creates a network with exactly one hidden layer.
func NewSingleHidden(inputNodes, hiddenNodes, outputNodes int) (*Network, error) {
	return nn.NewSingleHidden(inputNodes, hiddenNodes, outputNodes)
}

// NewWithConfig creates a network with an explicit topology and settings.
//
// Example:
//
//	cfg := nn.DefaultConfig()
//	cfg.Seed = 42
//	net, err := nn.NewWithConfig(nn.Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 4, Outputs: 1}, cfg)
func NewWithConfig(t Topology, config Config) (*Network, error) {
	return nn.NewWithConfig(t, config)
}

// DefaultConfig returns sigmoid activation, learning rate 0.01 and a
// randomly seeded generator.
func DefaultConfig() Config {
	return nn.DefaultConfig()
}

// ParseTopology parses "inputs,hiddenNodes,outputs" or
// "inputs,hiddenLayers,hiddenNodes,outputs".
func ParseTopology(s string) (Topology, error) {
	return nn.ParseTopology(s)
}

// ActivationByName returns "sigmoid" or "tanh".
func ActivationByName(name string) (Activation, error) {
	return nn.ActivationByName(name)
}

// MSE computes the mean squared error between predictions and targets.
func MSE(predictions, targets []float64) (float64, error) {
	return nn.MSE(predictions, targets)
}

// SaveFile writes the parameter stream of m to path.
func SaveFile(path string, m io.WriterTo) error {
	return serialization.SaveFile(path, m)
}

// LoadFile reads a parameter stream from path into m.
func LoadFile(path string, m io.ReaderFrom) error {
	return serialization.LoadFile(path, m)
}

// Checksum returns the SHA-256 of m's parameter stream.
// Networks with bit-identical parameters have equal checksums.
func Checksum(m io.WriterTo) ([32]byte, error) {
	return serialization.Checksum(m)
}

// ParseChecksum decodes a hex checksum as printed by the mlp tool.
func ParseChecksum(s string) ([32]byte, error) {
	return serialization.ParseChecksum(s)
}

// VerifyFile returns ErrChecksumMismatch unless the file at path has the
// checksum want.
//
// Example:
//
//	want, _ := nn.ParseChecksum(expectedHex)
//	if err := nn.VerifyFile("xor.bin", want); err != nil {
//	    log.Fatal(err)
//	}
func VerifyFile(path string, want [32]byte) error {
	return serialization.VerifyFile(path, want)
}

// FileChecksum returns the SHA-256 of a saved parameter file.
func FileChecksum(path string) ([32]byte, error) {
	return serialization.FileChecksum(path)
}
