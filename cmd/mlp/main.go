// Package main provides the mlp command line tool.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/mlp/evolve"
	"github.com/born-ml/mlp/nn"
)

const version = "v0.1.0"

var xorSamples = []nn.Sample{
	{Input: []float64{0, 0}, Target: []float64{0}},
	{Input: []float64{0, 1}, Target: []float64{1}},
	{Input: []float64{1, 0}, Target: []float64{1}},
	{Input: []float64{1, 1}, Target: []float64{0}},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mlp: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("mlp %s\n", version)
	case "xor":
		err = runXOR(os.Args[2:])
	case "evolve":
		err = runEvolve(os.Args[2:])
	case "predict":
		err = runPredict(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Println("mlp - feed-forward neural network toolkit")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  xor        Train a network on XOR with backpropagation")
	fmt.Println("  evolve     Evolve a population of networks on XOR")
	fmt.Println("  predict    Load saved weights and run inputs through them")
}

func runXOR(args []string) error {
	fs := flag.NewFlagSet("xor", flag.ExitOnError)
	hidden := fs.Int("hidden", 4, "Hidden layer width")
	lr := fs.Float64("lr", 0.2, "Learning rate")
	epochs := fs.Int("epochs", 5000, "Passes over the four XOR samples")
	activation := fs.String("activation", "tanh", "Activation function (sigmoid or tanh)")
	seed := fs.Int64("seed", 1, "Random seed (-1 = random)")
	out := fs.String("out", "", "Save trained weights to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	act, err := nn.ActivationByName(*activation)
	if err != nil {
		return err
	}
	cfg := nn.DefaultConfig()
	cfg.LearningRate = *lr
	cfg.Activation = act
	cfg.Seed = *seed

	topo := nn.Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: *hidden, Outputs: 1}
	net, err := nn.NewWithConfig(topo, cfg)
	if err != nil {
		return errors.Wrap(err, "can't create network")
	}

	before, err := net.Loss(xorSamples)
	if err != nil {
		return err
	}
	if err := net.TrainEpochs(xorSamples, *epochs); err != nil {
		return errors.Wrap(err, "training failed")
	}
	after, err := net.Loss(xorSamples)
	if err != nil {
		return err
	}

	fmt.Printf("Topology: %s (%d parameters), activation=%s, lr=%g\n", topo, topo.ParamCount(), act.Name, *lr)
	if err := printPredictions(net); err != nil {
		return err
	}
	fmt.Printf("Loss: %.6f -> %.6f\n", before, after)
	return finish(net, *out)
}

func runEvolve(args []string) error {
	fs := flag.NewFlagSet("evolve", flag.ExitOnError)
	hidden := fs.Int("hidden", 4, "Hidden layer width")
	size := fs.Int("size", 50, "Population size")
	elite := fs.Int("elite", 10, "Members kept unchanged each generation")
	chance := fs.Float64("mutate", evolve.DefaultMutationChance, "Per-weight mutation chance (0 disables)")
	generations := fs.Int("generations", 300, "Number of generations")
	activation := fs.String("activation", "tanh", "Activation function (sigmoid or tanh)")
	seed := fs.Int64("seed", 1, "Random seed (-1 = random)")
	out := fs.String("out", "", "Save the best network to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	act, err := nn.ActivationByName(*activation)
	if err != nil {
		return err
	}
	netCfg := nn.DefaultConfig()
	netCfg.Activation = act

	cfg := evolve.DefaultConfig()
	cfg.Size = *size
	cfg.Elite = *elite
	cfg.MutationChance = *chance
	cfg.Seed = *seed

	topo := nn.Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: *hidden, Outputs: 1}
	pop, err := evolve.NewPopulation(topo, netCfg, cfg)
	if err != nil {
		return errors.Wrap(err, "can't create population")
	}

	fitness := func(net *nn.Network) (float64, error) {
		loss, err := net.Loss(xorSamples)
		return -loss, err
	}
	for gen := 0; gen < *generations; gen++ {
		stats, err := pop.Step(fitness)
		if err != nil {
			return errors.Wrapf(err, "generation %d", gen)
		}
		if gen%50 == 0 || gen == *generations-1 {
			fmt.Printf("Generation %4d: best loss=%.6f mean loss=%.6f\n", stats.Generation, -stats.Best, -stats.Mean)
		}
	}

	best, score := pop.Best()
	fmt.Printf("Best loss: %.6f\n", -score)
	if err := printPredictions(best); err != nil {
		return err
	}
	return finish(best, *out)
}

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	weights := fs.String("weights", "", "Saved weights file (required)")
	topology := fs.String("topology", "2,1,4,1", "Network topology: inputs,hiddenLayers,hiddenNodes,outputs")
	activation := fs.String("activation", "tanh", "Activation function (sigmoid or tanh)")
	checksum := fs.String("checksum", "", "Expected hex SHA-256 of the weights file, as printed by xor/evolve")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *weights == "" {
		return errors.New("predict: -weights is required")
	}
	if *checksum != "" {
		want, err := nn.ParseChecksum(*checksum)
		if err != nil {
			return err
		}
		if err := nn.VerifyFile(*weights, want); err != nil {
			return err
		}
	}

	topo, err := nn.ParseTopology(*topology)
	if err != nil {
		return err
	}
	act, err := nn.ActivationByName(*activation)
	if err != nil {
		return err
	}
	cfg := nn.DefaultConfig()
	cfg.Activation = act
	net, err := nn.NewWithConfig(topo, cfg)
	if err != nil {
		return err
	}
	if err := nn.LoadFile(*weights, net); err != nil {
		return err
	}

	input := make([]float64, fs.NArg())
	for i, arg := range fs.Args() {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "input %d", i)
		}
		input[i] = v
	}
	output, err := net.Process(input)
	if err != nil {
		return err
	}
	for _, v := range output {
		fmt.Printf("%.6f\n", v)
	}
	return nil
}

func printPredictions(net *nn.Network) error {
	for _, s := range xorSamples {
		out, err := net.Process(s.Input)
		if err != nil {
			return err
		}
		fmt.Printf("  %v -> %.4f (want %v)\n", s.Input, out[0], s.Target[0])
	}
	return nil
}

// finish prints the parameter checksum and optionally saves the network.
func finish(net *nn.Network, path string) error {
	sum, err := nn.Checksum(net)
	if err != nil {
		return err
	}
	fmt.Printf("Checksum: %s\n", hex.EncodeToString(sum[:]))

	if path == "" {
		return nil
	}
	if err := nn.SaveFile(path, net); err != nil {
		return err
	}
	fmt.Printf("Saved weights to %s\n", path)
	return nil
}
