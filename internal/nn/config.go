package nn

import (
	"log/slog"
	"math/rand"
)

// DefaultLearningRate is the step size used when Config.LearningRate is zero.
const DefaultLearningRate = 0.01

// Config holds the mutable training settings of a network.
type Config struct {
	LearningRate float64      // Gradient step size (default: 0.01)
	Activation   Activation   // Activation pair (default: Sigmoid)
	Seed         int64        // Seed for the network's generator. -1 = random.
	Rand         *rand.Rand   // Explicit generator; takes precedence over Seed
	Logger       *slog.Logger // Receives input range warnings (default: slog.Default())
}

// DefaultConfig returns the settings used by New and NewSingleHidden.
func DefaultConfig() Config {
	return Config{
		LearningRate: DefaultLearningRate,
		Activation:   Sigmoid,
		Seed:         -1,
	}
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if !c.Activation.valid() {
		c.Activation = Sigmoid
	}
	if c.Rand == nil {
		seed := c.Seed
		if seed < 0 {
			seed = rand.Int63() //nolint:gosec // Weight initialization, not security-critical
		}
		c.Rand = rand.New(rand.NewSource(seed)) //nolint:gosec // Deterministic seed for reproducibility
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
