package evolve

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
)

// ErrInvalidConfig is returned for population settings that cannot work.
var ErrInvalidConfig = errors.New("evolve: invalid config")

// DefaultMutationChance is the per-weight mutation chance selected by
// DefaultConfig or a MutationChance of -1.
const DefaultMutationChance = 0.1

// Fitness scores a network; higher is better. It may train or otherwise
// modify the network it is given, which belongs to the calling worker for
// the duration of the call.
type Fitness func(net *nn.Network) (float64, error)

// Config holds population settings.
type Config struct {
	Size               int             // Number of members (default: 50)
	Elite              int             // Members kept unchanged each generation (default: Size/5, at least 2)
	MutationChance     float64         // Per-weight MutateWeights chance. 0 = disabled, -1 = default (0.1).
	BiasMutationChance float64         // Per-weight MutateBiases chance (default: 0.0, disabled)
	Seed               int64           // Seed for all random draws. -1 = random.
	Parallel           parallel.Config // Fitness evaluation workers (default: parallel.DefaultConfig())
}

// DefaultConfig returns sensible population defaults.
func DefaultConfig() Config {
	return Config{
		Size:           50,
		Elite:          10,
		MutationChance: DefaultMutationChance,
		Seed:           -1,
		Parallel:       parallel.DefaultConfig(),
	}
}

func (c Config) withDefaults() (Config, error) {
	if c.Size == 0 {
		c.Size = 50
	}
	if c.Elite == 0 {
		c.Elite = max(c.Size/5, 2)
	}
	if c.MutationChance == -1 {
		c.MutationChance = DefaultMutationChance
	}
	if c.Parallel == (parallel.Config{}) {
		c.Parallel = parallel.DefaultConfig()
	}
	switch {
	case c.Size < 2:
		return c, fmt.Errorf("%w: size must be >= 2, got %d", ErrInvalidConfig, c.Size)
	case c.Elite < 1 || c.Elite > c.Size:
		return c, fmt.Errorf("%w: elite must be in [1, %d], got %d", ErrInvalidConfig, c.Size, c.Elite)
	case c.MutationChance < 0 || c.MutationChance > 1:
		return c, fmt.Errorf("%w: mutation chance %v outside [0, 1]", ErrInvalidConfig, c.MutationChance)
	case c.BiasMutationChance < 0 || c.BiasMutationChance > 1:
		return c, fmt.Errorf("%w: bias mutation chance %v outside [0, 1]", ErrInvalidConfig, c.BiasMutationChance)
	}
	return c, nil
}

// Stats summarizes one evaluated generation.
type Stats struct {
	Generation int
	Best       float64
	Mean       float64
	Worst      float64
}

// Population is a generation of same-topology networks.
//
// A Population is not safe for concurrent use; it parallelizes internally.
type Population struct {
	config     Config
	members    []*nn.Network
	scores     []float64 // scores[i] belongs to members[i]; valid once evaluated
	evaluated  bool
	generation int
	rng        *rand.Rand
}

// NewPopulation creates config.Size randomly initialized networks.
//
// netConfig supplies the learning rate, activation and logger of every
// member. Its Seed and Rand are ignored: member generators are derived from
// config.Seed.
func NewPopulation(t nn.Topology, netConfig nn.Config, config Config) (*Population, error) {
	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed < 0 {
		seed = rand.Int63() //nolint:gosec // Evolution, not security-critical
	}
	p := &Population{
		config:  config,
		members: make([]*nn.Network, config.Size),
		scores:  make([]float64, config.Size),
		rng:     rand.New(rand.NewSource(seed)), //nolint:gosec // Deterministic seed for reproducibility
	}

	for i := range p.members {
		cfg := netConfig
		cfg.Rand = p.derive()
		net, err := nn.NewWithConfig(t, cfg)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", i, err)
		}
		p.members[i] = net
	}
	return p, nil
}

// derive returns a new generator seeded from the population's generator.
func (p *Population) derive() *rand.Rand {
	return rand.New(rand.NewSource(p.rng.Int63())) //nolint:gosec // Derived deterministic seed
}

// Evaluate scores every member with fitness, in parallel.
//
// Scores are committed only when every member was scored. On error the
// previous scores, and with them Best, are left as they were.
func (p *Population) Evaluate(fitness Fitness) error {
	scores := make([]float64, len(p.members))
	err := parallel.ForErr(len(p.members), func(i int) error {
		score, err := fitness(p.members[i])
		if err != nil {
			return fmt.Errorf("member %d: %w", i, err)
		}
		scores[i] = score
		return nil
	}, p.config.Parallel)
	if err != nil {
		return err
	}
	p.scores = scores
	p.evaluated = true
	return nil
}

// Step evaluates the current generation, then replaces it with the next one.
//
// The next generation holds the Elite best members unchanged, followed by
// children of two elite parents picked at random:
//
//	child = a.Crossover(b)
//	child.MutateWeights(MutationChance)
//	child.MutateBiases(BiasMutationChance) // when enabled
//
// Returns the statistics of the generation that was evaluated.
func (p *Population) Step(fitness Fitness) (Stats, error) {
	if err := p.Evaluate(fitness); err != nil {
		return Stats{}, err
	}
	stats := p.stats()

	order := p.ranking()
	elite := make([]*nn.Network, p.config.Elite)
	eliteScores := make([]float64, p.config.Elite)
	for i := range elite {
		elite[i] = p.members[order[i]]
		eliteScores[i] = p.scores[order[i]]
	}

	next := make([]*nn.Network, 0, p.config.Size)
	next = append(next, elite...)
	for len(next) < p.config.Size {
		a := elite[p.rng.Intn(len(elite))]
		b := elite[p.rng.Intn(len(elite))]
		rng := p.derive()

		child, err := a.Crossover(b, rng)
		if err != nil {
			return stats, err
		}
		child.MutateWeights(p.config.MutationChance, rng)
		if p.config.BiasMutationChance > 0 {
			child.MutateBiases(p.config.BiasMutationChance, rng)
		}
		next = append(next, child)
	}

	p.members = next
	// Elite scores stay valid until the next evaluation; children are unscored.
	p.scores = make([]float64, p.config.Size)
	copy(p.scores, eliteScores)
	p.evaluated = false
	p.generation++
	return stats, nil
}

// ranking returns member indices ordered by descending score. Ties keep
// member order.
func (p *Population) ranking() []int {
	order := make([]int, len(p.members))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return p.scores[order[a]] > p.scores[order[b]]
	})
	return order
}

func (p *Population) stats() Stats {
	return Stats{
		Generation: p.generation,
		Best:       floats.Max(p.scores),
		Mean:       floats.Sum(p.scores) / float64(len(p.scores)),
		Worst:      floats.Min(p.scores),
	}
}

// Best returns the highest scoring member of the most recent evaluation and
// its score. After Step that is the first elite member.
func (p *Population) Best() (*nn.Network, float64) {
	if p.evaluated {
		i := p.ranking()[0]
		return p.members[i], p.scores[i]
	}
	return p.members[0], p.scores[0]
}

// Members returns the current members. The slice is a copy; the networks are not.
func (p *Population) Members() []*nn.Network {
	out := make([]*nn.Network, len(p.members))
	copy(out, p.members)
	return out
}

// Generation returns the number of completed Steps.
func (p *Population) Generation() int {
	return p.generation
}
