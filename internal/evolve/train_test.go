package evolve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/parallel"
)

func newBase(t *testing.T, seed int64) *nn.Network {
	t.Helper()
	cfg := quietConfig()
	cfg.Seed = seed
	cfg.LearningRate = 0.2
	net, err := nn.NewWithConfig(xorTopology, cfg)
	require.NoError(t, err)
	return net
}

func TestParallelTrain_SingleShardMatchesSerial(t *testing.T) {
	base := newBase(t, 1)
	serial := base.Clone()

	merged, err := ParallelTrain(base, [][]nn.Sample{xorSamples}, 100, parallel.DefaultConfig(), nil)
	require.NoError(t, err)

	require.NoError(t, serial.TrainEpochs(xorSamples, 100))
	assert.True(t, merged.Equal(serial), "one shard is plain training on a clone")
}

func TestParallelTrain_DoesNotTouchBase(t *testing.T) {
	base := newBase(t, 2)
	snapshot := base.Clone()

	shards := [][]nn.Sample{xorSamples[:2], xorSamples[2:], xorSamples}
	merged, err := ParallelTrain(base, shards, 50, parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	assert.True(t, base.Equal(snapshot))
	assert.False(t, merged.Equal(base))
	assert.Equal(t, base.Topology(), merged.Topology())
}

func TestParallelTrain_ReducesLoss(t *testing.T) {
	base := newBase(t, 3)
	before, err := base.Loss(xorSamples)
	require.NoError(t, err)

	shards := [][]nn.Sample{xorSamples, xorSamples, xorSamples, xorSamples}
	merged, err := ParallelTrain(base, shards, 500, parallel.DefaultConfig(), rand.New(rand.NewSource(2)))
	require.NoError(t, err)

	after, err := merged.Loss(xorSamples)
	require.NoError(t, err)
	assert.Less(t, after, before)
}

func TestParallelTrain_Errors(t *testing.T) {
	base := newBase(t, 4)

	_, err := ParallelTrain(base, nil, 1, parallel.DefaultConfig(), nil)
	require.ErrorIs(t, err, ErrInvalidConfig)

	bad := [][]nn.Sample{xorSamples, {{Input: []float64{1}, Target: []float64{0}}}}
	_, err = ParallelTrain(base, bad, 1, parallel.DefaultConfig(), nil)
	require.ErrorIs(t, err, nn.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "shard 1")
}
