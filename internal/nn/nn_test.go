package nn

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestNetwork builds a deterministic network that logs into a discarded buffer.
func newTestNetwork(t *testing.T, topo Topology, seed int64) *Network {
	t.Helper()
	net, err := NewWithConfig(topo, Config{
		Seed:   seed,
		Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	})
	require.NoError(t, err)
	return net
}

func TestNew_Shapes(t *testing.T) {
	net, err := New(3, 2, 5, 2)
	require.NoError(t, err)

	weights := net.Weights()
	biases := net.Biases()
	require.Len(t, weights, 3)
	require.Len(t, biases, 3)

	want := [][2]int{{5, 3}, {5, 5}, {2, 5}}
	for i, w := range weights {
		rows, cols := w.Dims()
		assert.Equal(t, want[i][0], rows, "weights[%d] rows", i)
		assert.Equal(t, want[i][1], cols, "weights[%d] cols", i)

		rows, cols = biases[i].Dims()
		assert.Equal(t, want[i][0], rows, "biases[%d] rows", i)
		assert.Equal(t, 1, cols, "biases[%d] cols", i)
	}

	for _, p := range net.Parameters() {
		for _, v := range p.Value().Flatten() {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestNew_Defaults(t *testing.T) {
	net, err := NewSingleHidden(2, 3, 1)
	require.NoError(t, err)

	assert.Equal(t, Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 3, Outputs: 1}, net.Topology())
	assert.Equal(t, 0.01, net.LearningRate())
	assert.Equal(t, "sigmoid", net.Activation().Name)
}

func TestNew_NoHiddenLayers(t *testing.T) {
	net := newTestNetwork(t, Topology{Inputs: 3, Outputs: 2}, 1)

	weights := net.Weights()
	require.Len(t, weights, 1)
	rows, cols := weights[0].Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	out, err := net.Process([]float64{0.1, 0.2, 0.3})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestNew_InvalidTopology(t *testing.T) {
	tests := []struct {
		name string
		topo Topology
	}{
		{"no inputs", Topology{Inputs: 0, HiddenLayers: 1, HiddenNodes: 2, Outputs: 1}},
		{"no outputs", Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 2, Outputs: 0}},
		{"negative hidden layers", Topology{Inputs: 2, HiddenLayers: -1, HiddenNodes: 2, Outputs: 1}},
		{"empty hidden layer", Topology{Inputs: 2, HiddenLayers: 2, HiddenNodes: 0, Outputs: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, err := NewWithConfig(tt.topo, DefaultConfig())
			require.ErrorIs(t, err, ErrInvalidTopology)
			assert.Nil(t, net)
		})
	}
}

func TestNew_SameSeedSameNetwork(t *testing.T) {
	topo := Topology{Inputs: 4, HiddenLayers: 2, HiddenNodes: 3, Outputs: 2}
	a := newTestNetwork(t, topo, 42)
	b := newTestNetwork(t, topo, 42)
	c := newTestNetwork(t, topo, 43)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewWithConfig_ExplicitRand(t *testing.T) {
	topo := Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 2, Outputs: 1}
	a, err := NewWithConfig(topo, Config{Rand: rand.New(rand.NewSource(9)), Seed: 1})
	require.NoError(t, err)
	b, err := NewWithConfig(topo, Config{Seed: 9})
	require.NoError(t, err)

	assert.True(t, a.Equal(b), "Rand must take precedence over Seed")
}

func TestClone_DeepCopy(t *testing.T) {
	net := newTestNetwork(t, Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 3, Outputs: 1}, 5)
	net.SetLearningRate(0.3).SetActivation(Tanh)

	clone := net.Clone()
	require.True(t, clone.Equal(net))
	assert.Equal(t, 0.3, clone.LearningRate())
	assert.Equal(t, "tanh", clone.Activation().Name)

	clone.Parameters()[0].Value().Set(0, 0, 123)
	clone.Parameters()[2].Value().Set(0, 0, -123)
	assert.False(t, clone.Equal(net))
	assert.NotEqual(t, 123.0, net.Parameters()[0].Value().At(0, 0))
	assert.NotEqual(t, -123.0, net.Parameters()[2].Value().At(0, 0))
}

func TestAccessors_ReturnCopies(t *testing.T) {
	net := newTestNetwork(t, Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 2, Outputs: 1}, 5)
	before := net.Clone()

	net.Weights()[0].Set(0, 0, 99)
	net.Biases()[1].Set(0, 0, 99)
	assert.True(t, net.Equal(before))
}

func TestParameters_Order(t *testing.T) {
	net := newTestNetwork(t, Topology{Inputs: 2, HiddenLayers: 2, HiddenNodes: 3, Outputs: 1}, 5)

	var names []string
	total := 0
	for _, p := range net.Parameters() {
		names = append(names, p.Name())
		total += p.Size()
	}
	assert.Equal(t, []string{
		"layers.0.weight", "layers.1.weight", "layers.2.weight",
		"layers.0.bias", "layers.1.bias", "layers.2.bias",
	}, names)
	assert.Equal(t, net.Topology().ParamCount(), total)
}

func TestTopology(t *testing.T) {
	topo := Topology{Inputs: 2, HiddenLayers: 2, HiddenNodes: 3, Outputs: 1}
	assert.Equal(t, []int{2, 3, 3, 1}, topo.Widths())
	// (3*2+3) + (3*3+3) + (1*3+1)
	assert.Equal(t, 25, topo.ParamCount())
	assert.Equal(t, "2,2,3,1", topo.String())
}

func TestParseTopology(t *testing.T) {
	got, err := ParseTopology("2,1,4,1")
	require.NoError(t, err)
	assert.Equal(t, Topology{Inputs: 2, HiddenLayers: 1, HiddenNodes: 4, Outputs: 1}, got)

	got, err = ParseTopology("3, 5, 2")
	require.NoError(t, err)
	assert.Equal(t, Topology{Inputs: 3, HiddenLayers: 1, HiddenNodes: 5, Outputs: 2}, got)

	for _, bad := range []string{"", "2,x,1", "1,2", "1,2,3,4,5", "0,1,1"} {
		_, err := ParseTopology(bad)
		assert.ErrorIs(t, err, ErrInvalidTopology, "input %q", bad)
	}
}
