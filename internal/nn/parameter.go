package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
)

// Parameter is a named, live view of one of the network's weight or bias
// matrices.
//
// Writing to Value() changes the network directly. Serializers and
// inspection tools use it; everything else should go through the Network API.
type Parameter struct {
	name  string         // e.g. "layers.0.weight"
	value *matrix.Matrix // owned by the network
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the underlying matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Size returns the number of scalar values in the parameter.
func (p *Parameter) Size() int {
	r, c := p.value.Dims()
	return r * c
}
