package nn

import "errors"

// Common errors.
var (
	ErrInvalidArgument      = errors.New("nn: vector length does not match topology")
	ErrInvalidTopology      = errors.New("nn: invalid topology")
	ErrIncompatibleTopology = errors.New("nn: networks have different topologies")
)
