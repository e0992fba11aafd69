package fcnn

import (
	"errors"

	"github.com/katalvlaran/fcnn/matrix"
)

// Sentinel errors for layer construction, topology building and propagation.
// Match with errors.Is; call sites wrap them with the failing operation.
var (
	// ErrConfiguration is returned when a layer or call is configured
	// inconsistently (missing activation, forbidden error function,
	// non-positive neuron count, invalid learning rate).
	ErrConfiguration = errors.New("fcnn: invalid configuration")

	// ErrShape is returned when a vector length or matrix shape does not fit
	// the layer it is applied to.
	ErrShape = errors.New("fcnn: shape mismatch")

	// ErrTopology is returned when layers are added in an invalid order or an
	// operation needs a layer the network does not have yet.
	ErrTopology = errors.New("fcnn: invalid topology")

	// ErrOptionViolation is returned when an invalid Option was supplied to New.
	ErrOptionViolation = errors.New("fcnn: invalid option supplied")

	// ErrOutOfRange is returned for a layer index outside the network.
	// It is the matrix sentinel, so one errors.Is check covers both packages.
	ErrOutOfRange = matrix.ErrOutOfRange
)
