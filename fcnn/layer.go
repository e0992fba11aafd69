package fcnn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fcnn/matrix"
	"github.com/katalvlaran/fcnn/nnmath"
)

// DefaultBiasWeight is the initial weight of every bias connection.
const DefaultBiasWeight = 1.0

// NeuralLayer is one layer of a fully-connected network.
//
// Fields populated per type:
//   - Input:  out (the input values), bias.
//   - Hidden: weights, f/df, net/out/delta, bias.
//   - Output: weights, f/df, e/de, net/out/delta.
//
// weights holds the incoming connections: neurons × predecessor neurons.
// bias holds the weights from this layer's bias unit to every neuron of the
// NEXT layer; until a successor is attached it has one entry per own neuron.
type NeuralLayer struct {
	typ     LayerType
	neurons int

	f, df nnmath.ActivationFunc
	e, de nnmath.ErrorFunc

	weights    *matrix.Dense
	bias       []float64
	biasCustom bool // bias was supplied by the caller and is never re-seated

	net   []float64
	out   []float64
	delta []float64
}

// LayerOption configures a NeuralLayer at construction.
type LayerOption func(*layerConfig)

type layerConfig struct {
	f, df   nnmath.ActivationFunc
	e, de   nnmath.ErrorFunc
	weights *matrix.Dense
	bias    []float64
	values  []float64
}

// WithActivation sets the activation function and its derivative.
func WithActivation(f, df nnmath.ActivationFunc) LayerOption {
	return func(c *layerConfig) {
		c.f, c.df = f, df
	}
}

// WithActivationPair is WithActivation(a.F, a.DF).
func WithActivationPair(a nnmath.Activation) LayerOption {
	return WithActivation(a.F, a.DF)
}

// WithErrorFunc sets the error function and its derivative (Output layers only).
func WithErrorFunc(e, de nnmath.ErrorFunc) LayerOption {
	return func(c *layerConfig) {
		c.e, c.de = e, de
	}
}

// WithLoss is WithErrorFunc(l.E, l.DE).
func WithLoss(l nnmath.Loss) LayerOption {
	return WithErrorFunc(l.E, l.DE)
}

// WithWeights sets the incoming weight matrix (neurons × predecessor neurons).
// The matrix is copied. A nil matrix is ignored.
func WithWeights(w *matrix.Dense) LayerOption {
	return func(c *layerConfig) {
		if w != nil {
			c.weights = w
		}
	}
}

// WithBiasWeights sets the bias weights toward the next layer. The slice is copied.
func WithBiasWeights(w []float64) LayerOption {
	return func(c *layerConfig) {
		c.bias = w
	}
}

// WithValues seeds the outputs of an Input layer. The slice is copied.
func WithValues(v []float64) LayerOption {
	return func(c *layerConfig) {
		c.values = v
	}
}

// NewNeuralLayer builds a layer of the given type.
//
// Validation (nothing is allocated on failure):
//   - neurons <= 0 or unknown type                     → ErrConfiguration
//   - Input with any activation or error function      → ErrConfiguration
//   - Input with weights                               → ErrConfiguration
//   - Hidden/Output without both f and df              → ErrConfiguration
//   - Output without both e and de; others with e/de   → ErrConfiguration
//   - Output with bias weights                         → ErrConfiguration
//   - weights rows != neurons, empty bias              → ErrShape
//   - seed values on a non-Input layer                 → ErrConfiguration
//   - seed values of the wrong length                  → ErrShape
//
// On success net and out are zeroed, delta is zeroed for non-Input layers and
// Input/Hidden layers carry DefaultBiasWeight per neuron.
func NewNeuralLayer(typ LayerType, neurons int, opts ...LayerOption) (*NeuralLayer, error) {
	var cfg layerConfig
	for _, set := range opts {
		if set != nil {
			set(&cfg)
		}
	}
	if err := cfg.validate(typ, neurons); err != nil {
		return nil, err
	}

	l := &NeuralLayer{
		typ:     typ,
		neurons: neurons,
		f:       cfg.f,
		df:      cfg.df,
		e:       cfg.e,
		de:      cfg.de,
		net:     make([]float64, neurons),
		out:     make([]float64, neurons),
	}
	if typ != Input {
		l.delta = make([]float64, neurons)
	}
	if cfg.weights != nil {
		l.weights = cfg.weights.CloneDense()
	}
	switch {
	case cfg.bias != nil:
		l.bias = append([]float64(nil), cfg.bias...)
		l.biasCustom = true
	case typ != Output:
		l.bias = filled(neurons, DefaultBiasWeight)
	}
	if cfg.values != nil {
		copy(l.out, cfg.values)
	}

	return l, nil
}

func (c *layerConfig) validate(typ LayerType, neurons int) error {
	if !typ.valid() {
		return fmt.Errorf("NewNeuralLayer: %w: unknown layer type %d", ErrConfiguration, int(typ))
	}
	if neurons <= 0 {
		return fmt.Errorf("NewNeuralLayer(%s): %w: neurons must be > 0, got %d", typ, ErrConfiguration, neurons)
	}

	hasF := c.f != nil || c.df != nil
	hasE := c.e != nil || c.de != nil
	switch typ {
	case Input:
		if hasF || hasE {
			return fmt.Errorf("NewNeuralLayer(Input): %w: input layers take no activation or error function", ErrConfiguration)
		}
		if c.weights != nil {
			return fmt.Errorf("NewNeuralLayer(Input): %w: input layers own no weights", ErrConfiguration)
		}
	case Hidden, Output:
		if c.f == nil || c.df == nil {
			return fmt.Errorf("NewNeuralLayer(%s): %w: activation function and derivative required", typ, ErrConfiguration)
		}
	}
	switch {
	case typ == Output && (c.e == nil || c.de == nil):
		return fmt.Errorf("NewNeuralLayer(Output): %w: error function and derivative required", ErrConfiguration)
	case typ != Output && hasE:
		return fmt.Errorf("NewNeuralLayer(%s): %w: only output layers take an error function", typ, ErrConfiguration)
	}

	if c.weights != nil && c.weights.Rows() != neurons {
		return fmt.Errorf("NewNeuralLayer(%s): %w: weights have %d rows, want %d",
			typ, ErrShape, c.weights.Rows(), neurons)
	}
	if c.bias != nil {
		if typ == Output {
			return fmt.Errorf("NewNeuralLayer(Output): %w: output layers have no bias unit", ErrConfiguration)
		}
		if err := checkBias(c.bias); err != nil {
			return fmt.Errorf("NewNeuralLayer(%s): %w", typ, err)
		}
	}
	if c.values != nil {
		if typ != Input {
			return fmt.Errorf("NewNeuralLayer(%s): %w: only input layers take seed values", typ, ErrConfiguration)
		}
		if len(c.values) != neurons {
			return fmt.Errorf("NewNeuralLayer(Input): %w: %d values for %d neurons", ErrShape, len(c.values), neurons)
		}
	}

	return nil
}

// checkBias rejects empty or non-finite bias weights.
func checkBias(w []float64) error {
	if len(w) == 0 {
		return fmt.Errorf("%w: empty bias weights", ErrShape)
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bias weight %d: %w", ErrConfiguration, i, matrix.ErrNaNInf)
		}
	}

	return nil
}

// Type returns the layer type.
func (l *NeuralLayer) Type() LayerType { return l.typ }

// Neurons returns the number of neurons.
func (l *NeuralLayer) Neurons() int { return l.neurons }

// Net returns a copy of the pre-activation values of the last forward pass.
func (l *NeuralLayer) Net() []float64 { return cloneVec(l.net) }

// Out returns a copy of the outputs of the last forward pass.
func (l *NeuralLayer) Out() []float64 { return cloneVec(l.out) }

// Delta returns a copy of the deltas of the last backward pass (nil for Input).
func (l *NeuralLayer) Delta() []float64 { return cloneVec(l.delta) }

// BiasWeights returns a copy of the bias weights (nil for Output).
func (l *NeuralLayer) BiasWeights() []float64 { return cloneVec(l.bias) }

// HasWeights reports whether incoming weights are set.
func (l *NeuralLayer) HasWeights() bool { return l.weights != nil }

// Weights returns a copy of the incoming weights, or nil.
func (l *NeuralLayer) Weights() *matrix.Dense {
	if l.weights == nil {
		return nil
	}

	return l.weights.CloneDense()
}

// SetBiasWeights replaces the bias weights with a copy of w.
// Output layers have no bias unit (ErrConfiguration); empty w → ErrShape.
// Inside a Network use Network.SetBiasWeights, which also checks the
// successor's width.
func (l *NeuralLayer) SetBiasWeights(w []float64) error {
	if l.typ == Output {
		return fmt.Errorf("SetBiasWeights(Output): %w: output layers have no bias unit", ErrConfiguration)
	}
	if err := checkBias(w); err != nil {
		return fmt.Errorf("SetBiasWeights: %w", err)
	}
	l.bias = append(l.bias[:0:0], w...)
	l.biasCustom = true

	return nil
}

// Clone returns a deep copy of the layer. Function values are shared.
func (l *NeuralLayer) Clone() *NeuralLayer {
	c := *l
	c.net = cloneVec(l.net)
	c.out = cloneVec(l.out)
	c.delta = cloneVec(l.delta)
	c.bias = cloneVec(l.bias)
	if l.weights != nil {
		c.weights = l.weights.CloneDense()
	}

	return &c
}

// String returns e.g. "Hidden(4)".
func (l *NeuralLayer) String() string {
	return fmt.Sprintf("%s(%d)", l.typ, l.neurons)
}

func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}

	return append(make([]float64, 0, len(v)), v...)
}

func filled(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}

	return s
}
