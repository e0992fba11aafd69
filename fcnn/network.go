package fcnn

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fcnn/matrix"
)

// Network is a fully-connected feed-forward network: one Input layer, any
// number of Hidden layers and one Output layer, appended in that order.
//
// A Network is not safe for concurrent use.
type Network struct {
	layers     []*NeuralLayer
	hasOutputs bool
	steps      int
	opts       Options
}

// New returns an empty Network configured by opts.
// An invalid option does not fail here; it is returned, wrapped in
// ErrOptionViolation, by every subsequent mutating call.
func New(opts ...Option) *Network {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return &Network{opts: o}
}

// AddInputLayer appends the Input layer. initial, when non-nil, seeds its
// values and must have one entry per neuron. opts may carry WithBiasWeights.
//
// Errors: ErrOptionViolation, ErrTopology (a layer already exists),
// ErrConfiguration, ErrShape.
func (n *Network) AddInputLayer(neurons int, initial []float64, opts ...LayerOption) error {
	if n.opts.err != nil {
		return n.opts.err
	}
	if len(n.layers) > 0 {
		return fmt.Errorf("AddInputLayer: %w: input layer must be the first layer", ErrTopology)
	}
	if initial != nil {
		opts = append(opts, WithValues(initial))
	}
	l, err := NewNeuralLayer(Input, neurons, opts...)
	if err != nil {
		return fmt.Errorf("AddInputLayer: %w", err)
	}
	n.layers = append(n.layers, l)

	return nil
}

// AddHiddenLayer appends a Hidden layer after the Input or the last Hidden layer.
// Weights not supplied via WithWeights are allocated and randomised in [0,1).
//
// Errors: ErrOptionViolation, ErrTopology (no Input yet, or Output present),
// ErrConfiguration, ErrShape.
func (n *Network) AddHiddenLayer(neurons int, opts ...LayerOption) error {
	return n.addLayer("AddHiddenLayer", Hidden, neurons, opts)
}

// AddOutputLayer appends the Output layer and freezes the topology.
//
// Errors: as AddHiddenLayer.
func (n *Network) AddOutputLayer(neurons int, opts ...LayerOption) error {
	if err := n.addLayer("AddOutputLayer", Output, neurons, opts); err != nil {
		return err
	}
	n.hasOutputs = true

	return nil
}

// addLayer validates and attaches l behind the current last layer.
//
// Implementation:
//   - Stage 1: topology checks and layer construction.
//   - Stage 2: weights: supplied → cols must equal predecessor width;
//     absent → allocate neurons × predecessor and randomise from the stream.
//   - Stage 3: predecessor bias: default → re-seat to this layer's width;
//     caller-set → its length must equal this layer's width.
//   - Stage 4: commit. Nothing is mutated before every check passed.
func (n *Network) addLayer(op string, typ LayerType, neurons int, opts []LayerOption) error {
	if n.opts.err != nil {
		return n.opts.err
	}
	if len(n.layers) == 0 {
		return fmt.Errorf("%s: %w: add an input layer first", op, ErrTopology)
	}
	if n.hasOutputs {
		return fmt.Errorf("%s: %w: output layer already present", op, ErrTopology)
	}
	l, err := NewNeuralLayer(typ, neurons, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	prev := n.layers[len(n.layers)-1]
	var weights *matrix.Dense
	if l.weights != nil {
		if l.weights.Cols() != prev.neurons {
			return fmt.Errorf("%s: %w: weights have %d columns, predecessor has %d neurons",
				op, ErrShape, l.weights.Cols(), prev.neurons)
		}
		weights = l.weights
	} else {
		if weights, err = matrix.NewDense(neurons, prev.neurons); err != nil {
			return fmt.Errorf("%s: %w: %w", op, ErrShape, err)
		}
		weights.RandomizeWith(n.opts.Rand)
	}

	bias := prev.bias
	if !prev.biasCustom {
		bias = filled(neurons, DefaultBiasWeight)
	} else if len(bias) != neurons {
		return fmt.Errorf("%s: %w: predecessor has %d bias weights, layer has %d neurons",
			op, ErrShape, len(bias), neurons)
	}

	l.weights = weights
	prev.bias = bias
	n.layers = append(n.layers, l)

	return nil
}

// SetBiasWeights replaces the bias weights of layer i with a copy of w.
// When layer i already has a successor, len(w) must equal its width.
//
// Errors: ErrOptionViolation, ErrOutOfRange, ErrConfiguration (Output layer),
// ErrShape.
func (n *Network) SetBiasWeights(i int, w []float64) error {
	if n.opts.err != nil {
		return n.opts.err
	}
	if err := n.checkIndex("SetBiasWeights", i); err != nil {
		return err
	}
	if i+1 < len(n.layers) && len(w) != n.layers[i+1].neurons {
		return fmt.Errorf("SetBiasWeights(%d): %w: got %d bias weights, successor has %d neurons",
			i, ErrShape, len(w), n.layers[i+1].neurons)
	}
	if err := n.layers[i].SetBiasWeights(w); err != nil {
		return fmt.Errorf("SetBiasWeights(%d): %w", i, err)
	}

	return nil
}

// SetWeights replaces the incoming weights of layer i with a copy of w.
// w must be layer.Neurons() × predecessor.Neurons().
//
// Errors: ErrOptionViolation, ErrOutOfRange, ErrConfiguration (Input layer or
// nil w), ErrShape.
func (n *Network) SetWeights(i int, w *matrix.Dense) error {
	if n.opts.err != nil {
		return n.opts.err
	}
	if err := n.checkIndex("SetWeights", i); err != nil {
		return err
	}
	if i == 0 {
		return fmt.Errorf("SetWeights(0): %w: input layers own no weights", ErrConfiguration)
	}
	if w == nil {
		return fmt.Errorf("SetWeights(%d): %w: nil weights", i, ErrConfiguration)
	}
	l, prev := n.layers[i], n.layers[i-1]
	if w.Rows() != l.neurons || w.Cols() != prev.neurons {
		return fmt.Errorf("SetWeights(%d): %w: got %dx%d, want %dx%d",
			i, ErrShape, w.Rows(), w.Cols(), l.neurons, prev.neurons)
	}
	l.weights = w.CloneDense()

	return nil
}

// SetInput copies values into the Input layer's outputs.
//
// Errors: ErrTopology (no Input layer), ErrShape (length mismatch).
func (n *Network) SetInput(values []float64) error {
	if len(n.layers) == 0 {
		return fmt.Errorf("SetInput: %w: no input layer", ErrTopology)
	}
	in := n.layers[0]
	if len(values) != in.neurons {
		return fmt.Errorf("SetInput: %w: got %d values, input layer has %d neurons", ErrShape, len(values), in.neurons)
	}
	copy(in.out, values)

	return nil
}

// HasOutputs reports whether the Output layer was added.
func (n *Network) HasOutputs() bool { return n.hasOutputs }

// NumLayers returns the number of layers.
func (n *Network) NumLayers() int { return len(n.layers) }

// Layer returns a copy of layer i, or ErrOutOfRange.
func (n *Network) Layer(i int) (*NeuralLayer, error) {
	if err := n.checkIndex("Layer", i); err != nil {
		return nil, err
	}

	return n.layers[i].Clone(), nil
}

// Layers returns copies of all layers in order.
func (n *Network) Layers() []*NeuralLayer {
	out := make([]*NeuralLayer, len(n.layers))
	for i, l := range n.layers {
		out[i] = l.Clone()
	}

	return out
}

// Clone returns a deep copy of the network. Options (hooks and the random
// stream) are shared with the original.
func (n *Network) Clone() *Network {
	c := &Network{
		layers:     make([]*NeuralLayer, len(n.layers)),
		hasOutputs: n.hasOutputs,
		steps:      n.steps,
		opts:       n.opts,
	}
	for i, l := range n.layers {
		c.layers[i] = l.Clone()
	}

	return c
}

// String summarises the topology, e.g. "Input(2) -> Hidden(4) -> Output(1)".
func (n *Network) String() string {
	if len(n.layers) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(n.layers))
	for i, l := range n.layers {
		parts[i] = l.String()
	}

	return strings.Join(parts, " -> ")
}

func (n *Network) checkIndex(op string, i int) error {
	if i < 0 || i >= len(n.layers) {
		return fmt.Errorf("%s(%d): %w: network has %d layers", op, i, ErrOutOfRange, len(n.layers))
	}

	return nil
}
