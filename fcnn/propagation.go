package fcnn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fcnn/matrix"
)

// ready reports ErrTopology unless the network has both an Input and an Output layer.
func (n *Network) ready(op string) error {
	if len(n.layers) == 0 || !n.hasOutputs {
		return fmt.Errorf("%s: %w: network needs an input and an output layer", op, ErrTopology)
	}

	return nil
}

// PropagateForward computes every layer's net and out from the current input.
//
// For L = 1..last:
//
//	net_L = W_L · out_{L-1} + bias_{L-1}
//	out_L = f_L(net_L)
//
// Errors: ErrTopology when Input or Output is missing.
// Complexity: O(Σ n_L·n_{L-1}).
func (n *Network) PropagateForward() error {
	if err := n.ready("PropagateForward"); err != nil {
		return err
	}

	var (
		prev, l *NeuralLayer
		net     []float64
		err     error
	)
	for i := 1; i < len(n.layers); i++ {
		prev, l = n.layers[i-1], n.layers[i]
		if net, err = matrix.MatVec(l.weights, prev.out); err != nil {
			return fmt.Errorf("PropagateForward(%d): %w: %w", i, ErrShape, err)
		}
		floats.Add(net, prev.bias)
		copy(l.net, net)
		for j, v := range l.net {
			l.out[j] = l.f(v)
		}
		n.opts.OnForward(i, cloneVec(l.out))
	}

	return nil
}

// Predict sets the input, runs a forward pass and returns a copy of the outputs.
func (n *Network) Predict(input []float64) ([]float64, error) {
	if err := n.ready("Predict"); err != nil {
		return nil, err
	}
	if err := n.SetInput(input); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}
	if err := n.PropagateForward(); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return n.Output(), nil
}

// Output returns a copy of the Output layer's values from the last forward
// pass, or nil when the network has no Output layer.
func (n *Network) Output() []float64 {
	if !n.hasOutputs {
		return nil
	}

	return n.layers[len(n.layers)-1].Out()
}

// ComputeError returns Σ_j E(target[j], out[j]) over the Output layer.
//
// Errors: ErrTopology, ErrShape (len(target) != output width).
func (n *Network) ComputeError(target []float64) (float64, error) {
	if err := n.ready("ComputeError"); err != nil {
		return 0, err
	}
	out := n.layers[len(n.layers)-1]
	if len(target) != out.neurons {
		return 0, fmt.Errorf("ComputeError: %w: got %d targets, output layer has %d neurons",
			ErrShape, len(target), out.neurons)
	}

	errs := make([]float64, out.neurons)
	for j, t := range target {
		errs[j] = out.e(t, out.out[j])
	}

	return floats.Sum(errs), nil
}

// PropagateBackward computes every non-Input layer's delta from target.
//
//	Output:  δ_j = E'(t_j, out_j) · f'(net_j)
//	Hidden:  δ_L = f'_L(net_L) ⊙ (W_{L+1}ᵀ · δ_{L+1})
//
// E' is the error signal -∂E/∂out, so the deltas point downhill.
// Errors: ErrTopology, ErrShape.
func (n *Network) PropagateBackward(target []float64) error {
	if err := n.ready("PropagateBackward"); err != nil {
		return err
	}
	last := len(n.layers) - 1
	out := n.layers[last]
	if len(target) != out.neurons {
		return fmt.Errorf("PropagateBackward: %w: got %d targets, output layer has %d neurons",
			ErrShape, len(target), out.neurons)
	}

	for j, t := range target {
		out.delta[j] = out.de(t, out.out[j]) * out.df(out.net[j])
	}
	n.opts.OnBackward(last, cloneVec(out.delta))

	var (
		back []float64
		err  error
	)
	for i := last - 1; i >= 1; i-- {
		l, next := n.layers[i], n.layers[i+1]
		if back, err = matrix.MatTVec(next.weights, next.delta); err != nil {
			return fmt.Errorf("PropagateBackward(%d): %w: %w", i, ErrShape, err)
		}
		for j, v := range back {
			l.delta[j] = l.df(l.net[j]) * v
		}
		n.opts.OnBackward(i, cloneVec(l.delta))
	}

	return nil
}

// UpdateWeights applies one gradient-descent step with learning rate eta:
//
//	W_L         += eta · δ_L · out_{L-1}ᵀ
//	bias_{L-1}  += eta · δ_L
//
// New weights are staged for every layer and committed together, so on error
// no weight or bias changes.
//
// Errors: ErrOptionViolation, ErrTopology, ErrConfiguration (eta not finite,
// not > 0, or above the cap), matrix.ErrNaNInf (the step would overflow).
func (n *Network) UpdateWeights(eta float64) error {
	if n.opts.err != nil {
		return n.opts.err
	}
	if err := n.checkLearningRate("UpdateWeights", eta); err != nil {
		return err
	}
	if err := n.ready("UpdateWeights"); err != nil {
		return err
	}

	count := len(n.layers)
	weights := make([]*matrix.Dense, count)
	biases := make([][]float64, count)
	for i := 1; i < count; i++ {
		prev, l := n.layers[i-1], n.layers[i]
		weights[i] = l.weights.CloneDense()
		if err := weights[i].AddOuter(eta, l.delta, prev.out); err != nil {
			return fmt.Errorf("UpdateWeights(%d): %w", i, err)
		}
		biases[i-1] = cloneVec(prev.bias)
		floats.AddScaled(biases[i-1], eta, l.delta)
		if !allFinite(biases[i-1]) {
			return fmt.Errorf("UpdateWeights(%d): bias: %w", i, matrix.ErrNaNInf)
		}
	}

	for i := 1; i < count; i++ {
		n.layers[i].weights = weights[i]
		n.layers[i-1].bias = biases[i-1]
	}

	return nil
}

// Train performs one online training step and returns the error measured
// before the update:
//
//	SetInput(input) → PropagateForward → ComputeError(target)
//	→ PropagateBackward(target) → UpdateWeights(eta) → OnTrain hook
//
// Arguments are validated before anything changes. An error from the OnTrain
// hook is returned after the update has been applied.
//
// Errors: ErrOptionViolation, ErrTopology, ErrShape, ErrConfiguration,
// matrix.ErrNaNInf, or the hook's error.
func (n *Network) Train(input, target []float64, eta float64) (float64, error) {
	if n.opts.err != nil {
		return 0, n.opts.err
	}
	if err := n.validateStep("Train", input, target, eta); err != nil {
		return 0, err
	}

	return n.train(input, target, eta)
}

// TrainEpoch runs Train over samples in order and returns the mean error.
// Every sample is validated before the first step.
//
// Errors: as Train; ErrConfiguration when samples is empty.
func (n *Network) TrainEpoch(samples []Sample, eta float64) (float64, error) {
	if n.opts.err != nil {
		return 0, n.opts.err
	}
	if len(samples) == 0 {
		return 0, fmt.Errorf("TrainEpoch: %w: no samples", ErrConfiguration)
	}
	for k, s := range samples {
		if err := n.validateStep(fmt.Sprintf("TrainEpoch[%d]", k), s.Input, s.Target, eta); err != nil {
			return 0, err
		}
	}

	losses := make([]float64, len(samples))
	var err error
	for k, s := range samples {
		if losses[k], err = n.train(s.Input, s.Target, eta); err != nil {
			return 0, fmt.Errorf("TrainEpoch[%d]: %w", k, err)
		}
	}

	return floats.Sum(losses) / float64(len(samples)), nil
}

// Steps returns the number of completed Train steps.
func (n *Network) Steps() int { return n.steps }

func (n *Network) train(input, target []float64, eta float64) (float64, error) {
	if err := n.SetInput(input); err != nil {
		return 0, fmt.Errorf("Train: %w", err)
	}
	if err := n.PropagateForward(); err != nil {
		return 0, fmt.Errorf("Train: %w", err)
	}
	loss, err := n.ComputeError(target)
	if err != nil {
		return 0, fmt.Errorf("Train: %w", err)
	}
	if err = n.PropagateBackward(target); err != nil {
		return loss, fmt.Errorf("Train: %w", err)
	}
	if err = n.UpdateWeights(eta); err != nil {
		return loss, fmt.Errorf("Train: %w", err)
	}
	n.steps++
	if err = n.opts.OnTrain(n.steps, loss); err != nil {
		return loss, fmt.Errorf("Train: step %d: %w", n.steps, err)
	}

	return loss, nil
}

func (n *Network) validateStep(op string, input, target []float64, eta float64) error {
	if err := n.checkLearningRate(op, eta); err != nil {
		return err
	}
	if err := n.ready(op); err != nil {
		return err
	}
	if in := n.layers[0].neurons; len(input) != in {
		return fmt.Errorf("%s: %w: got %d inputs, input layer has %d neurons", op, ErrShape, len(input), in)
	}
	if out := n.layers[len(n.layers)-1].neurons; len(target) != out {
		return fmt.Errorf("%s: %w: got %d targets, output layer has %d neurons", op, ErrShape, len(target), out)
	}

	return nil
}

func (n *Network) checkLearningRate(op string, eta float64) error {
	switch {
	case math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0:
		return fmt.Errorf("%s: %w: learning rate must be finite and > 0, got %g", op, ErrConfiguration, eta)
	case n.opts.MaxLearningRate > 0 && eta > n.opts.MaxLearningRate:
		return fmt.Errorf("%s: %w: learning rate %g exceeds cap %g", op, ErrConfiguration, eta, n.opts.MaxLearningRate)
	}

	return nil
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
