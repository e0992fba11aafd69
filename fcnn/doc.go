// Package fcnn implements fully-connected feed-forward neural networks with
// online gradient-descent training.
//
// 🚀 What is it?
//
//	A Network is an ordered stack of NeuralLayers: exactly one Input layer,
//	any number of Hidden layers and exactly one Output layer. Every neuron of
//	layer L is connected to every neuron of layer L-1, plus a bias unit of
//	constant output 1 owned by layer L-1.
//
// ✨ Key features:
//   - explicit topology: AddInputLayer → AddHiddenLayer… → AddOutputLayer
//   - weights stored as matrix.Dense (neurons × predecessor neurons)
//   - pluggable activation / error pairs from package nnmath
//   - forward pass, backpropagation and one-step Train / TrainEpoch
//   - hooks (WithOnForward, WithOnBackward, WithOnTrain) for observation
//   - deterministic weight initialisation via WithRand / WithSeed
//
// Forward pass, for L = 1..last:
//
//	net_L = W_L · out_{L-1} + bias_{L-1}
//	out_L = f_L(net_L)
//
// Backward pass and update, with E' the error signal -∂E/∂out:
//
//	δ_out = E'(t, out) ⊙ f'(net)
//	δ_L   = f'_L(net_L) ⊙ (W_{L+1}ᵀ · δ_{L+1})
//	W_L  += η · δ_L · out_{L-1}ᵀ
//	b_{L-1} += η · δ_L
//
// ⚙️ Usage:
//
//	net := fcnn.New(fcnn.WithSeed(42))
//	_ = net.AddInputLayer(2, nil)
//	_ = net.AddHiddenLayer(4, fcnn.WithActivationPair(nnmath.SigmoidActivation))
//	_ = net.AddOutputLayer(1,
//	    fcnn.WithActivationPair(nnmath.SigmoidActivation),
//	    fcnn.WithLoss(nnmath.SquaredLoss))
//	loss, err := net.Train([]float64{0, 1}, []float64{1}, 0.5)
//
// Errors:
//
//	ErrConfiguration   - invalid layer configuration or learning rate.
//	ErrShape           - vector length or weight shape does not fit.
//	ErrTopology        - layers added out of order, or a pass without Input/Output.
//	ErrOutOfRange      - layer index outside the network (same value as matrix.ErrOutOfRange).
//	ErrOptionViolation - invalid Option passed to New.
//
// Concurrency: a Network is single-threaded. Clone it to train copies in parallel.
package fcnn
