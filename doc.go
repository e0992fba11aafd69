// Package fcnn is a small, dependency-light toolkit for fully-connected
// feed-forward neural networks: from a dense matrix primitive up to
// layer-by-layer backpropagation.
//
// 🚀 What is in the module?
//
//	• Dense matrices: one contiguous row-major buffer, bounds-checked access,
//	  Mul / MatVec / MatTVec / Hadamard / Scale kernels, sentinel errors
//	• Activation & error functions: Identity, ReLU, LeakyReLU, Sigmoid,
//	  Tanh, Softplus; squared, absolute and cross-entropy error
//	• Networks: Input → Hidden… → Output topology, forward pass,
//	  backward pass, online gradient-descent training with hooks
//
// ✨ Why?
//
//   - Explicit errors – shape and topology mistakes are returned, never panicked
//   - Deterministic – seed the weight initialisation with fcnn.WithSeed
//   - Small surface – every operation of a training step is callable on its own
//
// Packages:
//
//	matrix/       - Matrix interface, Dense implementation and kernels
//	nnmath/       - scalar activation / error function pairs
//	fcnn/         - NeuralLayer and Network
//	cmd/fcnnbench - CLI: kernel timings and an XOR training run
//	examples/     - runnable demo programs
//
// Quick example:
//
//	net := fcnn.New(fcnn.WithSeed(1))
//	_ = net.AddInputLayer(2, nil)
//	_ = net.AddHiddenLayer(4, fcnn.WithActivationPair(nnmath.TanhActivation))
//	_ = net.AddOutputLayer(1,
//	    fcnn.WithActivationPair(nnmath.SigmoidActivation),
//	    fcnn.WithLoss(nnmath.SquaredLoss))
//	loss, err := net.Train([]float64{1, 0}, []float64{1}, 0.5)
//
//	go get github.com/katalvlaran/fcnn
package fcnn
