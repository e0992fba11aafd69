// Package nnmath provides the scalar activation and error functions used by
// the fcnn package.
//
// What:
//
//   - ActivationFunc pairs f / f' evaluated on a neuron's net input:
//     Identity, ReLU, LeakyReLU, Sigmoid, Tanh, Softplus.
//   - ErrorFunc pairs E / E' evaluated on (target, actual):
//     SquaredError, AbsoluteError, CrossEntropy.
//   - Activation and Loss bundle a pair so a layer can be configured in one go.
//
// Convention:
//
//	The error "derivative" returns the error signal -∂E/∂actual, not ∂E/∂actual.
//	For SquaredError = ½(t-a)² the signal is (t-a). With this sign the weight
//	update W += η·δ·xᵀ moves the output toward the target.
//
// All functions are pure and stateless; they are safe for concurrent use.
//
// Example:
//
//	layer, _ := fcnn.NewNeuralLayer(fcnn.Output, 1,
//	    fcnn.WithActivation(nnmath.Sigmoid, nnmath.SigmoidDerivative),
//	    fcnn.WithErrorFunc(nnmath.SquaredError, nnmath.SquaredErrorDerivative))
package nnmath
