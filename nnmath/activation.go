package nnmath

import "math"

// ActivationFunc maps a neuron's net input to a value.
// The same signature is used for the derivative, which is also evaluated on
// the net input.
type ActivationFunc func(x float64) float64

// LeakyReLUSlope is the slope of LeakyReLU for negative inputs.
const LeakyReLUSlope = 0.01

// Identity returns x.
func Identity(x float64) float64 { return x }

// IdentityDerivative returns 1.
func IdentityDerivative(float64) float64 { return 1 }

// ReLU returns max(0, x).
func ReLU(x float64) float64 {
	if x > 0 {
		return x
	}

	return 0
}

// ReLUDerivative returns 1 for x > 0 and 0 otherwise (0 at the kink).
func ReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}

	return 0
}

// LeakyReLU returns x for x > 0 and LeakyReLUSlope·x otherwise.
func LeakyReLU(x float64) float64 {
	if x > 0 {
		return x
	}

	return LeakyReLUSlope * x
}

// LeakyReLUDerivative returns 1 for x > 0 and LeakyReLUSlope otherwise.
func LeakyReLUDerivative(x float64) float64 {
	if x > 0 {
		return 1
	}

	return LeakyReLUSlope
}

// Sigmoid returns the logistic function 1/(1+e^-x).
// Evaluated in a form that does not overflow for large |x|.
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// SigmoidDerivative returns σ(x)·(1-σ(x)).
func SigmoidDerivative(x float64) float64 {
	s := Sigmoid(x)

	return s * (1 - s)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x float64) float64 { return math.Tanh(x) }

// TanhDerivative returns 1 - tanh²(x).
func TanhDerivative(x float64) float64 {
	t := math.Tanh(x)

	return 1 - t*t
}

// Softplus returns ln(1+e^x), computed stably for large |x|.
func Softplus(x float64) float64 {
	// ln(1+e^x) = max(x,0) + ln(1+e^-|x|)
	return math.Max(x, 0) + math.Log1p(math.Exp(-math.Abs(x)))
}

// SoftplusDerivative returns σ(x), the derivative of Softplus.
func SoftplusDerivative(x float64) float64 { return Sigmoid(x) }

// Activation bundles an activation function with its derivative.
type Activation struct {
	F  ActivationFunc
	DF ActivationFunc
}

// Predefined activation pairs.
var (
	IdentityActivation  = Activation{F: Identity, DF: IdentityDerivative}
	ReLUActivation      = Activation{F: ReLU, DF: ReLUDerivative}
	LeakyReLUActivation = Activation{F: LeakyReLU, DF: LeakyReLUDerivative}
	SigmoidActivation   = Activation{F: Sigmoid, DF: SigmoidDerivative}
	TanhActivation      = Activation{F: Tanh, DF: TanhDerivative}
	SoftplusActivation  = Activation{F: Softplus, DF: SoftplusDerivative}
)
