package nnmath

import "math"

// ErrorFunc measures the error of one output neuron given the expected
// target and the actual output. The paired derivative has the same signature
// and returns the error signal -∂E/∂actual.
type ErrorFunc func(target, actual float64) float64

// CrossEntropyEpsilon clamps the actual value of CrossEntropy into
// [ε, 1-ε] so the logarithms stay finite.
const CrossEntropyEpsilon = 1e-12

// SquaredError returns ½(target-actual)².
func SquaredError(target, actual float64) float64 {
	d := target - actual

	return 0.5 * d * d
}

// SquaredErrorDerivative returns target-actual.
func SquaredErrorDerivative(target, actual float64) float64 {
	return target - actual
}

// AbsoluteError returns |target-actual|.
func AbsoluteError(target, actual float64) float64 {
	return math.Abs(target - actual)
}

// AbsoluteErrorDerivative returns sign(target-actual), with 0 when equal.
func AbsoluteErrorDerivative(target, actual float64) float64 {
	switch d := target - actual; {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// CrossEntropy returns the binary cross-entropy -(t·ln a + (1-t)·ln(1-a)).
// actual is clamped to [CrossEntropyEpsilon, 1-CrossEntropyEpsilon].
func CrossEntropy(target, actual float64) float64 {
	a := clampProbability(actual)

	return -(target*math.Log(a) + (1-target)*math.Log(1-a))
}

// CrossEntropyDerivative returns (t-a)/(a(1-a)) on the clamped actual value.
func CrossEntropyDerivative(target, actual float64) float64 {
	a := clampProbability(actual)

	return (target - a) / (a * (1 - a))
}

func clampProbability(a float64) float64 {
	return math.Min(math.Max(a, CrossEntropyEpsilon), 1-CrossEntropyEpsilon)
}

// Loss bundles an error function with its derivative.
type Loss struct {
	E  ErrorFunc
	DE ErrorFunc
}

// Predefined error pairs.
var (
	SquaredLoss      = Loss{E: SquaredError, DE: SquaredErrorDerivative}
	AbsoluteLoss     = Loss{E: AbsoluteError, DE: AbsoluteErrorDerivative}
	CrossEntropyLoss = Loss{E: CrossEntropy, DE: CrossEntropyDerivative}
)
