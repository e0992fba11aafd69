package fcnn

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultMaxLearningRate disables the learning-rate cap.
const DefaultMaxLearningRate = 0.0

// Option configures a Network via functional arguments.
// If an Option is invalid (e.g. negative learning-rate cap), it is recorded
// internally and surfaced as ErrOptionViolation by every mutating call.
type Option func(*Options)

// Options holds the stream and callbacks of a Network.
type Options struct {
	// Rand is the stream used to randomise auto-created weights.
	// nil selects the process-wide math/rand generator.
	Rand *rand.Rand

	// OnForward is called after layer i computed its outputs.
	// out is a copy; the callback may keep it.
	OnForward func(layer int, out []float64)

	// OnBackward is called after layer i computed its deltas.
	OnBackward func(layer int, delta []float64)

	// OnTrain is called after every completed Train step with the step number
	// (1-based, counted per network) and the error measured before the update.
	// A non-nil error is returned by Train and stops TrainEpoch.
	OnTrain func(step int, loss float64) error

	// MaxLearningRate, if > 0, rejects larger learning rates with ErrConfiguration.
	MaxLearningRate float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the process-wide random generator (Rand == nil)
//   - no-op hooks
//   - no learning-rate cap.
func DefaultOptions() Options {
	return Options{
		Rand:            nil,
		OnForward:       func(int, []float64) {},
		OnBackward:      func(int, []float64) {},
		OnTrain:         func(int, float64) error { return nil },
		MaxLearningRate: DefaultMaxLearningRate,
		err:             nil,
	}
}

// WithRand sets the stream used for weight initialisation.
// The Network takes ownership: do not draw from rng concurrently.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithOnForward registers a callback run after each layer's forward step.
func WithOnForward(fn func(layer int, out []float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnForward = fn
		}
	}
}

// WithOnBackward registers a callback run after each layer's delta computation.
func WithOnBackward(fn func(layer int, delta []float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBackward = fn
		}
	}
}

// WithOnTrain registers a callback run after every training step; returning
// an error from it stops TrainEpoch.
func WithOnTrain(fn func(step int, loss float64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrain = fn
		}
	}
}

// WithMaxLearningRate caps the learning rate accepted by UpdateWeights and Train.
//
//	eta > 0:  cap at eta
//	eta == 0: explicit no cap
//	eta < 0 or non-finite: invalid option → ErrOptionViolation
func WithMaxLearningRate(eta float64) Option {
	return func(o *Options) {
		switch {
		case math.IsNaN(eta) || math.IsInf(eta, 0) || eta < 0:
			o.err = fmt.Errorf("%w: MaxLearningRate must be finite and >= 0 (%g)", ErrOptionViolation, eta)
		default:
			o.MaxLearningRate = eta
		}
	}
}
