package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/fcnn/fcnn"
	"github.com/katalvlaran/fcnn/nnmath"
)

type trainConfig struct {
	hidden int
	eta    float64
	epochs int
	seed   int64
	report int
}

var xorSamples = []fcnn.Sample{
	{Input: []float64{0, 0}, Target: []float64{0}},
	{Input: []float64{0, 1}, Target: []float64{1}},
	{Input: []float64{1, 0}, Target: []float64{1}},
	{Input: []float64{1, 1}, Target: []float64{0}},
}

// newXORNetwork builds Input(2) → Hidden(hidden, tanh) → Output(1, sigmoid).
func newXORNetwork(hidden int, seed int64) (*fcnn.Network, error) {
	net := fcnn.New(fcnn.WithSeed(seed))
	if err := net.AddInputLayer(2, nil); err != nil {
		return nil, err
	}
	if err := net.AddHiddenLayer(hidden, fcnn.WithActivationPair(nnmath.TanhActivation)); err != nil {
		return nil, err
	}
	if err := net.AddOutputLayer(1,
		fcnn.WithActivationPair(nnmath.SigmoidActivation),
		fcnn.WithLoss(nnmath.SquaredLoss)); err != nil {
		return nil, err
	}

	return net, nil
}

func runTrain(w io.Writer, cfg trainConfig) error {
	if cfg.epochs <= 0 {
		return fmt.Errorf("epochs must be > 0, got %d", cfg.epochs)
	}
	net, err := newXORNetwork(cfg.hidden, cfg.seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "network %s, eta=%g, epochs=%d\n", net, cfg.eta, cfg.epochs)

	var loss float64
	for epoch := 1; epoch <= cfg.epochs; epoch++ {
		if loss, err = net.TrainEpoch(xorSamples, cfg.eta); err != nil {
			return fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if cfg.report > 0 && epoch%cfg.report == 0 {
			fmt.Fprintf(w, "epoch %6d  mean error %.6f\n", epoch, loss)
		}
	}

	for _, s := range xorSamples {
		out, err := net.Predict(s.Input)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%v -> %.4f (want %v)\n", s.Input, out[0], s.Target[0])
	}

	return nil
}
