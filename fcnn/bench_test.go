package fcnn_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/fcnn/fcnn"
	"github.com/katalvlaran/fcnn/nnmath"
)

var (
	sinkOut  []float64
	sinkLoss float64
)

func benchNet(b *testing.B, width int) (*fcnn.Network, []float64, []float64) {
	b.Helper()
	n := fcnn.New(fcnn.WithSeed(1))
	act := fcnn.WithActivationPair(nnmath.TanhActivation)
	if err := n.AddInputLayer(width, nil); err != nil {
		b.Fatal(err)
	}
	if err := n.AddHiddenLayer(width, act); err != nil {
		b.Fatal(err)
	}
	if err := n.AddOutputLayer(width/4, fcnn.WithActivationPair(nnmath.SigmoidActivation), fcnn.WithLoss(nnmath.SquaredLoss)); err != nil {
		b.Fatal(err)
	}
	in := make([]float64, width)
	for i := range in {
		in[i] = float64(i%5)/5 - 0.4
	}
	target := make([]float64, width/4)
	for i := range target {
		target[i] = float64(i % 2)
	}

	return n, in, target
}

func BenchmarkPredict(b *testing.B) {
	for _, w := range []int{32, 128, 512} {
		n, in, _ := benchNet(b, w)
		b.Run(fmt.Sprintf("width=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkOut, _ = n.Predict(in)
			}
		})
	}
}

func BenchmarkTrain(b *testing.B) {
	for _, w := range []int{32, 128, 512} {
		n, in, target := benchNet(b, w)
		b.Run(fmt.Sprintf("width=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkLoss, _ = n.Train(in, target, 1e-3)
			}
		})
	}
}
