package fcnn_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fcnn/fcnn"
	"github.com/katalvlaran/fcnn/matrix"
	"github.com/katalvlaran/fcnn/nnmath"
)

// NetworkSuite exercises topology building and its invariants.
type NetworkSuite struct {
	suite.Suite
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

// identityNet builds Input(2) → Output(1) with weights [[1,1]] and input bias [0].
func identityNet(tb testing.TB, opts ...fcnn.Option) *fcnn.Network {
	tb.Helper()
	n := fcnn.New(opts...)
	require.NoError(tb, n.AddInputLayer(2, nil, fcnn.WithBiasWeights([]float64{0})))
	require.NoError(tb, n.AddOutputLayer(1,
		fcnn.WithActivationPair(nnmath.IdentityActivation),
		fcnn.WithLoss(nnmath.SquaredLoss),
		fcnn.WithWeights(mustFromRows(tb, [][]float64{{1, 1}})),
	))

	return n
}

// TestAddInputLayerTwice verifies the second input layer is rejected.
func (s *NetworkSuite) TestAddInputLayerTwice() {
	n := fcnn.New()
	require.NoError(s.T(), n.AddInputLayer(2, nil))
	err := n.AddInputLayer(2, nil)
	require.ErrorIs(s.T(), err, fcnn.ErrTopology)
	require.Equal(s.T(), 1, n.NumLayers())
}

func (s *NetworkSuite) TestHiddenBeforeInput() {
	n := fcnn.New()
	require.ErrorIs(s.T(), n.AddHiddenLayer(3, sigmoid), fcnn.ErrTopology)
	require.ErrorIs(s.T(), n.AddOutputLayer(1, sigmoid, squared), fcnn.ErrTopology)
	require.Equal(s.T(), 0, n.NumLayers())
}

// TestTopologyFrozenAfterOutput checks that nothing can follow the output layer.
func (s *NetworkSuite) TestTopologyFrozenAfterOutput() {
	n := fcnn.New(fcnn.WithSeed(1))
	require.NoError(s.T(), n.AddInputLayer(2, nil))
	require.False(s.T(), n.HasOutputs())
	require.NoError(s.T(), n.AddOutputLayer(1, sigmoid, squared))
	require.True(s.T(), n.HasOutputs())

	require.ErrorIs(s.T(), n.AddHiddenLayer(2, sigmoid), fcnn.ErrTopology)
	require.ErrorIs(s.T(), n.AddOutputLayer(1, sigmoid, squared), fcnn.ErrTopology)
	require.ErrorIs(s.T(), n.AddInputLayer(2, nil), fcnn.ErrTopology)
	require.Equal(s.T(), "Input(2) -> Output(1)", n.String())
}

func (s *NetworkSuite) TestInvalidLayerLeavesNetworkUnchanged() {
	n := fcnn.New()
	require.NoError(s.T(), n.AddInputLayer(2, nil))
	require.ErrorIs(s.T(), n.AddHiddenLayer(3), fcnn.ErrConfiguration)
	require.ErrorIs(s.T(), n.AddInputLayer(0, nil), fcnn.ErrTopology)
	require.Equal(s.T(), 1, n.NumLayers())

	err := n.AddHiddenLayer(3, sigmoid, fcnn.WithWeights(mustFromRows(s.T(), [][]float64{{1}, {1}, {1}})))
	require.ErrorIs(s.T(), err, fcnn.ErrShape)
	require.Equal(s.T(), 1, n.NumLayers())
	in, err := n.Layer(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1, 1}, in.BiasWeights(), "failed attach must not re-seat the bias")
}

func (s *NetworkSuite) TestInputSeedValues() {
	n := fcnn.New()
	require.ErrorIs(s.T(), n.AddInputLayer(2, []float64{1}), fcnn.ErrShape)
	require.NoError(s.T(), n.AddInputLayer(2, []float64{3, 4}))
	in, err := n.Layer(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{3, 4}, in.Out())
}

// TestAutoWeightsAndBiasReseat checks auto-created weights and the bias
// re-seating of the predecessor to the successor's width.
func (s *NetworkSuite) TestAutoWeightsAndBiasReseat() {
	n := fcnn.New(fcnn.WithSeed(7))
	require.NoError(s.T(), n.AddInputLayer(3, nil))
	require.NoError(s.T(), n.AddHiddenLayer(5, sigmoid))
	require.NoError(s.T(), n.AddOutputLayer(2, sigmoid, squared))

	layers := n.Layers()
	require.Len(s.T(), layers, 3)
	require.Equal(s.T(), []float64{1, 1, 1, 1, 1}, layers[0].BiasWeights())
	require.Equal(s.T(), []float64{1, 1}, layers[1].BiasWeights())
	require.Nil(s.T(), layers[2].BiasWeights())

	for i, shape := range [][2]int{{5, 3}, {2, 5}} {
		w := layers[i+1].Weights()
		require.NotNil(s.T(), w)
		r, c := w.Shape()
		require.Equal(s.T(), shape, [2]int{r, c})
		w.Do(func(_, _ int, v float64) bool {
			require.True(s.T(), v >= 0 && v < 1)
			return true
		})
	}
}

// TestSeededNetworksAgree checks WithSeed gives reproducible weights.
func (s *NetworkSuite) TestSeededNetworksAgree() {
	build := func() *fcnn.Network {
		n := fcnn.New(fcnn.WithSeed(99))
		require.NoError(s.T(), n.AddInputLayer(2, nil))
		require.NoError(s.T(), n.AddHiddenLayer(3, sigmoid))
		require.NoError(s.T(), n.AddOutputLayer(1, sigmoid, squared))
		return n
	}
	a, b := build(), build()
	for i := 1; i < 3; i++ {
		la, err := a.Layer(i)
		require.NoError(s.T(), err)
		lb, err := b.Layer(i)
		require.NoError(s.T(), err)
		require.Equal(s.T(), la.Weights().String(), lb.Weights().String())
	}
}

func (s *NetworkSuite) TestCustomBiasLengthChecked() {
	n := fcnn.New()
	require.NoError(s.T(), n.AddInputLayer(2, nil, fcnn.WithBiasWeights([]float64{0.5, 0.5})))
	require.ErrorIs(s.T(), n.AddOutputLayer(1, sigmoid, squared), fcnn.ErrShape)
	require.False(s.T(), n.HasOutputs())

	require.NoError(s.T(), n.AddOutputLayer(2, sigmoid, squared))
	in, err := n.Layer(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0.5, 0.5}, in.BiasWeights())
}

func (s *NetworkSuite) TestSetBiasWeights() {
	n := identityNet(s.T())
	require.NoError(s.T(), n.SetBiasWeights(0, []float64{0.25}))
	require.ErrorIs(s.T(), n.SetBiasWeights(0, []float64{1, 2}), fcnn.ErrShape)
	require.ErrorIs(s.T(), n.SetBiasWeights(1, []float64{1}), fcnn.ErrConfiguration)
	require.ErrorIs(s.T(), n.SetBiasWeights(2, []float64{1}), fcnn.ErrOutOfRange)
	require.ErrorIs(s.T(), n.SetBiasWeights(-1, []float64{1}), matrix.ErrOutOfRange)

	in, err := n.Layer(0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{0.25}, in.BiasWeights())
}

func (s *NetworkSuite) TestSetWeights() {
	n := identityNet(s.T())
	require.ErrorIs(s.T(), n.SetWeights(0, mustFromRows(s.T(), [][]float64{{1, 1}})), fcnn.ErrConfiguration)
	require.ErrorIs(s.T(), n.SetWeights(1, nil), fcnn.ErrConfiguration)
	require.ErrorIs(s.T(), n.SetWeights(1, mustFromRows(s.T(), [][]float64{{1, 1, 1}})), fcnn.ErrShape)
	require.ErrorIs(s.T(), n.SetWeights(5, mustFromRows(s.T(), [][]float64{{1, 1}})), fcnn.ErrOutOfRange)

	w := mustFromRows(s.T(), [][]float64{{2, -1}})
	require.NoError(s.T(), n.SetWeights(1, w))
	require.NoError(s.T(), w.Set(0, 0, 100)) // the network holds its own copy

	out, err := n.Predict([]float64{2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{1}, out)
}

func (s *NetworkSuite) TestSetInput() {
	n := fcnn.New()
	require.ErrorIs(s.T(), n.SetInput([]float64{1}), fcnn.ErrTopology)
	require.NoError(s.T(), n.AddInputLayer(2, nil))
	require.ErrorIs(s.T(), n.SetInput([]float64{1}), fcnn.ErrShape)
	require.NoError(s.T(), n.SetInput([]float64{1, 2}))
}

// TestLayerCopiesAreDetached ensures Layer() results cannot mutate the network.
func (s *NetworkSuite) TestLayerCopiesAreDetached() {
	n := identityNet(s.T())
	l, err := n.Layer(0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), l.SetBiasWeights([]float64{42}))

	out, err := n.Predict([]float64{2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{5}, out)

	_, err = n.Layer(3)
	require.ErrorIs(s.T(), err, fcnn.ErrOutOfRange)
}

// TestCloneIndependence trains a clone and verifies the original is unchanged.
func (s *NetworkSuite) TestCloneIndependence() {
	n := identityNet(s.T())
	c := n.Clone()
	_, err := c.Train([]float64{2, 3}, []float64{7}, 0.1)
	require.NoError(s.T(), err)

	out, err := n.Predict([]float64{2, 3})
	require.NoError(s.T(), err)
	require.Equal(s.T(), []float64{5}, out)
	require.Equal(s.T(), 0, n.Steps())
	require.Equal(s.T(), 1, c.Steps())
}

// TestOptionViolation checks an invalid option surfaces on mutating calls.
func (s *NetworkSuite) TestOptionViolation() {
	for _, eta := range []float64{-1, math.NaN(), math.Inf(1)} {
		n := fcnn.New(fcnn.WithMaxLearningRate(eta))
		err := n.AddInputLayer(2, nil)
		require.ErrorIs(s.T(), err, fcnn.ErrOptionViolation)
		require.Equal(s.T(), 0, n.NumLayers())
	}

	n := fcnn.New(fcnn.WithMaxLearningRate(0), nil, fcnn.WithRand(nil))
	require.NoError(s.T(), n.AddInputLayer(2, nil))
}

func (s *NetworkSuite) TestEmptyNetworkString() {
	require.Equal(s.T(), "<empty>", fcnn.New().String())
	require.Nil(s.T(), fcnn.New().Output())
}

func TestErrOutOfRangeSharedWithMatrix(t *testing.T) {
	require.True(t, errors.Is(fcnn.ErrOutOfRange, matrix.ErrOutOfRange))
}
