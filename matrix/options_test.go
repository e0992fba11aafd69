// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcnn/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())
}

// TestOptions_PolicyReachesDense checks the resolved policy governs Set.
func TestOptions_PolicyReachesDense(t *testing.T) {
	strict, err := matrix.NewDenseWith(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewDenseWith(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.NaN()))
	require.True(t, math.IsNaN(MustAt(t, loose, 0, 0)))

	// Clones inherit the policy.
	c := loose.CloneDense()
	require.NoError(t, c.Set(0, 0, math.Inf(1)))
}
