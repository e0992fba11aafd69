// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcnn/matrix"
)

// TestAllClose_FallbackAndTolerances exercises the non-Dense path and rtol.
func TestAllClose_FallbackAndTolerances(t *testing.T) {
	a := MustFromRows(t, [][]float64{{100, 200}})
	b := MustFromRows(t, [][]float64{{101, 198}})

	ok, err := matrix.AllClose(hide{a}, hide{b}, 0.02, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 0.001, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
