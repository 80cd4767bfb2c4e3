// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	a := NewFilledDense(t, 1, 3, []float32{1, 2, 3})
	b := NewFilledDense(t, 1, 3, []float32{1, 2.001, 3})

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-4)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-3, 0)
	require.NoError(t, err)
	require.True(t, ok, "relative bound scales with |b|")

	// negative tolerances are taken by magnitude
	ok, err = matrix.AllClose(a, b, 0, -1e-2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestAllCloseSpecialValues(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	a := NewFilledDense(t, 1, 2, []float32{inf, 1})
	ok, err := matrix.AllClose(a, a.Clone(), 0, 0)
	require.NoError(t, err)
	require.True(t, ok, "equal infinities are close")

	n := NewFilledDense(t, 1, 1, []float32{nan})
	ok, err = matrix.AllClose(n, n.Clone(), 1, 1)
	require.NoError(t, err)
	require.False(t, ok, "NaN is never close")
}

func TestAllCloseErrors(t *testing.T) {
	a := MustDense(t, 2, 2)
	_, err := matrix.AllClose(a, MustDense(t, 2, 3), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrInvalidArgument)
}

func TestMaxAbsDiff(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []float32{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float32{1, 2.5, 2, 4})
	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(MustDense(t, 0, 0), MustDense(t, 0, 0))
	require.NoError(t, err)
	require.Zero(t, d)

	_, err = matrix.MaxAbsDiff(a, MustDense(t, 1, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
