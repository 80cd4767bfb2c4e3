// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for the
//     multiply and inversion kernels.
//   • Keep all data finite and well-formed so tolerance checks stay meaningful.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major vals.
// Fails the test if len(vals) != r*c.
func NewFilledDense(t testing.TB, r, c int, vals []float32) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// RandFilledDense returns an r×c matrix with uniform values in [0, 1) drawn
// from a PCG source seeded with seed. Same seed, same matrix.
func RandFilledDense(t testing.TB, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	require.NoError(t, m.RandomizeWith(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))))

	return m
}

// IntFilledDense fills an r×c matrix with small integers in [-4, 4].
// Every product sum of such values is exact in float32 for the sizes used
// in tests, so all kernels must agree bit for bit.
func IntFilledDense(t testing.TB, r, c int, seed uint64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 7))
	vals := make([]float32, r*c)
	for i := range vals {
		vals[i] = float32(rng.IntN(9) - 4)
	}

	return NewFilledDense(t, r, c, vals)
}

// DiagDominant returns an n×n matrix with random off-diagonal entries in
// [0, 1) and n+1 on the diagonal: always invertible without pivoting.
func DiagDominant(t testing.TB, n int, seed uint64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, float32(n+1)))
	}

	return m
}

// CompareExact asserts m equals want element for element.
func CompareExact(t testing.TB, want [][]float32, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		row, err := m.Row(i)
		require.NoError(t, err)
		require.Equal(t, want[i], row, "row %d", i)
	}
}

// CompareClose asserts |got-want| <= tol*max(1, |want|) for every element.
func CompareClose(t testing.TB, want, got *matrix.Dense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	w, g := want.Values(), got.Values()
	for idx := range w {
		bound := tol * math.Max(1, math.Abs(float64(w[idx])))
		require.InDelta(t, w[idx], g[idx], bound, "element %d", idx)
	}
}

// RefMul64 computes a×b in float64 as an accuracy reference.
func RefMul64(a, b *matrix.Dense) []float64 {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	av, bv := a.Values(), b.Values()
	out := make([]float64, m*n)
	for i := 0; i < m; i++ {
		for p := 0; p < k; p++ {
			x := float64(av[i*k+p])
			for j := 0; j < n; j++ {
				out[i*n+j] += x * float64(bv[p*n+j])
			}
		}
	}

	return out
}
