// SPDX-License-Identifier: MIT
// Package matrix: reference multiply kernel.
//
// Purpose:
//   - Provide the canonical triple-loop product every other multiply kernel
//     is measured against.
//   - Share the row-range worker (mulRows) with the multi-threaded kernel so
//     both run exactly the same arithmetic.

package matrix

// Operation name constants for unified error wrapping.
const (
	opMultiplyStandard      = "MultiplyStandard"
	opMultiplyVectorized    = "MultiplyVectorized"
	opMultiplyMultiThreaded = "MultiplyMultiThreaded"
	opMultiply              = "Multiply"
	opInvert                = "Invert"
	opAllClose              = "AllClose"
	opMaxAbsDiff            = "MaxAbsDiff"
)

// MultiplyStandard returns C = A × B using the canonical i→j→p triple loop.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); nothing is allocated on failure.
//   - Stage 2: allocate a zeroed C (rows(A) × cols(B)).
//   - Stage 3: for each cell accumulate A[i,p]·B[p,j] for p = 0..k-1 into a
//     single float32 sum.
//
// Inputs:
//   - a: m×k matrix; b: k×n matrix. Neither is mutated.
//
// Errors:
//   - ErrNilMatrix, ErrMovedFrom, ErrDimensionMismatch (a.Cols != b.Rows),
//     ErrAllocation.
//
// Determinism:
//   - Single thread, single accumulation order: identical inputs give
//     bit-identical outputs.
//
// Complexity:
//   - Time O(m·k·n), Space O(m·n).
func MultiplyStandard(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyStandard, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMultiplyStandard, err)
	}
	mulRows(a, b, res, 0, a.r)

	return res, nil
}

// mulRows computes rows [lo, hi) of c = a × b. It writes only those rows of
// c and only reads a and b, so disjoint ranges may run concurrently.
func mulRows(a, b, c *Dense, lo, hi int) {
	k, n := a.c, b.c
	var (
		i, j, p int
		sum     float32
	)
	for i = lo; i < hi; i++ {
		aRow := a.data[i*k : (i+1)*k]
		cRow := c.data[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			sum = 0
			for p = 0; p < k; p++ {
				sum += aRow[p] * b.data[p*n+j]
			}
			cRow[j] = sum
		}
	}
}
