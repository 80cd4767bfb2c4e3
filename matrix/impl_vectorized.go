// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/densemat/lanes"

// MultiplyVectorized returns C = A × B computing every cell's inner product
// in fixed-width lane groups.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); resolve the lane width W
//     (WithLaneWidth, default lanes.Width()).
//   - Stage 2: pack B column-major into a scratch buffer so column j is
//     contiguous; B itself is never written.
//   - Stage 3: C[i,j] = lanes.Dot(A[i,:], Bᵀ[j,:], W): W lane accumulators,
//     horizontal reduction, scalar tail for the last k mod W products.
//
// Any inner dimension is legal; the tail loop covers sizes that are not a
// multiple of W.
//
// Errors:
//   - Same as MultiplyStandard.
//
// Numerics:
//   - The summation order differs from MultiplyStandard whenever W > 1, so
//     results agree only within floating-point tolerance.
//
// Complexity:
//   - Time O(m·k·n), Space O(m·n + k·n) (result + packed B).
func MultiplyVectorized(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyVectorized, err)
	}
	o := gatherOptions(opts...)

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMultiplyVectorized, err)
	}
	bt, err := packColumns(b)
	if err != nil {
		return nil, matrixErrorf(opMultiplyVectorized, err)
	}

	k, n, w := a.c, b.c, o.laneWidth
	var i, j int
	for i = 0; i < a.r; i++ {
		aRow := a.data[i*k : (i+1)*k]
		cRow := res.data[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			cRow[j] = lanes.Dot(aRow, bt[j*k:(j+1)*k], w)
		}
	}

	return res, nil
}

// packColumns returns Bᵀ as a flat buffer: element (p, j) of B lands at j*k+p.
func packColumns(b *Dense) ([]float32, error) {
	k, n := b.r, b.c
	bt, err := allocBuffer(k * n)
	if err != nil {
		return nil, err
	}
	var p, j int
	for p = 0; p < k; p++ {
		row := b.data[p*n : (p+1)*n]
		for j = 0; j < n; j++ {
			bt[j*k+p] = row[j]
		}
	}

	return bt, nil
}
