// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Invert returns A⁻¹ by Gauss-Jordan elimination on the augmented matrix [A | I].
//
// Implementation:
//   - Stage 1: ValidateOperand(a), ValidateSquare(a); resolve Options.
//   - Stage 2: build the n×2n augmented matrix, left half = A, right half = I.
//   - Stage 3: for each pivot index i in order:
//     (optional) swap in the row r >= i with the largest |aug[r,i]|;
//     if |aug[i,i]| < tol → ErrSingular;
//     divide row i by the pivot;
//     for every other row k subtract aug[k,i] × row i.
//   - Stage 4: copy the right half into the result.
//
// Inputs:
//   - a: n×n matrix (never mutated).
//   - opts: WithSingularTolerance (default 1e-10), WithPartialPivoting.
//
// Returns:
//   - A⁻¹ (n×n). A 0×0 input yields a 0×0 result.
//
// Errors:
//   - ErrNilMatrix, ErrMovedFrom, ErrNonSquare, ErrSingular (wrapped with the
//     failing pivot index). No partial result is returned.
//
// Notes:
//   - Without pivoting a zero on the diagonal is reported as singular even
//     when A is invertible (e.g. [[0,1],[1,0]]); WithPartialPivoting fixes that.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Invert(a *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	o := gatherOptions(opts...)

	n := a.r
	w := 2 * n
	aug, err := NewDense(n, w)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], a.data[i*n:(i+1)*n])
		aug.data[i*w+n+i] = 1
	}

	var pivot, factor float32
	for i = 0; i < n; i++ {
		if o.pivoting {
			swapPivotRow(aug, i)
		}
		rowI := aug.data[i*w : (i+1)*w]
		pivot = rowI[i]
		if math.Abs(float64(pivot)) < o.singularTol {
			return nil, matrixErrorf(opInvert,
				errors.Wrapf(ErrSingular, "pivot %d = %g", i, pivot))
		}
		for j = 0; j < w; j++ {
			rowI[j] /= pivot
		}
		for k = 0; k < n; k++ {
			if k == i {
				continue
			}
			rowK := aug.data[k*w : (k+1)*w]
			factor = rowK[i]
			for j = 0; j < w; j++ {
				rowK[j] -= factor * rowI[j]
			}
		}
	}

	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInvert, err)
	}
	for i = 0; i < n; i++ {
		copy(res.data[i*n:(i+1)*n], aug.data[i*w+n:(i+1)*w])
	}

	return res, nil
}

// swapPivotRow exchanges row i of aug with the row r >= i holding the
// largest magnitude in column i. Ties keep the lowest row index.
func swapPivotRow(aug *Dense, i int) {
	w := aug.c
	best, bestAbs := i, math.Abs(float64(aug.data[i*w+i]))
	var v float64
	for r := i + 1; r < aug.r; r++ {
		v = math.Abs(float64(aug.data[r*w+i]))
		if v > bestAbs {
			best, bestAbs = r, v
		}
	}
	if best == i {
		return
	}
	ri := aug.data[i*w : (i+1)*w]
	rb := aug.data[best*w : (best+1)*w]
	for j := range ri {
		ri[j], rb[j] = rb[j], ri[j]
	}
}
