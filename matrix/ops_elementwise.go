// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparisons used to check kernel agreement.

package matrix

import (
	"math"

	"github.com/cockroachdb/errors"
)

// AllClose reports whether every element satisfies |a-b| <= atol + rtol*|b|.
// Negative tolerances are taken by magnitude; NaN or Inf tolerances are
// rejected. A NaN element never compares close; equal infinities do.
//
// Errors: ErrNilMatrix, ErrMovedFrom, ErrDimensionMismatch, ErrInvalidArgument.
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose,
			errors.Wrapf(ErrInvalidArgument, "tolerance rtol=%g atol=%g", rtol, atol))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := validatePair(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var x, y float64
	for idx := range a.data {
		x, y = float64(a.data[idx]), float64(b.data[idx])
		if x == y { // covers equal infinities
			continue
		}
		// NaN fails the comparison below
		if !(math.Abs(x-y) <= atol+rtol*math.Abs(y)) {
			return false, nil
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a-b| over all elements (0 for empty matrices).
// NaN anywhere yields NaN.
//
// Errors: ErrNilMatrix, ErrMovedFrom, ErrDimensionMismatch.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := validatePair(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var worst, d float64
	for idx := range a.data {
		d = math.Abs(float64(a.data[idx]) - float64(b.data[idx]))
		if math.IsNaN(d) {
			return d, nil
		}
		if d > worst {
			worst = d
		}
	}

	return worst, nil
}

// validatePair runs ValidateOperand on both sides, then ValidateSameShape.
func validatePair(a, b *Dense) error {
	if err := ValidateOperand(a); err != nil {
		return err
	}
	if err := ValidateOperand(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}
