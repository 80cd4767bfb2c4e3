// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/moved/shape checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap
//    them once more with the kernel tag.
//
// All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Live → Shape.

package matrix

import "github.com/cockroachdb/errors"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}

// ValidateNotNil returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateLive returns ErrMovedFrom if m's buffer was transferred or released.
// Assumes m is not nil.
func ValidateLive(m *Dense) error {
	if m.moved {
		return validatorErrorf("ValidateLive", ErrMovedFrom)
	}

	return nil
}

// ValidateOperand runs NotNil → Live. Use as the first step for every kernel input.
func ValidateOperand(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}

	return ValidateLive(m)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes both operands are valid (caller runs ValidateOperand first).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf("ValidateSameShape",
			errors.Wrapf(ErrDimensionMismatch, "%dx%d vs %dx%d", a.r, a.c, b.r, b.c))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is a valid operand.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare",
			errors.Wrapf(ErrNonSquare, "%dx%d", m.r, m.c))
	}

	return nil
}

// ValidateMulCompatible ensures both operands are valid and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateOperand(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateOperand(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible",
			errors.Wrapf(ErrDimensionMismatch, "%dx%d * %dx%d", a.r, a.c, b.r, b.c))
	}

	return nil
}

// ValidateWorkers rejects worker counts below one. Zero would divide the row
// count by zero during partitioning.
func ValidateWorkers(n int) error {
	if n <= 0 {
		return validatorErrorf("ValidateWorkers",
			errors.Wrapf(ErrInvalidArgument, "worker count %d", n))
	}

	return nil
}
