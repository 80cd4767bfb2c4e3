// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "github.com/cockroachdb/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// sentinels with their operation tag via matrixErrorf ("Invert: matrix: ...");
// errors.Is still matches the sentinel through the wrapper.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> moved-from operand -> argument (worker count) -> shape.

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrAllocation is returned when rows×cols overflows the addressable buffer
	// size or the runtime refuses the allocation.
	ErrAllocation = errors.New("matrix: buffer allocation failed")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. a
	// multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a pivot magnitude falls below the singular
	// tolerance during elimination.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidArgument reports a nonsensical scalar argument such as a zero
	// worker count or an unknown kernel name.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrMovedFrom indicates use of a matrix whose buffer was transferred by
	// Take or dropped by Release.
	ErrMovedFrom = errors.New("matrix: use of moved-from matrix")

	// ErrNilSource indicates that RandomizeWith received a nil source.
	ErrNilSource = errors.New("matrix: nil random source")
)

// matrixErrorf wraps err with an operation tag, keeping it matchable with errors.Is.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}
