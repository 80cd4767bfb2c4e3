// Package matrix provides a dense float32 matrix and the kernels that
// multiply and invert it.
//
// The matrix package provides:
//
//   - Dense: an owning, row-major rows×cols container with bounds-checked
//     At/Set, deep Clone, O(1) ownership transfer (Take) and seeded or
//     unseeded random fill.
//   - MultiplyStandard: the reference i→j→p triple loop.
//   - MultiplyVectorized: inner products in fixed-width lane groups
//     (see package lanes) with a scalar tail for any inner dimension.
//   - MultiplyMultiThreaded: output rows split across workers, joined
//     before returning; bit-identical to MultiplyStandard.
//   - Invert: Gauss-Jordan elimination on [A | I] with a singular-pivot
//     tolerance (default 1e-10) and optional partial pivoting.
//   - AllClose / MaxAbsDiff: tolerance comparison between kernel results.
//
// Every operation validates its operands and returns a sentinel error
// (ErrDimensionMismatch, ErrNonSquare, ErrSingular, ...) wrapped with the
// operation name; use errors.Is to match. Operands are never mutated.
//
// Example:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float32{1, 2, 3, 4})
//	inv, err := matrix.Invert(a)
//	// inv = [[-2, 1], [1.5, -0.5]]
//
// See the examples in this package and cmd/matbench for usage patterns.
package matrix
