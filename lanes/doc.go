// SPDX-License-Identifier: MIT

// Package lanes provides a small fixed-width vector-lane abstraction for
// float32 inner products.
//
// A "lane group" of width W holds W independent partial sums. Dot walks two
// contiguous slices in steps of W, multiply-accumulates lane by lane, then
// reduces the W partial sums horizontally (left to right) into one scalar.
// Elements that do not fill a whole group are added by a scalar tail loop,
// so any length is legal for any width.
//
// Width 1 is the pure scalar path. The native width is chosen once at
// start-up from the CPU feature set (see Width and Detect):
//
//	AVX-512F      → 16 lanes
//	AVX / AVX2    →  8 lanes
//	ARM64 ASIMD   →  4 lanes
//	otherwise     →  1 lane (scalar)
//
// Results for different widths are equal only within floating-point
// tolerance: the summation order changes with W.
package lanes
