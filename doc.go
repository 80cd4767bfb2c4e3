// Package densemat is a dense float32 matrix toolkit built around a small
// set of kernels and a benchmark driver that times them against each other.
//
// What is densemat?
//
//	A pure-Go library that brings together:
//		• Dense: an owning row-major float32 matrix with checked access
//		• Multiply: standard, vectorized (lane groups) and multithreaded kernels
//		• Invert: Gauss-Jordan elimination with a singular-pivot tolerance
//		• matbench: a CLI that times every kernel on random operands
//
// Under the hood, everything is organized under these packages:
//
//	matrix/        Dense container, multiply and inversion kernels, comparisons
//	lanes/         fixed-width vector lanes, native width detection, Dot
//	bench/         suites (YAML), runner, timing statistics, reports
//	cmd/matbench/  command-line driver: matbench [size] [threads]
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float32{1, 2, 3, 4})
//	b, _ := matrix.NewDenseFrom(2, 2, []float32{5, 6, 7, 8})
//	c, _ := matrix.MultiplyMultiThreaded(a, b, 2)
//	fmt.Print(c)
//	// [19, 22]
//	// [43, 50]
//
//	inv, err := matrix.Invert(a)
//	if errors.Is(err, matrix.ErrSingular) { ... }
//
// Every failure is a sentinel error from matrix/errors.go wrapped with the
// operation name; match with errors.Is.
package densemat
