// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the multiply and inversion
// kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No global mutable state; every kernel call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

import (
	"math"
	"runtime"

	"github.com/katalvlaran/densemat/lanes"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularTolerance is the pivot magnitude below which Invert
	// reports ErrSingular.
	DefaultSingularTolerance = 1e-10

	// DefaultPartialPivoting keeps the reference no-pivoting elimination.
	DefaultPartialPivoting = false

	// DefaultLaneWidth selects the native width reported by lanes.Width.
	DefaultLaneWidth = 0

	// DefaultWorkers selects runtime.NumCPU() workers for Multiply with
	// KernelMultiThreaded.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSingularToleranceInvalid = "matrix: WithSingularTolerance: tol must be finite, non-negative"
	panicLaneWidthInvalid         = "matrix: WithLaneWidth: width must be 0, 1, 2, 4, 8 or 16"
	panicWorkersInvalid           = "matrix: WithWorkers: n must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	singularTol float64 // >= 0; DefaultSingularTolerance
	pivoting    bool    // DefaultPartialPivoting
	laneWidth   int     // 0 = native; DefaultLaneWidth
	workers     int     // 0 = NumCPU; DefaultWorkers
}

// WithSingularTolerance sets the pivot magnitude threshold used by Invert.
// Panics when tol is negative, NaN or Inf.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSingularToleranceInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithPartialPivoting makes Invert swap in the row with the largest
// magnitude in the pivot column before each pivot check, so invertible
// inputs with a zero on the diagonal succeed.
func WithPartialPivoting() Option {
	return func(o *Options) { o.pivoting = true }
}

// WithoutPivoting restores the reference elimination order (the default).
func WithoutPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// WithLaneWidth overrides the lane width used by MultiplyVectorized.
// 0 means "native" (lanes.Width()); 1 forces the scalar path.
// Panics on widths lanes.Dot does not support.
func WithLaneWidth(w int) Option {
	if w != DefaultLaneWidth && !lanes.IsValidWidth(w) {
		panic(panicLaneWidthInvalid)
	}

	return func(o *Options) { o.laneWidth = w }
}

// WithWorkers sets the worker count used by Multiply(KernelMultiThreaded, ...).
// 0 means runtime.NumCPU(). Panics on negative values.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults (last-writer-wins)
// and resolves the "0 = detect" sentinels.
func gatherOptions(user ...Option) Options {
	o := Options{
		singularTol: DefaultSingularTolerance,
		pivoting:    DefaultPartialPivoting,
		laneWidth:   DefaultLaneWidth,
		workers:     DefaultWorkers,
	}
	for _, set := range user {
		set(&o)
	}
	if o.laneWidth == DefaultLaneWidth {
		o.laneWidth = lanes.Width()
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.NumCPU()
	}

	return o
}

// SingularTolerance returns the resolved pivot threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// PartialPivoting reports whether row-swap pivoting is enabled.
func (o Options) PartialPivoting() bool { return o.pivoting }

// LaneWidth returns the resolved vector width.
func (o Options) LaneWidth() int { return o.laneWidth }

// Workers returns the resolved worker count.
func (o Options) Workers() int { return o.workers }
