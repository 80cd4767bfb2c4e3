// SPDX-License-Identifier: MIT
// Package matrix: public dispatch surface.
//
// Kernel names a multiply implementation so drivers (bench, cmd/matbench)
// can select one from configuration. All kernels share the same contract:
// C = A × B, operands untouched, sentinel errors on bad input.

package matrix

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Kernel identifies a multiply implementation.
type Kernel int

const (
	// KernelStandard is the i→j→p triple loop (MultiplyStandard).
	KernelStandard Kernel = iota
	// KernelVectorized is the lane-group kernel (MultiplyVectorized).
	KernelVectorized
	// KernelMultiThreaded is the row-partitioned kernel (MultiplyMultiThreaded).
	KernelMultiThreaded
)

var kernelNames = [...]string{
	KernelStandard:      "standard",
	KernelVectorized:    "vectorized",
	KernelMultiThreaded: "multithreaded",
}

// Kernels lists every kernel in dispatch order.
func Kernels() []Kernel {
	return []Kernel{KernelStandard, KernelVectorized, KernelMultiThreaded}
}

// String returns the lowercase kernel name, e.g. "vectorized".
func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return "kernel(" + strconv.Itoa(int(k)) + ")"
	}

	return kernelNames[k]
}

// ParseKernel maps a case-insensitive name to a Kernel. "simd" and
// "parallel" are accepted as aliases.
func ParseKernel(name string) (Kernel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "naive":
		return KernelStandard, nil
	case "vectorized", "simd":
		return KernelVectorized, nil
	case "multithreaded", "parallel", "mt":
		return KernelMultiThreaded, nil
	}

	return 0, errors.Wrapf(ErrInvalidArgument, "unknown kernel %q", name)
}

// Multiply dispatches to the kernel k. KernelMultiThreaded uses the worker
// count from WithWorkers (default runtime.NumCPU()); KernelVectorized uses
// WithLaneWidth. Unknown kernels return ErrInvalidArgument.
func Multiply(k Kernel, a, b *Dense, opts ...Option) (*Dense, error) {
	switch k {
	case KernelStandard:
		return MultiplyStandard(a, b)
	case KernelVectorized:
		return MultiplyVectorized(a, b, opts...)
	case KernelMultiThreaded:
		o := gatherOptions(opts...)
		return MultiplyMultiThreaded(a, b, o.workers)
	}

	return nil, matrixErrorf(opMultiply, errors.Wrapf(ErrInvalidArgument, "kernel %d", int(k)))
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
