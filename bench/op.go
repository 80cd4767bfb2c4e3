// SPDX-License-Identifier: MIT

package bench

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/densemat/matrix"
)

// opInvertName is the suite keyword for matrix inversion.
const opInvertName = "invert"

// Op is one timed operation: a multiply kernel, or inversion of A.
type Op struct {
	Kernel matrix.Kernel // multiply kernel; ignored when Invert is set
	Invert bool
}

// DefaultOps returns every multiply kernel followed by inversion, the
// order a default run uses.
func DefaultOps() []Op {
	ops := make([]Op, 0, len(matrix.Kernels())+1)
	for _, k := range matrix.Kernels() {
		ops = append(ops, Op{Kernel: k})
	}

	return append(ops, Op{Invert: true})
}

// ParseOp accepts any matrix.ParseKernel name plus "invert"/"inverse".
func ParseOp(name string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case opInvertName, "inverse":
		return Op{Invert: true}, nil
	}
	k, err := matrix.ParseKernel(name)
	if err != nil {
		return Op{}, errors.Wrapf(ErrInvalidSuite, "operation %q", name)
	}

	return Op{Kernel: k}, nil
}

// ParseOps parses a list of operation names, rejecting duplicates.
func ParseOps(names []string) ([]Op, error) {
	ops := make([]Op, 0, len(names))
	seen := make(map[Op]bool, len(names))
	for _, name := range names {
		op, err := ParseOp(name)
		if err != nil {
			return nil, err
		}
		if seen[op] {
			return nil, errors.Wrapf(ErrInvalidSuite, "duplicate operation %q", name)
		}
		seen[op] = true
		ops = append(ops, op)
	}

	return ops, nil
}

// String returns the suite keyword, e.g. "vectorized" or "invert".
func (o Op) String() string {
	if o.Invert {
		return opInvertName
	}

	return o.Kernel.String()
}

// Title is the human label used in text reports.
func (o Op) Title() string {
	if o.Invert {
		return "Matrix Inversion"
	}
	switch o.Kernel {
	case matrix.KernelStandard:
		return "Standard Multiplication"
	case matrix.KernelVectorized:
		return "Vectorized Multiplication"
	case matrix.KernelMultiThreaded:
		return "Multi-Threaded Multiplication"
	}

	return o.Kernel.String()
}
