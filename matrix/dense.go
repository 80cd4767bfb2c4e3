// SPDX-License-Identifier: MIT

// Dense is the owning, row-major float32 matrix of this package.
// Storage is a single flat slice: element (i, j) lives at offset i*cols+j.
//
// Ownership model:
//   - Every Dense exclusively owns its buffer; no two live matrices share one.
//   - Clone is a deep copy with an independent lifetime.
//   - Take transfers the buffer in O(1); the source becomes an empty,
//     moved-from matrix whose accessors return ErrMovedFrom.
//   - Dimensions never change on a live matrix.

package matrix

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
)

// sizeofFloat32 is the element size used for buffer-limit arithmetic.
const sizeofFloat32 = 4

// maxElements bounds a single buffer so that its byte size fits in an int.
const maxElements = math.MaxInt / sizeofFloat32

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return errors.Wrapf(err, "Dense.%s(%d,%d)", method, row, col)
}

// Dense is a row-major matrix of float32 values.
type Dense struct {
	r, c  int       // number of rows and columns
	data  []float32 // flat backing storage, len == r*c
	moved bool      // buffer transferred (Take) or dropped (Release)
}

// NewDense creates a rows×cols Dense matrix initialized to zeros.
// Stage 1 (Validate): rows, cols >= 0; rows*cols fits the buffer limit.
// Stage 2 (Prepare): allocate the flat backing slice.
// Zero-sized matrices (0×n, n×0) are legal and own an empty buffer.
//
// Errors: ErrBadShape (negative dims), ErrAllocation (overflow or refused
// allocation).
// Complexity: O(rows*cols) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "NewDense(%d,%d)", rows, cols)
	}
	n, err := elementCount(rows, cols)
	if err != nil {
		return nil, errors.Wrapf(err, "NewDense(%d,%d)", rows, cols)
	}
	data, err := allocBuffer(n)
	if err != nil {
		return nil, errors.Wrapf(err, "NewDense(%d,%d)", rows, cols)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseFrom builds a rows×cols matrix from row-major vals (copied).
// Errors: those of NewDense, plus ErrDimensionMismatch if len(vals) != rows*cols.
func NewDenseFrom(rows, cols int, vals []float32) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(vals) != len(m.data) {
		return nil, errors.Wrapf(ErrDimensionMismatch,
			"NewDenseFrom(%d,%d): %d values", rows, cols, len(vals))
	}
	copy(m.data, vals)

	return m, nil
}

// elementCount returns rows*cols or ErrAllocation when the product overflows
// or exceeds maxElements.
func elementCount(rows, cols int) (int, error) {
	hi, lo := bits.Mul64(uint64(rows), uint64(cols))
	if hi != 0 || lo > maxElements {
		return 0, ErrAllocation
	}

	return int(lo), nil
}

// allocBuffer turns the runtime's "len out of range" panic into ErrAllocation.
// Exhausting memory outright is fatal in Go and cannot be reported here.
func allocBuffer(n int) (data []float32, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			data, err = nil, errors.Wrapf(ErrAllocation, "%v", r)
		}
	}()

	return make([]float32, n), nil
}

// Rows returns the number of rows in the matrix (0 for nil).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns in the matrix (0 for nil).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsMoved reports whether the buffer was transferred by Take or dropped by Release.
func (m *Dense) IsMoved() bool { return m != nil && m.moved }

// indexOf computes the flat index for (row, col).
// Errors: ErrNilMatrix, ErrMovedFrom, ErrOutOfRange (wrapped with method context).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if err := ValidateOperand(m); err != nil {
		return 0, denseErrorf(method, row, col, err)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float32, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float32) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a mutable view of row i. Writes through the slice update the
// matrix; the slice capacity is clipped so appends never spill into row i+1.
// The view is invalidated by Take and Release.
func (m *Dense) Row(i int) ([]float32, error) {
	if err := ValidateOperand(m); err != nil {
		return nil, denseErrorf("Row", i, 0, err)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// Values returns a copy of the row-major buffer; nil for a nil matrix.
func (m *Dense) Values() []float32 {
	if m == nil {
		return nil
	}
	out := make([]float32, len(m.data))
	copy(out, m.data)

	return out
}

// Fill sets every element to v.
func (m *Dense) Fill(v float32) error {
	if err := ValidateOperand(m); err != nil {
		return errors.Wrap(err, "Dense.Fill")
	}
	for i := range m.data {
		m.data[i] = v
	}

	return nil
}

// Clone returns a deep copy of the matrix.
// Cloning a moved-from matrix yields another empty moved-from matrix;
// cloning nil yields nil.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	if m.moved {
		return &Dense{moved: true}
	}
	data := make([]float32, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Take transfers ownership of the buffer to a new Dense in O(1).
// The receiver is left empty (0×0, nil buffer) and marked moved-from; taking
// from an already moved-from matrix returns another moved-from matrix.
// Take on nil returns nil.
func (m *Dense) Take() *Dense {
	if m == nil {
		return nil
	}
	if m.moved {
		return &Dense{moved: true}
	}
	out := &Dense{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data, m.moved = 0, 0, nil, true

	return out
}

// Release drops the buffer early and marks the matrix moved-from.
// Calling Release more than once, or on nil, is harmless.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.r, m.c, m.data, m.moved = 0, 0, nil, true
}

// String implements fmt.Stringer for easy debugging.
// Format: one "[a, b, ...]" line per row.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>\n"
	}
	if m.moved {
		return "<moved>\n"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
