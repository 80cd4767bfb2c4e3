// SPDX-License-Identifier: MIT

package matrix

import (
	"math/rand/v2"

	"github.com/cockroachdb/errors"
)

// Float32Source yields uniform float32 values in [0, 1).
// Both *math/rand.Rand and *math/rand/v2.Rand satisfy it.
type Float32Source interface {
	Float32() float32
}

// Randomize fills every element independently with a uniform value in [0, 1).
// It draws from the runtime-seeded global generator, so results are neither
// reproducible nor meant to be. A moved-from or nil matrix has no elements
// and is left untouched.
// Complexity: O(r*c).
func (m *Dense) Randomize() {
	if m == nil {
		return
	}
	for i := range m.data {
		m.data[i] = rand.Float32()
	}
}

// RandomizeWith fills the matrix from src in row-major order. Use a seeded
// source for reproducible fixtures. The source is not shared with other
// goroutines by this call.
func (m *Dense) RandomizeWith(src Float32Source) error {
	if err := ValidateOperand(m); err != nil {
		return errors.Wrap(err, "Dense.RandomizeWith")
	}
	if src == nil {
		return errors.Wrap(ErrNilSource, "Dense.RandomizeWith")
	}
	for i := range m.data {
		m.data[i] = src.Float32()
	}

	return nil
}
