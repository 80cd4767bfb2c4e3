// SPDX-License-Identifier: MIT

package lanes_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/lanes"
	"github.com/stretchr/testify/require"
)

var allWidths = []int{lanes.Scalar, 2, lanes.Width128, lanes.Width256, lanes.Width512}

// refDot accumulates in float64 to serve as the ground truth.
func refDot(a, b []float32) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func randVec(rng *rand.Rand, n int) []float32 {
	v := make([]float32, n)
	for i := range v {
		v[i] = rng.Float32()
	}
	return v
}

// TestDotIntegerExact uses small integers so every width must be bit-exact.
func TestDotIntegerExact(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	b := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	for _, w := range allWidths {
		require.Equal(t, float32(77), lanes.Dot(a, b, w), "width=%d", w)
	}
}

// TestDotTailLengths covers every remainder for every width, including
// lengths shorter than one lane group.
func TestDotTailLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, w := range allWidths {
		for n := 0; n <= 3*lanes.MaxWidth+1; n++ {
			t.Run(fmt.Sprintf("w=%d/n=%d", w, n), func(t *testing.T) {
				a, b := randVec(rng, n), randVec(rng, n)
				want := refDot(a, b)
				got := float64(lanes.Dot(a, b, w))
				require.InDelta(t, want, got, 1e-5*math.Max(1, math.Abs(want)))
			})
		}
	}
}

// TestDotLongerB checks that b may carry trailing elements that are ignored.
func TestDotLongerB(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6, 100, 100}
	require.Equal(t, float32(32), lanes.Dot(a, b, lanes.Width256))
}

func TestDotEmpty(t *testing.T) {
	for _, w := range allWidths {
		require.Zero(t, lanes.Dot(nil, nil, w))
	}
}

func TestDotPanics(t *testing.T) {
	require.Panics(t, func() { lanes.Dot([]float32{1}, []float32{1}, 3) })
	require.Panics(t, func() { lanes.Dot([]float32{1, 2}, []float32{1}, lanes.Scalar) })
}
