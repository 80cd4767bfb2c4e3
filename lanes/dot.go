// SPDX-License-Identifier: MIT

package lanes

// Dot returns Σ a[p]·b[p] for p in [0, len(a)) computed in lane groups of
// the given width, followed by a scalar tail for the last len(a) mod width
// elements.
//
// Implementation:
//   - Stage 1: W accumulators start at zero.
//   - Stage 2: for each full group, acc[l] += a[p+l]*b[p+l] for l in [0,W).
//   - Stage 3: horizontal reduction acc[0]+acc[1]+…+acc[W-1] (left to right).
//   - Stage 4: scalar tail adds the remaining products in increasing p.
//
// Inputs:
//   - a, b: contiguous operands; b must be at least as long as a.
//   - width: one of 1, 2, 4, 8, 16 (see IsValidWidth).
//
// Panics when width is invalid or b is shorter than a: both are programmer
// errors, callers validate shapes before reaching the kernel.
//
// Complexity: O(len(a)) time, O(1) space.
func Dot(a, b []float32, width int) float32 {
	if len(b) < len(a) {
		panic("lanes: Dot: len(b) < len(a)")
	}
	switch width {
	case Scalar:
		return dotScalar(a, b)
	case Width256:
		return dot8(a, b)
	case 2, Width128, Width512:
		return dotN(a, b, width)
	default:
		panic("lanes: Dot: unsupported width")
	}
}

// dotScalar is the width-1 reference path.
func dotScalar(a, b []float32) float32 {
	var sum float32
	for p := range a {
		sum += a[p] * b[p]
	}

	return sum
}

// dot8 is the unrolled 8-lane path (the AVX/AVX2 shape) with one local
// accumulator per lane.
func dot8(a, b []float32) float32 {
	n := len(a)
	full := n - n%Width256
	var s0, s1, s2, s3, s4, s5, s6, s7 float32
	for p := 0; p < full; p += Width256 {
		ga := a[p : p+Width256 : p+Width256] // one bounds check per group
		gb := b[p : p+Width256 : p+Width256]
		s0 += ga[0] * gb[0]
		s1 += ga[1] * gb[1]
		s2 += ga[2] * gb[2]
		s3 += ga[3] * gb[3]
		s4 += ga[4] * gb[4]
		s5 += ga[5] * gb[5]
		s6 += ga[6] * gb[6]
		s7 += ga[7] * gb[7]
	}
	sum := s0 + s1 + s2 + s3 + s4 + s5 + s6 + s7

	// tail
	for p := full; p < n; p++ {
		sum += a[p] * b[p]
	}

	return sum
}

// dotN handles the remaining widths with an accumulator array.
func dotN(a, b []float32, width int) float32 {
	n := len(a)
	full := n - n%width
	var acc [MaxWidth]float32
	var p, l int
	for p = 0; p < full; p += width {
		ga := a[p : p+width]
		gb := b[p : p+width]
		for l = 0; l < width; l++ {
			acc[l] += ga[l] * gb[l]
		}
	}

	var sum float32
	for l = 0; l < width; l++ {
		sum += acc[l]
	}
	for p = full; p < n; p++ {
		sum += a[p] * b[p]
	}

	return sum
}
