// SPDX-License-Identifier: MIT

package lanes_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/densemat/lanes"
	"github.com/stretchr/testify/require"
)

func TestWidthIsValid(t *testing.T) {
	w := lanes.Width()
	require.True(t, lanes.IsValidWidth(w), "native width %d", w)
	require.LessOrEqual(t, w, lanes.MaxWidth)
}

func TestDetectConsistent(t *testing.T) {
	info := lanes.Detect()
	require.Equal(t, runtime.GOARCH, info.Arch)
	require.Equal(t, lanes.Width(), info.Width)
	require.NotEmpty(t, info.ISA)
	if info.Width == lanes.Scalar {
		require.Equal(t, "scalar", info.ISA)
	}
}

func TestIsValidWidth(t *testing.T) {
	for _, w := range []int{1, 2, 4, 8, 16} {
		require.True(t, lanes.IsValidWidth(w), "w=%d", w)
	}
	for _, w := range []int{-1, 0, 3, 5, 12, 32} {
		require.False(t, lanes.IsValidWidth(w), "w=%d", w)
	}
}
