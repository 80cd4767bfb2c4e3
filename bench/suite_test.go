// SPDX-License-Identifier: MIT
package bench_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densemat/bench"
	"github.com/katalvlaran/densemat/matrix"
)

const suiteYAML = `
seed: 42
verify: true
cases:
  - name: square-16
    rows: 16
    inner: 16
    cols: 16
    threads: 4
    repeat: 3
    kernels: [standard, vectorized, multithreaded, invert]
  - rows: 8
    inner: 5
    cols: 3
`

func TestLoadSuite(t *testing.T) {
	s, err := bench.LoadSuite(strings.NewReader(suiteYAML))
	require.NoError(t, err)
	require.Equal(t, uint64(42), s.Seed)
	require.True(t, s.Verify)
	require.Len(t, s.Cases, 2)

	sq := s.Cases[0]
	require.Equal(t, "square-16", sq.Name)
	require.Equal(t, 4, sq.Threads)
	require.Equal(t, 3, sq.Repeat)
	require.Equal(t, []bench.Op{
		{Kernel: matrix.KernelStandard},
		{Kernel: matrix.KernelVectorized},
		{Kernel: matrix.KernelMultiThreaded},
		{Invert: true},
	}, sq.Ops())

	// defaults resolved; non-square A drops inversion
	rect := s.Cases[1]
	require.Equal(t, "8x5x3", rect.Name)
	require.Equal(t, runtime.NumCPU(), rect.Threads)
	require.Equal(t, bench.DefaultRepeat, rect.Repeat)
	require.Len(t, rect.Ops(), 3)
	for _, op := range rect.Ops() {
		require.False(t, op.Invert)
	}
}

func TestLoadSuiteErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":         "",
		"no cases":      "seed: 1\n",
		"unknown field": "cases:\n  - rows: 2\n    inner: 2\n    cols: 2\n    colour: red\n",
		"malformed":     "cases: [\n",
		"wrong type":    "cases:\n  - rows: many\n    inner: 2\n    cols: 2\n",
		"zero dim":      "cases:\n  - rows: 0\n    inner: 2\n    cols: 2\n",
		"bad kernel":    "cases:\n  - rows: 2\n    inner: 2\n    cols: 2\n    kernels: [strassen]\n",
		"dup kernel":    "cases:\n  - rows: 2\n    inner: 2\n    cols: 2\n    kernels: [simd, vectorized]\n",
		"invert rect":   "cases:\n  - rows: 2\n    inner: 3\n    cols: 2\n    kernels: [invert]\n",
		"neg threads":   "cases:\n  - rows: 2\n    inner: 2\n    cols: 2\n    threads: -1\n",
		"dup name":      "cases:\n  - {name: a, rows: 1, inner: 1, cols: 1}\n  - {name: a, rows: 2, inner: 2, cols: 2}\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := bench.LoadSuite(strings.NewReader(doc))
			require.ErrorIs(t, err, bench.ErrInvalidSuite)
		})
	}
}

func TestLoadSuiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(suiteYAML), 0o600))
	s, err := bench.LoadSuiteFile(path)
	require.NoError(t, err)
	require.Len(t, s.Cases, 2)

	_, err = bench.LoadSuiteFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultSuite(t *testing.T) {
	s := bench.DefaultSuite(64, 2)
	require.NoError(t, s.Validate())
	require.Len(t, s.Cases, 1)
	c := s.Cases[0]
	require.Equal(t, "64x64", c.Name)
	require.Equal(t, bench.DefaultOps(), c.Ops())
}

func TestParseOp(t *testing.T) {
	op, err := bench.ParseOp("Inverse")
	require.NoError(t, err)
	require.True(t, op.Invert)
	require.Equal(t, "invert", op.String())
	require.Equal(t, "Matrix Inversion", op.Title())

	op, err = bench.ParseOp("parallel")
	require.NoError(t, err)
	require.Equal(t, matrix.KernelMultiThreaded, op.Kernel)
	require.Equal(t, "Multi-Threaded Multiplication", op.Title())

	_, err = bench.ParseOp("lu")
	require.ErrorIs(t, err, bench.ErrInvalidSuite)
}

// TestLoadSuiteDecodeErrorMatchesSentinel checks that YAML decoding failures
// match ErrInvalidSuite through the standard errors.Is like every other
// validation failure.
func TestLoadSuiteDecodeErrorMatchesSentinel(t *testing.T) {
	_, err := bench.LoadSuite(strings.NewReader("cases:\n  - rows: 2\n    inner: 2\n    cols: 2\n    colour: red\n"))
	require.Error(t, err)
	require.True(t, stderrors.Is(err, bench.ErrInvalidSuite))
	require.Contains(t, err.Error(), "decode suite")
}
