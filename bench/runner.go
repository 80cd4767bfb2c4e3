// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/densemat/matrix"
)

// Verification tolerances for multiply kernels against MultiplyStandard.
const (
	verifyRelTol = 1e-3
	verifyAbsTol = 1e-3
)

// Result is the outcome of timing one operation of one case.
type Result struct {
	Case    string
	Op      Op
	Rows    int
	Inner   int
	Cols    int
	Threads int

	Runs    []time.Duration
	Summary Summary

	// Verified is set when the result was cross-checked; MaxDiff holds the
	// largest |kernel - standard| (multiplies) or |A·A⁻¹ - I| (invert).
	Verified bool
	MaxDiff  float64

	// Note explains a skipped operation, e.g. "singular".
	Note string
}

// Runner executes suites. The zero value is not usable; call NewRunner.
type Runner struct {
	log     zerolog.Logger
	laneOpt matrix.Option
	clock   func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the structured logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithLaneWidth forwards a lane width to MultiplyVectorized (0 = native).
// Panics on widths matrix.WithLaneWidth rejects.
func WithLaneWidth(w int) RunnerOption {
	opt := matrix.WithLaneWidth(w)
	return func(r *Runner) { r.laneOpt = opt }
}

// withClock replaces time.Now; used by tests.
func withClock(now func() time.Time) RunnerOption {
	return func(r *Runner) { r.clock = now }
}

// NewRunner returns a Runner with the given options applied.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		log:     zerolog.Nop(),
		laneOpt: matrix.WithLaneWidth(matrix.DefaultLaneWidth),
		clock:   time.Now,
	}
	for _, set := range opts {
		set(r)
	}

	return r
}

// Run validates a private copy of s and times every case in order; the
// caller's suite is left as it was. It returns the results gathered so far
// together with ctx.Err() when ctx is cancelled between runs, and
// ErrVerifyFailed when s.Verify is set and a kernel disagrees.
func (r *Runner) Run(ctx context.Context, s Suite) ([]Result, error) {
	s.Cases = append([]Case(nil), s.Cases...)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var results []Result
	for i, c := range s.Cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.runCase(ctx, s, i, c)
		results = append(results, res...)
		if err != nil {
			return results, errors.Wrapf(err, "case %q", c.Name)
		}
	}

	return results, nil
}

func (r *Runner) runCase(ctx context.Context, s Suite, idx int, c Case) ([]Result, error) {
	log := r.log.With().Str("case", c.Name).Int("rows", c.Rows).Int("inner", c.Inner).
		Int("cols", c.Cols).Int("threads", c.Threads).Logger()
	log.Info().Int("repeat", c.Repeat).Msg("running benchmark case")

	a, err := r.operand(s.Seed, uint64(2*idx), c.Rows, c.Inner)
	if err != nil {
		return nil, err
	}
	b, err := r.operand(s.Seed, uint64(2*idx+1), c.Inner, c.Cols)
	if err != nil {
		return nil, err
	}

	var ref *matrix.Dense
	if s.Verify {
		if ref, err = matrix.MultiplyStandard(a, b); err != nil {
			return nil, err
		}
	}

	opts := []matrix.Option{matrix.WithWorkers(c.Threads), r.laneOpt}
	results := make([]Result, 0, len(c.Ops()))
	for _, op := range c.Ops() {
		res := Result{
			Case: c.Name, Op: op,
			Rows: c.Rows, Inner: c.Inner, Cols: c.Cols, Threads: c.Threads,
		}
		var last *matrix.Dense
		for run := 0; run < c.Repeat; run++ {
			if err = ctx.Err(); err != nil {
				return results, err
			}
			start := r.clock()
			last, err = r.exec(op, a, b, opts)
			elapsed := r.clock().Sub(start)
			if err != nil {
				break
			}
			res.Runs = append(res.Runs, elapsed)
			log.Debug().Stringer("op", op).Int("run", run).Dur("elapsed", elapsed).Msg("timed run")
		}
		if err != nil {
			if op.Invert && errors.Is(err, matrix.ErrSingular) {
				log.Warn().Err(err).Msg("inversion skipped")
				res.Note = "singular"
				results = append(results, res)
				err = nil
				continue
			}
			return results, errors.Wrapf(err, "%s", op)
		}

		if res.Summary, err = Summarize(res.Runs); err != nil {
			return results, err
		}
		if s.Verify {
			if err = verify(&res, a, ref, last); err != nil {
				results = append(results, res)
				return results, err
			}
		}
		log.Info().Stringer("op", op).Dur("median", res.Summary.Median).
			Float64("gflops", res.GFLOPS()).Msg("operation done")
		results = append(results, res)
	}

	return results, nil
}

// operand builds a rows×cols matrix: seeded PCG stream when seed != 0,
// otherwise the global generator.
func (r *Runner) operand(seed, stream uint64, rows, cols int) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		m.Randomize()
		return m, nil
	}
	if err = m.RandomizeWith(rand.New(rand.NewPCG(seed, stream))); err != nil {
		return nil, err
	}

	return m, nil
}

func (r *Runner) exec(op Op, a, b *matrix.Dense, opts []matrix.Option) (*matrix.Dense, error) {
	if op.Invert {
		return matrix.Invert(a)
	}

	return matrix.Multiply(op.Kernel, a, b, opts...)
}

// verify compares a multiply result with the reference product, or checks
// the inversion residual. Inversion residuals are reported, never enforced.
func verify(res *Result, a, ref, got *matrix.Dense) error {
	if res.Op.Invert {
		prod, err := matrix.MultiplyStandard(a, got)
		if err != nil {
			return err
		}
		id, err := matrix.NewIdentity(a.Rows())
		if err != nil {
			return err
		}
		res.MaxDiff, err = matrix.MaxAbsDiff(prod, id)
		res.Verified = err == nil
		return err
	}

	diff, err := matrix.MaxAbsDiff(got, ref)
	if err != nil {
		return err
	}
	res.MaxDiff = diff
	ok, err := matrix.AllClose(got, ref, verifyRelTol, verifyAbsTol)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(ErrVerifyFailed, "%s: max |diff| = %g", res.Op, diff)
	}
	res.Verified = true

	return nil
}

// Flops returns the floating-point operation count of one run:
// 2·m·k·n for a multiply, 4·n³ for Gauss-Jordan inversion.
func (res Result) Flops() float64 {
	if res.Op.Invert {
		n := float64(res.Rows)
		return 4 * n * n * n
	}

	return 2 * float64(res.Rows) * float64(res.Inner) * float64(res.Cols)
}

// GFLOPS is Flops over the median run time, in 10⁹ operations per second.
// Zero when nothing was timed.
func (res Result) GFLOPS() float64 {
	sec := res.Summary.Median.Seconds()
	if sec <= 0 {
		return 0
	}

	return res.Flops() / sec / 1e9
}

// Bytes is the float32 working set of one run: operands plus result for a
// multiply, input plus the n×2n augmented matrix plus result for invert.
func (res Result) Bytes() uint64 {
	const f32 = 4
	if res.Op.Invert {
		n := uint64(res.Rows)
		return f32 * (n*n + 2*n*n + n*n)
	}
	m, k, n := uint64(res.Rows), uint64(res.Inner), uint64(res.Cols)

	return f32 * (m*k + k*n + m*n)
}
