// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/densemat/bench"
	"github.com/katalvlaran/densemat/lanes"
)

// config holds the parsed command line.
type config struct {
	size      int
	threads   int
	repeat    int
	kernels   []string
	laneWidth int
	seed      uint64
	verify    bool
	suitePath string
	format    string
	logLevel  string
}

func defaultConfig() config {
	return config{
		size:     bench.DefaultSize,
		threads:  runtime.NumCPU(),
		repeat:   bench.DefaultRepeat,
		format:   string(bench.FormatText),
		logLevel: zerolog.InfoLevel.String(),
	}
}

// registerFlags binds cfg to fs.
func registerFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVarP(&cfg.size, "size", "n", cfg.size, "square matrix size (positional arg 1 wins)")
	fs.IntVarP(&cfg.threads, "threads", "t", cfg.threads, "worker count for the multithreaded kernel (positional arg 2 wins)")
	fs.IntVarP(&cfg.repeat, "repeat", "r", cfg.repeat, "timed repetitions per operation")
	fs.StringSliceVarP(&cfg.kernels, "kernels", "k", nil,
		"operations to time: standard,vectorized,multithreaded,invert (default all)")
	fs.IntVar(&cfg.laneWidth, "lane-width", 0,
		"vector width for the vectorized kernel: 1,2,4,8,16 (0 = detect, native "+strconv.Itoa(lanes.Width())+")")
	fs.Uint64Var(&cfg.seed, "seed", 0, "RNG seed for operands (0 = nondeterministic)")
	fs.BoolVar(&cfg.verify, "verify", false, "cross-check kernel results against the standard kernel")
	fs.StringVarP(&cfg.suitePath, "suite", "f", "", "YAML suite file (overrides size and threads)")
	fs.StringVar(&cfg.format, "format", cfg.format, "report format: table | text")
	fs.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "log level: debug, info, warn, error, disabled")
}

// newRootCmd builds the matbench command writing the report to stdout and
// logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "matbench [size] [threads]",
		Short: "benchmark dense float32 matrix kernels",
		Long: `
  Multiplies two random size×size matrices with the standard, vectorized
  and multithreaded kernels, inverts the first operand, and reports the
  elapsed time of each operation. A YAML suite (--suite) runs several cases.
`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyArgs(&cfg, args); err != nil {
				return err
			}
			return run(cmd, cfg, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	registerFlags(cmd.Flags(), &cfg)

	return cmd
}

// applyArgs lets positional [size] [threads] override the flags.
func applyArgs(cfg *config, args []string) error {
	var err error
	if len(args) > 0 {
		if cfg.size, err = strconv.Atoi(args[0]); err != nil {
			return errors.Wrapf(err, "size %q", args[0])
		}
	}
	if len(args) > 1 {
		if cfg.threads, err = strconv.Atoi(args[1]); err != nil {
			return errors.Wrapf(err, "threads %q", args[1])
		}
	}

	return nil
}

// validate rejects values that the kernels would refuse later anyway.
func (cfg config) validate() error {
	if cfg.size < 1 {
		return errors.Newf("size must be >= 1, got %d", cfg.size)
	}
	if cfg.threads < 1 {
		return errors.Newf("threads must be >= 1, got %d", cfg.threads)
	}
	if cfg.repeat < 1 {
		return errors.Newf("repeat must be >= 1, got %d", cfg.repeat)
	}
	if cfg.laneWidth != 0 && !lanes.IsValidWidth(cfg.laneWidth) {
		return errors.Newf("lane width must be 0, 1, 2, 4, 8 or 16, got %d", cfg.laneWidth)
	}

	return nil
}

// suite builds the suite to run: the file from --suite, or a single square
// case from size/threads. --seed and --verify override the file when set.
func (cfg config) suite(fs *pflag.FlagSet) (bench.Suite, error) {
	if cfg.suitePath == "" {
		s := bench.DefaultSuite(cfg.size, cfg.threads)
		s.Seed, s.Verify = cfg.seed, cfg.verify
		s.Cases[0].Repeat = cfg.repeat
		s.Cases[0].Kernels = cfg.kernels
		return s, s.Validate()
	}

	s, err := bench.LoadSuiteFile(cfg.suitePath)
	if err != nil {
		return bench.Suite{}, err
	}
	if fs.Changed("seed") {
		s.Seed = cfg.seed
	}
	if fs.Changed("verify") {
		s.Verify = cfg.verify
	}

	return s, nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "log level %q", level)
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).With().Timestamp().Logger(), nil
}

func run(cmd *cobra.Command, cfg config, stdout, stderr io.Writer) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	format, err := bench.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	logger, err := newLogger(stderr, cfg.logLevel)
	if err != nil {
		return err
	}
	s, err := cfg.suite(cmd.Flags())
	if err != nil {
		return err
	}
	logger.Debug().Int("cases", len(s.Cases)).Uint64("seed", s.Seed).Bool("verify", s.Verify).
		Int("native_lanes", lanes.Width()).Str("isa", lanes.Detect().ISA).Msg("suite ready")

	runner := bench.NewRunner(bench.WithLogger(logger), bench.WithLaneWidth(cfg.laneWidth))
	results, runErr := runner.Run(cmd.Context(), s)
	if err = bench.Render(stdout, results, format); err != nil {
		return err
	}

	return runErr
}
