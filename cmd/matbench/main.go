// SPDX-License-Identifier: MIT

// Command matbench times the dense matrix kernels on random operands.
//
// Usage:
//
//	matbench [size] [threads] [flags]
//
// With no arguments it multiplies two 512×512 matrices with every kernel
// (standard, vectorized, multithreaded on runtime.NumCPU() workers), inverts
// the first one, and prints the elapsed time of each operation.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
		logger.Error().Err(err).Msg("matbench failed")
		stop()
		os.Exit(1)
	}
}
