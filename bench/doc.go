// SPDX-License-Identifier: MIT

// Package bench times the matrix kernels against each other.
//
// A Suite lists Cases (operand shapes, worker count, repetitions and the
// operations to time). Runner builds random operands for each case, runs
// every requested operation Repeat times, optionally cross-checks each
// multiply kernel against MultiplyStandard, and returns one Result per
// (case, operation) with min/median/mean/max timings. Render prints the
// results as a table or as plain text lines.
//
// Suites come from code (DefaultSuite) or YAML (LoadSuite / LoadSuiteFile):
//
//	seed: 42
//	verify: true
//	cases:
//	  - name: square-256
//	    rows: 256
//	    inner: 256
//	    cols: 256
//	    threads: 4
//	    repeat: 3
//	    kernels: [standard, vectorized, multithreaded, invert]
//
// Runner logs through zerolog and stops between timed runs when its
// context is cancelled; kernels themselves are never interrupted.
package bench
