// SPDX-License-Identifier: MIT

package bench

import "time"

// WithClockForTest exposes withClock to package bench_test.
func WithClockForTest(now func() time.Time) RunnerOption { return withClock(now) }
