// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
)

// Summary aggregates the timed runs of one operation.
type Summary struct {
	Min    time.Duration
	Median time.Duration
	Mean   time.Duration
	Max    time.Duration
	StdDev time.Duration
}

// Summarize computes min/median/mean/max/stddev over runs. An empty slice
// yields a zero Summary.
func Summarize(runs []time.Duration) (Summary, error) {
	if len(runs) == 0 {
		return Summary{}, nil
	}
	data := make(stats.Float64Data, len(runs))
	for i, d := range runs {
		data[i] = float64(d)
	}

	var (
		s   Summary
		v   float64
		err error
	)
	for _, f := range []struct {
		dst  *time.Duration
		calc func(stats.Float64Data) (float64, error)
	}{
		{&s.Min, stats.Min},
		{&s.Median, stats.Median},
		{&s.Mean, stats.Mean},
		{&s.Max, stats.Max},
		{&s.StdDev, stats.StandardDeviation},
	} {
		if v, err = f.calc(data); err != nil {
			return Summary{}, errors.Wrap(err, "summarize runs")
		}
		*f.dst = time.Duration(v)
	}

	return s, nil
}
