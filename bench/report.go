// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/densemat/matrix"
)

// Format selects the report layout.
type Format string

const (
	// FormatTable renders one aligned row per result.
	FormatTable Format = "table"
	// FormatText prints one "Title: N ms" line per result, grouped by case.
	FormatText Format = "text"
)

// ParseFormat maps a name to a Format (case-insensitive).
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatText:
		return f, nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "%q", name)
}

var tableHeader = []string{
	"case", "op", "shape", "threads", "runs", "min", "median", "max", "throughput", "memory", "check",
}

// Render writes results to w in the given format.
func Render(w io.Writer, results []Result, f Format) error {
	switch f {
	case FormatTable:
		return renderTable(w, results)
	case FormatText:
		return renderText(w, results)
	}

	return errors.Wrapf(ErrUnknownFormat, "%q", string(f))
}

func renderTable(w io.Writer, results []Result) error {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeader(tableHeader)
	for _, res := range results {
		table.Append([]string{
			res.Case,
			res.Op.String(),
			shape(res),
			strconv.Itoa(res.Threads),
			strconv.Itoa(len(res.Runs)),
			roundDur(res.Summary.Min),
			roundDur(res.Summary.Median),
			roundDur(res.Summary.Max),
			throughput(res),
			humanize.IBytes(res.Bytes()),
			check(res),
		})
	}
	table.Render()

	return nil
}

func renderText(w io.Writer, results []Result) error {
	var prev string
	for i, res := range results {
		if i == 0 || res.Case != prev {
			if _, err := fmt.Fprintf(w, "Running benchmark for %dx%d matrices...\n", res.Rows, res.Cols); err != nil {
				return errors.Wrap(err, "write report")
			}
			prev = res.Case
		}
		title := res.Op.Title()
		if !res.Op.Invert && res.Op.Kernel == matrix.KernelMultiThreaded {
			title = fmt.Sprintf("%s (%d threads)", title, res.Threads)
		}
		line := fmt.Sprintf("%s: %d ms", title, res.Summary.Median.Milliseconds())
		if res.Note != "" {
			line = fmt.Sprintf("%s: %s", title, res.Note)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "write report")
		}
	}

	return nil
}

func shape(res Result) string {
	if res.Op.Invert {
		return fmt.Sprintf("%dx%d", res.Rows, res.Inner)
	}

	return fmt.Sprintf("%dx%d·%dx%d", res.Rows, res.Inner, res.Inner, res.Cols)
}

func roundDur(d time.Duration) string {
	if d == 0 {
		return "-"
	}

	return d.Round(time.Microsecond).String()
}

func throughput(res Result) string {
	g := res.GFLOPS()
	if g == 0 {
		return "-"
	}

	return humanize.SIWithDigits(g*1e9, 2, "FLOP/s")
}

func check(res Result) string {
	switch {
	case res.Note != "":
		return res.Note
	case res.Verified:
		return fmt.Sprintf("ok (%.1e)", res.MaxDiff)
	}

	return "-"
}
