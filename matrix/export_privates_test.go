// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes unexported helpers to package matrix_test only.
// Living in a _test.go file keeps it out of production builds.

// RowRangeForTest mirrors rowRange with exported fields.
type RowRangeForTest struct{ Lo, Hi int }

// PartitionRowsForTest wraps partitionRows.
func PartitionRowsForTest(m, t int) []RowRangeForTest {
	ranges := partitionRows(m, t)
	out := make([]RowRangeForTest, len(ranges))
	for i, r := range ranges {
		out[i] = RowRangeForTest{Lo: r.lo, Hi: r.hi}
	}

	return out
}

// PackColumnsForTest wraps packColumns.
func PackColumnsForTest(b *Dense) ([]float32, error) { return packColumns(b) }
