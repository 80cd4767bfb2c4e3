// SPDX-License-Identifier: MIT

package matrix

import "golang.org/x/sync/errgroup"

// rowRange is a half-open interval [lo, hi) of output rows owned by one worker.
type rowRange struct {
	lo, hi int
}

// partitionRows splits m rows into t contiguous, non-overlapping ranges.
// Every range holds m/t rows except the last, which absorbs the remainder.
// When t > m every range but the last would be empty, so only the single
// range [0, m) is returned; the result never has more than max(m, 1)
// entries. Requires t >= 1.
func partitionRows(m, t int) []rowRange {
	per := m / t
	if per == 0 {
		return []rowRange{{lo: 0, hi: m}}
	}
	out := make([]rowRange, t)
	var lo, hi int
	for i := 0; i < t; i++ {
		lo = i * per
		hi = lo + per
		if i == t-1 {
			hi = m
		}
		out[i] = rowRange{lo: lo, hi: hi}
	}

	return out
}

// MultiplyMultiThreaded returns C = A × B, splitting the output rows across
// numThreads workers that each run the MultiplyStandard arithmetic.
//
// Implementation:
//   - Stage 1: validate operands, then numThreads >= 1 (before partitioning),
//     then a.Cols == b.Rows.
//   - Stage 2: allocate C once; partitionRows(rows(A), numThreads).
//   - Stage 3: fork one goroutine per non-empty range; each writes only its
//     own rows of C. Empty ranges are skipped; numThreads > rows(A) runs
//     as a single range.
//   - Stage 4: join (wait for all workers) and return C.
//
// Concurrency:
//   - A and B are read-only for all workers; the row ranges are disjoint, so
//     no locks guard C. The join is the only synchronization point.
//
// Errors:
//   - ErrNilMatrix, ErrMovedFrom, ErrInvalidArgument (numThreads <= 0),
//     ErrDimensionMismatch, ErrAllocation.
//
// Determinism:
//   - Each cell is computed by exactly one worker in the MultiplyStandard
//     order, so the result is bit-identical to MultiplyStandard for any
//     valid numThreads.
//
// Complexity:
//   - Time O(m·k·n / numThreads) wall-clock (ideal), Space O(m·n).
func MultiplyMultiThreaded(a, b *Dense, numThreads int) (*Dense, error) {
	if err := ValidateOperand(a); err != nil {
		return nil, matrixErrorf(opMultiplyMultiThreaded, err)
	}
	if err := ValidateOperand(b); err != nil {
		return nil, matrixErrorf(opMultiplyMultiThreaded, err)
	}
	if err := ValidateWorkers(numThreads); err != nil {
		return nil, matrixErrorf(opMultiplyMultiThreaded, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiplyMultiThreaded, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMultiplyMultiThreaded, err)
	}

	var g errgroup.Group
	for _, rr := range partitionRows(a.r, numThreads) {
		if rr.lo == rr.hi {
			continue
		}
		g.Go(func() error {
			mulRows(a, b, res, rr.lo, rr.hi)
			return nil
		})
	}
	// Workers never fail; Wait is only the join.
	_ = g.Wait()

	return res, nil
}
