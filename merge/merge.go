// SPDX-License-Identifier: MIT
// Package merge: the elimination loop.
package merge

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/gnfsmerge/mkzqueue"
	"github.com/katalvlaran/gnfsmerge/sparsemat"
)

// Run executes one merge pass over m: build the Markowitz queue, then
// eliminate cheapest columns until the queue drains, the cheapest pivot
// exceeds WithMaxCost, or the live row count reaches WithTargetRows.
//
// The matrix is mutated in place; row ids stay stable (deleted rows are
// nil-ed, never renumbered), so external relation bookkeeping survives.
//
// Errors:
//   - ErrNilMatrix : m is nil.
//   - queue construction failures, wrapped.
//
// Complexity: each elimination of a weight-w pivot costs O(w·L) row
// combination work for rows of average length L, plus O(t·log C) queue
// repairs for t touched columns.
func Run(m *sparsemat.Matrix, opts ...Option) (Stats, error) {
	// 1. Validate and gather options.
	if m == nil {
		return Stats{}, ErrNilMatrix
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Build the queue over the full column set.
	qu, err := mkzqueue.New(m, cfg.queueOpts...)
	if err != nil {
		return Stats{}, fmt.Errorf("merge: %w", err)
	}
	defer qu.Close()

	var st Stats
	nnzBefore := m.NNZ()

	// 3. Main loop: one pivot per iteration; the pivot column always
	//    leaves the queue, so the loop terminates.
	for qu.Len() > 0 && m.LiveRows() > cfg.targetRows {
		j, c, minErr := qu.Min()
		if minErr != nil {
			break // drained
		}
		if c > cfg.maxCost {
			// Everything remaining is at least this expensive: stop here
			// rather than densify the matrix past the ceiling.
			break
		}

		touched, removed := eliminateColumn(m, qu, j)
		st.Eliminated++
		st.RowsRemoved += removed
		if c > st.MaxPivotCost {
			st.MaxPivotCost = c
		}

		// 4. One batched cost refresh for every column the pivot touched.
		if len(touched) > 0 {
			qu.UpdateCosts(touched)
		}

		if st.Eliminated%cfg.logEvery == 0 {
			cfg.logger.Info("merge progress",
				zap.Int("eliminated", st.Eliminated),
				zap.Int("live_rows", m.LiveRows()),
				zap.Int64("nnz", m.NNZ()),
				zap.Int32("pivot_cost", c),
			)
		}
	}

	// 5. Summarize.
	st.FillIn = m.NNZ() - nnzBefore
	cfg.logger.Info("merge finished",
		zap.Int("eliminated", st.Eliminated),
		zap.Int("rows_removed", st.RowsRemoved),
		zap.Int64("fill_in", st.FillIn),
		zap.Int32("max_pivot_cost", st.MaxPivotCost),
		zap.Int("live_rows", m.LiveRows()),
	)

	return st, nil
}

// eliminateColumn removes column j from the matrix and retires it from the
// queue. It returns the sorted, deduplicated set of other columns whose
// weight changed (for one batched UpdateCosts call) and the number of rows
// deleted.
func eliminateColumn(m *sparsemat.Matrix, qu *mkzqueue.Queue, j int) ([]int, int) {
	rows := m.RowsOfColumn(j)
	w := len(rows)

	// Weight 0: nothing references j anymore; just retire it.
	if w == 0 {
		qu.Remove(j)

		return nil, 0
	}

	// Weight 1: the row is a singleton for j; deleting it eliminates j.
	if w == 1 {
		touched := m.DeleteRow(rows[0])
		qu.Remove(j)

		return dropColumn(touched, j), 1
	}

	// Weight >= 2: combine the lightest row containing j into the others,
	// then delete it. Snapshot the row set first — colRows[j] mutates as
	// the combinations cancel j out of each destination row.
	rs := make([]int, w)
	copy(rs, rows)
	r0 := rs[0]
	for _, r := range rs[1:] {
		if m.RowLength(r) < m.RowLength(r0) {
			r0 = r
		}
	}

	seen := make(map[int]struct{})
	for _, r := range rs {
		if r == r0 {
			continue
		}
		for _, t := range m.CombineRows(r, r0, j) {
			if t != j {
				seen[t] = struct{}{}
			}
		}
	}
	for _, t := range m.DeleteRow(r0) {
		if t != j {
			seen[t] = struct{}{}
		}
	}
	qu.Remove(j)

	// Sorted order keeps the sequential heap-repair pass deterministic for
	// a given matrix, whatever the map iteration did.
	touched := make([]int, 0, len(seen))
	for t := range seen {
		touched = append(touched, t)
	}
	sort.Ints(touched)

	return touched, 1
}

// dropColumn returns cols without j, preserving order.
func dropColumn(cols []int, j int) []int {
	out := cols[:0:len(cols)]
	for _, c := range cols {
		if c != j {
			out = append(out, c)
		}
	}

	return out
}
