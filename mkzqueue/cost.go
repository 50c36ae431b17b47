// SPDX-License-Identifier: MIT
// Package mkzqueue: the merge cost estimators.
//
// Every estimator is a pure function of current matrix state. Precondition
// (caller's responsibility, see sparsemat doc): weight[j] equals the number
// of live rows referencing j whenever an estimator runs.
package mkzqueue

import (
	"github.com/katalvlaran/gnfsmerge/mst"
	"github.com/katalvlaran/gnfsmerge/sparsemat"
)

// RawCost returns the pre-clamp cost of column j under the queue's policy.
// Negative values never reach the heap arena (see cost); they exist so that
// empty/singleton columns (−4) outrank free two-row merges (−2), which
// outrank every positive fill-in estimate during estimation.
func (qu *Queue) RawCost(j int) int32 {
	switch qu.opts.policy {
	case PolicyLightMST:
		return qu.lightMkzCost(j)
	case PolicyPureMkz:
		return pureMkzCost(qu.mat, j)
	default:
		// PolicyCavallar: for the double-matrix trick we count a cost w
		// for a column of weight w.
		return qu.mat.Weight(j)
	}
}

// cost is RawCost clamped to zero: the arena's cost field is non-negative
// and the dead state is carried by the side table, not by a cost value.
func (qu *Queue) cost(j int) int32 {
	if c := qu.RawCost(j); c > 0 {
		return c
	}

	return 0
}

// pureMkzCost approximates the fill-in of eliminating column j by assuming
// the lightest row containing j is added to every other such row. If j has
// weight w and the lightest row weight w0:
//   - the w occurrences of j disappear,
//   - the lightest row's other w0−1 entries disappear with it,
//   - w0−1 entries are added to each of the w−1 remaining rows,
//
// so the net change is (w0−1)(w−2) − w = (w0−2)(w−2) − 2. Cancellations
// "by chance" are deliberately ignored: over a long merge their
// contribution averages out (PolicyLightMST accounts for them exactly
// where it is cheap to do so).
func pureMkzCost(m *sparsemat.Matrix, j int) int32 {
	w := m.Weight(j)
	if w <= 1 {
		// Empty columns and singletons must be eliminated ahead of
		// everything else.
		return rawCostSingleton
	}
	if w == 2 {
		// A two-row merge is free of fill-in by construction.
		return rawCostPair
	}

	rows := m.RowsOfColumn(j)
	w0 := m.RowLength(rows[0])
	for _, r := range rows[1:] {
		if l := m.RowLength(r); l < w0 {
			w0 = l
		}
	}

	return (int32(w0)-2)*(w-2) - 2
}

// lightMkzCost is pureMkzCost for columns heavier than the configured
// threshold, and the exact cost for light columns: the direct two-row
// combination formula at weight 2, the MST oracle at weight 3 and above.
// With threshold 1 it is identical to pureMkzCost.
func (qu *Queue) lightMkzCost(j int) int32 {
	m := qu.mat
	w := m.Weight(j)
	if w <= 1 {
		return rawCostSingleton
	}
	if w <= qu.opts.mstMaxWeight {
		rows := m.RowsOfColumn(j)
		if w == 2 {
			// Exact cost of the single combination: weight of the summed
			// row minus what the two source rows already carry.
			return mst.WeightSum(m, rows[0], rows[1], j) -
				int32(m.RowLength(rows[0])) - int32(m.RowLength(rows[1]))
		}

		return mst.MinCost(m, rows, j)
	}

	return pureMkzCost(m, j)
}
