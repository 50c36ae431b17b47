// SPDX-License-Identifier: MIT
// Package sparsemat: the saturating column weight tracker.
//
// These two methods are the only way column weights change. Structural
// mutators (AddRow, CombineRows, DeleteRow) funnel through them so the
// saturation policy lives in exactly one place.
package sparsemat

import "fmt"

// IncWeight increments the weight of column j, saturating at MaxColWeight,
// and returns the new weight so callers can detect threshold crossings.
// A column pinned at the ceiling stays pinned.
func (m *Matrix) IncWeight(j int) int32 {
	if m.weight[j] < MaxColWeight {
		m.weight[j]++
	}

	return m.weight[j]
}

// DecWeight decrements the weight of column j and returns the new weight.
//
// Contract: the current weight must be > 0. Decrementing a zero-weight
// column means the column was already eliminated and the surrounding merge
// logic is broken; that is a programmer error, so DecWeight panics rather
// than returning an error. A column pinned at MaxColWeight stays pinned.
func (m *Matrix) DecWeight(j int) int32 {
	w := m.weight[j]
	if w == 0 {
		panic(fmt.Sprintf("sparsemat: DecWeight on zero-weight column %d", j))
	}
	if w < MaxColWeight {
		m.weight[j] = w - 1
	}

	return m.weight[j]
}
