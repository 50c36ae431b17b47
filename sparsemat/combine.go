// SPDX-License-Identifier: MIT
// Package sparsemat: GF(2) row combination and row deletion — the two
// structural mutations performed by a column elimination.
package sparsemat

import "fmt"

// CombineRows adds row src into row dst over GF(2): the stored dst becomes
// the symmetric difference of the two column sets. The pivot column must be
// present in both rows, so it always cancels out of dst.
//
// Weight bookkeeping: every column that leaves dst (present in both rows)
// is decremented and dst is unregistered from its row set; every column
// that enters dst (present only in src) is incremented and dst registered.
// Columns present only in dst are untouched. src itself is not modified.
//
// Returns the columns whose weight changed, pivot included. The caller is
// expected to batch these into the Markowitz queue after the elimination.
//
// Contract (panics on violation): dst and src are distinct live rows and
// both contain pivot.
//
// Complexity: O(len(dst)+len(src)) for the merge, plus one colRows scan per
// changed column.
func (m *Matrix) CombineRows(dst, src, pivot int) []int {
	// Contract checks: these indicate a bug in the merge driver, not a
	// recoverable condition.
	if dst == src {
		panic(fmt.Sprintf("sparsemat: CombineRows with dst == src == %d", dst))
	}
	if m.rows[dst] == nil || m.rows[src] == nil {
		panic(fmt.Sprintf("sparsemat: CombineRows on deleted row (dst=%d src=%d)", dst, src))
	}
	if !containsSorted(m.rows[dst], pivot) || !containsSorted(m.rows[src], pivot) {
		panic(fmt.Sprintf("sparsemat: pivot %d missing from row %d or %d", pivot, dst, src))
	}

	a, b := m.rows[dst], m.rows[src]
	result := make([]int, 0, len(a)+len(b)-2) // pivot cancels from both
	touched := make([]int, 0, len(b))

	// Single merge pass over the two sorted lists.
	var ia, ib int
	for ia < len(a) && ib < len(b) {
		switch {
		case a[ia] < b[ib]:
			// Only in dst: survives unchanged.
			result = append(result, a[ia])
			ia++
		case a[ia] > b[ib]:
			// Only in src: enters dst.
			j := b[ib]
			result = append(result, j)
			m.colRows[j] = append(m.colRows[j], dst)
			m.IncWeight(j)
			touched = append(touched, j)
			ib++
		default:
			// In both: cancels out of dst.
			j := a[ia]
			m.unregisterRow(j, dst)
			m.DecWeight(j)
			touched = append(touched, j)
			ia++
			ib++
		}
	}
	for ; ia < len(a); ia++ {
		result = append(result, a[ia])
	}
	for ; ib < len(b); ib++ {
		j := b[ib]
		result = append(result, j)
		m.colRows[j] = append(m.colRows[j], dst)
		m.IncWeight(j)
		touched = append(touched, j)
	}

	m.nnz += int64(len(result) - len(a))
	m.rows[dst] = result

	return touched
}

// DeleteRow removes row i from the matrix, decrementing the weight of each
// column it referenced, and returns those columns. Row ids are stable: the
// slot is nil-ed, never reused.
//
// Contract (panics on violation): row i is alive.
//
// Complexity: O(len(row)) plus one colRows scan per column.
func (m *Matrix) DeleteRow(i int) []int {
	row := m.rows[i]
	if row == nil {
		panic(fmt.Sprintf("sparsemat: DeleteRow on deleted row %d", i))
	}

	for _, j := range row {
		m.unregisterRow(j, i)
		m.DecWeight(j)
	}
	m.nnz -= int64(len(row))
	m.rows[i] = nil
	m.live--

	return row
}

// unregisterRow removes row i from colRows[j] by swap-with-last; colRows
// order is unspecified, so the O(w) scan is the only cost.
func (m *Matrix) unregisterRow(j, i int) {
	rs := m.colRows[j]
	for k, r := range rs {
		if r == i {
			last := len(rs) - 1
			rs[k] = rs[last]
			m.colRows[j] = rs[:last]

			return
		}
	}
	panic(fmt.Sprintf("sparsemat: row %d not registered for column %d", i, j))
}

// containsSorted reports whether sorted slice s contains v (binary search).
func containsSorted(s []int, v int) bool {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo < len(s) && s[lo] == v
}
