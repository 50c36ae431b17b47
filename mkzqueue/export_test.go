// SPDX-License-Identifier: MIT
// Test-bridge (white-box) for queue internals.
//
// Compiled only into test binaries (_test.go suffix). Exposes the invariant
// checkers and an arena snapshot to the black-box suite in mkzqueue_test,
// without widening the production API.
package mkzqueue

import "fmt"

// CheckInvariants verifies, over the live region q[1..n]:
//
//  1. the heap property (parent cost <= both children's costs), and
//  2. the Q/A bijection in both directions.
//
// Returns a descriptive error on the first violation found, nil otherwise.
func (qu *Queue) CheckInvariants() error {
	for k := 1; k <= qu.n; k++ {
		e := qu.q[k]
		if l := 2 * k; l <= qu.n && e.cost > qu.q[l].cost {
			return fmt.Errorf("heap violated: parent slot %d cost %d > left child cost %d", k, e.cost, qu.q[l].cost)
		}
		if r := 2*k + 1; r <= qu.n && e.cost > qu.q[r].cost {
			return fmt.Errorf("heap violated: parent slot %d cost %d > right child cost %d", k, e.cost, qu.q[r].cost)
		}
		if qu.a[e.col] != int32(k) {
			return fmt.Errorf("bijection violated: slot %d holds column %d but a[%d] == %d", k, e.col, e.col, qu.a[e.col])
		}
		if e.cost < 0 {
			return fmt.Errorf("negative cost %d stored for column %d", e.cost, e.col)
		}
	}
	for j, slot := range qu.a {
		if slot == 0 {
			continue // dead column
		}
		if int(slot) > qu.n {
			return fmt.Errorf("a[%d] == %d points past the live region (n=%d)", j, slot, qu.n)
		}
		if qu.q[slot].col != int32(j) {
			return fmt.Errorf("bijection violated: a[%d] == %d but slot holds column %d", j, slot, qu.q[slot].col)
		}
	}

	return nil
}

// Snapshot returns copies of the live arena (columns and costs, slot order)
// and the reverse index, for state-equality assertions.
func (qu *Queue) Snapshot() (cols []int32, costs []int32, index []int32) {
	cols = make([]int32, qu.n)
	costs = make([]int32, qu.n)
	for k := 1; k <= qu.n; k++ {
		cols[k-1] = qu.q[k].col
		costs[k-1] = qu.q[k].cost
	}
	index = append(index, qu.a...)

	return cols, costs, index
}

// ClampedCost exposes the store-boundary clamp applied on top of RawCost.
func (qu *Queue) ClampedCost(j int) int32 { return qu.cost(j) }
