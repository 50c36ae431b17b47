// SPDX-License-Identifier: MIT
// Package mst: weight-sum of a GF(2) row combination and exact minimal
// elimination cost via a minimum spanning tree over the combination graph.
package mst

import (
	"fmt"

	"github.com/katalvlaran/gnfsmerge/sparsemat"
)

// WeightSum returns the weight (nonzero count) of the GF(2) sum of rows r1
// and r2, both of which must contain the pivot column j. The pivot — and
// every other column the rows happen to share — cancels, so the result is
// the size of the symmetric difference of the two column sets.
//
// Contract (panics on violation): r1 != r2, both rows live, both contain j.
//
// Complexity: O(RowLength(r1) + RowLength(r2)).
func WeightSum(m *sparsemat.Matrix, r1, r2, j int) int32 {
	if r1 == r2 {
		panic(fmt.Sprintf("mst: WeightSum with r1 == r2 == %d", r1))
	}
	a, b := m.Row(r1), m.Row(r2)
	if a == nil || b == nil {
		panic(fmt.Sprintf("mst: WeightSum on deleted row (r1=%d r2=%d)", r1, r2))
	}

	// Merge pass over the two sorted lists, counting columns present in
	// exactly one of them. Track that the pivot is seen on both sides.
	var n int32
	var ia, ib int
	sawPivot := 0
	for ia < len(a) && ib < len(b) {
		switch {
		case a[ia] < b[ib]:
			n++
			ia++
		case a[ia] > b[ib]:
			n++
			ib++
		default:
			if a[ia] == j {
				sawPivot = 2
			}
			ia++
			ib++
		}
	}
	n += int32(len(a)-ia) + int32(len(b)-ib)
	if sawPivot != 2 {
		panic(fmt.Sprintf("mst: pivot %d not shared by rows %d and %d", j, r1, r2))
	}

	return n
}

// MinCost returns the minimal total fill-in of any sequence of row
// combinations eliminating column j from the given rows: the weight of a
// minimum spanning tree of the complete graph on rows, with edge cost
// WeightSum(r1,r2,j) − RowLength(r1) − RowLength(r2). Edge costs may be
// negative when cancellation dominates; Prim handles that unchanged.
//
// Contract (panics on violation): len(rows) >= 2, all rows live and
// containing j (checked transitively by WeightSum).
//
// Complexity: O(w²·L) weight-sum work for w = len(rows) rows of average
// length L, then O(w²) for the array-based Prim pass. The caller bounds w.
func MinCost(m *sparsemat.Matrix, rows []int, j int) int32 {
	w := len(rows)
	if w < 2 {
		panic(fmt.Sprintf("mst: MinCost needs at least 2 rows, got %d", w))
	}

	// 1. Two rows: the tree is a single edge; skip the matrix build.
	if w == 2 {
		return WeightSum(m, rows[0], rows[1], j) -
			int32(m.RowLength(rows[0])) - int32(m.RowLength(rows[1]))
	}

	// 2. Build the dense edge-cost matrix of the combination graph.
	cost := make([][]int32, w)
	for i := range cost {
		cost[i] = make([]int32, w)
	}
	for i := 0; i < w; i++ {
		for k := i + 1; k < w; k++ {
			c := WeightSum(m, rows[i], rows[k], j) -
				int32(m.RowLength(rows[i])) - int32(m.RowLength(rows[k]))
			cost[i][k] = c
			cost[k][i] = c
		}
	}

	// 3. Prim from vertex 0. The graph is complete and tiny, so the
	//    O(w²) best[]/inTree[] form is the right tool (no heap).
	best := make([]int32, w)   // cheapest edge from the tree to each vertex
	inTree := make([]bool, w)  // vertices already spanned
	copy(best, cost[0])        // seed with edges out of vertex 0
	inTree[0] = true
	var total int32
	for picked := 1; picked < w; picked++ {
		// 3a. Pick the cheapest unspanned vertex.
		next := -1
		for v := 1; v < w; v++ {
			if !inTree[v] && (next == -1 || best[v] < best[next]) {
				next = v
			}
		}
		inTree[next] = true
		total += best[next]

		// 3b. Relax the remaining vertices through the new tree vertex.
		for v := 1; v < w; v++ {
			if !inTree[v] && cost[next][v] < best[v] {
				best[v] = cost[next][v]
			}
		}
	}

	return total
}
