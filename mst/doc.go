// Package mst is the exact fill-in oracle used for light columns during the
// merge stage: given the handful of rows sharing a column, it computes the
// cheapest total cost of any sequence of row combinations eliminating that
// column.
//
// What & Why
//
//   - What is the question being answered?
//     Eliminating a column of weight w requires w-1 row combinations. The
//     pure Markowitz estimate assumes the single lightest row is added to
//     every other row, but any spanning tree of the complete "combination
//     graph" on those w rows is a valid elimination schedule. The cheapest
//     schedule is exactly a minimum spanning tree of that graph, where the
//     edge between rows r1 and r2 costs
//
//	WeightSum(r1, r2, j) − RowLength(r1) − RowLength(r2)
//
//     i.e. the net fill-in of combining the two rows (cancellations "by
//     chance" included, which is what makes this more accurate than the
//     Markowitz estimate).
//
//   - Why only for light columns?
//     Building the complete graph costs O(w²) weight-sum evaluations; the
//     caller bounds w by its configured threshold, so the graph stays tiny
//     (a dozen vertices at most) and an array-based Prim pass beats any
//     heap-backed variant.
//
// Contract
//
// Both functions are pure reads of matrix state. Preconditions (live rows,
// pivot membership) are programmer contracts of the merge core and are
// enforced by panic, not by recoverable errors.
package mst
