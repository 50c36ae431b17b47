// Package merge drives the priority-queue column elimination that shrinks
// the relation matrix between sieving and dense linear algebra.
//
// What & Why
//
//   - What does a merge run do?
//     Repeatedly ask the Markowitz queue for the cheapest column, eliminate
//     it (add the lightest row containing it to the others, GF(2), then
//     drop that row), feed every column whose weight changed back into the
//     queue as one batch, and stop when the cheapest remaining elimination
//     costs more than the configured ceiling or the matrix is small enough.
//
//   - Why eliminate cheapest-first?
//     Each elimination removes one row and one column but may create fill-
//     in everywhere else. Taking pivots in Markowitz-cost order keeps the
//     matrix sparse for as long as possible, which is what makes the later
//     block linear algebra affordable.
//
// Elimination of a column j of weight w:
//
//	w == 0 — nothing references j; retire it from the queue.
//	w == 1 — the single row is a singleton for j; delete the row.
//	w >= 2 — pick the lightest row r0 containing j, combine r0 into each
//	         of the other w−1 rows (j cancels), then delete r0.
//
// The driver owns the matrix and the queue for the duration of Run; no
// other goroutine may touch either (the queue's own worker pool is used
// only for pure cost reads, see mkzqueue).
//
// Progress and a final summary go to the injected zap logger; the default
// is zap.NewNop(), so a library consumer hears nothing unless asked.
package merge
