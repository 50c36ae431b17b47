// Package mkzqueue implements the Markowitz queue of the merge stage: an
// indexed binary min-heap over (column, cost) pairs, coupled to the merge
// cost estimators that rank columns by the fill-in their elimination would
// cause.
//
// What & Why
//
//   - What is a Markowitz queue?
//     The merge loop repeatedly eliminates the cheapest column of the
//     relation matrix. "Cheapest" changes constantly: every row combination
//     shifts the weights of dozens of other columns. A plain heap only
//     lets you update the root, so the queue pairs the heap arena with a
//     reverse index (column → heap slot) and restores heap order by sifting
//     the touched slot up or down — O(log n) per cost change of an
//     arbitrary queued column.
//
//   - Cost policies (chosen once, at construction):
//
//   - PolicyCavallar  — cost = column weight, verbatim. The cheapest
//     computation; used by double-matrix tricks that only need a
//     singleton/low-weight sort order.
//
//   - PolicyPureMkz   — classic Markowitz estimate: assume the lightest
//     row containing the column is added to all the others. Weight ≤ 1
//     ranks lowest of all (empty columns and singletons go first), then
//     weight 2 (free of fill-in by construction), then (w0−2)(w−2)−2.
//
//   - PolicyLightMST  — identical to PolicyPureMkz above the configured
//     weight threshold; below it, the exact cheapest elimination schedule
//     is computed by the mst package (cancellations "by chance" included).
//
// Data structure
//
// Two flat arenas, mutated only through the sift primitives so the pair of
// invariants below is never observably broken:
//
//	q[1..n] — (column, cost) pairs in binary min-heap order on cost
//	a[j]    — heap slot of column j, or 0 when the column is dead
//
// Slot 0 of a 1-indexed heap is never legal, so the zero value of a[j] is
// the "dead" tag — no sentinel constant can collide with a real slot.
//
// Invariants (tested in queue_test.go):
//
//  1. Heap: q[k].cost ≤ q[2k].cost and q[k].cost ≤ q[2k+1].cost for all
//     live slots with children.
//  2. Bijection: a[q[k].col] == k for every live slot k, and
//     q[a[j]].col == j for every alive column j.
//  3. Costs stored in the arena are non-negative: raw policy costs are
//     clamped to zero at the store boundary (the pre-clamp ordering of
//     weight ≤ 2 columns is an estimator property, not a queue property).
//
// Concurrency
//
// A single logical thread owns the queue. UpdateCosts splits a batch into a
// pure compute phase — dispatched to an ants worker pool when parallelism
// is configured, since it only reads matrix state — and a strictly
// sequential heap-repair phase: sibling and ancestor slots are shared
// mutable state, so sift operations never run concurrently.
//
// Failure semantics
//
// Touching a dead column, or any operation that would break the bijection,
// is a programming-contract violation and panics (the caller is trusted;
// these structures are internal). Construction-time misuse returns sentinel
// errors.
package mkzqueue
