// Package gnfsmerge is the sieving-side sparse reduction core of a General
// Number Field Sieve (GNFS) factorization pipeline: the data structures and
// algorithms that shrink the relation matrix before dense linear algebra.
//
// 🚀 What is gnfsmerge?
//
//	A pure in-memory library that brings together:
//		• Sparse matrix model: per-column row sets, per-column and per-row
//		  weights, GF(2) row combination with exact weight bookkeeping
//		• Merge cost estimation: Cavallar, pure Markowitz and
//		  light-column/exact-MST fill-in policies
//		• Markowitz queue: an indexed binary min-heap over (column, cost)
//		  pairs with O(log n) cost updates of arbitrary queued columns
//		• MST oracle: exact cheapest row-combination cost for light columns
//		• Merge driver: priority-queue-driven column elimination loop
//
// ✨ Why choose gnfsmerge?
//
//   - Exact invariants – column weights, heap order and the queue's
//     reverse-index bijection are maintained (and tested) at every step
//   - Predictable performance – flat arena-backed heap, batched cost
//     recomputation with an optional worker pool for the parallel phase
//   - Pure Go – no cgo; the numeric heavy lifting upstream (sieving,
//     square roots) stays outside this module
//   - Quiet by default – structured zap logging only when you inject it
//
// Under the hood, everything is organized into four subpackages:
//
//	sparsemat/ — sparse relation matrix, column weight tracking, row combination
//	mkzqueue/  — Markowitz cost policies + the indexed priority queue
//	mst/       — minimum-spanning-tree / weight-sum oracle for light columns
//	merge/     — the elimination driver tying the three together
//
// Quick ASCII sketch of one elimination (column j of weight 3):
//
//	r0: ... j ...        r0 is the lightest row containing j
//	r1: ... j ...   →    r1 += r0 (j cancels)
//	r2: ... j ...   →    r2 += r0 (j cancels), r0 removed
//
// Dive into each package's doc.go for the full contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/gnfsmerge
package gnfsmerge
