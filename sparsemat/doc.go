// Package sparsemat models the sparse relation matrix driven through the
// merge stage of a number-field-sieve factorization: rows are relations,
// columns are ideals, and every entry lives in GF(2).
//
// What & Why
//
//   - What is stored?
//     Each live row keeps its sorted column list. Each column keeps the set
//     of rows currently referencing it (colRows) plus an occurrence count
//     (weight). Row length, column weight and the total nonzero count are
//     all O(1) reads, because the elimination loop asks for them millions
//     of times.
//
//   - Why track weights separately from colRows?
//     The merge cost estimators rank columns by weight on every heap
//     update; recounting row sets there would dominate the run. The weight
//     counter is therefore maintained by saturating increment/decrement
//     as rows are combined and deleted, and the structural invariant
//
//	weight[j] == len(colRows[j])
//
//     holds whenever a cost estimator runs (it is only allowed to drift at
//     the saturation ceiling, which is unreachable for realistic inputs).
//
// Mutation surface
//
//   - AddRow       — ingest one relation (construction phase).
//   - CombineRows  — GF(2) addition of one row into another with the pivot
//     column cancelled; the core step of a column elimination.
//   - DeleteRow    — drop a row and release its column occurrences.
//   - IncWeight / DecWeight — the saturating column weight tracker used by
//     the merge driver between structural updates.
//
// Ownership model
//
// A Matrix is owned by a single logical thread (the merge driver). Cost
// estimation may read Weight/RowLength/RowsOfColumn concurrently from a
// worker pool, but no reader may overlap a mutating call. The package takes
// no locks.
//
// Complexity: AddRow O(k log k); CombineRows O(len(dst)+len(src)) plus one
// colRows scan per changed column; DeleteRow O(nnz of the row) with the
// same per-column scan; all weight reads O(1).
package sparsemat
