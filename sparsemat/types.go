// SPDX-License-Identifier: MIT
// Package sparsemat: core type, constants and sentinel errors.
package sparsemat

import (
	"errors"
	"math"
)

// Sentinel errors for sparsemat operations. Tests match them via errors.Is.
var (
	// ErrBadShape indicates a non-positive column count at construction.
	ErrBadShape = errors.New("sparsemat: column count must be > 0")
	// ErrEmptyRow indicates an attempt to ingest a relation with no columns.
	ErrEmptyRow = errors.New("sparsemat: row must reference at least one column")
	// ErrColumnRange indicates a column index outside [0, NumCols).
	ErrColumnRange = errors.New("sparsemat: column index out of range")
	// ErrDuplicateColumn indicates a repeated column inside one ingested row.
	// Over GF(2) a doubled entry cancels; the caller must pre-reduce instead.
	ErrDuplicateColumn = errors.New("sparsemat: duplicate column in row")
)

// MaxColWeight is the saturation ceiling of the column weight tracker.
// A column pinned at the ceiling is "too heavy to track": both IncWeight and
// DecWeight leave it pinned, and the weight/colRows equality is allowed to
// drift for it. With int32 weights the ceiling is unreachable in practice.
const MaxColWeight = math.MaxInt32

// Matrix is the sparse GF(2) relation matrix consumed by the merge stage.
//
// rows[i] is the sorted column list of row i, or nil once the row has been
// deleted. colRows[j] is the unordered set of live rows referencing column j.
// weight[j] is the saturating occurrence counter kept in lockstep with
// colRows (see package doc for the exact invariant).
//
// The zero value is not usable; construct with New.
type Matrix struct {
	rows    [][]int // rows[i]: sorted column ids; nil = deleted row
	colRows [][]int // colRows[j]: row ids currently containing column j
	weight  []int32 // weight[j]: saturating occurrence count of column j
	numCols int     // fixed column universe size
	live    int     // number of non-deleted rows
	nnz     int64   // total nonzero count across live rows
}
