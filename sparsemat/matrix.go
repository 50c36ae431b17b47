// SPDX-License-Identifier: MIT
// Package sparsemat: construction and the read surface used by the merge
// cost estimators.
package sparsemat

import (
	"fmt"
	"sort"
)

// New returns an empty Matrix over a fixed universe of numCols columns.
//
// Returns ErrBadShape when numCols <= 0. Rows are ingested afterwards with
// AddRow; the column universe never grows.
//
// Complexity: O(numCols) allocation.
func New(numCols int) (*Matrix, error) {
	// 1. Validate the requested shape before allocating anything.
	if numCols <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadShape, numCols)
	}

	// 2. Allocate the per-column tables; rows arrive incrementally.
	return &Matrix{
		rows:    make([][]int, 0),
		colRows: make([][]int, numCols),
		weight:  make([]int32, numCols),
		numCols: numCols,
	}, nil
}

// AddRow ingests one relation given as a set of column indices and returns
// the new row id. The input slice is copied, sorted, and validated; the
// caller keeps ownership of cols.
//
// Errors:
//   - ErrEmptyRow        : len(cols) == 0.
//   - ErrColumnRange     : any index outside [0, NumCols).
//   - ErrDuplicateColumn : a column repeated within the row (GF(2) input
//     must be pre-reduced by the caller).
//
// Complexity: O(k log k) for k = len(cols).
func (m *Matrix) AddRow(cols []int) (int, error) {
	// 1. A relation with no ideals carries no information; reject.
	if len(cols) == 0 {
		return 0, ErrEmptyRow
	}

	// 2. Copy and sort so the stored row is canonical regardless of the
	//    caller's ordering.
	row := make([]int, len(cols))
	copy(row, cols)
	sort.Ints(row)

	// 3. Validate range and adjacency-based duplicate detection in one pass.
	for k, j := range row {
		if j < 0 || j >= m.numCols {
			return 0, fmt.Errorf("%w: column %d, universe [0,%d)", ErrColumnRange, j, m.numCols)
		}
		if k > 0 && row[k-1] == j {
			return 0, fmt.Errorf("%w: column %d", ErrDuplicateColumn, j)
		}
	}

	// 4. Commit: append the row, register each occurrence, bump counters.
	i := len(m.rows)
	m.rows = append(m.rows, row)
	for _, j := range row {
		m.colRows[j] = append(m.colRows[j], i)
		m.IncWeight(j)
	}
	m.live++
	m.nnz += int64(len(row))

	return i, nil
}

// NumCols returns the size of the fixed column universe.
func (m *Matrix) NumCols() int { return m.numCols }

// NumRows returns the total number of row slots ever ingested, including
// deleted rows. Row ids are stable: deletion never renumbers.
func (m *Matrix) NumRows() int { return len(m.rows) }

// LiveRows returns the number of non-deleted rows.
func (m *Matrix) LiveRows() int { return m.live }

// NNZ returns the total nonzero count across live rows.
func (m *Matrix) NNZ() int64 { return m.nnz }

// Weight returns the saturating occurrence count of column j. O(1).
func (m *Matrix) Weight(j int) int32 { return m.weight[j] }

// RowLength returns the nonzero count of row i (0 for a deleted row). O(1).
func (m *Matrix) RowLength(i int) int { return len(m.rows[i]) }

// RowAlive reports whether row i has not been deleted. O(1).
func (m *Matrix) RowAlive(i int) bool { return m.rows[i] != nil }

// Row returns the sorted column list of row i. The returned slice is the
// matrix's internal storage: callers must treat it as read-only and must not
// hold it across a mutating call.
func (m *Matrix) Row(i int) []int { return m.rows[i] }

// RowsOfColumn returns the ids of the live rows referencing column j, in
// unspecified order. Same read-only aliasing contract as Row.
func (m *Matrix) RowsOfColumn(j int) []int { return m.colRows[j] }
