// SPDX-License-Identifier: MIT
// Package mkzqueue: core types, constants and sentinel errors.
package mkzqueue

import "errors"

// Sentinel errors for mkzqueue operations. Tests match them via errors.Is.
var (
	// ErrNilMatrix indicates that a nil *sparsemat.Matrix was passed to New.
	ErrNilMatrix = errors.New("mkzqueue: matrix is nil")
	// ErrEmptyQueue indicates Min was called with no live columns queued.
	ErrEmptyQueue = errors.New("mkzqueue: queue is empty")
	// ErrClosed indicates an operation on a queue after Close.
	ErrClosed = errors.New("mkzqueue: queue is closed")
)

// Policy selects the merge cost estimator, fixed for the queue's lifetime.
type Policy uint8

const (
	// PolicyCavallar ranks a column by its weight, verbatim.
	PolicyCavallar Policy = iota
	// PolicyPureMkz ranks by the classic Markowitz fill-in estimate
	// (lightest row added to all other rows containing the column).
	PolicyPureMkz
	// PolicyLightMST refines PolicyPureMkz for light columns with the exact
	// minimum-spanning-tree elimination cost from the mst package.
	PolicyLightMST
)

// String returns the policy name for logs and test output.
func (p Policy) String() string {
	switch p {
	case PolicyCavallar:
		return "cavallar"
	case PolicyPureMkz:
		return "pure-markowitz"
	case PolicyLightMST:
		return "light-mst"
	default:
		return "unknown"
	}
}

// Pre-clamp sentinel costs of the Markowitz-style policies. Both clamp to
// zero before storage; their ordering matters only during estimation, where
// empty/singleton columns must rank ahead of the free weight-2 merges.
const (
	// rawCostSingleton ranks empty and singleton columns first of all.
	rawCostSingleton = -4
	// rawCostPair ranks two-row merges next: they cause no fill-in.
	rawCostPair = -2
)

// entry is one heap arena cell: a column id and its clamped cost.
type entry struct {
	col  int32
	cost int32
}
