// SPDX-License-Identifier: MIT
// Package merge: options, sentinel errors and run statistics.
package merge

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/gnfsmerge/mkzqueue"
)

// Sentinel errors for merge operations.
var (
	// ErrNilMatrix indicates that a nil *sparsemat.Matrix was passed to Run.
	ErrNilMatrix = errors.New("merge: matrix is nil")
)

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultMaxCost places no ceiling on accepted pivot costs.
	DefaultMaxCost = math.MaxInt32

	// DefaultTargetRows of 0 lets the run continue until the queue drains
	// or the cost ceiling stops it.
	DefaultTargetRows = 0

	// DefaultLogEvery is the elimination interval between progress records.
	DefaultLogEvery = 10000
)

// Stats summarizes one merge run.
type Stats struct {
	// Eliminated is the number of columns taken as pivots (weight-0
	// retirements included).
	Eliminated int
	// RowsRemoved is the number of rows deleted from the matrix.
	RowsRemoved int
	// FillIn is the net change in the matrix's nonzero count over the run;
	// negative when the merge shrank the matrix overall.
	FillIn int64
	// MaxPivotCost is the largest clamped cost accepted as a pivot.
	MaxPivotCost int32
}

// Options configures Run. Construct via DefaultOptions and WithX functions.
type Options struct {
	maxCost    int32             // pivot cost ceiling; cheaper-first loop stops above it
	targetRows int               // stop once LiveRows() <= targetRows
	logEvery   int               // progress log interval, in eliminations
	logger     *zap.Logger       // diagnostics sink; never nil (nop by default)
	queueOpts  []mkzqueue.Option // forwarded to mkzqueue.New
}

// Option mutates Options during Run.
type Option func(*Options)

// DefaultOptions returns the documented defaults: no cost ceiling, run to
// drain, nop logger, default queue configuration.
func DefaultOptions() Options {
	return Options{
		maxCost:    DefaultMaxCost,
		targetRows: DefaultTargetRows,
		logEvery:   DefaultLogEvery,
		logger:     zap.NewNop(),
	}
}

// WithMaxCost stops the run once the cheapest remaining elimination costs
// more than c. Panics on c < 0 (stored costs are never negative, so a
// negative ceiling can only be a programming slip).
func WithMaxCost(c int32) Option {
	if c < 0 {
		panic("merge: WithMaxCost must be >= 0")
	}

	return func(o *Options) { o.maxCost = c }
}

// WithTargetRows stops the run once the live row count reaches n.
// Panics on n < 0.
func WithTargetRows(n int) Option {
	if n < 0 {
		panic("merge: WithTargetRows must be >= 0")
	}

	return func(o *Options) { o.targetRows = n }
}

// WithLogEvery sets the progress log interval in eliminations. Panics on
// n < 1.
func WithLogEvery(n int) Option {
	if n < 1 {
		panic("merge: WithLogEvery must be >= 1")
	}

	return func(o *Options) { o.logEvery = n }
}

// WithLogger sets the zap logger receiving progress and summary records.
// Panics on nil; use zap.NewNop() to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("merge: WithLogger got nil logger")
	}

	return func(o *Options) { o.logger = l }
}

// WithQueueOptions forwards options (policy, MST threshold, parallelism,
// queue logger) to the Markowitz queue built for this run.
func WithQueueOptions(opts ...mkzqueue.Option) Option {
	return func(o *Options) { o.queueOpts = append(o.queueOpts, opts...) }
}
