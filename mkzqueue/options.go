// SPDX-License-Identifier: MIT
// Package mkzqueue: functional configuration for queue construction.
//
// Design goals (mirroring the rest of the module):
//   - Deterministic behavior: no global state, policy fixed at construction.
//   - Safe by construction: WithX constructors panic on nonsensical values
//     (programmer error), never silently correct them.
//   - Options fields are unexported; public APIs consume ...Option.
package mkzqueue

import "go.uber.org/zap"

// Defaults — single source of truth for zero-configuration behavior.
const (
	// DefaultPolicy is the estimator used when no WithPolicy option is given.
	DefaultPolicy = PolicyPureMkz

	// DefaultMSTMaxWeight bounds the column weight up to which
	// PolicyLightMST computes the exact MST cost; heavier columns fall back
	// to the pure Markowitz estimate.
	DefaultMSTMaxWeight = 7

	// DefaultParallelism is 1: batch cost recomputation stays on the
	// calling goroutine unless the caller opts into a worker pool.
	DefaultParallelism = 1
)

// parallelBatchMin is the batch size below which UpdateCosts computes
// inline even when a pool is configured: pool dispatch overhead dominates
// tiny batches.
const parallelBatchMin = 64

// Options configures a Queue. Construct via DefaultOptions and the WithX
// functions; zero value is not meaningful.
type Options struct {
	policy       Policy      // cost estimator variant
	mstMaxWeight int32       // PolicyLightMST exact-cost threshold
	parallelism  int         // worker count for the batch compute phase
	logger       *zap.Logger // diagnostics sink; never nil (nop by default)
}

// Option mutates Options during New.
type Option func(*Options)

// DefaultOptions returns the documented defaults: PolicyPureMkz,
// MST threshold 7, no parallelism, nop logger.
func DefaultOptions() Options {
	return Options{
		policy:       DefaultPolicy,
		mstMaxWeight: DefaultMSTMaxWeight,
		parallelism:  DefaultParallelism,
		logger:       zap.NewNop(),
	}
}

// WithPolicy selects the cost estimator. Panics on an unknown policy.
func WithPolicy(p Policy) Option {
	if p != PolicyCavallar && p != PolicyPureMkz && p != PolicyLightMST {
		panic("mkzqueue: WithPolicy: unknown policy")
	}

	return func(o *Options) { o.policy = p }
}

// WithMSTMaxWeight sets the column weight up to which PolicyLightMST uses
// the exact MST oracle. w must be >= 1; with w == 1 the policy degenerates
// to PolicyPureMkz. Panics on w < 1.
func WithMSTMaxWeight(w int) Option {
	if w < 1 {
		panic("mkzqueue: WithMSTMaxWeight must be >= 1")
	}

	return func(o *Options) { o.mstMaxWeight = int32(w) }
}

// WithParallelism sets the worker count for the pure compute phase of
// UpdateCosts. n must be >= 1; n == 1 means no pool is created. Panics on
// n < 1. Heap repair is sequential regardless of n.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("mkzqueue: WithParallelism must be >= 1")
	}

	return func(o *Options) { o.parallelism = n }
}

// WithLogger sets the zap logger receiving queue diagnostics (currently the
// maximum root cost, reported at Close). Panics on nil; use zap.NewNop()
// to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mkzqueue: WithLogger got nil logger")
	}

	return func(o *Options) { o.logger = l }
}
