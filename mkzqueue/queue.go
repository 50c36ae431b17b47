// SPDX-License-Identifier: MIT
// Package mkzqueue: the indexed binary min-heap over (column, cost) pairs.
//
// All arena mutation funnels through assign/siftUp/siftDown so the heap
// order and the column→slot bijection are restored before any public
// operation returns; no intermediate state is observable.
package mkzqueue

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/gnfsmerge/sparsemat"
)

// Queue is the Markowitz priority queue: a 1-indexed heap arena q[1..n] of
// (column, cost) pairs plus the reverse index a[j] mapping a column to its
// slot (0 = dead). Built once per merge run over the full column set,
// mutated in place, discarded wholesale at Close.
type Queue struct {
	mat     *sparsemat.Matrix
	q       []entry // heap arena; q[0] unused, live region is q[1..n]
	n       int     // live element count
	a       []int32 // column -> slot; 0 tags a dead column
	opts    Options
	pool    *ants.Pool // nil unless WithParallelism(>1)
	maxRoot int32      // largest cost ever observed at slot 1
	closed  bool
}

// New builds a queue containing every column of m, costed under the
// configured policy: bulk load in column order, then bottom-up heapify.
//
// Errors:
//   - ErrNilMatrix : m is nil.
//   - worker pool construction failure (wrapped ants error) when
//     WithParallelism(n > 1) was requested.
//
// Complexity: O(C·E + C) for C columns with estimator cost E (heapify is
// linear in C).
func New(m *sparsemat.Matrix, opts ...Option) (*Queue, error) {
	// 1. Validate input and gather options.
	if m == nil {
		return nil, ErrNilMatrix
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Spin up the worker pool for batch updates, if requested.
	var pool *ants.Pool
	if cfg.parallelism > 1 {
		var err error
		if pool, err = ants.NewPool(cfg.parallelism); err != nil {
			return nil, fmt.Errorf("mkzqueue: worker pool: %w", err)
		}
	}

	// 3. Bulk-load the arena heap-order-unaware: slot j+1 holds column j.
	n := m.NumCols()
	qu := &Queue{
		mat:  m,
		q:    make([]entry, n+1),
		n:    n,
		a:    make([]int32, n),
		opts: cfg,
		pool: pool,
	}
	for j := 0; j < n; j++ {
		qu.q[j+1] = entry{col: int32(j), cost: qu.cost(j)}
		qu.a[j] = int32(j + 1)
	}

	// 4. Implicit heapify: sift every internal node down, leaves upward.
	for k := n / 2; k >= 1; k-- {
		qu.siftDown(k)
	}
	qu.noteRoot()

	return qu, nil
}

// Len returns the number of live columns in the queue. O(1).
func (qu *Queue) Len() int { return qu.n }

// IsAlive reports whether column j is still tracked by the queue. O(1).
func (qu *Queue) IsAlive(j int) bool { return qu.a[j] != 0 }

// Min returns the globally cheapest column to eliminate next and its
// clamped cost. O(1) — the heap-root invariant makes slot 1 the answer.
// Returns ErrEmptyQueue when no live column remains, ErrClosed after Close.
func (qu *Queue) Min() (int, int32, error) {
	if qu.closed {
		return 0, 0, ErrClosed
	}
	if qu.n == 0 {
		return 0, 0, ErrEmptyQueue
	}

	return int(qu.q[1].col), qu.q[1].cost, nil
}

// UpdateCost recomputes the cost of column j under the queue's policy,
// writes it into j's slot and restores heap order by sifting the slot
// strictly up or strictly down — after a single value change of an
// already-ordered heap only one direction can be needed.
//
// Contract (panics on violation): j is alive.
//
// Complexity: estimator cost + O(log n).
func (qu *Queue) UpdateCost(j int) {
	slot := qu.slotOf(j, "UpdateCost")
	qu.q[slot].cost = qu.cost(j)
	qu.moveUpOrDown(int(slot))
	qu.noteRoot()
}

// UpdateCosts is the batch form of UpdateCost. The cost recomputation for
// the given columns is a pure read of matrix state, so it is dispatched to
// the worker pool when one is configured and the batch is large enough;
// the heap-repair pass then runs strictly sequentially, in the order
// supplied, because sibling and ancestor slots are shared mutable state.
//
// Contract (panics on violation): every column in js is alive.
func (qu *Queue) UpdateCosts(js []int) {
	// Liveness is checked up front so a contract violation surfaces before
	// any cost lands in the arena.
	for _, j := range js {
		qu.slotOf(j, "UpdateCosts")
	}

	// Small batches, or no pool: the plain sequential path.
	if qu.pool == nil || len(js) < parallelBatchMin {
		for _, j := range js {
			slot := qu.a[j]
			qu.q[slot].cost = qu.cost(j)
			qu.moveUpOrDown(int(slot))
		}
		qu.noteRoot()

		return
	}

	// Phase 1 — parallel map: each task reads matrix state and writes its
	// private result slot; no shared mutable state.
	costs := make([]int32, len(js))
	var wg sync.WaitGroup
	for i := range js {
		i := i
		wg.Add(1)
		if err := qu.pool.Submit(func() {
			defer wg.Done()
			costs[i] = qu.cost(js[i])
		}); err != nil {
			// Pool rejected the task (released/overloaded): compute inline.
			costs[i] = qu.cost(js[i])
			wg.Done()
		}
	}
	wg.Wait()

	// Phase 2 — sequential reduce: write each cost and repair the heap.
	for i, j := range js {
		slot := qu.a[j]
		qu.q[slot].cost = costs[i]
		qu.moveUpOrDown(int(slot))
	}
	qu.noteRoot()
}

// Remove marks column j dead and compacts its heap slot: the last arena
// element is swapped in and sifted to its place. Dead columns are never
// returned by Min and must not be passed to UpdateCost again; IsAlive
// reports false for them permanently.
//
// Contract (panics on violation): j is alive.
//
// Complexity: O(log n).
func (qu *Queue) Remove(j int) {
	slot := int(qu.slotOf(j, "Remove"))
	qu.a[j] = 0 // dead from this point on

	last := qu.n
	qu.n--
	if slot != last {
		// Swap-with-last, then repair from the vacated slot.
		qu.assign(slot, last)
		qu.moveUpOrDown(slot)
	}
	qu.noteRoot()
}

// Close releases the queue's backing storage and its worker pool, and
// reports the maximum cost ever observed at the heap root through the
// configured logger. Further use of the queue is a contract violation;
// Close itself is idempotent.
func (qu *Queue) Close() {
	if qu.closed {
		return
	}
	qu.closed = true

	qu.opts.logger.Info("markowitz queue closed",
		zap.String("policy", qu.opts.policy.String()),
		zap.Int32("max_root_cost", qu.maxRoot),
		zap.Int("remaining", qu.n),
	)

	if qu.pool != nil {
		qu.pool.Release()
		qu.pool = nil
	}
	qu.q = nil
	qu.a = nil
	qu.n = 0
}

// --- internal heap primitives -------------------------------------------

// slotOf returns the live slot of column j or panics with the operation
// name: dead-column access is a caller bug, not a runtime condition.
func (qu *Queue) slotOf(j int, op string) int32 {
	slot := qu.a[j]
	if slot == 0 {
		panic(fmt.Sprintf("mkzqueue: %s on dead column %d", op, j))
	}

	return slot
}

// assign copies arena slot k2 into slot k1 and updates the reverse index
// of the moved column. The two writes happen together, always: this is the
// only place q and a change in tandem mid-sift.
func (qu *Queue) assign(k1, k2 int) {
	e := qu.q[k2]
	qu.q[k1] = e
	qu.a[e.col] = int32(k1)
}

// siftUp moves slot k toward the root while its parent's cost is >= its
// own. The >= comparison promotes on ties deliberately, pulling freshly
// cheapened columns ahead of stale equals. Hole-style: ancestors slide
// down, the element is written once at its final slot.
func (qu *Queue) siftUp(k int) {
	e := qu.q[k]
	for k > 1 && qu.q[k/2].cost >= e.cost {
		qu.assign(k, k/2)
		k /= 2
	}
	qu.q[k] = e
	qu.a[e.col] = int32(k)
}

// siftDown moves slot k toward the leaves while it costs more than its
// smaller child. The child comparison uses strict >, so on equal-cost
// children the left one is chosen. Hole-style like siftUp.
func (qu *Queue) siftDown(k int) {
	e := qu.q[k]
	for {
		c := 2 * k
		if c > qu.n {
			break // k is a leaf
		}
		if c < qu.n && qu.q[c].cost > qu.q[c+1].cost {
			c++ // right child is strictly smaller
		}
		if e.cost <= qu.q[c].cost {
			break // heap order already satisfied
		}
		qu.assign(k, c)
		k = c
	}
	qu.q[k] = e
	qu.a[e.col] = int32(k)
}

// moveUpOrDown repairs the heap after the value in slot k changed: the
// root can only go down; otherwise compare against the parent to pick the
// single direction that can be needed.
func (qu *Queue) moveUpOrDown(k int) {
	if k == 1 {
		qu.siftDown(k)

		return
	}
	if qu.q[k/2].cost > qu.q[k].cost {
		qu.siftUp(k)
	} else {
		qu.siftDown(k)
	}
}

// noteRoot records the root cost into the running maximum reported at
// Close.
func (qu *Queue) noteRoot() {
	if qu.n > 0 && qu.q[1].cost > qu.maxRoot {
		qu.maxRoot = qu.q[1].cost
	}
}
