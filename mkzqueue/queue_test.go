package mkzqueue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gnfsmerge/mkzqueue"
	"github.com/katalvlaran/gnfsmerge/sparsemat"
)

// buildSingletonMatrix constructs a matrix with len(weights) columns where
// column j has the given weight, realized as weight[j] singleton rows [j].
// Row lengths are all 1, which keeps Cavallar costs exactly equal to the
// weights.
func buildSingletonMatrix(t *testing.T, weights []int) *sparsemat.Matrix {
	t.Helper()

	m, err := sparsemat.New(len(weights))
	require.NoError(t, err)
	for j, w := range weights {
		for k := 0; k < w; k++ {
			_, err = m.AddRow([]int{j})
			require.NoError(t, err)
		}
	}

	return m
}

// TestScenario_CavallarReordering follows the reference scenario: a queue
// over columns of weights [0,1,2,3,5] under the verbatim-weight policy must
// surface the weight-0 column first; after that column's weight rises to 4
// and its cost is refreshed, the weight-1 column becomes the minimum.
func TestScenario_CavallarReordering(t *testing.T) {
	m := buildSingletonMatrix(t, []int{0, 1, 2, 3, 5})

	qu, err := mkzqueue.New(m, mkzqueue.WithPolicy(mkzqueue.PolicyCavallar))
	require.NoError(t, err)
	defer qu.Close()
	require.NoError(t, qu.CheckInvariants())

	// The empty column is the cheapest elimination of all.
	j, c, err := qu.Min()
	require.NoError(t, err)
	assert.Equal(t, 0, j)
	assert.Equal(t, int32(0), c)

	// Bump column 0 to weight 4 and refresh: the weight-1 column takes over.
	for k := 0; k < 4; k++ {
		m.IncWeight(0)
	}
	qu.UpdateCost(0)
	require.NoError(t, qu.CheckInvariants())

	j, c, err = qu.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, j)
	assert.Equal(t, int32(1), c)
}

// buildHeavyPlusPair constructs a 7-column matrix where column light has
// weight 2 (two singleton rows) and the remaining six columns each appear
// in six rows of length 6 — pure Markowitz cost (6−2)(6−2)−2 = 14 for all
// of them, strictly positive.
func buildHeavyPlusPair(t *testing.T, light int) *sparsemat.Matrix {
	t.Helper()

	m, err := sparsemat.New(7)
	require.NoError(t, err)

	heavy := make([]int, 0, 6)
	for j := 0; j < 7; j++ {
		if j != light {
			heavy = append(heavy, j)
		}
	}
	for k := 0; k < 6; k++ {
		_, err = m.AddRow(heavy)
		require.NoError(t, err)
	}
	for k := 0; k < 2; k++ {
		_, err = m.AddRow([]int{light})
		require.NoError(t, err)
	}

	return m
}

// TestScenario_PureMkzWeightTwoWins follows the reference scenario: in a
// 7-column queue under pure Markowitz with a single weight-2 column among
// weight-6 columns, that column is the minimum regardless of which column
// index carries the light pair — its −2 clamps to 0, which still beats
// every positive fill-in estimate.
func TestScenario_PureMkzWeightTwoWins(t *testing.T) {
	for light := 0; light < 7; light++ {
		m := buildHeavyPlusPair(t, light)

		qu, err := mkzqueue.New(m, mkzqueue.WithPolicy(mkzqueue.PolicyPureMkz))
		require.NoError(t, err)
		require.NoError(t, qu.CheckInvariants())

		j, c, err := qu.Min()
		require.NoError(t, err)
		assert.Equal(t, light, j, "light column at index %d", light)
		assert.Equal(t, int32(0), c)

		qu.Close()
	}
}

// TestUpdateCost_Idempotent verifies that a second UpdateCost with no
// intervening matrix mutation leaves the heap state bit-identical to the
// first: same arena layout, same reverse index.
func TestUpdateCost_Idempotent(t *testing.T) {
	m := buildSingletonMatrix(t, []int{3, 1, 4, 1, 5, 9, 2, 6})

	qu, err := mkzqueue.New(m, mkzqueue.WithPolicy(mkzqueue.PolicyCavallar))
	require.NoError(t, err)
	defer qu.Close()

	for j := 0; j < m.NumCols(); j++ {
		// Perturb the column so the first update has real work to do.
		m.IncWeight(j)
		qu.UpdateCost(j)
		cols1, costs1, idx1 := qu.Snapshot()

		qu.UpdateCost(j)
		cols2, costs2, idx2 := qu.Snapshot()

		require.Equal(t, cols1, cols2, "arena columns changed on idempotent update of %d", j)
		require.Equal(t, costs1, costs2, "arena costs changed on idempotent update of %d", j)
		require.Equal(t, idx1, idx2, "reverse index changed on idempotent update of %d", j)
		require.NoError(t, qu.CheckInvariants())
	}
}

// TestRemove_DeadExclusion verifies the permanent-death contract: a removed
// column is never surfaced by Min again, IsAlive reports false forever, and
// any further UpdateCost/Remove on it panics.
func TestRemove_DeadExclusion(t *testing.T) {
	m := buildSingletonMatrix(t, []int{0, 1, 2, 3, 5})

	qu, err := mkzqueue.New(m, mkzqueue.WithPolicy(mkzqueue.PolicyCavallar))
	require.NoError(t, err)
	defer qu.Close()

	qu.Remove(1)
	require.NoError(t, qu.CheckInvariants())
	assert.False(t, qu.IsAlive(1))

	// Drain the whole queue: column 1 must never appear.
	for qu.Len() > 0 {
		j, _, minErr := qu.Min()
		require.NoError(t, minErr)
		assert.NotEqual(t, 1, j)
		qu.Remove(j)
		require.NoError(t, qu.CheckInvariants())
	}
	assert.False(t, qu.IsAlive(1))

	assert.Panics(t, func() { qu.UpdateCost(1) })
	assert.Panics(t, func() { qu.Remove(1) })
	assert.Panics(t, func() { qu.UpdateCosts([]int{1}) })
}

// TestMin_Errors verifies the two failure modes of Min: drained queue and
// closed queue.
func TestMin_Errors(t *testing.T) {
	m := buildSingletonMatrix(t, []int{2})

	qu, err := mkzqueue.New(m)
	require.NoError(t, err)

	qu.Remove(0)
	_, _, err = qu.Min()
	assert.ErrorIs(t, err, mkzqueue.ErrEmptyQueue)

	qu.Close()
	_, _, err = qu.Min()
	assert.ErrorIs(t, err, mkzqueue.ErrClosed)

	// Close is idempotent.
	qu.Close()
}

// TestNew_NilMatrix verifies the construction sentinel.
func TestNew_NilMatrix(t *testing.T) {
	_, err := mkzqueue.New(nil)
	assert.ErrorIs(t, err, mkzqueue.ErrNilMatrix)
}

// TestOptions_Validation verifies that every WithX constructor rejects
// nonsensical values by panicking at option-construction time.
func TestOptions_Validation(t *testing.T) {
	assert.Panics(t, func() { mkzqueue.WithPolicy(mkzqueue.Policy(99)) })
	assert.Panics(t, func() { mkzqueue.WithMSTMaxWeight(0) })
	assert.Panics(t, func() { mkzqueue.WithParallelism(0) })
	assert.Panics(t, func() { mkzqueue.WithLogger(nil) })
}

// TestInvariants_RandomOps drives the queue through a long random sequence
// of weight bumps, cost refreshes, batch refreshes and removals, checking
// after every operation that the heap property and the Q/A bijection hold
// and that Min really is the global minimum over alive columns.
func TestInvariants_RandomOps(t *testing.T) {
	const (
		numCols = 200
		ops     = 2000
	)
	r := rand.New(rand.NewSource(42)) // deterministic sequence

	weights := make([]int, numCols)
	for j := range weights {
		weights[j] = r.Intn(10)
	}
	m := buildSingletonMatrix(t, weights)

	qu, err := mkzqueue.New(m, mkzqueue.WithPolicy(mkzqueue.PolicyCavallar))
	require.NoError(t, err)
	defer qu.Close()

	alive := make([]int, numCols)
	for j := range alive {
		alive[j] = j
	}

	for op := 0; op < ops && len(alive) > 0; op++ {
		pick := r.Intn(len(alive))
		j := alive[pick]

		switch r.Intn(3) {
		case 0:
			// Retire the column.
			qu.Remove(j)
			alive[pick] = alive[len(alive)-1]
			alive = alive[:len(alive)-1]
		case 1:
			// Bump its weight and refresh its cost.
			m.IncWeight(j)
			qu.UpdateCost(j)
		default:
			// Batch-refresh a random sample of alive columns.
			batch := make([]int, 0, 8)
			for k := 0; k < 8; k++ {
				batch = append(batch, alive[r.Intn(len(alive))])
			}
			qu.UpdateCosts(batch)
		}

		require.NoError(t, qu.CheckInvariants(), "after op %d", op)

		// Peek-minimum correctness: slot 1 is the global minimum.
		if len(alive) > 0 && op%25 == 0 {
			_, c, minErr := qu.Min()
			require.NoError(t, minErr)
			for _, a := range alive {
				require.LessOrEqual(t, c, qu.ClampedCost(a), "op %d: column %d undercuts the root", op, a)
			}
		}
	}
}

// TestUpdateCosts_ParallelMatchesSequential verifies that the pooled batch
// path produces the exact heap state of the sequential path: the compute
// phase is a pure map and the repair phase is sequential in both cases, so
// the two queues must end bit-identical.
func TestUpdateCosts_ParallelMatchesSequential(t *testing.T) {
	const numCols = 300
	r := rand.New(rand.NewSource(7))

	weights := make([]int, numCols)
	for j := range weights {
		weights[j] = 1 + r.Intn(12)
	}
	m := buildSingletonMatrix(t, weights)

	seq, err := mkzqueue.New(m, mkzqueue.WithPolicy(mkzqueue.PolicyCavallar))
	require.NoError(t, err)
	defer seq.Close()

	par, err := mkzqueue.New(m,
		mkzqueue.WithPolicy(mkzqueue.PolicyCavallar),
		mkzqueue.WithParallelism(4),
	)
	require.NoError(t, err)
	defer par.Close()

	// One shared matrix mutation, then the same large batch (well above the
	// inline threshold) against both queues.
	batch := make([]int, 0, 128)
	for k := 0; k < 128; k++ {
		j := r.Intn(numCols)
		m.IncWeight(j)
		batch = append(batch, j)
	}
	seq.UpdateCosts(batch)
	par.UpdateCosts(batch)

	require.NoError(t, seq.CheckInvariants())
	require.NoError(t, par.CheckInvariants())

	sCols, sCosts, sIdx := seq.Snapshot()
	pCols, pCosts, pIdx := par.Snapshot()
	assert.Equal(t, sCols, pCols)
	assert.Equal(t, sCosts, pCosts)
	assert.Equal(t, sIdx, pIdx)
}
