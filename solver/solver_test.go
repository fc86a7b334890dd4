package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapdag/bb"
	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/solver"
)

var _ solver.Oracle = bb.New()

// solveAll runs DP and both graph strategies on one instance.
func solveAll(t *testing.T, items core.Items, capacity int) (dp, dense, frontier core.Result) {
	t.Helper()
	var err error
	dp, err = solver.SolveDynamic(items, capacity)
	require.NoError(t, err)
	dense, err = solver.SolveShortestPath(items, capacity, false)
	require.NoError(t, err)
	frontier, err = solver.SolveShortestPath(items, capacity, true)
	require.NoError(t, err)

	return dp, dense, frontier
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name      string
		items     core.Items
		capacity  int
		objective int
		selection core.Selection
		residual  int
	}{
		{
			name:      "four items",
			items:     core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}, {Value: 20, Weight: 3}, {Value: 10, Weight: 1}},
			capacity:  6,
			objective: 55,
			selection: core.Selection{true, true, false, false},
			residual:  0,
		},
		{
			name:      "single heavy item",
			items:     core.Items{{Value: 5, Weight: 10}},
			capacity:  6,
			objective: 0,
			selection: core.Selection{false},
			residual:  6,
		},
		{
			name:      "zero capacity",
			items:     core.Items{{Value: 7, Weight: 1}, {Value: 9, Weight: 3}},
			capacity:  0,
			objective: 0,
			selection: core.Selection{false, false},
			residual:  0,
		},
		{
			name:      "everything fits",
			items:     core.Items{{Value: 1, Weight: 1}, {Value: 2, Weight: 2}, {Value: 3, Weight: 3}},
			capacity:  10,
			objective: 6,
			selection: core.Selection{true, true, true},
			residual:  4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dp, dense, frontier := solveAll(t, tc.items, tc.capacity)
			for _, res := range []core.Result{dp, dense, frontier} {
				assert.Equal(t, tc.objective, res.Objective)
				assert.Equal(t, tc.selection, res.Selection)
				assert.Equal(t, tc.residual, res.Residual)
			}
		})
	}
}

func TestProperties_RandomInstances(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 100; round++ {
		n := 1 + rng.Intn(25)
		items := make(core.Items, n)
		for i := range items {
			items[i] = core.Item{Value: rng.Intn(20), Weight: 1 + rng.Intn(10)}
		}
		capacity := rng.Intn(40)

		dp, dense, frontier := solveAll(t, items, capacity)

		// Agreement on objective and selection.
		require.Equal(t, dp.Objective, dense.Objective, "round %d", round)
		require.Equal(t, dp.Objective, frontier.Objective, "round %d", round)
		require.True(t, solver.SameSelection(dp.Selection, dense.Selection), "round %d", round)
		require.True(t, solver.SameSelection(dense.Selection, frontier.Selection), "round %d", round)

		for _, res := range []core.Result{dp, dense, frontier} {
			// Feasibility, residual and value sum.
			require.LessOrEqual(t, items.TotalWeight(res.Selection), capacity)
			require.Equal(t, capacity-items.TotalWeight(res.Selection), res.Residual)
			require.Equal(t, res.Objective, items.TotalValue(res.Selection))
		}

		// Capacity monotonicity.
		more, err := solver.SolveDynamic(items, capacity+1)
		require.NoError(t, err)
		require.LessOrEqual(t, dp.Objective, more.Objective)

		// Idempotence.
		again, err := solver.SolveShortestPath(items, capacity, true)
		require.NoError(t, err)
		require.Equal(t, frontier.Objective, again.Objective)
		require.Equal(t, frontier.Selection, again.Selection)
	}
}

func TestSolve_Dispatch(t *testing.T) {
	items := core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}, {Value: 20, Weight: 3}, {Value: 10, Weight: 1}}

	for _, a := range solver.Algos() {
		opts := solver.DefaultOptions()
		opts.Algo = a
		res, err := solver.Solve(items, 6, opts)
		require.NoError(t, err, a.String())
		assert.Equal(t, 55, res.Objective, a.String())
		assert.NoError(t, core.CheckResult(items, 6, res))
	}

	opts := solver.DefaultOptions()
	opts.Algo = solver.ShortestPathDense
	opts.TieBreak = dag.FirstPredecessor
	res, err := solver.Solve(items, 6, opts)
	require.NoError(t, err)
	assert.Equal(t, 55, res.Objective)
}

func TestSolve_Errors(t *testing.T) {
	items := core.Items{{Value: 1, Weight: 1}}

	_, err := solver.Solve(items, 1, solver.Options{Algo: solver.Algo(99)})
	assert.ErrorIs(t, err, solver.ErrUnknownAlgo)

	_, err = solver.Solve(items, 1, solver.Options{TieBreak: dag.TieBreak(5)})
	assert.ErrorIs(t, err, solver.ErrBadOptions)

	_, err = solver.Solve(items, 1, solver.Options{Algo: solver.BranchAndBound, TimeLimit: -1})
	assert.ErrorIs(t, err, solver.ErrBadOptions)

	for _, a := range solver.Algos() {
		_, err = solver.Solve(items, -1, solver.Options{Algo: a})
		assert.ErrorIs(t, err, core.ErrNegativeCapacity, a.String())
		_, err = solver.Solve(nil, 4, solver.Options{Algo: a})
		assert.ErrorIs(t, err, core.ErrNoItems, a.String())
		_, err = solver.Solve(core.Items{{Value: -1, Weight: 2}}, 4, solver.Options{Algo: a})
		assert.ErrorIs(t, err, core.ErrBadItem, a.String())
	}
}

func TestParseAlgo(t *testing.T) {
	for _, a := range solver.Algos() {
		got, err := solver.ParseAlgo(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := solver.ParseAlgo("  SP-Frontier ")
	require.NoError(t, err)
	assert.Equal(t, solver.ShortestPathFrontier, got)

	_, err = solver.ParseAlgo("milp")
	assert.ErrorIs(t, err, solver.ErrUnknownAlgo)
	assert.Equal(t, "Algo(12)", solver.Algo(12).String())
}
