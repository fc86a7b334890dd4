package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dp"
)

// scenario is the four-item instance with optimum {0,1} = 55 at capacity 6.
func scenario() core.Items {
	return core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}, {Value: 20, Weight: 3}, {Value: 10, Weight: 1}}
}

// TestSolve_Scenario checks objective, selection and residual on the reference instance.
func TestSolve_Scenario(t *testing.T) {
	res, err := dp.Solve(scenario(), 6)
	require.NoError(t, err)
	assert.Equal(t, 55, res.Objective)
	assert.Equal(t, core.Selection{true, true, false, false}, res.Selection)
	assert.Equal(t, 0, res.Residual)
	assert.GreaterOrEqual(t, int64(res.Elapsed), int64(0))
}

// TestSolve_SingleHeavyItem covers an item that never fits.
func TestSolve_SingleHeavyItem(t *testing.T) {
	res, err := dp.Solve(core.Items{{Value: 5, Weight: 10}}, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
	assert.Equal(t, core.Selection{false}, res.Selection)
	assert.Equal(t, 6, res.Residual)
}

// TestSolve_ZeroCapacity returns the empty selection for any item set.
func TestSolve_ZeroCapacity(t *testing.T) {
	res, err := dp.Solve(scenario(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
	assert.Equal(t, core.NewSelection(4), res.Selection)
	assert.Equal(t, 0, res.Residual)
}

// TestSolve_TiesFavourNotTaken pins the backtracking tie-break: the later
// item is skipped when an equal-value alternative exists without it.
func TestSolve_TiesFavourNotTaken(t *testing.T) {
	items := core.Items{{Value: 5, Weight: 2}, {Value: 5, Weight: 1}}
	res, err := dp.Solve(items, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Objective)
	assert.Equal(t, core.Selection{true, false}, res.Selection)
	assert.Equal(t, 0, res.Residual)
}

// TestSolve_InvalidInput rejects bad instances before building the table.
func TestSolve_InvalidInput(t *testing.T) {
	_, err := dp.Solve(scenario(), -1)
	assert.ErrorIs(t, err, core.ErrNegativeCapacity)

	_, err = dp.Solve(nil, 4)
	assert.ErrorIs(t, err, core.ErrNoItems)

	_, err = dp.Solve(core.Items{{Value: 1, Weight: 0}}, 4)
	assert.ErrorIs(t, err, core.ErrBadItem)
}

// TestBuildTable_Invariants checks boundary rows/columns and prefix monotonicity.
func TestBuildTable_Invariants(t *testing.T) {
	items := scenario()
	tab, err := dp.BuildTable(items, 6)
	require.NoError(t, err)
	require.Equal(t, 5, tab.Rows())
	require.Equal(t, 7, tab.Cols())

	for j := 0; j < tab.Cols(); j++ {
		assert.Zero(t, tab.At(0, j), "T[0][%d]", j)
	}
	for i := 0; i < tab.Rows(); i++ {
		assert.Zero(t, tab.At(i, 0), "T[%d][0]", i)
	}
	for i := 1; i < tab.Rows(); i++ {
		for j := 0; j < tab.Cols(); j++ {
			assert.GreaterOrEqual(t, tab.At(i, j), tab.At(i-1, j), "T[%d][%d]", i, j)
		}
	}
	// Last row, hand-computed.
	want := []int{0, 10, 15, 25, 40, 50, 55}
	for j, v := range want {
		assert.Equal(t, v, tab.At(4, j), "T[4][%d]", j)
	}
	assert.Equal(t, 55, tab.Objective())
}

// TestTable_AtOutOfRange panics like an out-of-range slice access.
func TestTable_AtOutOfRange(t *testing.T) {
	tab, err := dp.BuildTable(scenario(), 2)
	require.NoError(t, err)
	assert.Panics(t, func() { tab.At(5, 0) })
	assert.Panics(t, func() { tab.At(0, 3) })
}

// TestObjective_MatchesTable compares the rolling variant with the full table.
func TestObjective_MatchesTable(t *testing.T) {
	items := core.Items{
		{Value: 7, Weight: 3}, {Value: 2, Weight: 1}, {Value: 9, Weight: 5},
		{Value: 4, Weight: 2}, {Value: 6, Weight: 4}, {Value: 1, Weight: 1},
	}
	for c := 0; c <= 16; c++ {
		tab, err := dp.BuildTable(items, c)
		require.NoError(t, err)
		got, err := dp.Objective(items, c)
		require.NoError(t, err)
		assert.Equal(t, tab.Objective(), got, "capacity %d", c)
	}

	_, err := dp.Objective(items, -3)
	assert.ErrorIs(t, err, core.ErrNegativeCapacity)
}

// TestSolve_Idempotent repeats a solve and expects identical results.
func TestSolve_Idempotent(t *testing.T) {
	items := scenario()
	first, err := dp.Solve(items, 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dp.Solve(items, 5)
		require.NoError(t, err)
		assert.Equal(t, first.Objective, again.Objective)
		assert.Equal(t, first.Selection, again.Selection)
		assert.Equal(t, first.Residual, again.Residual)
	}
	assert.Equal(t, scenario(), items, "input must not be mutated")
}
