package bb_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapdag/bb"
	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dp"
)

var fourItems = core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}, {Value: 20, Weight: 3}, {Value: 10, Weight: 1}}

func TestSolve_FourItems(t *testing.T) {
	res, stats, err := bb.Solve(fourItems, 6)
	require.NoError(t, err)
	assert.Equal(t, 55, res.Objective)
	assert.Equal(t, core.Selection{true, true, false, false}, res.Selection, "selection mapped back to caller order")
	assert.Equal(t, 0, res.Residual)
	assert.Positive(t, stats.Nodes)
}

func TestSolve_Boundaries(t *testing.T) {
	res, _, err := bb.Solve(core.Items{{Value: 5, Weight: 10}}, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
	assert.Equal(t, core.Selection{false}, res.Selection)
	assert.Equal(t, 6, res.Residual)

	res, _, err = bb.Solve(fourItems, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
	assert.Equal(t, 0, res.Selection.Count())
}

func TestSolve_MatchesDPObjective(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 150; round++ {
		n := 1 + rng.Intn(20)
		items := make(core.Items, n)
		for i := range items {
			items[i] = core.Item{Value: rng.Intn(40), Weight: 1 + rng.Intn(15)}
		}
		capacity := rng.Intn(60)

		want, err := dp.Solve(items, capacity)
		require.NoError(t, err)
		got, err := bb.New().SolveExact(items, capacity)
		require.NoError(t, err)
		require.Equal(t, want.Objective, got.Objective, "round %d", round)
	}
}

func TestSolve_NodeLimit(t *testing.T) {
	_, stats, err := bb.Solve(fourItems, 6, bb.WithNodeLimit(1))
	assert.ErrorIs(t, err, bb.ErrNodeLimit)
	assert.Equal(t, 2, stats.Nodes)

	_, _, err = bb.Solve(fourItems, 6, bb.WithNodeLimit(1000), bb.WithTimeLimit(time.Minute))
	assert.NoError(t, err)
}

func TestSolve_InvalidInput(t *testing.T) {
	_, _, err := bb.Solve(nil, 3)
	assert.ErrorIs(t, err, core.ErrNoItems)

	_, _, err = bb.Solve(fourItems, -2)
	assert.ErrorIs(t, err, core.ErrNegativeCapacity)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { bb.WithTimeLimit(-time.Second) })
	assert.Panics(t, func() { bb.WithNodeLimit(-1) })
}
