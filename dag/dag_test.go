package dag_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/dp"
	"github.com/katalvlaran/knapdag/layered"
)

var fourItems = core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}, {Value: 20, Weight: 3}, {Value: 10, Weight: 1}}

// mustBuild builds g or fails the test.
func mustBuild(t *testing.T, items core.Items, capacity int, s layered.Strategy) *layered.Graph {
	t.Helper()
	g, err := layered.Build(items, capacity, s)
	require.NoError(t, err)

	return g
}

func TestSolve_FourItems(t *testing.T) {
	for _, s := range []layered.Strategy{layered.Dense, layered.Frontier} {
		g := mustBuild(t, fourItems, 6, s)

		res, err := dag.Solve(g)
		require.NoError(t, err)
		assert.Equal(t, 55, res.Objective, s.String())
		assert.Equal(t, core.Selection{true, true, false, false}, res.Selection, s.String())
		require.Len(t, res.Path, len(fourItems)+2)
		assert.Equal(t, g.Source(), res.Path[0])
		assert.Equal(t, g.Sink(), res.Path[len(res.Path)-1])
		assert.Equal(t, 0, core.Residual(fourItems, 6, res.Selection))

		d, ok := res.Distance(g.Sink())
		require.True(t, ok)
		assert.Equal(t, int64(-55), d)
	}
}

func TestSolve_HeavyItem(t *testing.T) {
	items := core.Items{{Value: 5, Weight: 10}}
	for _, s := range []layered.Strategy{layered.Dense, layered.Frontier} {
		res, err := dag.Solve(mustBuild(t, items, 6, s))
		require.NoError(t, err)
		assert.Equal(t, 0, res.Objective)
		assert.Equal(t, core.Selection{false}, res.Selection)
	}
}

func TestSolve_FrontierSparseIDSpace(t *testing.T) {
	items := make(core.Items, 1000)
	for i := range items {
		items[i] = core.Item{Value: 3, Weight: 10_000_000}
	}
	g := mustBuild(t, items, 1_000_000, layered.Frontier)

	res, err := dag.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
	assert.Empty(t, res.Selection.Indices())
	assert.Len(t, res.Path, 1002)
	d, ok := res.Distance(g.ID(500, 0))
	assert.True(t, ok)
	assert.Equal(t, int64(0), d)
}

func TestSolve_ZeroCapacity(t *testing.T) {
	items := core.Items{{Value: 3, Weight: 1}, {Value: 9, Weight: 2}}
	res, err := dag.Solve(mustBuild(t, items, 0, layered.Dense))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Objective)
	assert.Equal(t, 0, res.Selection.Count())
}

func TestSolve_TieBreak(t *testing.T) {
	items := core.Items{{Value: 5, Weight: 2}, {Value: 5, Weight: 1}}
	g := mustBuild(t, items, 2, layered.Dense)

	skip, err := dag.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, core.Selection{true, false}, skip.Selection, "same choice as the dp backtrack")

	first, err := dag.Solve(g, dag.WithTieBreak(dag.FirstPredecessor))
	require.NoError(t, err)
	assert.Equal(t, skip.Objective, first.Objective)
	assert.Equal(t, core.Selection{false, true}, first.Selection, "lowest-id tight predecessor of the sink is (2,1)")
}

func TestSolve_ZeroValueNeverTaken(t *testing.T) {
	items := core.Items{{Value: 0, Weight: 1}, {Value: 7, Weight: 2}, {Value: 0, Weight: 1}}
	res, err := dag.Solve(mustBuild(t, items, 4, layered.Frontier))
	require.NoError(t, err)
	assert.Equal(t, core.Selection{false, true, false}, res.Selection)
	assert.Equal(t, 7, res.Objective)
}

func TestSolve_MatchesDP(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := 1 + rng.Intn(12)
		items := make(core.Items, n)
		for i := range items {
			// narrow ranges make ties frequent
			items[i] = core.Item{Value: rng.Intn(6), Weight: 1 + rng.Intn(5)}
		}
		capacity := rng.Intn(15)

		want, err := dp.Solve(items, capacity)
		require.NoError(t, err)

		for _, s := range []layered.Strategy{layered.Dense, layered.Frontier} {
			g := mustBuild(t, items, capacity, s)

			got, err := dag.Solve(g)
			require.NoError(t, err)
			require.Equal(t, want.Objective, got.Objective, "round %d %v", round, s)
			require.True(t, core.SameSelection(want.Selection, got.Selection), "round %d %v: %v vs %v", round, s, want.Selection, got.Selection)

			first, err := dag.Solve(g, dag.WithTieBreak(dag.FirstPredecessor))
			require.NoError(t, err)
			require.Equal(t, want.Objective, first.Objective)
			require.Equal(t, first.Objective, items.TotalValue(first.Selection))
			require.LessOrEqual(t, items.TotalWeight(first.Selection), capacity)
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	for _, s := range []layered.Strategy{layered.Dense, layered.Frontier} {
		g := mustBuild(t, fourItems, 6, s)

		order, err := dag.TopologicalOrder(g, g.Source())
		require.NoError(t, err)
		assert.Len(t, order, len(g.Reachable()))
		assert.Equal(t, g.Source(), order[0])
		assert.Equal(t, g.Sink(), order[len(order)-1])

		pos := make(map[layered.NodeID]int, len(order))
		for i, id := range order {
			pos[id] = i
		}
		for _, a := range g.Arcs() {
			pu, okU := pos[a.From]
			if !okU {
				continue
			}
			pv, okV := pos[a.To]
			require.True(t, okV, "successor of a reachable node is reachable")
			assert.Less(t, pu, pv)
		}
	}
}

func TestShortestDistances(t *testing.T) {
	g := mustBuild(t, fourItems, 6, layered.Dense)
	order, err := dag.TopologicalOrder(g, g.Source())
	require.NoError(t, err)

	dist, err := dag.ShortestDistances(g, g.Source(), order)
	require.NoError(t, err)
	assert.Equal(t, int64(0), dist[g.Index(g.Source())])
	assert.Equal(t, int64(-40), dist[g.Index(g.ID(1, 4))])
	assert.Equal(t, dag.Inf, dist[g.Index(g.ID(1, 1))], "unreachable in layer 1")
	assert.Equal(t, int64(-55), dist[g.Index(g.Sink())])

	res, err := dag.Solve(g)
	require.NoError(t, err)
	_, ok := res.Distance(g.ID(1, 1))
	assert.False(t, ok)
	_, ok = res.Distance(layered.NodeID(-3))
	assert.False(t, ok)
}

func TestErrors(t *testing.T) {
	_, err := dag.Solve(nil)
	assert.ErrorIs(t, err, dag.ErrNilGraph)

	_, err = dag.TopologicalOrder(nil, 0)
	assert.ErrorIs(t, err, dag.ErrNilGraph)

	_, err = dag.ShortestDistances(nil, 0, nil)
	assert.ErrorIs(t, err, dag.ErrNilGraph)

	g := mustBuild(t, fourItems, 6, layered.Frontier)
	_, err = dag.TopologicalOrder(g, g.ID(1, 1))
	assert.ErrorIs(t, err, dag.ErrUnknownNode)

	assert.ErrorIs(t, dag.ErrNoPath, core.ErrInvariantViolation)
	assert.Panics(t, func() { dag.WithTieBreak(dag.TieBreak(9)) })
}

func TestSolve_Cancelled(t *testing.T) {
	items := make(core.Items, 50)
	for i := range items {
		items[i] = core.Item{Value: i + 1, Weight: 1 + i%7}
	}
	g := mustBuild(t, items, 200, layered.Dense)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dag.Solve(g, dag.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTieBreakString(t *testing.T) {
	assert.Equal(t, "prefer-skip", dag.PreferSkip.String())
	assert.Equal(t, "first-predecessor", dag.FirstPredecessor.String())

	for _, tb := range []dag.TieBreak{dag.PreferSkip, dag.FirstPredecessor} {
		got, err := dag.ParseTieBreak(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, got)
	}
	_, err := dag.ParseTieBreak("random")
	assert.ErrorIs(t, err, dag.ErrUnknownTieBreak)
}
