package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/knapdag/bb"
	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/dp"
	"github.com/katalvlaran/knapdag/layered"
)

// SolveDynamic solves the instance with the dynamic program.
//
// Complexity: O(N·C) time and memory.
func SolveDynamic(items core.Items, capacity int) (core.Result, error) {
	return dp.Solve(items, capacity)
}

// SolveShortestPath builds the layered DAG (dense, or reachable-only when
// useFrontierBuilder is set), solves the shortest path and decodes it.
// Elapsed includes graph construction.
//
// Complexity: O(N·C) time and memory for the dense builder; O(R) for the
// frontier builder with R reachable nodes.
func SolveShortestPath(items core.Items, capacity int, useFrontierBuilder bool) (core.Result, error) {
	strategy := layered.Dense
	if useFrontierBuilder {
		strategy = layered.Frontier
	}

	return solveShortestPath(context.Background(), items, capacity, strategy, dag.PreferSkip)
}

// SameSelection reports whether two selections mark the same items.
func SameSelection(a, b core.Selection) bool {
	return core.SameSelection(a, b)
}

// Solve validates the instance and routes it to opts.Algo.
func Solve(items core.Items, capacity int, opts Options) (core.Result, error) {
	// 1. Reject options the constructors below would panic on.
	if opts.TieBreak != dag.PreferSkip && opts.TieBreak != dag.FirstPredecessor {
		return core.Result{}, fmt.Errorf("%w: tie-break %v", ErrBadOptions, opts.TieBreak)
	}
	if opts.TimeLimit < 0 {
		return core.Result{}, fmt.Errorf("%w: time limit %v", ErrBadOptions, opts.TimeLimit)
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	// 2. Route.

	switch opts.Algo {
	case Dynamic:
		return dp.Solve(items, capacity)
	case ShortestPathDense:
		return solveShortestPath(ctx, items, capacity, layered.Dense, opts.TieBreak)
	case ShortestPathFrontier:
		return solveShortestPath(ctx, items, capacity, layered.Frontier, opts.TieBreak)
	case BranchAndBound:
		res, _, err := bb.Solve(items, capacity, bb.WithTimeLimit(opts.TimeLimit))
		return res, err
	default:
		return core.Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgo, opts.Algo)
	}
}

func solveShortestPath(ctx context.Context, items core.Items, capacity int, strategy layered.Strategy, tb dag.TieBreak) (core.Result, error) {
	start := time.Now()

	// 1. Build; validation happens here.
	g, err := layered.Build(items, capacity, strategy)
	if err != nil {
		return core.Result{}, err
	}

	// 2. Shortest path and decode.
	out, err := dag.Solve(g, dag.WithTieBreak(tb), dag.WithContext(ctx))
	if err != nil {
		return core.Result{}, err
	}
	res := core.Result{
		Objective: out.Objective,
		Selection: out.Selection,
		Residual:  core.Residual(items, capacity, out.Selection),
	}
	res.Elapsed = time.Since(start)

	// 3. Post-conditions.
	if err = core.CheckResult(items, capacity, res); err != nil {
		return core.Result{}, fmt.Errorf("solver: %s: %w", strategy, err)
	}

	return res, nil
}
