// Package knapdag solves the 0/1 knapsack problem two ways and checks that
// they agree.
//
// 🎒 The problem
//
//	N items with value vᵢ ≥ 0 and weight wᵢ > 0, capacity C ≥ 0:
//	pick a subset of total weight ≤ C with the largest total value.
//
// 🔀 Two formulations
//
//   - Dynamic programming (dp): the classic (N+1)×(C+1) table, backtracked
//     with "ties favour not taken".
//   - Shortest path on a layered DAG (layered + dag): one layer per item, one
//     node per cumulative weight, arc weights −value; the shortest
//     source→sink path is the optimum. A dense builder materializes every
//     node, a frontier builder only the reachable ones.
//
// ✅ Guarantees
//
//   - Both formulations return the same objective and, with the default
//     tie-break, the same selection index for index.
//   - Every result fits the capacity, reports the exact residual and sums to
//     its objective (core.CheckResult).
//   - An exact branch-and-bound oracle (bb) and known optima from YAML
//     instance files (dataset) can arbitrate (crosscheck).
//
// Package layout:
//
//	core/        Item, Selection, Result, validation and post-conditions
//	dp/          dynamic-programming solver
//	layered/     layered DAG: deterministic node ids, dense and frontier builders
//	dag/         topological order, relaxation, path reconstruction, decoding
//	solver/      public facade and algorithm dispatcher
//	bb/          branch-and-bound oracle
//	crosscheck/  concurrent agreement checks
//	generate/    reproducible random instances
//	dataset/     YAML instance files
//	render/      DOT export of the layered graph
//	cmd/knapdag  command line: solve, bench, dot
//
// Quick start:
//
//	items := core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}}
//	res, err := solver.SolveShortestPath(items, 6, true)
//	// res.Objective == 55, res.Selection == [true true]
package knapdag
