// Package solver is the public entry point of knapdag. It exposes the two
// solving strategies for the 0/1 knapsack problem side by side:
//
//   - SolveDynamic: the classic (N+1)×(C+1) dynamic program (package dp).
//   - SolveShortestPath: a shortest path over the layered DAG built by package
//     layered and solved by package dag; useFrontierBuilder selects the
//     reachable-only construction.
//
// Solve dispatches on Options.Algo and also reaches the branch-and-bound
// oracle (package bb). Any exact optimizer satisfying Oracle can be compared
// against the built-in solvers; see package crosscheck.
//
// Every returned Result satisfies core.CheckResult: the selection fits the
// capacity, Residual equals capacity minus the selected weight and the
// selected values sum to Objective. DP and both graph strategies agree on the
// objective and, with the default tie-break, on the selection index for index.
//
// Errors are those of core.Validate plus the per-algorithm sentinels; an
// error wrapping core.ErrInvariantViolation is an internal defect and aborts
// the solve.
package solver
