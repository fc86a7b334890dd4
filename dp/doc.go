// Package dp solves the 0/1 knapsack problem with the classic tabular
// dynamic program over (item prefix × capacity budget).
//
// Algorithm Outline (full table):
//  1. Let N = len(items), C = capacity. Allocate the (N+1)×(C+1) table T.
//  2. Initialize T[0][*] = 0 and T[*][0] = 0.
//  3. For i = 1..N, j = 0..C:
//     if w_i ≤ j: T[i][j] = max(T[i-1][j], v_i + T[i-1][j-w_i])
//     else:       T[i][j] = T[i-1][j]
//  4. Objective = T[N][C].
//  5. Backtrack i = N..1 (stop early once j reaches 0): item i is taken iff
//     T[i][j] != T[i-1][j]; then j -= w_i. Ties favour "not taken".
//     The residual capacity is j at termination.
//
// Invariants:
//
//   - T[i][j] ≥ T[i-1][j] (monotone in the item prefix).
//   - residual == C − Σ weights of the taken items; checked after every solve.
//
// Memory Modes:
//
//   - Solve / BuildTable keep the full table: O(N·C) memory, selection recovery.
//   - Objective keeps two rows only: O(C) memory, no selection.
//
// Complexity:
//
//	Time   = O(N·C)
//	Memory = O(N·C) (full table) or O(C) (Objective)
//
// Errors:
//   - core.ErrNegativeCapacity, core.ErrNoItems, core.ErrBadItem for invalid input.
//   - core.ErrInvariantViolation if the backtracked selection breaks a post-condition.
//   - ErrTableTooLarge if (N+1)·(C+1) overflows int.
package dp
