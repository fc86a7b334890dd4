// Package bb is an exact 0/1 knapsack solver by depth-first branch-and-bound.
// It plays the role of an external optimizer when cross-checking the dp and
// dag solvers; any type with a SolveExact method can take its place.
//
// Search:
//  1. Items are ordered by descending value/weight ratio (stable, so equal
//     ratios keep index order).
//  2. The incumbent is seeded with the greedy ratio fill.
//  3. Each node branches "take" first, then "skip".
//  4. The Dantzig bound (whole items in ratio order, then the fractional part
//     of the first item that does not fit, rounded down) is admissible; a node
//     is pruned when the bound does not beat the incumbent.
//  5. Budgets are soft: the deadline is checked every 4096 nodes, the node
//     limit on every node.
//
// Ties between optimal selections are resolved by search order, so the
// objective always matches dp while the selection may differ.
//
// Errors:
//   - core validation errors for invalid input.
//   - ErrTimeLimit / ErrNodeLimit when a budget runs out before the search ends.
//
// Complexity: exponential in N in the worst case; O(N) memory.
package bb
