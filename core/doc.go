// Package core defines the shared vocabulary of knapdag: the immutable Item
// record, the ordered Items set, the per-item Selection bit-vector and the
// Result tuple every solver returns.
//
// A 0/1 knapsack instance is an ordered sequence of N items, each with a
// non-negative integer value and a positive integer weight, plus a capacity
// C ≥ 0. A solution picks a subset whose total weight is at most C and whose
// total value is maximal.
//
// Ownership:
//
//   - Items belong to the caller. Solvers borrow them read-only and never
//     mutate, reorder or retain them after returning.
//   - Item order is significant: it fixes DP prefix indexing and graph layer
//     indexing, so results of different solvers are comparable index-by-index.
//
// Error taxonomy:
//
//   - Invalid input (ErrNegativeCapacity, ErrNoItems, ErrBadItem) is rejected
//     by Validate before any table or graph is allocated.
//   - ErrInvariantViolation marks an internal defect (a selection heavier than
//     the capacity, a value sum that does not match the objective, a graph
//     without a source→sink path). It aborts the solve; callers must never
//     treat such a result as an answer.
//   - Disagreement between solvers is not an error raised here; SameSelection
//     reports it and the caller decides how to react.
//
// Complexity:
//
//   - Validate, CheckResult, SameSelection: O(N) time, O(1) extra space.
package core
