// Package crosscheck runs several knapsack solvers on the same instance and
// reports whether they agree.
//
// The built-in contestants are the dynamic program ("dp") and the layered
// shortest path with both builders ("sp-dense", "sp-frontier"). An exact
// Oracle ("oracle") and a known optimum (from a dataset file) can be added.
// Solvers run concurrently on a bounded pool; each writes only its own
// result slot and Items is never mutated.
//
// Disagreement policy:
//   - any objective mismatch is a defect;
//   - a selection mismatch among the built-in solvers is a defect, since they
//     share the "ties favour not taken" rule;
//   - a selection mismatch against the oracle or the known optimum is only
//     reported: optimal selections may tie.
//
// Report.Err turns defects into ErrDisagreement.
package crosscheck
