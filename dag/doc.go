// Package dag solves a knapsack instance as a shortest path over the layered
// graph built by package layered.
//
// Arc weights are the negated item values, so the shortest source→sink path
// is the most valuable feasible selection. The graph is acyclic, hence one
// relaxation pass in topological order suffices and negative weights are
// harmless.
//
// Pipeline (Solve):
//
//  1. TopologicalOrder: iterative DFS with an explicit stack from the source;
//     reverse finish order. Only nodes reachable from the source are listed.
//  2. ShortestDistances: dist[source]=0, every other node Inf, then
//     dist[v] = min(dist[v], dist[u]+w(u,v)) for u in order. Inf never takes
//     part in arithmetic.
//  3. Path reconstruction from the sink, see TieBreak.
//  4. Decode: wherever the distance strictly decreases between consecutive
//     path nodes, the item of the later node's layer is taken.
//
// Objective is −dist[sink].
//
// Tie-breaking:
//
//   - PreferSkip (default) walks back over the whole set of tied optimal nodes
//     of each layer and chooses "skip" whenever any of them admits a tied skip
//     arc. The chosen decisions are replayed forward to obtain the path. The
//     selection equals the one produced by package dp index for index.
//   - FirstPredecessor follows, from the sink, the first incoming arc (in
//     source-id order) that satisfies the distance equation. The objective
//     always matches dp; the selection may differ when optima tie.
//
// Errors:
//
//   - ErrNilGraph        if the graph is nil.
//   - ErrUnknownNode     if the start node is not in the graph.
//   - ErrCycleDetected   if a back arc is met (never for layered graphs).
//   - ErrNoPath          if the sink is unreachable; wraps core.ErrInvariantViolation.
//   - context errors     if the context passed through WithContext is done.
//
// Complexity: O(V + E) time, O(V) memory over the graph's id space.
package dag
