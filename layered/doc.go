// Package layered encodes a 0/1 knapsack instance as a layered directed
// acyclic graph whose longest source→sink path is the optimal selection.
//
// Layout for N items and capacity C:
//
//	layer 0       : the source (id 0)
//	layer k=1..N  : one node per cumulative weight w ∈ [0, C] after deciding items 1..k
//	layer N+1     : the sink (id N·(C+1)+1)
//
//	source ──skip(0)────────▶ (1, 0)
//	source ──take(−v₁)──────▶ (1, w₁)          only if w₁ ≤ C
//	(k, w) ──skip(0)────────▶ (k+1, w)
//	(k, w) ──take(−v_{k+1})─▶ (k+1, w+w_{k+1}) only if w+w_{k+1} ≤ C
//	(N, w) ──collapse(0)────▶ sink
//
// Node identity is a pure function of (layer, cumulative weight):
//
//	id(k, w) = (k−1)·(C+1) + w + 1
//
// so both construction strategies number nodes identically and downstream
// path decoding can recover the item index from a node's layer alone.
//
// Strategies:
//
//   - BuildDense materializes all N·(C+1)+2 nodes up front, reachable or not.
//   - BuildFrontier expands a FIFO work-queue from the source and creates only
//     the (at most two) reachable children of every node; last-layer nodes are
//     wired straight to the sink.
//
// Both graphs agree on every reachable node and arc; Reachable and Arcs make
// that property checkable.
//
// Storage is a plain arena: nodes live in a slice, and every slot keeps its
// outgoing and incoming arcs. Dense graphs map ids to slots through a table
// over the whole id space; frontier graphs through a map holding created
// nodes only. Index exposes the slot so callers can keep per-node scratch
// arrays of length Order(). Incoming arcs are ordered by source id, outgoing arcs by
// target id. A Graph is never mutated after construction and carries no
// presentation metadata; see package render for that.
//
// Complexity:
//
//   - BuildDense:    O(N·C) time and memory.
//   - BuildFrontier: O(R) time and memory for R reachable nodes.
package layered
