package dag

import (
	"github.com/katalvlaran/knapdag/layered"
)

// Solve finds the shortest source→sink path of g and decodes it into an item
// selection. See the package doc for the pipeline and the tie-break rules.
//
// Complexity: O(V+E) time, O(V) memory over the materialized nodes of g.
func Solve(g *layered.Graph, opts ...Option) (*Result, error) {
	// 1. Validate and configure.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Topological order from the source.
	order, err := topologicalOrder(o.ctx, g, g.Source())
	if err != nil {
		return nil, err
	}

	// 3. Single relaxation pass.
	dist, err := shortestDistances(o.ctx, g, g.Source(), order)
	if err != nil {
		return nil, err
	}
	sink := g.Sink()
	if dist[g.Index(sink)] == Inf {
		return nil, ErrNoPath
	}

	// 4. Path reconstruction.
	var path []layered.NodeID
	switch o.tieBreak {
	case FirstPredecessor:
		path, err = firstPredecessorPath(g, dist)
	default:
		path, err = preferSkipPath(g, dist)
	}
	if err != nil {
		return nil, err
	}

	// 5. Decode.
	return &Result{
		Path:      path,
		Selection: decode(g, dist, path),
		Objective: int(-dist[g.Index(sink)]),
		graph:     g,
		dist:      dist,
	}, nil
}
