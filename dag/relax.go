// Package dag - single-pass relaxation over a topological order.
//
// Distances are int64 and Inf marks unreached nodes. An Inf tail is skipped,
// so Inf never takes part in an addition.
package dag

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapdag/layered"
)

// ShortestDistances relaxes every outgoing arc of the nodes in order, once.
// order must be a topological order starting at source, as returned by
// TopologicalOrder. The result has one entry per materialized node, indexed
// by g.Index(id); unreached nodes hold Inf.
//
// Complexity: O(V+E) time, O(V) memory.
func ShortestDistances(g *layered.Graph, source layered.NodeID, order []layered.NodeID) ([]int64, error) {
	return shortestDistances(context.Background(), g, source, order)
}

func shortestDistances(ctx context.Context, g *layered.Graph, source layered.NodeID, order []layered.NodeID) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	si := g.Index(source)
	if si < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, source)
	}
	dist := make([]int64, g.Order())
	for i := range dist {
		dist[i] = Inf
	}
	dist[si] = 0

	for i, u := range order {
		if i%checkEvery == checkEvery-1 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		du := dist[g.Index(u)]
		if du == Inf {
			continue
		}
		for _, a := range g.Out(u) {
			if v := g.Index(a.To); du+a.Weight < dist[v] {
				dist[v] = du + a.Weight
			}
		}
	}

	return dist, nil
}

// tight reports whether a lies on some shortest path: its tail is reached and
// dist[tail]+w == dist[head].
func tight(g *layered.Graph, dist []int64, a layered.Arc) bool {
	du, dv := dist[g.Index(a.From)], dist[g.Index(a.To)]

	return du != Inf && dv != Inf && du+a.Weight == dv
}
