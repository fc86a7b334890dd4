// Package dag - path reconstruction and selection decoding.
//
// Both tie-breaks walk back from the sink along tight arcs only, so every
// path they return is a shortest path.
package dag

import (
	"fmt"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/layered"
)

// preferSkipPath walks back from the sink over the set of tied optimal nodes
// per layer, deciding "skip" whenever any of them has a tight skip arc, then
// replays the decisions forward from the source.
func preferSkipPath(g *layered.Graph, dist []int64) ([]layered.NodeID, error) {
	items := g.Items()
	n := len(items)
	sink := g.Sink()

	// 1. Last-layer nodes that reach the sink optimally.
	var tied []layered.NodeID
	for _, a := range g.In(sink) {
		if tight(g, dist, a) {
			tied = append(tied, a.From)
		}
	}

	// 2. One decision per layer, from item N-1 down to item 0.
	take := make([]bool, n)
	for layer := n; layer >= 1; layer-- {
		var skips, takes []layered.NodeID
		for _, v := range tied {
			for _, a := range g.In(v) {
				if !tight(g, dist, a) {
					continue
				}
				if a.Kind == layered.Skip {
					skips = append(skips, a.From)
				} else {
					takes = append(takes, a.From)
				}
			}
		}

		switch {
		case len(skips) > 0:
			tied = skips
		case len(takes) > 0:
			take[layer-1] = true
			tied = takes
		default:
			return nil, fmt.Errorf("%w: dag: no tight arc into layer %d", core.ErrInvariantViolation, layer)
		}
	}

	// 3. Replay forward.
	path := make([]layered.NodeID, 0, n+2)
	path = append(path, g.Source())
	w := 0
	for k := 1; k <= n; k++ {
		if take[k-1] {
			w += items[k-1].Weight
		}
		if w > g.Capacity() || !g.Has(g.ID(k, w)) {
			return nil, fmt.Errorf("%w: dag: replay left the graph at layer %d weight %d", core.ErrInvariantViolation, k, w)
		}
		path = append(path, g.ID(k, w))
	}

	return append(path, sink), nil
}

// firstPredecessorPath follows, from the sink, the first tight incoming arc
// of every node until the source is reached.
func firstPredecessorPath(g *layered.Graph, dist []int64) ([]layered.NodeID, error) {
	path := make([]layered.NodeID, 0, len(g.Items())+2)
	cur := g.Sink()
	path = append(path, cur)
	for cur != g.Source() {
		found := false
		for _, a := range g.In(cur) {
			if tight(g, dist, a) {
				cur = a.From
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: dag: no tight arc into node %d", core.ErrInvariantViolation, cur)
		}
		path = append(path, cur)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// decode marks the item of every path node entered with a strict distance drop.
func decode(g *layered.Graph, dist []int64, path []layered.NodeID) core.Selection {
	sel := core.NewSelection(len(g.Items()))
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		if dist[g.Index(v)] < dist[g.Index(u)] {
			if k := g.ItemOf(g.Layer(v)); k >= 0 {
				sel[k] = true
			}
		}
	}

	return sel
}
