package layered

import (
	"sort"

	"github.com/katalvlaran/knapdag/core"
)

// newGraph validates the instance and allocates an empty arena. Dense graphs
// get an id→slot table covering the full id space; frontier graphs index only
// the nodes they create. nodeHint sizes the node slice.
func newGraph(items core.Items, capacity int, strategy Strategy, nodeHint int) (*Graph, error) {
	if err := core.Validate(items, capacity); err != nil {
		return nil, err
	}
	space, err := idSpace(len(items), capacity)
	if err != nil {
		return nil, err
	}
	if nodeHint <= 0 || nodeHint > space {
		nodeHint = space
	}

	g := &Graph{
		items:    items,
		capacity: capacity,
		strategy: strategy,
		space:    space,
		nodes:    make([]Node, 0, nodeHint),
		out:      make([][]Arc, 0, nodeHint),
		in:       make([][]Arc, 0, nodeHint),
	}
	if strategy == Dense {
		g.slot = make([]int32, space)
		for i := range g.slot {
			g.slot[i] = -1
		}
	} else {
		g.index = make(map[NodeID]int32, nodeHint)
	}

	return g, nil
}

// addNode creates the node at (layer, w) unless it already exists.
// It reports the node id and whether the call created it.
func (g *Graph) addNode(layer, w int) (NodeID, bool) {
	id := g.ID(layer, w)
	if g.Index(id) >= 0 {
		return id, false
	}
	if layer == 0 || layer == len(g.items)+1 {
		w = 0
	}
	if g.slot != nil {
		g.slot[id] = int32(len(g.nodes))
	} else {
		g.index[id] = int32(len(g.nodes))
	}
	g.nodes = append(g.nodes, Node{ID: id, Layer: layer, Weight: w})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return id, true
}

// addArc records a→b on both endpoints. Both nodes must already exist.
func (g *Graph) addArc(from, to NodeID, weight int64, kind ArcKind) {
	a := Arc{From: from, To: to, Weight: weight, Kind: kind}
	fs, ts := g.Index(from), g.Index(to)
	g.out[fs] = append(g.out[fs], a)
	g.in[ts] = append(g.in[ts], a)
	g.size++
}

// finalize fixes arc order so that consumers see the same adjacency no
// matter which strategy produced the graph.
func (g *Graph) finalize() {
	for i := range g.in {
		in := g.in[i]
		if len(in) > 1 {
			sort.Slice(in, func(a, b int) bool { return in[a].From < in[b].From })
		}
		out := g.out[i]
		if len(out) > 1 {
			sort.Slice(out, func(a, b int) bool { return out[a].To < out[b].To })
		}
	}
}
