// Package layered - read-only accessors over a built Graph.
//
// Every accessor takes a node id and resolves it through Index; ids that were
// never materialized yield nil slices or false, never a panic.
package layered

import (
	"sort"

	"github.com/katalvlaran/knapdag/core"
)

// Items returns the instance the graph encodes. Callers must not modify it.
func (g *Graph) Items() core.Items { return g.items }

// Capacity returns the knapsack capacity C.
func (g *Graph) Capacity() int { return g.capacity }

// Strategy reports which builder produced g.
func (g *Graph) Strategy() Strategy { return g.strategy }

// Source returns the source id, always 0.
func (g *Graph) Source() NodeID { return 0 }

// Sink returns N·(C+1)+1.
func (g *Graph) Sink() NodeID { return NodeID(len(g.items)*(g.capacity+1) + 1) }

// IDSpace returns the number of addressable ids, N·(C+1)+2.
func (g *Graph) IDSpace() int { return g.space }

// Order returns the number of materialized nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of arcs.
func (g *Graph) Size() int { return g.size }

// Index returns the arena position of id in [0, Order()), or -1 when id was
// never materialized. Per-node scratch arrays of length Order() are indexed
// by it.
//
// Complexity: O(1); a map lookup for frontier graphs.
func (g *Graph) Index(id NodeID) int {
	if id < 0 || int(id) >= g.space {
		return -1
	}
	if g.slot != nil {
		return int(g.slot[id])
	}
	if i, ok := g.index[id]; ok {
		return int(i)
	}

	return -1
}

// Has reports whether id was materialized.
func (g *Graph) Has(id NodeID) bool { return g.Index(id) >= 0 }

// Node returns the arena entry for id.
//
// Complexity: O(1).
func (g *Graph) Node(id NodeID) (Node, bool) {
	i := g.Index(id)
	if i < 0 {
		return Node{}, false
	}

	return g.nodes[i], true
}

// Nodes returns every materialized node in creation order.
// Dense graphs create nodes in ascending id order; frontier graphs in BFS order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Out returns the outgoing arcs of id ordered by target id, or nil.
// The slice is shared with the graph and must not be modified.
//
// Complexity: O(1).
func (g *Graph) Out(id NodeID) []Arc {
	i := g.Index(id)
	if i < 0 {
		return nil
	}

	return g.out[i]
}

// In returns the incoming arcs of id ordered by source id, or nil.
// The slice is shared with the graph and must not be modified.
//
// Complexity: O(1).
func (g *Graph) In(id NodeID) []Arc {
	i := g.Index(id)
	if i < 0 {
		return nil
	}

	return g.in[i]
}

// Arcs returns every arc, grouped by source node in creation order.
//
// Complexity: O(V+E).
func (g *Graph) Arcs() []Arc {
	arcs := make([]Arc, 0, g.size)
	for _, out := range g.out {
		arcs = append(arcs, out...)
	}

	return arcs
}

// ItemOf returns the 0-based item index decided by arcs entering a node of
// the given layer, or -1 for the source and the sink layer.
func (g *Graph) ItemOf(layer int) int {
	if layer < 1 || layer > len(g.items) {
		return -1
	}

	return layer - 1
}

// Reachable returns the ids reachable from the source in ascending order.
// For a frontier graph this is every node it holds.
//
// Complexity: O(V log V + E) over materialized nodes.
func (g *Graph) Reachable() []NodeID {
	seen := make([]bool, len(g.nodes))
	queue := []NodeID{g.Source()}
	seen[g.Index(g.Source())] = true
	for head := 0; head < len(queue); head++ {
		for _, a := range g.Out(queue[head]) {
			if i := g.Index(a.To); !seen[i] {
				seen[i] = true
				queue = append(queue, a.To)
			}
		}
	}
	sort.Slice(queue, func(a, b int) bool { return queue[a] < queue[b] })

	return queue
}
