package layered

import (
	"fmt"

	"github.com/katalvlaran/knapdag/core"
)

// Build dispatches to BuildDense or BuildFrontier.
func Build(items core.Items, capacity int, strategy Strategy) (*Graph, error) {
	switch strategy {
	case Dense:
		return BuildDense(items, capacity)
	case Frontier:
		return BuildFrontier(items, capacity)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, strategy)
	}
}

// BuildDense materializes every node of every layer, reachable or not, and
// wires each one to its skip child, its take child when the item fits, and
// last-layer nodes to the sink.
//
// Errors: core validation errors, ErrIDSpaceOverflow.
// Complexity: O(N·C) time and memory.
func BuildDense(items core.Items, capacity int) (*Graph, error) {
	n := len(items)
	g, err := newGraph(items, capacity, Dense, 0)
	if err != nil {
		return nil, err
	}

	// 1. Nodes in id order: source, layers 1..N, sink.
	g.addNode(0, 0)
	for k := 1; k <= n; k++ {
		for w := 0; w <= capacity; w++ {
			g.addNode(k, w)
		}
	}
	sink, _ := g.addNode(n+1, 0)

	// 2. Source decides item 0.
	first := items[0]
	g.addArc(0, g.ID(1, 0), 0, Skip)
	if first.Weight <= capacity {
		g.addArc(0, g.ID(1, first.Weight), -int64(first.Value), Take)
	}

	// 3. Layer k decides item k (0-based) for k = 1..N-1.
	for k := 1; k < n; k++ {
		it := items[k]
		for w := 0; w <= capacity; w++ {
			from := g.ID(k, w)
			g.addArc(from, g.ID(k+1, w), 0, Skip)
			if w+it.Weight <= capacity {
				g.addArc(from, g.ID(k+1, w+it.Weight), -int64(it.Value), Take)
			}
		}
	}

	// 4. Collapse the last layer.
	for w := 0; w <= capacity; w++ {
		g.addArc(g.ID(n, w), sink, 0, Collapse)
	}

	g.finalize()

	return g, nil
}

// BuildFrontier grows the graph breadth-first from the source, creating only
// nodes that some decision sequence actually reaches. Every reachable node
// receives exactly the arcs BuildDense would give it.
//
// Errors: core validation errors, ErrIDSpaceOverflow.
// Complexity: O(R) for R reachable nodes, bounded by O(N·C).
func BuildFrontier(items core.Items, capacity int) (*Graph, error) {
	n := len(items)
	g, err := newGraph(items, capacity, Frontier, 4*n+2)
	if err != nil {
		return nil, err
	}

	// 1. Source and sink exist unconditionally.
	src, _ := g.addNode(0, 0)
	sink, _ := g.addNode(n+1, 0)

	// 2. FIFO work-queue; pops happen layer by layer.
	queue := []NodeID{src}
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		layer, w := g.Coords(id)

		if layer == n {
			g.addArc(id, sink, 0, Collapse)
			continue
		}

		// 3. Item `layer` (0-based) is decided on the way to layer+1.
		it := items[layer]
		child, created := g.addNode(layer+1, w)
		if created {
			queue = append(queue, child)
		}
		g.addArc(id, child, 0, Skip)

		if w+it.Weight <= capacity {
			child, created = g.addNode(layer+1, w+it.Weight)
			if created {
				queue = append(queue, child)
			}
			g.addArc(id, child, -int64(it.Value), Take)
		}
	}

	g.finalize()

	return g, nil
}
