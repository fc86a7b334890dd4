// Package layered - deterministic node numbering.
//
// ids are a pure function of (layer, cumulative weight), so two graphs of the
// same instance name every node identically whichever builder produced them.
package layered

import (
	"fmt"
	"math"
)

// idSpace returns N·(C+1)+2, the number of distinct node ids.
func idSpace(n, capacity int) (int, error) {
	width := capacity + 1
	if width <= 0 || n > (math.MaxInt32-2)/width {
		return 0, fmt.Errorf("%w: %d items × %d weights", ErrIDSpaceOverflow, n, width)
	}

	return n*width + 2, nil
}

// ID returns the id of the node at (layer, cumulative weight).
// Layer 0 is the source and layer N+1 the sink; w is ignored for both.
// It panics when the coordinates lie outside the graph's grid.
//
// Complexity: O(1).
func (g *Graph) ID(layer, w int) NodeID {
	n := len(g.items)
	switch {
	case layer == 0:
		return 0
	case layer == n+1:
		return g.Sink()
	case layer < 0 || layer > n+1 || w < 0 || w > g.capacity:
		panic(fmt.Sprintf("layered: ID(%d, %d) outside %d layers × %d weights", layer, w, n, g.capacity+1))
	}

	return NodeID((layer-1)*(g.capacity+1) + w + 1)
}

// Coords is the inverse of ID: it returns the layer and cumulative weight of id.
//
// Complexity: O(1).
func (g *Graph) Coords(id NodeID) (layer, w int) {
	switch {
	case id == 0:
		return 0, 0
	case id == g.Sink():
		return len(g.items) + 1, 0
	}
	k := int(id) - 1

	return k/(g.capacity+1) + 1, k % (g.capacity + 1)
}

// Layer returns the layer of id (0 for the source, N+1 for the sink).
func (g *Graph) Layer(id NodeID) int {
	layer, _ := g.Coords(id)

	return layer
}
