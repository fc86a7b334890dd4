package dag

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knapdag/layered"
)

// Visitation states.
const (
	white uint8 = iota
	gray
	black
)

// checkEvery is the step interval between context checks; a power of two.
const checkEvery = 1 << 12

// frame is one explicit-stack entry: the node and the index of its next
// outgoing arc to explore.
type frame struct {
	id   layered.NodeID
	next int
}

// TopologicalOrder returns the nodes reachable from source so that every arc
// u→v has u before v. The traversal is an iterative DFS, so stack depth does
// not grow with the number of items.
//
// Complexity: O(V+E) time, O(V) memory over materialized nodes.
func TopologicalOrder(g *layered.Graph, source layered.NodeID) ([]layered.NodeID, error) {
	return topologicalOrder(context.Background(), g, source)
}

func topologicalOrder(ctx context.Context, g *layered.Graph, source layered.NodeID) ([]layered.NodeID, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(source) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, source)
	}

	// 2. DFS with an explicit stack; finished nodes are recorded in postorder.
	state := make([]uint8, g.Order())
	order := make([]layered.NodeID, 0, g.Order())
	stack := []frame{{id: source}}
	state[g.Index(source)] = gray
	for steps := 1; len(stack) > 0; steps++ {
		if steps%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		top := &stack[len(stack)-1]
		out := g.Out(top.id)
		if top.next < len(out) {
			to := out[top.next].To
			top.next++
			ti := g.Index(to)
			switch state[ti] {
			case gray:
				return nil, fmt.Errorf("%w: %d→%d", ErrCycleDetected, top.id, to)
			case white:
				state[ti] = gray
				stack = append(stack, frame{id: to})
			}
			continue
		}

		state[g.Index(top.id)] = black
		order = append(order, top.id)
		stack = stack[:len(stack)-1]
	}

	// 3. Reverse postorder.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
