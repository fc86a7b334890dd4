package layered

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/knapdag/core"
)

// Sentinel errors returned by the builders.
var (
	// ErrIDSpaceOverflow indicates that N·(C+1)+2 node ids cannot be addressed.
	ErrIDSpaceOverflow = errors.New("layered: node id space overflows")

	// ErrUnknownStrategy indicates an unsupported construction strategy.
	ErrUnknownStrategy = errors.New("layered: unknown build strategy")
)

// NodeID identifies a node; see the package doc for the numbering.
type NodeID int

// ArcKind tells which decision an arc encodes.
type ArcKind uint8

const (
	// Skip leaves the item out; weight 0, same cumulative weight.
	Skip ArcKind = iota

	// Take puts the item in; weight −value, cumulative weight grows by the item weight.
	Take

	// Collapse joins a last-layer node to the sink; weight 0.
	Collapse
)

// String returns "skip", "take" or "collapse".
func (k ArcKind) String() string {
	switch k {
	case Skip:
		return "skip"
	case Take:
		return "take"
	case Collapse:
		return "collapse"
	default:
		return fmt.Sprintf("ArcKind(%d)", uint8(k))
	}
}

// Arc is a directed, weighted arc between consecutive layers.
type Arc struct {
	From   NodeID
	To     NodeID
	Weight int64
	Kind   ArcKind
}

// Node is an arena entry. Weight is the cumulative item weight the node stands
// for; it is 0 for the source and the sink.
type Node struct {
	ID     NodeID
	Layer  int
	Weight int
}

// Strategy selects how a graph is constructed.
type Strategy int

const (
	// Dense materializes every (layer, weight) node.
	Dense Strategy = iota

	// Frontier creates only nodes reachable from the source.
	Frontier
)

// String returns "dense" or "frontier".
func (s Strategy) String() string {
	switch s {
	case Dense:
		return "dense"
	case Frontier:
		return "frontier"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Graph is the layered DAG of one knapsack instance.
type Graph struct {
	items    core.Items
	capacity int
	strategy Strategy

	space int              // N·(C+1)+2
	nodes []Node           // arena, creation order
	slot  []int32          // dense: id → arena index, -1 when never created
	index map[NodeID]int32 // frontier: id → arena index of created nodes only
	out   [][]Arc          // per arena index, ordered by To
	in    [][]Arc          // per arena index, ordered by From
	size  int              // arc count
}
