package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/knapdag/layered"
)

// DefaultMaxNodes is the node limit used when WithMaxNodes is not given.
const DefaultMaxNodes = 5000

var (
	// ErrNilGraph indicates a nil *layered.Graph.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrTooLarge indicates a graph above the node limit.
	ErrTooLarge = errors.New("render: graph too large to draw")
)

// Position is the presentation record of one node.
type Position struct {
	X, Y  int
	Label string
	Title string
}

// Layout maps node ids to positions.
type Layout map[layered.NodeID]Position

// Option configures Layout and DOT.
type Option func(*options)

type options struct {
	dx, dy   int
	maxNodes int
	path     []layered.NodeID
}

func defaultOptions() options {
	return options{dx: 100, dy: 40, maxNodes: DefaultMaxNodes}
}

// WithSpacing sets the distance between layers (dx) and between weights (dy).
// It panics unless both are positive.
func WithSpacing(dx, dy int) Option {
	if dx <= 0 || dy <= 0 {
		panic(fmt.Sprintf("render: WithSpacing(%d, %d): spacing must be positive", dx, dy))
	}

	return func(o *options) { o.dx, o.dy = dx, dy }
}

// WithMaxNodes sets the node limit. It panics when n < 1.
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("render: WithMaxNodes(%d): need at least 1", n))
	}

	return func(o *options) { o.maxNodes = n }
}

// WithPath highlights the given node sequence and the arcs between
// consecutive nodes.
func WithPath(path []layered.NodeID) Option {
	return func(o *options) { o.path = path }
}

// NewLayout places every node of g. The source sits at x=0, the sink one
// layer right of the last item layer; both are centred on the weight axis.
//
// Complexity: O(V).
func NewLayout(g *layered.Graph, opts ...Option) Layout {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	mid := g.Capacity() * o.dy / 2
	layout := make(Layout, g.Order())
	for _, nd := range g.Nodes() {
		p := Position{X: nd.Layer * o.dx, Y: nd.Weight * o.dy}
		switch nd.ID {
		case g.Source():
			p.Y, p.Label, p.Title = mid, "s", "source"
		case g.Sink():
			p.Y, p.Label, p.Title = mid, "t", "sink"
		default:
			p.Label = fmt.Sprintf("%d,%d", nd.Layer, nd.Weight)
			p.Title = fmt.Sprintf("item %d decided, weight %d", g.ItemOf(nd.Layer), nd.Weight)
		}
		layout[nd.ID] = p
	}

	return layout
}

// ToGraph copies g into a dominikbraun/graph value carrying the layout as
// vertex attributes and the arc kinds and weights as edge attributes.
//
// Complexity: O(V+E) plus the map inserts of dominikbraun/graph.
func ToGraph(g *layered.Graph, opts ...Option) (graph.Graph[int, int], error) {
	// 1. Validate and configure.
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if g.Order() > o.maxNodes {
		return nil, fmt.Errorf("%w: %d nodes, limit %d", ErrTooLarge, g.Order(), o.maxNodes)
	}

	// 2. Path membership.
	onPath := make(map[layered.NodeID]bool, len(o.path))
	onPathArc := make(map[[2]layered.NodeID]bool, len(o.path))
	for i, id := range o.path {
		onPath[id] = true
		if i > 0 {
			onPathArc[[2]layered.NodeID{o.path[i-1], id}] = true
		}
	}

	// 3. Vertices.
	layout := NewLayout(g, opts...)
	out := graph.New(graph.IntHash, graph.Directed(), graph.Acyclic(), graph.Weighted())
	for _, nd := range g.Nodes() {
		p := layout[nd.ID]
		attrs := []func(*graph.VertexProperties){
			graph.VertexAttribute("label", p.Label),
			graph.VertexAttribute("tooltip", p.Title),
			graph.VertexAttribute("pos", fmt.Sprintf("%d,%d!", p.X, p.Y)),
		}
		if onPath[nd.ID] {
			attrs = append(attrs, graph.VertexAttribute("color", "red"))
		}
		if err := out.AddVertex(int(nd.ID), attrs...); err != nil {
			return nil, fmt.Errorf("render: vertex %d: %w", nd.ID, err)
		}
	}

	// 4. Edges.
	for _, a := range g.Arcs() {
		attrs := []func(*graph.EdgeProperties){
			graph.EdgeWeight(int(a.Weight)),
			graph.EdgeAttribute("label", strconv.FormatInt(a.Weight, 10)),
		}
		if a.Kind != layered.Take {
			attrs = append(attrs, graph.EdgeAttribute("style", "dashed"))
		}
		if onPathArc[[2]layered.NodeID{a.From, a.To}] {
			attrs = append(attrs, graph.EdgeAttribute("color", "red"), graph.EdgeAttribute("penwidth", "2"))
		}
		if err := out.AddEdge(int(a.From), int(a.To), attrs...); err != nil {
			return nil, fmt.Errorf("render: arc %d→%d: %w", a.From, a.To, err)
		}
	}

	return out, nil
}

// DOT writes g in Graphviz DOT format.
func DOT(w io.Writer, g *layered.Graph, opts ...Option) error {
	dg, err := ToGraph(g, opts...)
	if err != nil {
		return err
	}

	return draw.DOT(dg, w)
}
