package dag

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/layered"
)

// Inf marks a node not (yet) reached from the source.
const Inf int64 = math.MaxInt64

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *layered.Graph.
	ErrNilGraph = errors.New("dag: graph is nil")

	// ErrUnknownNode indicates a start node the graph does not hold.
	ErrUnknownNode = errors.New("dag: node not in graph")

	// ErrCycleDetected indicates a back arc found during the topological sort.
	ErrCycleDetected = errors.New("dag: cycle detected")

	// ErrUnknownTieBreak indicates a tie-break name ParseTieBreak does not know.
	ErrUnknownTieBreak = errors.New("dag: unknown tie-break")

	// ErrNoPath indicates that the sink cannot be reached from the source.
	// A correct builder never produces such a graph.
	ErrNoPath = fmt.Errorf("%w: dag: sink unreachable from source", core.ErrInvariantViolation)
)

// TieBreak selects the path among equally short ones.
type TieBreak int

const (
	// PreferSkip reproduces the dp backtrack: ties favour leaving an item out.
	PreferSkip TieBreak = iota

	// FirstPredecessor follows the first tied incoming arc in source-id order.
	FirstPredecessor
)

// String returns "prefer-skip" or "first-predecessor".
func (t TieBreak) String() string {
	switch t {
	case PreferSkip:
		return "prefer-skip"
	case FirstPredecessor:
		return "first-predecessor"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "prefer-skip" or "first-predecessor" (any case) to its value.
//
// Complexity: O(len(s)).
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prefer-skip":
		return PreferSkip, nil
	case "first-predecessor":
		return FirstPredecessor, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTieBreak, s)
	}
}

// Option configures Solve.
type Option func(*options)

type options struct {
	ctx      context.Context
	tieBreak TieBreak
}

func defaultOptions() options {
	return options{ctx: context.Background(), tieBreak: PreferSkip}
}

// WithTieBreak sets the reconstruction rule.
// It panics on a value other than PreferSkip or FirstPredecessor.
func WithTieBreak(t TieBreak) Option {
	if t != PreferSkip && t != FirstPredecessor {
		panic(fmt.Sprintf("dag: WithTieBreak(%d): unknown tie-break", int(t)))
	}

	return func(o *options) { o.tieBreak = t }
}

// WithContext makes the traversal and relaxation cancellable.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result is the outcome of Solve.
type Result struct {
	// Path lists node ids from the source to the sink.
	Path []layered.NodeID

	// Selection marks the items whose take arc lies on Path with a positive value.
	Selection core.Selection

	// Objective is −dist[sink], the total value of Selection.
	Objective int

	graph *layered.Graph
	dist  []int64
}

// Distance returns the shortest distance from the source to id. The boolean
// is false when id is unknown or unreachable.
//
// Complexity: O(1).
func (r *Result) Distance(id layered.NodeID) (int64, bool) {
	i := r.graph.Index(id)
	if i < 0 || r.dist[i] == Inf {
		return 0, false
	}

	return r.dist[i], true
}
