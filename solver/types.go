package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dag"
)

var (
	// ErrUnknownAlgo indicates an algorithm name or value Solve does not know.
	ErrUnknownAlgo = errors.New("solver: unknown algorithm")

	// ErrBadOptions indicates an Options field outside its domain.
	ErrBadOptions = errors.New("solver: invalid options")
)

// Oracle is an exact optimizer that can arbitrate between solvers.
type Oracle interface {
	SolveExact(items core.Items, capacity int) (core.Result, error)
}

// Algo selects a solving strategy.
type Algo int

const (
	// Dynamic is the full-table dynamic program.
	Dynamic Algo = iota

	// ShortestPathDense solves the layered DAG with every node materialized.
	ShortestPathDense

	// ShortestPathFrontier solves the layered DAG with reachable nodes only.
	ShortestPathFrontier

	// BranchAndBound runs the exact branch-and-bound oracle.
	BranchAndBound
)

var algoNames = [...]string{
	Dynamic:              "dp",
	ShortestPathDense:    "sp-dense",
	ShortestPathFrontier: "sp-frontier",
	BranchAndBound:       "bb",
}

// String returns the short name accepted by ParseAlgo.
func (a Algo) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Sprintf("Algo(%d)", int(a))
	}

	return algoNames[a]
}

// Algos lists every algorithm in declaration order.
func Algos() []Algo {
	return []Algo{Dynamic, ShortestPathDense, ShortestPathFrontier, BranchAndBound}
}

// ParseAlgo maps a short name ("dp", "sp-dense", "sp-frontier", "bb") to its Algo.
// Matching ignores case and surrounding blanks.
func ParseAlgo(s string) (Algo, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range algoNames {
		if name == key {
			return Algo(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgo, s)
}

// Options configures Solve.
type Options struct {
	// Algo picks the strategy.
	Algo Algo

	// TieBreak picks the path reconstruction rule of the graph strategies.
	TieBreak dag.TieBreak

	// TimeLimit bounds branch-and-bound; 0 disables it.
	TimeLimit time.Duration

	// Context cancels the graph strategies; nil means Background.
	Context context.Context
}

// DefaultOptions returns Dynamic with the dp-compatible tie-break.
func DefaultOptions() Options {
	return Options{Algo: Dynamic, TieBreak: dag.PreferSkip}
}
