package bb

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTimeLimit indicates that the wall-clock budget ran out.
	ErrTimeLimit = errors.New("bb: time limit exceeded")

	// ErrNodeLimit indicates that the node budget ran out.
	ErrNodeLimit = errors.New("bb: node limit exceeded")
)

// Stats counts search effort.
type Stats struct {
	// Nodes is the number of search nodes entered.
	Nodes int

	// Pruned is the number of nodes cut by the bound.
	Pruned int
}

// Option configures the search.
type Option func(*options)

type options struct {
	timeLimit time.Duration // 0 disables
	nodeLimit int           // 0 disables
}

// WithTimeLimit sets a soft wall-clock budget; 0 disables it.
// It panics on a negative duration.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("bb: WithTimeLimit(%v): negative duration", d))
	}

	return func(o *options) { o.timeLimit = d }
}

// WithNodeLimit caps the number of search nodes; 0 disables it.
// It panics on a negative limit.
func WithNodeLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("bb: WithNodeLimit(%d): negative limit", n))
	}

	return func(o *options) { o.nodeLimit = n }
}

// Solver is a reusable, configured branch-and-bound oracle.
type Solver struct {
	opts []Option
}

// New returns a Solver applying opts to every call.
func New(opts ...Option) *Solver {
	return &Solver{opts: opts}
}
