package bb

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/knapdag/core"
)

// engine holds the search state, with items permuted into ratio order.
type engine struct {
	n        int
	capacity int
	perm     []int // perm[k] = caller index of the k-th item in ratio order
	w, v     []int

	take  []bool
	curW  int
	curV  int
	best  []bool
	bestV int

	useDeadline bool
	deadline    time.Time
	nodeLimit   int
	stats       Stats
	err         error
}

// SolveExact implements the exact-oracle contract.
func (s *Solver) SolveExact(items core.Items, capacity int) (core.Result, error) {
	res, _, err := Solve(items, capacity, s.opts...)

	return res, err
}

// Solve runs the branch-and-bound search and returns an optimal result with
// the selection in the caller's item order.
//
// Complexity: O(N log N) for the ratio sort plus O(N) per search node;
// the node count is exponential in N in the worst case.
func Solve(items core.Items, capacity int, opts ...Option) (core.Result, Stats, error) {
	start := time.Now()

	// 1. Validate and configure.
	if err := core.Validate(items, capacity); err != nil {
		return core.Result{}, Stats{}, err
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Permute into ratio order.
	e := newEngine(items, capacity)
	e.nodeLimit = o.nodeLimit
	if o.timeLimit > 0 {
		e.useDeadline = true
		e.deadline = start.Add(o.timeLimit)
	}

	// 3. Seed, then search.
	e.seedGreedy()
	e.dfs(0)
	if e.err != nil {
		return core.Result{}, e.stats, e.err
	}

	// 4. Map back to caller order.
	sel := core.NewSelection(len(items))
	for k, taken := range e.best {
		if taken {
			sel[e.perm[k]] = true
		}
	}
	res := core.Result{
		Objective: e.bestV,
		Selection: sel,
		Residual:  core.Residual(items, capacity, sel),
	}
	res.Elapsed = time.Since(start)

	if err := core.CheckResult(items, capacity, res); err != nil {
		return core.Result{}, e.stats, fmt.Errorf("bb: %w", err)
	}

	return res, e.stats, nil
}

func newEngine(items core.Items, capacity int) *engine {
	n := len(items)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return items[perm[a]].Ratio() > items[perm[b]].Ratio()
	})

	e := &engine{
		n:        n,
		capacity: capacity,
		perm:     perm,
		w:        make([]int, n),
		v:        make([]int, n),
		take:     make([]bool, n),
		best:     make([]bool, n),
	}
	for k, i := range perm {
		e.w[k] = items[i].Weight
		e.v[k] = items[i].Value
	}

	return e
}

// seedGreedy fills in ratio order, skipping items that no longer fit.
func (e *engine) seedGreedy() {
	room := e.capacity
	for k := 0; k < e.n; k++ {
		if e.w[k] <= room {
			room -= e.w[k]
			e.bestV += e.v[k]
			e.best[k] = true
		}
	}
}

// bound returns the floored Dantzig bound for items k.. with the current load.
//
// Complexity: O(N − k).
func (e *engine) bound(k int) int {
	room := e.capacity - e.curW
	b := e.curV
	for ; k < e.n; k++ {
		if e.w[k] > room {
			return b + room*e.v[k]/e.w[k]
		}
		room -= e.w[k]
		b += e.v[k]
	}

	return b
}

// budgetExceeded checks the node limit every call and the deadline every 4096 nodes.
func (e *engine) budgetExceeded() bool {
	if e.nodeLimit > 0 && e.stats.Nodes > e.nodeLimit {
		e.err = fmt.Errorf("%w: %d nodes", ErrNodeLimit, e.nodeLimit)
		return true
	}
	if e.useDeadline && e.stats.Nodes&4095 == 0 && time.Now().After(e.deadline) {
		e.err = ErrTimeLimit
		return true
	}

	return false
}

func (e *engine) dfs(k int) {
	e.stats.Nodes++
	if e.budgetExceeded() {
		return
	}

	// 1. Leaf: compare with the incumbent.
	if k == e.n {
		if e.curV > e.bestV {
			e.bestV = e.curV
			copy(e.best, e.take)
		}
		return
	}

	// 2. Prune.
	if e.bound(k) <= e.bestV {
		e.stats.Pruned++
		return
	}

	// 3. Take branch.
	if e.curW+e.w[k] <= e.capacity {
		e.take[k] = true
		e.curW += e.w[k]
		e.curV += e.v[k]
		e.dfs(k + 1)
		e.curW -= e.w[k]
		e.curV -= e.v[k]
		e.take[k] = false
		if e.err != nil {
			return
		}
	}

	// 4. Skip branch.
	e.dfs(k + 1)
}
