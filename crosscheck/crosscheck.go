package crosscheck

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/dp"
	"github.com/katalvlaran/knapdag/solver"
)

// OracleName labels the oracle's result in a Report.
const OracleName = "oracle"

// KnownName labels the expectation in mismatches.
const KnownName = "known"

var (
	// ErrDisagreement indicates that solvers which must agree did not.
	ErrDisagreement = errors.New("crosscheck: solvers disagree")

	// ErrNotMonotone indicates that a larger capacity produced a smaller optimum.
	ErrNotMonotone = errors.New("crosscheck: objective decreased as capacity grew")
)

// Expectation is a known optimum, e.g. from a dataset file.
// A nil Selection means only the objective is known.
type Expectation struct {
	Objective int
	Selection core.Selection
}

// Mismatch describes one disagreement between two results.
type Mismatch struct {
	Left, Right string
	// Field is "objective" or "selection".
	Field string
	// Diff lists the item indices marked differently (selection only).
	Diff []int
	// Fatal is set when the two sides are required to agree.
	Fatal bool
}

// String renders the mismatch on one line.
func (m Mismatch) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s vs %s: %s differs", m.Left, m.Right, m.Field)
	if len(m.Diff) > 0 {
		fmt.Fprintf(&b, " at %v", m.Diff)
	}
	if !m.Fatal {
		b.WriteString(" (tie)")
	}

	return b.String()
}

// Report is the outcome of Run.
type Report struct {
	// Names lists the solvers in run order.
	Names []string
	// Results holds each solver's result by name.
	Results map[string]core.Result
	// ObjectiveAgree is set when every result (and the expectation) has the same objective.
	ObjectiveAgree bool
	// SelectionAgree is set when every result (and the expectation) marks the same items.
	SelectionAgree bool
	// Mismatches lists every disagreement found.
	Mismatches []Mismatch
	// Known is the expectation passed through WithExpectation, if any.
	Known *Expectation
}

// Err returns ErrDisagreement when a fatal mismatch was found, nil otherwise.
func (r *Report) Err() error {
	var fatal []string
	for _, m := range r.Mismatches {
		if m.Fatal {
			fatal = append(fatal, m.String())
		}
	}
	if len(fatal) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrDisagreement, strings.Join(fatal, "; "))
}

// Option configures Run.
type Option func(*options)

type options struct {
	oracle        solver.Oracle
	known         *Expectation
	maxGoroutines int
	tieBreak      dag.TieBreak
}

// WithOracle adds an exact oracle as a fourth contestant. A nil o is ignored.
func WithOracle(o solver.Oracle) Option {
	return func(opts *options) {
		if o != nil {
			opts.oracle = o
		}
	}
}

// WithExpectation compares every result with a known optimum.
func WithExpectation(objective int, selection core.Selection) Option {
	return func(opts *options) {
		opts.known = &Expectation{Objective: objective, Selection: selection.Clone()}
	}
}

// WithMaxGoroutines bounds concurrency. It panics when n < 1.
func WithMaxGoroutines(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("crosscheck: WithMaxGoroutines(%d): need at least 1", n))
	}

	return func(opts *options) { opts.maxGoroutines = n }
}

// WithTieBreak selects the path tie-break of the shortest-path contestants.
// Under dag.FirstPredecessor their selection mismatches against the dynamic
// program are reported as ties. It panics on an unknown value.
func WithTieBreak(tb dag.TieBreak) Option {
	if tb != dag.PreferSkip && tb != dag.FirstPredecessor {
		panic(fmt.Sprintf("crosscheck: WithTieBreak(%v): unknown tie-break", tb))
	}

	return func(opts *options) { opts.tieBreak = tb }
}

// contestant is one named solver.
type contestant struct {
	name  string
	solve func(core.Items, int) (core.Result, error)
	// builtin contestants must agree on the selection too.
	builtin bool
}

// Run solves the instance with every contestant and compares the results.
// A solver error aborts the run; disagreements are reported, see Report.Err.
//
// Complexity: O(N·C) per contestant plus the oracle's own cost; O(N) to compare.
func Run(items core.Items, capacity int, opts ...Option) (*Report, error) {
	// 1. Validate once so every contestant sees a valid instance.
	if err := core.Validate(items, capacity); err != nil {
		return nil, err
	}
	o := options{maxGoroutines: 4}
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Line up contestants. Shortest-path selections only have to match the
	// dynamic program when both break ties the same way.
	exact := o.tieBreak == dag.PreferSkip
	cs := []contestant{
		{name: solver.Dynamic.String(), solve: solver.SolveDynamic, builtin: true},
		{name: solver.ShortestPathDense.String(), solve: o.shortestPath(solver.ShortestPathDense), builtin: exact},
		{name: solver.ShortestPathFrontier.String(), solve: o.shortestPath(solver.ShortestPathFrontier), builtin: exact},
	}
	if o.oracle != nil {
		cs = append(cs, contestant{name: OracleName, solve: o.oracle.SolveExact})
	}

	// 3. Solve concurrently; slot i belongs to contestant i only.
	results := make([]core.Result, len(cs))
	p := pool.New().WithMaxGoroutines(o.maxGoroutines).WithErrors()
	for i := range cs {
		p.Go(func() error {
			res, err := cs[i].solve(items, capacity)
			if err != nil {
				return fmt.Errorf("%s: %w", cs[i].name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	// 4. Compare.
	rep := &Report{
		Names:          make([]string, len(cs)),
		Results:        make(map[string]core.Result, len(cs)),
		ObjectiveAgree: true,
		SelectionAgree: true,
		Known:          o.known,
	}
	for i, c := range cs {
		rep.Names[i] = c.name
		rep.Results[c.name] = results[i]
	}
	ref := results[0]
	for i := 1; i < len(cs); i++ {
		rep.compare(cs[0].name, cs[i].name, ref.Objective, results[i].Objective, ref.Selection, results[i].Selection, cs[i].builtin)
	}
	if o.known != nil {
		rep.compare(KnownName, cs[0].name, o.known.Objective, ref.Objective, o.known.Selection, ref.Selection, false)
	}

	return rep, nil
}

// shortestPath returns a contestant solving with algo under the configured tie-break.
func (o options) shortestPath(algo solver.Algo) func(core.Items, int) (core.Result, error) {
	return func(items core.Items, capacity int) (core.Result, error) {
		return solver.Solve(items, capacity, solver.Options{Algo: algo, TieBreak: o.tieBreak})
	}
}

// compare records objective and selection mismatches between two sides.
// A nil selection on the left side is not compared.
func (r *Report) compare(left, right string, lo, ro int, ls, rs core.Selection, selectionFatal bool) {
	if lo != ro {
		r.ObjectiveAgree = false
		r.Mismatches = append(r.Mismatches, Mismatch{Left: left, Right: right, Field: "objective", Fatal: true})
	}
	if ls == nil || core.SameSelection(ls, rs) {
		return
	}
	r.SelectionAgree = false
	r.Mismatches = append(r.Mismatches, Mismatch{
		Left: left, Right: right, Field: "selection",
		Diff:  core.Diff(ls, rs),
		Fatal: selectionFatal,
	})
}

// CheckMonotone verifies that the optimum never decreases as capacity grows.
// Capacities are visited in ascending order; the input slice is not modified.
//
// Complexity: O(K·N·C) time and O(C) memory for K capacities.
func CheckMonotone(items core.Items, capacities []int) error {
	caps := append([]int(nil), capacities...)
	sort.Ints(caps)

	prev, prevCap := -1, 0
	for _, c := range caps {
		best, err := dp.Objective(items, c)
		if err != nil {
			return err
		}
		if best < prev {
			return fmt.Errorf("%w: capacity %d gives %d, capacity %d gives %d", ErrNotMonotone, prevCap, prev, c, best)
		}
		prev, prevCap = best, c
	}

	return nil
}
