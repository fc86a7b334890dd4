package dp

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/knapdag/core"
)

// ErrTableTooLarge indicates that the (N+1)×(C+1) table cannot be addressed.
var ErrTableTooLarge = errors.New("dp: table size overflows int")

// Table is the filled DP table for one instance. It is owned by the caller
// that built it and is safe to drop once the selection has been extracted.
type Table struct {
	items core.Items
	rows  int   // N+1
	cols  int   // C+1
	cells []int // row-major, cells[i*cols+j] = T[i][j]
}

// BuildTable validates the instance and fills the full DP table.
//
// Complexity: O(N·C) time and memory.
func BuildTable(items core.Items, capacity int) (*Table, error) {
	// 1. Reject invalid input before allocating anything.
	if err := core.Validate(items, capacity); err != nil {
		return nil, err
	}
	rows, cols := len(items)+1, capacity+1
	if cols <= 0 || rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %d×%d", ErrTableTooLarge, rows, cols)
	}

	// 2. Row 0 and column 0 stay zero from make.
	t := &Table{items: items, rows: rows, cols: cols, cells: make([]int, rows*cols)}

	// 3. Fill rows 1..N from the previous row.
	var (
		i, j      int
		it        core.Item
		prev, cur []int
		take      int
	)
	for i = 1; i < rows; i++ {
		it = items[i-1]
		prev = t.cells[(i-1)*cols : i*cols]
		cur = t.cells[i*cols : (i+1)*cols]
		for j = 0; j < cols; j++ {
			if it.Weight > j {
				cur[j] = prev[j]
				continue
			}
			take = it.Value + prev[j-it.Weight]
			if take > prev[j] {
				cur[j] = take
			} else {
				cur[j] = prev[j]
			}
		}
	}

	return t, nil
}

// At returns T[i][j]. It panics on out-of-range indices like a slice access.
//
// Complexity: O(1).
func (t *Table) At(i, j int) int {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(fmt.Sprintf("dp: At(%d, %d) out of range %d×%d", i, j, t.rows, t.cols))
	}

	return t.cells[i*t.cols+j]
}

// Rows returns N+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns C+1.
func (t *Table) Cols() int { return t.cols }

// Objective returns T[N][C].
func (t *Table) Objective() int {
	return t.cells[len(t.cells)-1]
}

// Select backtracks the table into a selection and the residual capacity.
// The walk stops early once the budget reaches zero; an item is taken only
// when it changes the optimum (T[i][j] != T[i-1][j]).
//
// Complexity: O(N).
func (t *Table) Select() (core.Selection, int) {
	sel := core.NewSelection(len(t.items))
	j := t.cols - 1
	for i := t.rows - 1; i > 0 && j > 0; i-- {
		if t.cells[i*t.cols+j] != t.cells[(i-1)*t.cols+j] {
			sel[i-1] = true
			j -= t.items[i-1].Weight
		}
	}

	return sel, j
}

// Solve runs the full-table dynamic program and returns the optimal
// objective, the selection, the residual capacity and the elapsed time.
//
// The selection is checked against core.CheckResult before returning;
// a failure there is an internal defect reported as core.ErrInvariantViolation.
//
// Complexity: O(N·C) time and memory.
func Solve(items core.Items, capacity int) (core.Result, error) {
	start := time.Now()

	t, err := BuildTable(items, capacity)
	if err != nil {
		return core.Result{}, err
	}
	sel, residual := t.Select()
	res := core.Result{
		Objective: t.Objective(),
		Selection: sel,
		Residual:  residual,
	}
	res.Elapsed = time.Since(start)

	if err = core.CheckResult(items, capacity, res); err != nil {
		return core.Result{}, fmt.Errorf("dp: %w", err)
	}

	return res, nil
}
