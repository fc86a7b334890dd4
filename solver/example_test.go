package solver_test

import (
	"fmt"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/solver"
)

// Example compares the dynamic program with the shortest-path formulation.
func Example() {
	items := core.Items{{Value: 40, Weight: 4}, {Value: 15, Weight: 2}, {Value: 20, Weight: 3}, {Value: 10, Weight: 1}}

	dp, err := solver.SolveDynamic(items, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sp, err := solver.SolveShortestPath(items, 6, true)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("dp:", dp.Objective, dp.Selection.Bits(), dp.Residual)
	fmt.Println("sp:", sp.Objective, sp.Selection.Bits(), sp.Residual)
	fmt.Println("same selection:", solver.SameSelection(dp.Selection, sp.Selection))
	// Output:
	// dp: 55 [1 1 0 0] 0
	// sp: 55 [1 1 0 0] 0
	// same selection: true
}
