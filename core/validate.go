package core

import "fmt"

// Validate checks a knapsack instance before any solver allocates memory.
//
// Order of checks:
//  1. capacity >= 0             (ErrNegativeCapacity)
//  2. len(items) > 0            (ErrNoItems)
//  3. every item is well formed (ErrBadItem, wrapped with its index)
//
// Complexity: O(N).
func Validate(items Items, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}
	if len(items) == 0 {
		return ErrNoItems
	}
	for i, it := range items {
		if err := it.validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}

// Residual returns capacity minus the total weight of the items marked in sel.
//
// Complexity: O(N).
func Residual(items Items, capacity int, sel Selection) int {
	return capacity - items.TotalWeight(sel)
}

// CheckResult verifies the post-conditions every solver must satisfy:
//   - len(Selection) == len(items)
//   - total selected weight <= capacity
//   - Residual == capacity - total selected weight
//   - total selected value == Objective
//
// Any failure is reported as ErrInvariantViolation with a diagnostic.
//
// Complexity: O(N).
func CheckResult(items Items, capacity int, res Result) error {
	if len(res.Selection) != len(items) {
		return fmt.Errorf("%w: selection has %d entries for %d items",
			ErrInvariantViolation, len(res.Selection), len(items))
	}
	w := items.TotalWeight(res.Selection)
	if w > capacity {
		return fmt.Errorf("%w: selected weight %d exceeds capacity %d",
			ErrInvariantViolation, w, capacity)
	}
	if res.Residual != capacity-w {
		return fmt.Errorf("%w: residual %d, want %d",
			ErrInvariantViolation, res.Residual, capacity-w)
	}
	if v := items.TotalValue(res.Selection); v != res.Objective {
		return fmt.Errorf("%w: selected value %d, objective %d",
			ErrInvariantViolation, v, res.Objective)
	}

	return nil
}
