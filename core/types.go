package core

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared by every solver.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("core: capacity must be non-negative")

	// ErrNoItems indicates an empty item set where a non-empty one is required.
	ErrNoItems = errors.New("core: item set is empty")

	// ErrBadItem indicates an item with a negative value or a non-positive weight.
	ErrBadItem = errors.New("core: item must have value >= 0 and weight > 0")

	// ErrInvariantViolation indicates an internal defect detected after a solve.
	// It is fatal for the solve that produced it.
	ErrInvariantViolation = errors.New("core: invariant violation")
)

// Item is one knapsack item. It is a value type and never changes after creation.
type Item struct {
	// Value is the profit gained when the item is selected.
	Value int

	// Weight is the capacity consumed when the item is selected.
	Weight int
}

// NewItem returns an Item after checking value >= 0 and weight > 0.
func NewItem(value, weight int) (Item, error) {
	it := Item{Value: value, Weight: weight}
	if err := it.validate(); err != nil {
		return Item{}, err
	}

	return it, nil
}

// Ratio returns Value/Weight. Weight is assumed positive.
func (it Item) Ratio() float64 {
	return float64(it.Value) / float64(it.Weight)
}

// String renders the item as "(value=V, weight=W)".
func (it Item) String() string {
	return fmt.Sprintf("(value=%d, weight=%d)", it.Value, it.Weight)
}

func (it Item) validate() error {
	if it.Value < 0 || it.Weight <= 0 {
		return fmt.Errorf("%w: value=%d weight=%d", ErrBadItem, it.Value, it.Weight)
	}

	return nil
}

// Items is an ordered item set.
type Items []Item

// TotalWeight sums the weights of the items marked in sel.
// Indices beyond len(items) are ignored.
//
// Complexity: O(len(sel)).
func (items Items) TotalWeight(sel Selection) int {
	var sum int
	for i, taken := range sel {
		if taken && i < len(items) {
			sum += items[i].Weight
		}
	}

	return sum
}

// TotalValue sums the values of the items marked in sel.
// Indices beyond len(items) are ignored.
//
// Complexity: O(len(sel)).
func (items Items) TotalValue(sel Selection) int {
	var sum int
	for i, taken := range sel {
		if taken && i < len(items) {
			sum += items[i].Value
		}
	}

	return sum
}

// Result is the outcome of one solve: the optimal objective, the per-item
// selection, the unused capacity and the wall time spent in the solver.
type Result struct {
	// Objective is the total value of the selected items.
	Objective int

	// Selection marks, per item index, whether the item is taken.
	Selection Selection

	// Residual is capacity minus the total weight of the selected items.
	Residual int

	// Elapsed is the time spent inside the solve call.
	Elapsed time.Duration
}
