package dp

import "github.com/katalvlaran/knapdag/core"

// Objective computes only T[N][C], keeping two rows of the table.
// No selection can be recovered from it.
//
// Complexity: O(N·C) time, O(C) memory.
func Objective(items core.Items, capacity int) (int, error) {
	if err := core.Validate(items, capacity); err != nil {
		return 0, err
	}

	prev := make([]int, capacity+1)
	cur := make([]int, capacity+1)
	for _, it := range items {
		for j := 0; j <= capacity; j++ {
			cur[j] = prev[j]
			if it.Weight <= j && it.Value+prev[j-it.Weight] > cur[j] {
				cur[j] = it.Value + prev[j-it.Weight]
			}
		}
		prev, cur = cur, prev
	}

	return prev[capacity], nil
}
