package dp_test

import (
	"testing"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dp"
)

// benchItems builds n predictable items with weights in 1..30.
func benchItems(n int) core.Items {
	items := make(core.Items, n)
	for i := range items {
		items[i] = core.Item{Value: 1 + (i*7)%30, Weight: 1 + (i*13)%30}
	}

	return items
}

// benchmarkSolve runs dp.Solve on n items with the given capacity.
func benchmarkSolve(b *testing.B, n, capacity int) {
	items := benchItems(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dp.Solve(items, capacity); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_100x20 mirrors the harness sweep at 100 items.
func BenchmarkSolve_100x20(b *testing.B) { benchmarkSolve(b, 100, 20) }

// BenchmarkSolve_1000x20 mirrors the harness sweep at 1000 items.
func BenchmarkSolve_1000x20(b *testing.B) { benchmarkSolve(b, 1000, 20) }

// BenchmarkSolve_500x1000 stresses a wide table.
func BenchmarkSolve_500x1000(b *testing.B) { benchmarkSolve(b, 500, 1000) }

// BenchmarkObjective_500x1000 is the two-row counterpart of the wide table.
func BenchmarkObjective_500x1000(b *testing.B) {
	items := benchItems(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dp.Objective(items, 1000); err != nil {
			b.Fatalf("Objective failed: %v", err)
		}
	}
}
