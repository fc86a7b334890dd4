package dag_test

import (
	"testing"

	"github.com/katalvlaran/knapdag/core"
	"github.com/katalvlaran/knapdag/dag"
	"github.com/katalvlaran/knapdag/layered"
)

// benchItems builds n predictable items with weights in 1..30.
func benchItems(n int) core.Items {
	items := make(core.Items, n)
	for i := range items {
		items[i] = core.Item{Value: 1 + (i*7)%30, Weight: 1 + (i*13)%30}
	}

	return items
}

// benchmarkBuildSolve times graph construction plus the shortest-path solve.
func benchmarkBuildSolve(b *testing.B, n, capacity int, s layered.Strategy) {
	items := benchItems(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, err := layered.Build(items, capacity, s)
		if err != nil {
			b.Fatalf("Build failed: %v", err)
		}
		if _, err = dag.Solve(g); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkDense_100x20 builds every node.
func BenchmarkDense_100x20(b *testing.B) { benchmarkBuildSolve(b, 100, 20, layered.Dense) }

// BenchmarkFrontier_100x20 builds reachable nodes only.
func BenchmarkFrontier_100x20(b *testing.B) { benchmarkBuildSolve(b, 100, 20, layered.Frontier) }

// BenchmarkDense_1000x20 is the largest harness size.
func BenchmarkDense_1000x20(b *testing.B) { benchmarkBuildSolve(b, 1000, 20, layered.Dense) }

// BenchmarkFrontier_1000x20 is the largest harness size.
func BenchmarkFrontier_1000x20(b *testing.B) { benchmarkBuildSolve(b, 1000, 20, layered.Frontier) }
