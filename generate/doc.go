// Package generate produces reproducible random knapsack instances for the
// benchmark harness and for property tests.
//
// Determinism: every call takes its randomness from an explicit *rand.Rand
// (WithRand) or from a seed (WithSeed); seed 0 maps to a fixed default, so
// the zero configuration is reproducible too. Nothing reads the clock.
//
// math/rand.Rand is not goroutine-safe; use DeriveSeed to give each worker an
// independent stream.
package generate
