// Package generate - deterministic random sources.
//
// Every draw goes through a *rand.Rand built here; nothing reads the clock.
// A *rand.Rand is not goroutine-safe: give each worker its own, seeded with
// DeriveSeed.
package generate

import "math/rand"

// defaultSeed replaces a zero seed.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic source; seed 0 means defaultSeed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed with a stream number (SplitMix64 finalizer),
// so that runs sharing a base seed draw uncorrelated instances.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
