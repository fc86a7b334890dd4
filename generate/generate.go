package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/knapdag/core"
)

var (
	// ErrBadCount indicates a non-positive number of items.
	ErrBadCount = errors.New("generate: item count must be positive")

	// ErrBadRange indicates bounds with min > max or outside the allowed domain.
	ErrBadRange = errors.New("generate: invalid range")
)

// Option configures a generator call.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithSeed draws from a fresh source seeded with seed (0 means the default seed).
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rngFromSeed(seed) }
}

// WithRand draws from r, advancing its state. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rng = r
		}
	}
}

func apply(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rngFromSeed(0)
	}

	return o
}

// Items returns n items whose value and weight are both drawn uniformly
// from [min, max]. min must be at least 1 so every weight is positive.
//
// Complexity: O(n).
func Items(n, min, max int, opts ...Option) (core.Items, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if min < 1 || max < min {
		return nil, fmt.Errorf("%w: [%d, %d], want 1 <= min <= max", ErrBadRange, min, max)
	}

	o := apply(opts)
	span := max - min + 1
	items := make(core.Items, n)
	for i := range items {
		items[i] = core.Item{
			Value:  min + o.rng.Intn(span),
			Weight: min + o.rng.Intn(span),
		}
	}

	return items, nil
}

// Capacity draws a capacity uniformly from [min, max], min >= 0.
//
// Complexity: O(1).
func Capacity(min, max int, opts ...Option) (int, error) {
	if min < 0 || max < min {
		return 0, fmt.Errorf("%w: [%d, %d], want 0 <= min <= max", ErrBadRange, min, max)
	}
	o := apply(opts)

	return min + o.rng.Intn(max-min+1), nil
}

// SortByRatio returns a copy of items ordered by descending value/weight
// ratio. The sort is stable: equal ratios keep their relative order.
//
// Complexity: O(n log n).
func SortByRatio(items core.Items) core.Items {
	out := make(core.Items, len(items))
	copy(out, items)
	sort.SliceStable(out, func(a, b int) bool { return out[a].Ratio() > out[b].Ratio() })

	return out
}
