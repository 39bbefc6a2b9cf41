package builder

import (
	"fmt"
	"math/rand"
)

// DefaultTravelTime is the weight used when no WeightFn is configured.
const DefaultTravelTime int64 = 2

// WeightFn draws one travel time. rng may be nil when no seed was given.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultTravelTime.
func DefaultWeightFn(*rand.Rand) int64 { return DefaultTravelTime }

// ConstantWeightFn always returns w. Panics if w < 0.
func ConstantWeightFn(w int64) WeightFn {
	if w < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: weight must be ≥ 0, got %d", w))
	}
	return func(*rand.Rand) int64 { return w }
}

// UniformWeightFn draws uniformly from [lo, hi]. Without an RNG it returns lo.
// Panics unless 0 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}
