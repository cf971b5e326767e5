package evolve

import "math/rand"

// Random is the seedable source of randomness used by every stochastic
// operation in the package. It is always passed explicitly; the package
// never draws from the global math/rand state, so a given seed reproduces
// an entire run including the interleaving order of draws.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with the given value.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw from [0, 1).
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// Intn returns a uniform draw from [0, n).
func (r *Random) Intn(n int) int {
	return r.rng.Intn(n)
}

// Perm returns a random permutation of the integers [0, n).
func (r *Random) Perm(n int) []int {
	return r.rng.Perm(n)
}

// NormFloat64 returns a standard Gaussian draw (mean 0, stdev 1).
func (r *Random) NormFloat64() float64 {
	return r.rng.NormFloat64()
}

// UniformIn returns a uniform draw from [minVal, maxVal).
func (r *Random) UniformIn(minVal, maxVal float64) float64 {
	return minVal + r.rng.Float64()*(maxVal-minVal)
}

// WeightedIndex draws one index according to the distribution described by
// weights. Weights must be non-negative; they do not need to sum to 1.
// If the total weight is not positive the draw falls back to uniform.
// Callers loop to sample with replacement.
func (r *Random) WeightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return r.rng.Intn(len(weights))
	}

	// Spin the wheel
	spin := r.rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if cumulative >= spin {
			return i
		}
	}
	// Fallback for floating-point rounding at the top of the wheel
	return len(weights) - 1
}
