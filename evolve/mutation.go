package evolve

// GaussianMutator perturbs genomes with zero-mean Gaussian noise. The
// operator is stateless apart from the draws it takes from the Random
// passed to Mutate.
type GaussianMutator struct {
	Rate     float64 // probability that a genome is perturbed at all
	Power    float64 // standard deviation of the perturbation
	MinValue float64
	MaxValue float64

	// Clamp restricts mutated genomes to [MinValue, MaxValue]. When false
	// the bounds only govern initial sampling and mutated genomes may
	// drift outside the configured range.
	Clamp bool
}

// NewGaussianMutator creates a mutator from the mutation configuration and
// the search-space bounds.
func NewGaussianMutator(config *MutationConfig, minVal, maxVal float64) (*GaussianMutator, error) {
	if config.MutateRate < 0 || config.MutateRate > 1 {
		return nil, configErrorf("mutate_rate", "must be between 0 and 1, got %g", config.MutateRate)
	}
	if config.MutatePower < 0 {
		return nil, configErrorf("mutate_power", "cannot be negative, got %g", config.MutatePower)
	}
	if maxVal < minVal {
		return nil, configErrorf("max_value", "cannot be less than min_value")
	}
	return &GaussianMutator{
		Rate:     config.MutateRate,
		Power:    config.MutatePower,
		MinValue: minVal,
		MaxValue: maxVal,
		Clamp:    config.ClampGenomes,
	}, nil
}

// Mutate returns the genome perturbed by a zero-mean Gaussian of stdev
// Power with probability Rate, and unchanged otherwise.
func (m *GaussianMutator) Mutate(g Genome, rng *Random) Genome {
	if rng.Float64() >= m.Rate {
		return g
	}
	g += rng.NormFloat64() * m.Power
	if m.Clamp {
		g = clamp(g, m.MinValue, m.MaxValue)
	}
	return g
}
