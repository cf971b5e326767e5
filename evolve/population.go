package evolve

import "math"

// Genome is a scalar candidate solution. Genomes are immutable values;
// the configured [min_value, max_value] range bounds initial sampling but
// does not intrinsically constrain a genome (see GaussianMutator.Clamp).
type Genome = float64

// FitnessValue is the quality score produced by a FitnessFunc for a genome.
type FitnessValue = float64

// Population is a fixed-size ordered collection of genomes representing
// one generation. Its size is set at configuration time and never changes
// across generations.
type Population []Genome

// FitnessFunc maps a genome to its fitness. Implementations must be pure
// and deterministic: the same genome always yields the same fitness within
// a run, with no side effects and no dependency on external mutable state.
type FitnessFunc func(Genome) FitnessValue

// EvaluateAll applies fn to every genome in the population. The result is
// exactly the element-wise application of fn, in population order.
func EvaluateAll(pop Population, fn FitnessFunc) []FitnessValue {
	fitnesses := make([]FitnessValue, len(pop))
	for i, g := range pop {
		fitnesses[i] = fn(g)
	}
	return fitnesses
}

// NewRandomPopulation creates an initial population of size independent
// uniform draws from [minVal, maxVal).
func NewRandomPopulation(size int, minVal, maxVal float64, rng *Random) Population {
	pop := make(Population, size)
	for i := range pop {
		pop[i] = rng.UniformIn(minVal, maxVal)
	}
	return pop
}

// Copy returns an independent copy of the population, for callers that
// want to snapshot a generation before it is replaced.
func (p Population) Copy() Population {
	dup := make(Population, len(p))
	copy(dup, p)
	return dup
}

// Best returns the genome with the highest fitness and that fitness.
// Ties go to the earliest genome in population order. For an empty
// population it returns (0, -Inf).
func (p Population) Best(fn FitnessFunc) (Genome, FitnessValue) {
	best := Genome(0)
	maxFitness := math.Inf(-1)
	for _, g := range p {
		if f := fn(g); f > maxFitness {
			maxFitness = f
			best = g
		}
	}
	return best, maxFitness
}
