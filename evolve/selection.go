package evolve

import "strings"

// SelectionStrategy chooses parents from a population, each draw
// probabilistically favoring higher fitness. The engine is strategy
// agnostic; the two implementations are Tournament and Roulette.
type SelectionStrategy interface {
	// Name returns the configuration name of the strategy.
	Name() string

	// Select draws count genomes with replacement from pop. It returns
	// ErrEmptyPopulation if pop has no individuals and a *ConfigError if
	// count is not positive or rng is nil.
	Select(pop Population, fn FitnessFunc, count int, rng *Random) (Population, error)
}

// NewSelectionStrategy builds the strategy named by the configuration.
func NewSelectionStrategy(config *SelectionConfig) (SelectionStrategy, error) {
	switch strings.ToLower(config.Strategy) {
	case "tournament":
		return NewTournament(config.TournamentSize)
	case "roulette":
		return Roulette{}, nil
	default:
		return nil, configErrorf("strategy", "unknown selection strategy '%s', must be one of 'tournament', 'roulette'", config.Strategy)
	}
}

func checkSelectArgs(pop Population, count int, rng *Random) error {
	if rng == nil {
		return configErrorf("random", "a random source is required")
	}
	if len(pop) == 0 {
		return ErrEmptyPopulation
	}
	if count <= 0 {
		return configErrorf("count", "must be positive, got %d", count)
	}
	return nil
}

// Tournament selects each parent by sampling Size distinct entrants
// uniformly at random and returning the fittest. Ties are broken in favor
// of the entrant drawn first, so results are deterministic given the
// Random state. Cost is Size fitness evaluations per parent.
type Tournament struct {
	// Size is the number of entrants per tournament. When it exceeds the
	// population size every individual enters, and the draw degenerates
	// to picking the population's fittest member.
	Size int
}

// NewTournament creates a Tournament strategy with the given size.
func NewTournament(size int) (*Tournament, error) {
	if size < 1 {
		return nil, configErrorf("tournament_size", "must be at least 1, got %d", size)
	}
	return &Tournament{Size: size}, nil
}

func (t *Tournament) Name() string { return "tournament" }

func (t *Tournament) Select(pop Population, fn FitnessFunc, count int, rng *Random) (Population, error) {
	if err := checkSelectArgs(pop, count, rng); err != nil {
		return nil, err
	}
	if t.Size < 1 {
		return nil, configErrorf("tournament_size", "must be at least 1, got %d", t.Size)
	}

	size := t.Size
	if size > len(pop) {
		size = len(pop)
	}

	parents := make(Population, count)
	for i := range parents {
		entrants := rng.Perm(len(pop))[:size]

		best := pop[entrants[0]]
		bestFitness := fn(best)
		for _, idx := range entrants[1:] {
			candidate := pop[idx]
			if f := fn(candidate); f > bestFitness {
				best = candidate
				bestFitness = f
			}
		}
		parents[i] = best
	}
	return parents, nil
}

// Roulette selects parents with probability proportional to a shifted
// fitness weight: weight(g) = fitness(g) - min(fitness) + 1. The shift
// keeps every weight strictly positive even for zero or negative raw
// fitness, so the globally worst individual still holds a nonzero slice
// of the wheel. When every fitness ties, all weights collapse to 1 and
// selection is uniform. The whole population is evaluated exactly once
// per call.
type Roulette struct{}

func (Roulette) Name() string { return "roulette" }

func (Roulette) Select(pop Population, fn FitnessFunc, count int, rng *Random) (Population, error) {
	if err := checkSelectArgs(pop, count, rng); err != nil {
		return nil, err
	}

	fitnesses := EvaluateAll(pop, fn)
	lowest := MinFloat(fitnesses)
	weights := make([]float64, len(fitnesses))
	for i, f := range fitnesses {
		weights[i] = f - lowest + 1
	}

	parents := make(Population, count)
	for i := range parents {
		parents[i] = pop[rng.WeightedIndex(weights)]
	}
	return parents, nil
}
