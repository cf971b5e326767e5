package evolve

import (
	"fmt"
	"log"
)

// Engine drives the generational loop: parent selection over the current
// population followed by independent mutation of each parent, with the
// result replacing the population wholesale. There is no elitism, no
// crossover, and no carry-over; reproduction is strictly asexual.
//
// The engine exclusively owns its Population for the duration of a run.
// Callers wanting per-generation data set TrackHistory in the config and
// read History, which holds independent snapshots.
type Engine struct {
	Config   *Config
	Fitness  FitnessFunc
	Strategy SelectionStrategy
	Mutator  *GaussianMutator

	Population Population
	Generation int
	History    []Population // one snapshot per generation, nil unless track_history

	bestGenome  Genome
	bestFitness FitnessValue
	hasBest     bool
	rng         *Random
}

// NewEngine validates the configuration, seeds the random source, and
// samples the initial population. Every configuration problem is reported
// here, before the loop starts, as a *ConfigError.
func NewEngine(config *Config, fitness FitnessFunc) (*Engine, error) {
	if config == nil {
		return nil, configErrorf("config", "a configuration is required")
	}
	if fitness == nil {
		return nil, configErrorf("fitness", "a fitness function is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	strategy, err := NewSelectionStrategy(&config.Selection)
	if err != nil {
		return nil, err
	}
	mutator, err := NewGaussianMutator(&config.Mutation, config.Evolution.MinValue, config.Evolution.MaxValue)
	if err != nil {
		return nil, err
	}

	rng := NewRandom(config.Evolution.Seed)
	pop := NewRandomPopulation(config.Evolution.PopSize, config.Evolution.MinValue, config.Evolution.MaxValue, rng)

	e := &Engine{
		Config:     config,
		Fitness:    fitness,
		Strategy:   strategy,
		Mutator:    mutator,
		Population: pop,
		Generation: 0,
		rng:        rng,
	}
	if config.Evolution.TrackHistory {
		e.History = append(e.History, pop.Copy())
	}
	return e, nil
}

// RunGeneration advances the engine by exactly one generation: select
// parents, mutate each independently, replace the population. Exported so
// interactive callers can stop at any generation boundary.
func (e *Engine) RunGeneration() error {
	// Observe the outgoing population too, so a best genome that mutation
	// loses (there is no elitism) still counts as seen.
	e.observeBest()

	n := len(e.Population)
	parents, err := e.Strategy.Select(e.Population, e.Fitness, n, e.rng)
	if err != nil {
		return fmt.Errorf("selection failed in generation %d: %w", e.Generation+1, err)
	}

	next := make(Population, n)
	for i, parent := range parents {
		next[i] = e.Mutator.Mutate(parent, e.rng)
	}
	e.Population = next
	e.Generation++
	e.observeBest()

	if e.Config.Evolution.TrackHistory {
		e.History = append(e.History, e.Population.Copy())
	}
	if e.Config.Evolution.Verbose {
		fitnesses := EvaluateAll(e.Population, e.Fitness)
		log.Printf("generation %d: best %.4f, mean %.4f, stdev %.4f",
			e.Generation, MaxFloat(fitnesses), Mean(fitnesses), Stdev(fitnesses))
	}
	return nil
}

// Run executes the configured number of generations and returns the final
// population.
func (e *Engine) Run() (Population, error) {
	for g := 0; g < e.Config.Evolution.Generations; g++ {
		if err := e.RunGeneration(); err != nil {
			return nil, err
		}
	}
	return e.Population, nil
}

// observeBest folds the current population into the best-so-far tracking.
func (e *Engine) observeBest() {
	if best, f := e.Population.Best(e.Fitness); !e.hasBest || f > e.bestFitness {
		e.bestGenome = best
		e.bestFitness = f
		e.hasBest = true
	}
}

// Best returns the fittest genome seen in any generation so far and its
// fitness. Before the first generation it reports the best of the initial
// population.
func (e *Engine) Best() (Genome, FitnessValue) {
	if !e.hasBest {
		return e.Population.Best(e.Fitness)
	}
	return e.bestGenome, e.bestFitness
}
