// Package evolve provides a minimal evolutionary optimization loop over a
// one-dimensional real-valued search space.
//
// A run is a fixed number of generations. Each generation, a selection
// strategy (tournament or fitness-proportionate roulette) draws parents
// from the current population biased toward higher fitness, a Gaussian
// mutation operator perturbs each parent independently, and the mutated
// set replaces the population wholesale. Reproduction is strictly asexual:
// there is no crossover and no elitism.
//
// All randomness flows through an explicitly seeded source, so a given
// seed reproduces an entire run exactly.
//
// Basic usage:
//
//	// Load configuration
//	config, err := evolve.LoadConfig("path/to/config")
//	if err != nil {
//		log.Fatalf("Error loading config: %v", err)
//	}
//
//	// Create an engine with your fitness function
//	engine, err := evolve.NewEngine(config, func(g evolve.Genome) evolve.FitnessValue {
//		return -g * g // maximize: best genome is 0
//	})
//	if err != nil {
//		log.Fatalf("Error creating engine: %v", err)
//	}
//
//	// Run the configured number of generations
//	if _, err := engine.Run(); err != nil {
//		log.Fatalf("Error running evolution: %v", err)
//	}
//
//	best, fitness := engine.Best()
//	fmt.Printf("Best genome: %.4f (fitness %.4f)\n", best, fitness)
package evolve
