package evolve

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config stores the hyperparameters for an evolutionary run.
type Config struct {
	Evolution EvolutionConfig
	Selection SelectionConfig
	Mutation  MutationConfig
}

// EvolutionConfig holds parameters for the generational loop itself.
type EvolutionConfig struct {
	PopSize     int     `ini:"pop_size"`
	Generations int     `ini:"generations"`
	MinValue    float64 `ini:"min_value"`
	MaxValue    float64 `ini:"max_value"`
	Seed        int64   `ini:"seed"`

	// TrackHistory keeps a snapshot of every generation (including the
	// initial population) on the engine for later inspection.
	TrackHistory bool `ini:"track_history"`

	// Verbose makes the engine narrate each generation to the standard
	// logger. Off by default so the engine is silent as a library.
	Verbose bool `ini:"verbose"`
}

// SelectionConfig holds parameters for parent selection.
type SelectionConfig struct {
	Strategy       string `ini:"strategy"`        // "tournament" or "roulette"
	TournamentSize int    `ini:"tournament_size"` // entrants per tournament draw
}

// MutationConfig holds parameters for the Gaussian mutation operator.
type MutationConfig struct {
	MutateRate   float64 `ini:"mutate_rate"`
	MutatePower  float64 `ini:"mutate_power"`
	ClampGenomes bool    `ini:"clamp_genomes"`
}

// DefaultConfig returns a configuration with workable defaults for every
// hyperparameter. Callers building a Config programmatically can start
// here and override what they need.
func DefaultConfig() *Config {
	return &Config{
		Evolution: EvolutionConfig{
			PopSize:     50,
			Generations: 100,
			MinValue:    -1.0,
			MaxValue:    1.0,
			Seed:        0,
		},
		Selection: SelectionConfig{
			Strategy:       "tournament",
			TournamentSize: 3,
		},
		Mutation: MutationConfig{
			MutateRate:   0.1,
			MutatePower:  0.1,
			ClampGenomes: true,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}

	config := &Config{}

	// Map sections to structs
	if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}
	if err := cfg.Section("Selection").MapTo(&config.Selection); err != nil {
		return nil, fmt.Errorf("failed to map [Selection] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}

	config.Selection.Strategy = cleanIniString(config.Selection.Strategy)

	// Set defaults for keys the file leaves out
	if config.Selection.Strategy == "" {
		config.Selection.Strategy = "tournament"
	}
	if config.Selection.TournamentSize == 0 {
		config.Selection.TournamentSize = 3
	}
	// Clamping defaults to on; a bool zero value cannot distinguish
	// "absent" from "false", so check the key explicitly.
	if !cfg.Section("Mutation").HasKey("clamp_genomes") {
		config.Mutation.ClampGenomes = true
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every hyperparameter and returns a *ConfigError for the
// first invalid one. LoadConfig calls it; programmatically built configs
// get the same checks through NewEngine.
func (c *Config) Validate() error {
	if c.Evolution.PopSize <= 0 {
		return configErrorf("pop_size", "must be positive, got %d", c.Evolution.PopSize)
	}
	if c.Evolution.Generations <= 0 {
		return configErrorf("generations", "must be positive, got %d", c.Evolution.Generations)
	}
	if c.Evolution.MaxValue < c.Evolution.MinValue {
		return configErrorf("max_value", "cannot be less than min_value (%g < %g)", c.Evolution.MaxValue, c.Evolution.MinValue)
	}

	switch strings.ToLower(c.Selection.Strategy) {
	case "tournament":
		if c.Selection.TournamentSize < 1 {
			return configErrorf("tournament_size", "must be at least 1, got %d", c.Selection.TournamentSize)
		}
	case "roulette":
		// No parameters beyond population and fitness.
	default:
		return configErrorf("strategy", "unknown selection strategy '%s', must be one of 'tournament', 'roulette'", c.Selection.Strategy)
	}

	if c.Mutation.MutateRate < 0 || c.Mutation.MutateRate > 1 {
		return configErrorf("mutate_rate", "must be between 0 and 1, got %g", c.Mutation.MutateRate)
	}
	if c.Mutation.MutatePower < 0 {
		return configErrorf("mutate_power", "cannot be negative, got %g", c.Mutation.MutatePower)
	}
	return nil
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
