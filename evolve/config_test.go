package evolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, 50, config.Evolution.PopSize)
	assert.Equal(t, 100, config.Evolution.Generations)
	assert.Equal(t, "tournament", config.Selection.Strategy)
	assert.Equal(t, 3, config.Selection.TournamentSize)
	assert.True(t, config.Mutation.ClampGenomes)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero pop_size", func(c *Config) { c.Evolution.PopSize = 0 }},
		{"negative pop_size", func(c *Config) { c.Evolution.PopSize = -4 }},
		{"zero generations", func(c *Config) { c.Evolution.Generations = 0 }},
		{"inverted bounds", func(c *Config) { c.Evolution.MinValue = 2; c.Evolution.MaxValue = 1 }},
		{"unknown strategy", func(c *Config) { c.Selection.Strategy = "lottery" }},
		{"zero tournament size", func(c *Config) { c.Selection.TournamentSize = 0 }},
		{"negative mutate_rate", func(c *Config) { c.Mutation.MutateRate = -0.1 }},
		{"mutate_rate above one", func(c *Config) { c.Mutation.MutateRate = 1.1 }},
		{"negative mutate_power", func(c *Config) { c.Mutation.MutatePower = -0.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)

			err := config.Validate()
			require.Error(t, err)

			var ce *ConfigError
			assert.ErrorAs(t, err, &ce)
			assert.Contains(t, err.Error(), "config error:")
		})
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
[Evolution]
pop_size    = 20
generations = 10
min_value   = -3.0
max_value   = 3.0
seed        = 99
verbose     = true

[Selection]
strategy        = roulette # fitness-proportionate
tournament_size = 5

[Mutation]
mutate_rate  = 0.4
mutate_power = 0.2
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 20, config.Evolution.PopSize)
	assert.Equal(t, 10, config.Evolution.Generations)
	assert.Equal(t, -3.0, config.Evolution.MinValue)
	assert.Equal(t, 3.0, config.Evolution.MaxValue)
	assert.Equal(t, int64(99), config.Evolution.Seed)
	assert.True(t, config.Evolution.Verbose)
	assert.False(t, config.Evolution.TrackHistory)

	// Inline comment must not leak into the strategy name.
	assert.Equal(t, "roulette", config.Selection.Strategy)
	assert.Equal(t, 5, config.Selection.TournamentSize)

	assert.Equal(t, 0.4, config.Mutation.MutateRate)
	assert.Equal(t, 0.2, config.Mutation.MutatePower)
	// clamp_genomes is absent, so the default applies.
	assert.True(t, config.Mutation.ClampGenomes)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[Evolution]
pop_size    = 8
generations = 5
min_value   = 0
max_value   = 1
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tournament", config.Selection.Strategy)
	assert.Equal(t, 3, config.Selection.TournamentSize)
	assert.True(t, config.Mutation.ClampGenomes)
}

func TestLoadConfigExplicitClampOff(t *testing.T) {
	path := writeConfigFile(t, `
[Evolution]
pop_size    = 8
generations = 5
min_value   = 0
max_value   = 1

[Mutation]
clamp_genomes = false
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, config.Mutation.ClampGenomes)
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := writeConfigFile(t, `
[Evolution]
pop_size    = -1
generations = 5
min_value   = 0
max_value   = 1
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pop_size")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
