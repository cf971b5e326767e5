package evolve

import (
	"errors"
	"fmt"
)

// ErrEmptyPopulation is returned when selection is invoked on a population
// that contains no individuals.
var ErrEmptyPopulation = errors.New("population is empty")

// ConfigError reports an invalid configuration value. All configuration
// problems are detected eagerly, at load or engine construction, and are
// fatal to the run; nothing is retried or silently corrected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
