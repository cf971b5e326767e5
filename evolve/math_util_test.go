package evolve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdev(t *testing.T) {
	assert.InDelta(t, 1.0, Stdev([]float64{1, 2, 3}), 1e-12)
	assert.Equal(t, 0.0, Stdev([]float64{5}))
	assert.Equal(t, 0.0, Stdev(nil))
}

func TestMinMaxFloat(t *testing.T) {
	values := []float64{3, -1, 7, 0}
	assert.Equal(t, 7.0, MaxFloat(values))
	assert.Equal(t, -1.0, MinFloat(values))

	assert.True(t, math.IsInf(MaxFloat(nil), -1))
	assert.True(t, math.IsInf(MinFloat(nil), 1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, clamp(5, -1, 1))
	assert.Equal(t, -1.0, clamp(-5, -1, 1))
	assert.Equal(t, 0.5, clamp(0.5, -1, 1))
}
