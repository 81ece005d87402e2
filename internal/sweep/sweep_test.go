package sweep

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosection/internal/profile"
)

func TestRun_RoundTubeDiameterSweep(t *testing.T) {
	base := profile.Dimensions{profile.DimThickness: 5}

	series, err := Run(profile.RoundTube, base, profile.DimDiameter, 50, 150, 5)
	require.NoError(t, err)

	assert.Equal(t, profile.DimDiameter, series.Dimension)
	require.Len(t, series.Values, 5)
	assert.Equal(t, []float64{50, 75, 100, 125, 150}, series.Values)
	assert.Zero(t, series.Skipped)

	// Each sample matches a direct calculation at that diameter.
	for i, d := range series.Values {
		r := d / 2
		assert.InDelta(t, math.Pi*(r*r-(r-5)*(r-5)), series.Area[i], 1e-6)
		assert.InDelta(t, math.Pi/4*(math.Pow(r, 4)-math.Pow(r-5, 4)), series.Inertia[i], 1e-4)
	}

	// Area grows monotonically with diameter at fixed wall thickness.
	for i := 1; i < len(series.Area); i++ {
		assert.Greater(t, series.Area[i], series.Area[i-1])
	}
}

func TestRun_SkipsInvalidSteps(t *testing.T) {
	// Sweeping the wall thickness past half the diameter trips the
	// thickness constraint, so those steps are skipped not sampled.
	base := profile.Dimensions{profile.DimDiameter: 100}

	series, err := Run(profile.RoundTube, base, profile.DimThickness, 10, 90, 5)
	require.NoError(t, err)

	// Valid: 10, 30; invalid: 50, 70, 90.
	assert.Equal(t, []float64{10, 30}, series.Values)
	assert.Equal(t, 3, series.Skipped)
}

func TestRun_Errors(t *testing.T) {
	base := profile.Dimensions{profile.DimThickness: 5}

	_, err := Run(profile.Type("hexagon"), base, profile.DimDiameter, 50, 150, 5)
	assert.Error(t, err)

	_, err = Run(profile.RoundTube, base, "girth", 50, 150, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no dimension "girth"`)

	_, err = Run(profile.RoundTube, base, profile.DimDiameter, 50, 150, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2 steps")

	_, err = Run(profile.RoundTube, base, profile.DimDiameter, 150, 50, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be increasing")

	// Every step invalid: diameter never exceeds twice the wall.
	_, err = Run(profile.RoundTube, profile.Dimensions{profile.DimThickness: 40}, profile.DimDiameter, 10, 70, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no step in")
}
