package profile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Worked examples for every profile type. Expected values follow the
// closed-form formulas directly so a formula regression shows up as an
// exact-value failure.
func TestCalculate_RoundTube(t *testing.T) {
	dims := Dimensions{DimDiameter: 100, DimThickness: 5}
	require.True(t, Validate(RoundTube, dims).IsValid)

	props, err := Calculate(RoundTube, dims)
	require.NoError(t, err)

	wantArea := math.Pi * (50*50 - 45*45)
	wantIx := math.Pi / 4 * (math.Pow(50, 4) - math.Pow(45, 4))
	assert.InDelta(t, wantArea, props.Area, 1e-9)
	assert.InDelta(t, 1492.2565, props.Area, 1e-4)
	assert.InDelta(t, wantIx, props.MomentOfInertia, 1e-6)
	assert.InDelta(t, wantIx/50, props.SectionModulus, 1e-6)
	assert.InDelta(t, math.Sqrt(wantIx/wantArea), props.RadiusOfGyration, 1e-9)
}

func TestCalculate_SquareTube(t *testing.T) {
	dims := Dimensions{DimWidth: 100, DimThickness: 5}
	require.True(t, Validate(SquareTube, dims).IsValid)

	props, err := Calculate(SquareTube, dims)
	require.NoError(t, err)

	assert.InDelta(t, 1900, props.Area, 1e-9)
	assert.InDelta(t, 2865833.3333, props.MomentOfInertia, 1e-3)
	assert.InDelta(t, 57316.6667, props.SectionModulus, 1e-3)
}

func TestCalculate_RectangularTube(t *testing.T) {
	dims := Dimensions{DimWidth: 100, DimHeight: 150, DimThickness: 5}
	require.True(t, Validate(RectangularTube, dims).IsValid)

	props, err := Calculate(RectangularTube, dims)
	require.NoError(t, err)

	assert.InDelta(t, 2400, props.Area, 1e-9)
	assert.InDelta(t, 7545000, props.MomentOfInertia, 1e-6)
	assert.InDelta(t, 100600, props.SectionModulus, 1e-6)
}

func TestCalculate_Angle(t *testing.T) {
	dims := Dimensions{DimWidth: 100, DimHeight: 100, DimThickness: 8}
	require.True(t, Validate(Angle, dims).IsValid)

	props, err := Calculate(Angle, dims)
	require.NoError(t, err)

	// Legs h·t and b·t at h/2 and t/2: ȳ = (800·50 + 800·4)/1600 = 27.
	// Ix = t·h³/12 + 800·23² + b·t³/12 + 800·23².
	assert.InDelta(t, 1536, props.Area, 1e-9)
	assert.InDelta(t, 1517333.3333, props.MomentOfInertia, 1e-3)
	// y_max = max(27, 73) = 73.
	assert.InDelta(t, 1517333.3333/73, props.SectionModulus, 1e-3)
}

func TestCalculate_Channel(t *testing.T) {
	dims := Dimensions{DimHeight: 150, DimThickness: 8, DimFlangeWidth: 50}
	require.True(t, Validate(Channel, dims).IsValid)

	props, err := Calculate(Channel, dims)
	require.NoError(t, err)

	assert.InDelta(t, 2000, props.Area, 1e-9)
	assert.InDelta(t, 6754266.6667, props.MomentOfInertia, 1e-3)
	assert.InDelta(t, 90056.8889, props.SectionModulus, 1e-3)
}

func TestCalculate_IBeam(t *testing.T) {
	dims := Dimensions{DimWidth: 150, DimHeight: 300, DimWebThickness: 8, DimFlangeThickness: 12}
	require.True(t, Validate(IBeam, dims).IsValid)

	props, err := Calculate(IBeam, dims)
	require.NoError(t, err)

	assert.InDelta(t, 6000, props.Area, 1e-9)
	assert.InDelta(t, 88709184, props.MomentOfInertia, 1e-3)
	assert.InDelta(t, 591394.56, props.SectionModulus, 1e-3)
	assert.InDelta(t, math.Sqrt(88709184.0/6000), props.RadiusOfGyration, 1e-6)
}

func TestArea_PositiveForAllValidSets(t *testing.T) {
	cases := map[Type]Dimensions{
		RoundTube:       {DimDiameter: 60, DimThickness: 3},
		SquareTube:      {DimWidth: 40, DimThickness: 2},
		RectangularTube: {DimWidth: 60, DimHeight: 40, DimThickness: 3},
		Angle:           {DimWidth: 50, DimHeight: 75, DimThickness: 6},
		Channel:         {DimHeight: 120, DimThickness: 6, DimFlangeWidth: 40},
		IBeam:           {DimWidth: 100, DimHeight: 200, DimWebThickness: 6, DimFlangeThickness: 9},
	}
	for typ, dims := range cases {
		require.True(t, Validate(typ, dims).IsValid, "dims for %s should validate", typ)
		area, err := Area(typ, dims)
		require.NoError(t, err)
		assert.Greater(t, area, 0.0, "area of %s", typ)
	}
}

func TestWeightPerLength(t *testing.T) {
	dims := Dimensions{DimDiameter: 100, DimThickness: 5}

	// Steel round tube: 1492.2565 mm² → 1.4922565e-3 m² × 7850 kg/m³.
	weight, err := WeightPerLength(RoundTube, dims, 7850)
	require.NoError(t, err)
	assert.InDelta(t, 11.7142, weight, 1e-3)

	_, err = WeightPerLength(Type("pipe"), dims, 7850)
	assert.Error(t, err)
}

func TestCalculator_UnsupportedType(t *testing.T) {
	dims := Dimensions{DimWidth: 100, DimThickness: 5}

	_, err := Area(Type("hexagon"), dims)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported profile type")

	_, err = MomentOfInertia(Type("hexagon"), dims)
	assert.Error(t, err)
	_, err = SectionModulus(Type("hexagon"), dims)
	assert.Error(t, err)
	_, err = RadiusOfGyration(Type("hexagon"), dims)
	assert.Error(t, err)
	_, err = Calculate(Type("hexagon"), dims)
	assert.Error(t, err)
}

func TestCalculate_Idempotent(t *testing.T) {
	dims := Dimensions{DimWidth: 150, DimHeight: 300, DimWebThickness: 8, DimFlangeThickness: 12}

	first, err := Calculate(IBeam, dims)
	require.NoError(t, err)
	second, err := Calculate(IBeam, dims)
	require.NoError(t, err)

	// Pure function: bit-identical results on identical input.
	assert.Equal(t, *first, *second)
}

func TestNeutralAxis(t *testing.T) {
	yBar, err := NeutralAxis(Angle, Dimensions{DimWidth: 100, DimHeight: 100, DimThickness: 8})
	require.NoError(t, err)
	assert.InDelta(t, 27, yBar, 1e-9)

	yBar, err = NeutralAxis(RoundTube, Dimensions{DimDiameter: 100, DimThickness: 5})
	require.NoError(t, err)
	assert.InDelta(t, 50, yBar, 1e-9)

	_, err = NeutralAxis(Type("hexagon"), Dimensions{})
	assert.Error(t, err)
}
