package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosection/internal/profile"
)

func TestDrawASCII_AllTypes(t *testing.T) {
	cases := []struct {
		profile profile.Type
		dims    profile.Dimensions
	}{
		{profile.RoundTube, profile.Dimensions{profile.DimDiameter: 100, profile.DimThickness: 5}},
		{profile.SquareTube, profile.Dimensions{profile.DimWidth: 100, profile.DimThickness: 5}},
		{profile.RectangularTube, profile.Dimensions{profile.DimWidth: 100, profile.DimHeight: 150, profile.DimThickness: 5}},
		{profile.Angle, profile.Dimensions{profile.DimWidth: 100, profile.DimHeight: 100, profile.DimThickness: 8}},
		{profile.Channel, profile.Dimensions{profile.DimHeight: 150, profile.DimThickness: 8, profile.DimFlangeWidth: 50}},
		{profile.IBeam, profile.Dimensions{profile.DimWidth: 150, profile.DimHeight: 300, profile.DimWebThickness: 8, profile.DimFlangeThickness: 12}},
	}

	for _, tc := range cases {
		t.Run(string(tc.profile), func(t *testing.T) {
			sketch, err := DrawASCII(tc.profile, tc.dims)
			require.NoError(t, err)
			assert.Contains(t, sketch, string(tc.profile))
			assert.Contains(t, sketch, "N.A. at")
			assert.Contains(t, sketch, "░")
		})
	}
}

func TestDrawASCII_TubeHasHollowCore(t *testing.T) {
	sketch, err := DrawASCII(profile.SquareTube,
		profile.Dimensions{profile.DimWidth: 100, profile.DimThickness: 5})
	require.NoError(t, err)

	// The middle row of a thin-walled tube is wall, void, wall.
	lines := strings.Split(sketch, "\n")
	var body []string
	for _, line := range lines {
		if strings.Contains(line, "░") {
			body = append(body, line)
		}
	}
	require.NotEmpty(t, body)
	mid := strings.TrimRight(body[len(body)/2], " ")
	assert.Contains(t, mid, "░ ")
	assert.True(t, strings.HasSuffix(mid, "░") || strings.Contains(mid, "N.A."))
}

func TestDrawASCII_AngleNeutralAxisBelowMidHeight(t *testing.T) {
	sketch, err := DrawASCII(profile.Angle,
		profile.Dimensions{profile.DimWidth: 100, profile.DimHeight: 100, profile.DimThickness: 8})
	require.NoError(t, err)
	assert.Contains(t, sketch, "ȳ = 27.0 mm")
}

func TestDrawASCII_UnknownType(t *testing.T) {
	_, err := DrawASCII(profile.Type("hexagon"), profile.Dimensions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hexagon")
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("RESULTS", []string{"Area: 1900.000 mm²", "Ix: 2865833.333 mm⁴"})

	assert.Contains(t, box, "╔")
	assert.Contains(t, box, "╚")
	assert.Contains(t, box, "RESULTS")
	assert.Contains(t, box, "Area: 1900.000 mm²")

	// Every border line is as wide as the longest content line.
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
}
