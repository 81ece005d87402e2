package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexiusacademia/gosection/internal/profile"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile section property calculation and validation",
	Long: `Compute and validate section properties of standard structural
profiles.

Supported profile types:
  round_tube        - circular hollow section (diameter, thickness)
  square_tube       - square hollow section (width, thickness)
  rectangular_tube  - rectangular hollow section (width, height, thickness)
  angle             - L-section (width, height, thickness)
  channel           - C-section (height, thickness, flange_width)
  i_beam            - I-section (width, height, web_thickness, flange_thickness)

Subcommands:
  calc   - Compute area, inertia, section modulus, weight
  check  - Validate a dimension set without computing
  list   - Show required/optional dimensions and constraints per type
  sweep  - Chart properties while varying one dimension`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

// dimensionFlags is the shared set of dimension inputs, registered per leaf
// command. Only flags the user actually set end up in the dimension map.
type dimensionFlags struct {
	diameter        float64
	width           float64
	height          float64
	thickness       float64
	webThickness    float64
	flangeThickness float64
	flangeWidth     float64
	length          float64
}

func (d *dimensionFlags) register(flags *pflag.FlagSet) {
	flags.Float64Var(&d.diameter, "diameter", 0, "Outer diameter (round_tube)")
	flags.Float64Var(&d.width, "width", 0, "Overall width")
	flags.Float64Var(&d.height, "height", 0, "Overall height")
	flags.Float64Var(&d.thickness, "thickness", 0, "Wall or leg thickness")
	flags.Float64Var(&d.webThickness, "web-thickness", 0, "Web thickness (i_beam)")
	flags.Float64Var(&d.flangeThickness, "flange-thickness", 0, "Flange thickness (i_beam)")
	flags.Float64Var(&d.flangeWidth, "flange-width", 0, "Flange width (channel)")
	flags.Float64Var(&d.length, "length", 0, "Member length (optional)")
}

func (d *dimensionFlags) collect(flags *pflag.FlagSet) profile.Dimensions {
	dims := profile.Dimensions{}
	set := func(flagName, dimName string, value float64) {
		if flags.Changed(flagName) {
			dims[dimName] = value
		}
	}
	set("diameter", profile.DimDiameter, d.diameter)
	set("width", profile.DimWidth, d.width)
	set("height", profile.DimHeight, d.height)
	set("thickness", profile.DimThickness, d.thickness)
	set("web-thickness", profile.DimWebThickness, d.webThickness)
	set("flange-thickness", profile.DimFlangeThickness, d.flangeThickness)
	set("flange-width", profile.DimFlangeWidth, d.flangeWidth)
	set("length", profile.DimLength, d.length)
	return dims
}
