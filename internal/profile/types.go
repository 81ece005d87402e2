package profile

import "fmt"

// Type identifies a standard structural profile cross-section shape.
type Type string

const (
	RoundTube       Type = "round_tube"
	SquareTube      Type = "square_tube"
	RectangularTube Type = "rectangular_tube"
	Angle           Type = "angle"
	Channel         Type = "channel"
	IBeam           Type = "i_beam"
)

// Types lists every supported profile type in display order.
var Types = []Type{RoundTube, SquareTube, RectangularTube, Angle, Channel, IBeam}

// ParseType converts a raw string into a Type.
// Unknown values are reported as an error, never defaulted.
func ParseType(s string) (Type, error) {
	t := Type(s)
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown profile type %q", s)
}

// Dimension names used in Dimensions maps.
// All linear values are in a single consistent unit (mm inside this tool).
const (
	DimDiameter        = "diameter"
	DimWidth           = "width"
	DimHeight          = "height"
	DimThickness       = "thickness"
	DimWebThickness    = "web_thickness"
	DimFlangeThickness = "flange_thickness"
	DimFlangeWidth     = "flange_width"
	DimLength          = "length"
	DimInnerRadius     = "inner_radius"
	DimOuterRadius     = "outer_radius"
)

// Dimensions maps dimension names to values in a consistent linear unit.
// A Dimensions set must pass Validate for its Type before any calculator
// function is called on it; the calculator performs no clamping.
type Dimensions map[string]float64

// Clone returns an independent copy of the dimension set.
func (d Dimensions) Clone() Dimensions {
	out := make(Dimensions, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// ValidationResult collects the outcome of validating a dimension set.
// Errors and Warnings are kept in discovery order.
type ValidationResult struct {
	IsValid  bool
	Errors   []string
	Warnings []string
}

func (r *ValidationResult) addError(format string, args ...interface{}) {
	r.IsValid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) addWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Properties holds the computed geometric properties of a profile.
// Units follow the input linear unit raised to the matching power
// (mm ⇒ mm², mm⁴, mm³, mm).
type Properties struct {
	Area             float64 // cross-sectional area
	MomentOfInertia  float64 // Ix, about the strong axis
	SectionModulus   float64 // Sx = Ix / y_max
	RadiusOfGyration float64 // √(Ix / Area)
}
