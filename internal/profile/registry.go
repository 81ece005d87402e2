package profile

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Range bounds an acceptable dimension value.
type Range struct {
	Min float64
	Max float64
}

// Constraint is a geometric validity rule for a profile type, expressed as a
// boolean expression over the dimension names (e.g. "thickness < diameter / 2").
// Expressions are compiled once when the registry is built.
type Constraint struct {
	Expr    string
	Message string

	program *vm.Program
}

// Eval runs the constraint against a dimension set.
func (c *Constraint) Eval(dims Dimensions) (bool, error) {
	env := make(map[string]interface{}, len(dims))
	for name, value := range dims {
		env[name] = value
	}
	out, err := expr.Run(c.program, env)
	if err != nil {
		return false, fmt.Errorf("constraint %q: %w", c.Expr, err)
	}
	ok, isBool := out.(bool)
	if !isBool {
		return false, fmt.Errorf("constraint %q did not evaluate to a boolean", c.Expr)
	}
	return ok, nil
}

// Spec is the static metadata for one profile type: which dimensions it
// needs, their acceptable ranges, and its geometric validity constraints.
type Spec struct {
	Category    string
	Required    []string
	Optional    []string
	Ranges      map[string]Range
	Constraints []Constraint
}

// Common dimension ranges in mm. Individual specs reference these; the
// registry is immutable after package init.
var (
	rangeOuter     = Range{Min: 1, Max: 2000}   // diameters, widths, heights
	rangeThickness = Range{Min: 0.1, Max: 100}  // walls, webs, flanges
	rangeFlange    = Range{Min: 1, Max: 1000}   // flange widths
	rangeLength    = Range{Min: 1, Max: 100000} // member length
)

var registry = map[Type]*Spec{
	RoundTube: {
		Category: "tube",
		Required: []string{DimDiameter, DimThickness},
		Optional: []string{DimLength},
		Ranges: map[string]Range{
			DimDiameter:  rangeOuter,
			DimThickness: rangeThickness,
			DimLength:    rangeLength,
		},
		Constraints: []Constraint{
			{Expr: "thickness < diameter / 2", Message: "wall thickness must be less than half the diameter"},
		},
	},
	SquareTube: {
		Category: "tube",
		Required: []string{DimWidth, DimThickness},
		Optional: []string{DimLength, DimOuterRadius, DimInnerRadius},
		Ranges: map[string]Range{
			DimWidth:     rangeOuter,
			DimThickness: rangeThickness,
			DimLength:    rangeLength,
		},
		Constraints: []Constraint{
			{Expr: "thickness < width / 2", Message: "wall thickness must be less than half the width"},
		},
	},
	RectangularTube: {
		Category: "tube",
		Required: []string{DimWidth, DimHeight, DimThickness},
		Optional: []string{DimLength, DimOuterRadius, DimInnerRadius},
		Ranges: map[string]Range{
			DimWidth:     rangeOuter,
			DimHeight:    rangeOuter,
			DimThickness: rangeThickness,
			DimLength:    rangeLength,
		},
		Constraints: []Constraint{
			{Expr: "thickness < min(width, height) / 2", Message: "wall thickness must be less than half the smaller side"},
		},
	},
	Angle: {
		Category: "open",
		Required: []string{DimWidth, DimHeight, DimThickness},
		Optional: []string{DimLength, DimInnerRadius},
		Ranges: map[string]Range{
			DimWidth:     rangeOuter,
			DimHeight:    rangeOuter,
			DimThickness: rangeThickness,
			DimLength:    rangeLength,
		},
		Constraints: []Constraint{
			{Expr: "thickness < min(width, height)", Message: "leg thickness must be less than the smaller leg"},
		},
	},
	Channel: {
		Category: "open",
		Required: []string{DimHeight, DimThickness, DimFlangeWidth},
		Optional: []string{DimWidth, DimLength},
		Ranges: map[string]Range{
			DimHeight:      rangeOuter,
			DimThickness:   rangeThickness,
			DimFlangeWidth: rangeFlange,
			DimWidth:       rangeOuter,
			DimLength:      rangeLength,
		},
	},
	IBeam: {
		Category: "open",
		Required: []string{DimWidth, DimHeight, DimWebThickness, DimFlangeThickness},
		Optional: []string{DimLength},
		Ranges: map[string]Range{
			DimWidth:           rangeOuter,
			DimHeight:          rangeOuter,
			DimWebThickness:    rangeThickness,
			DimFlangeThickness: rangeThickness,
			DimLength:          rangeLength,
		},
	},
}

func init() {
	for t, spec := range registry {
		for i := range spec.Constraints {
			c := &spec.Constraints[i]
			program, err := expr.Compile(c.Expr, expr.AsBool())
			if err != nil {
				panic(fmt.Sprintf("profile registry: bad constraint for %s: %v", t, err))
			}
			c.program = program
		}
	}
}

// SpecFor returns the static metadata for a profile type.
// An unknown type is an explicit error, never a panic.
func SpecFor(t Type) (*Spec, error) {
	spec, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("unknown profile type %q", t)
	}
	return spec, nil
}
