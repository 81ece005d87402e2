// Package sweep varies one dimension of a profile across a range and
// collects the resulting property series for charting.
package sweep

import (
	"fmt"

	"github.com/alexiusacademia/gosection/internal/profile"
)

// Series holds the swept values and the properties computed at each step.
// Steps whose dimension set fails validation are skipped and counted.
type Series struct {
	Dimension string
	Values    []float64
	Area      []float64
	Inertia   []float64
	Skipped   int
}

// Run sweeps dimName of the base dimension set from `from` to `to` in
// `steps` evenly spaced points. The base set must otherwise be complete for
// the profile type.
func Run(t profile.Type, base profile.Dimensions, dimName string, from, to float64, steps int) (*Series, error) {
	spec, err := profile.SpecFor(t)
	if err != nil {
		return nil, err
	}
	if !knownDimension(spec, dimName) {
		return nil, fmt.Errorf("profile %s has no dimension %q", t, dimName)
	}
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	if to <= from {
		return nil, fmt.Errorf("sweep range must be increasing, got [%g, %g]", from, to)
	}

	series := &Series{Dimension: dimName}
	step := (to - from) / float64(steps-1)
	for i := 0; i < steps; i++ {
		value := from + float64(i)*step
		dims := base.Clone()
		dims[dimName] = value

		if result := profile.Validate(t, dims); !result.IsValid {
			series.Skipped++
			continue
		}

		area, err := profile.Area(t, dims)
		if err != nil {
			return nil, err
		}
		inertia, err := profile.MomentOfInertia(t, dims)
		if err != nil {
			return nil, err
		}

		series.Values = append(series.Values, value)
		series.Area = append(series.Area, area)
		series.Inertia = append(series.Inertia, inertia)
	}

	if len(series.Values) == 0 {
		return nil, fmt.Errorf("no step in [%g, %g] produced a valid %s dimension set", from, to, t)
	}
	return series, nil
}

func knownDimension(spec *profile.Spec, name string) bool {
	for _, n := range spec.Required {
		if n == name {
			return true
		}
	}
	for _, n := range spec.Optional {
		if n == name {
			return true
		}
	}
	return false
}
