package profile

import "math"

// Validate checks a dimension set against the registry metadata for the
// given profile type: required fields first, then optional fields, then the
// type's geometric constraints. An unrecognized type short-circuits with a
// single error; every other problem is accumulated so the caller sees the
// full picture in discovery order. Optional-dimension problems are always
// warnings and never affect validity on their own.
func Validate(t Type, dims Dimensions) *ValidationResult {
	result := &ValidationResult{IsValid: true}

	spec, err := SpecFor(t)
	if err != nil {
		result.addError("%v", err)
		return result
	}

	requiredOK := true
	for _, name := range spec.Required {
		value, present := dims[name]
		if !present {
			result.addError("missing required dimension %q", name)
			requiredOK = false
			continue
		}
		if !isPositiveFinite(value) {
			result.addError("dimension %q must be a positive finite number, got %g", name, value)
			requiredOK = false
			continue
		}
		if r, bounded := spec.Ranges[name]; bounded && (value < r.Min || value > r.Max) {
			result.addError("dimension %q = %g is outside the valid range [%g, %g]", name, value, r.Min, r.Max)
			requiredOK = false
		}
	}

	for _, name := range spec.Optional {
		value, present := dims[name]
		if !present {
			continue
		}
		if !isPositiveFinite(value) {
			result.addWarning("optional dimension %q should be a positive finite number, got %g", name, value)
			continue
		}
		if r, bounded := spec.Ranges[name]; bounded && (value < r.Min || value > r.Max) {
			result.addWarning("optional dimension %q = %g is outside the usual range [%g, %g]", name, value, r.Min, r.Max)
		}
	}

	// Geometric constraints only make sense on a complete dimension set.
	if requiredOK {
		for i := range spec.Constraints {
			c := &spec.Constraints[i]
			ok, err := c.Eval(dims)
			if err != nil {
				result.addError("%v", err)
				continue
			}
			if !ok {
				result.addError("%s (%s)", c.Message, c.Expr)
			}
		}
	}

	return result
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
