// Package material holds the material library: a static set of built-in
// engineering materials and a keyed store for user-defined ones.
package material

import "fmt"

// Material describes a structural material. Density is in kg/m³, the
// strength values and elastic modulus in MPa. The calculator only consumes
// the density; the rest is carried for display and export.
type Material struct {
	Type            string  `json:"type" yaml:"type"`
	Grade           string  `json:"grade" yaml:"grade"`
	Density         float64 `json:"density" yaml:"density"`
	YieldStrength   float64 `json:"yield_strength" yaml:"yield_strength"`
	TensileStrength float64 `json:"tensile_strength" yaml:"tensile_strength"`
	ElasticModulus  float64 `json:"elastic_modulus" yaml:"elastic_modulus"`
}

// Name is the display key of a material, "type grade".
func (m Material) Name() string {
	return m.Type + " " + m.Grade
}

// Validate checks a material definition before it enters a store.
func (m Material) Validate() error {
	if m.Type == "" {
		return fmt.Errorf("material type must not be empty")
	}
	if m.Density <= 0 {
		return fmt.Errorf("material %s: density must be positive, got %g", m.Name(), m.Density)
	}
	if m.YieldStrength < 0 || m.TensileStrength < 0 || m.ElasticModulus < 0 {
		return fmt.Errorf("material %s: strength values must not be negative", m.Name())
	}
	return nil
}

// Builtins is the default material library. Densities in kg/m³, strengths
// and moduli in MPa.
var Builtins = []Material{
	{Type: "steel", Grade: "S235", Density: 7850, YieldStrength: 235, TensileStrength: 360, ElasticModulus: 210000},
	{Type: "steel", Grade: "S275", Density: 7850, YieldStrength: 275, TensileStrength: 430, ElasticModulus: 210000},
	{Type: "steel", Grade: "S355", Density: 7850, YieldStrength: 355, TensileStrength: 510, ElasticModulus: 210000},
	{Type: "steel", Grade: "A36", Density: 7850, YieldStrength: 250, TensileStrength: 400, ElasticModulus: 200000},
	{Type: "stainless", Grade: "304", Density: 8000, YieldStrength: 215, TensileStrength: 505, ElasticModulus: 193000},
	{Type: "aluminum", Grade: "6061-T6", Density: 2700, YieldStrength: 276, TensileStrength: 310, ElasticModulus: 68900},
}

// DefaultDensity is used when the caller names no material. Structural
// steel is by far the most common case for these profiles.
const DefaultDensity = 7850.0
