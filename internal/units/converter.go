// Package units provides scalar conversions between length, weight, area
// and volume units through fixed factor tables. Base units: mm, kg, mm²,
// mm³. The tables are static; there is no runtime registration.
package units

import (
	"fmt"

	"github.com/alexiusacademia/gosection/internal/profile"
)

// Kind selects one of the fixed conversion tables.
type Kind string

const (
	Length Kind = "length"
	Weight Kind = "weight"
	Area   Kind = "area"
	Volume Kind = "volume"
)

// Factor tables: unit symbol → multiplicative factor relative to the base
// unit of the kind.
var tables = map[Kind]map[string]float64{
	Length: {
		"mm": 1,
		"cm": 10,
		"m":  1000,
		"in": 25.4,
		"ft": 304.8,
	},
	Weight: {
		"g":  0.001,
		"kg": 1,
		"t":  1000,
		"lb": 0.45359237,
	},
	Area: {
		"mm2": 1,
		"cm2": 100,
		"m2":  1e6,
		"in2": 645.16,
	},
	Volume: {
		"mm3": 1,
		"cm3": 1e3,
		"m3":  1e9,
		"in3": 16387.064,
	},
}

// Convert converts a value between two units of the same kind.
// Unknown kinds and unknown unit symbols fail explicitly; the converter
// never silently returns NaN or zero for bad input.
func Convert(value float64, from, to string, kind Kind) (float64, error) {
	table, ok := tables[kind]
	if !ok {
		return 0, fmt.Errorf("unknown unit kind %q", kind)
	}
	fromFactor, ok := table[from]
	if !ok {
		return 0, fmt.Errorf("unknown %s unit %q", kind, from)
	}
	toFactor, ok := table[to]
	if !ok {
		return 0, fmt.Errorf("unknown %s unit %q", kind, to)
	}
	return value * fromFactor / toFactor, nil
}

// ConvertDimensions converts every value of a dimension set using the
// length table, typically to normalize user-entered dimensions into mm
// before validation and calculation. The input map is not modified.
func ConvertDimensions(dims profile.Dimensions, from, to string) (profile.Dimensions, error) {
	table := tables[Length]
	fromFactor, ok := table[from]
	if !ok {
		return nil, fmt.Errorf("unknown length unit %q", from)
	}
	toFactor, ok := table[to]
	if !ok {
		return nil, fmt.Errorf("unknown length unit %q", to)
	}

	out := make(profile.Dimensions, len(dims))
	for name, value := range dims {
		out[name] = value * fromFactor / toFactor
	}
	return out, nil
}

// Symbols returns the unit symbols of a kind, for help texts and listings.
func Symbols(kind Kind) ([]string, error) {
	table, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown unit kind %q", kind)
	}
	symbols := make([]string, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	return symbols, nil
}
