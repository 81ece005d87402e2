package profile

import (
	"fmt"
	"math"
)

// The calculator is a set of pure functions over (Type, Dimensions). It
// trusts input that has passed Validate and performs no bounds-checking of
// its own; the only failure it guards against is a profile type outside the
// enumerated set, which is fatal to that single call.

func unsupported(t Type) error {
	return fmt.Errorf("unsupported profile type %q", t)
}

// Area computes the cross-sectional area.
func Area(t Type, dims Dimensions) (float64, error) {
	switch t {
	case RoundTube:
		rOut := dims[DimDiameter] / 2
		rIn := rOut - dims[DimThickness]
		return math.Pi * (rOut*rOut - rIn*rIn), nil
	case SquareTube:
		w := dims[DimWidth]
		inner := w - 2*dims[DimThickness]
		return w*w - inner*inner, nil
	case RectangularTube:
		w, h := dims[DimWidth], dims[DimHeight]
		wi := w - 2*dims[DimThickness]
		hi := h - 2*dims[DimThickness]
		return w*h - wi*hi, nil
	case Angle:
		w, h, th := dims[DimWidth], dims[DimHeight], dims[DimThickness]
		return (w + h - th) * th, nil
	case Channel:
		h, th, fw := dims[DimHeight], dims[DimThickness], dims[DimFlangeWidth]
		return h*th + 2*fw*th, nil
	case IBeam:
		h, tw := dims[DimHeight], dims[DimWebThickness]
		w, tf := dims[DimWidth], dims[DimFlangeThickness]
		return h*tw + 2*w*tf, nil
	default:
		return 0, unsupported(t)
	}
}

// MomentOfInertia computes Ix, the second moment of area about the strong
// (horizontal centroidal) axis.
func MomentOfInertia(t Type, dims Dimensions) (float64, error) {
	switch t {
	case RoundTube:
		rOut := dims[DimDiameter] / 2
		rIn := rOut - dims[DimThickness]
		return math.Pi / 4 * (math.Pow(rOut, 4) - math.Pow(rIn, 4)), nil
	case SquareTube:
		w := dims[DimWidth]
		inner := w - 2*dims[DimThickness]
		return math.Pow(w, 4)/12 - math.Pow(inner, 4)/12, nil
	case RectangularTube:
		w, h := dims[DimWidth], dims[DimHeight]
		wi := w - 2*dims[DimThickness]
		hi := h - 2*dims[DimThickness]
		return w*math.Pow(h, 3)/12 - wi*math.Pow(hi, 3)/12, nil
	case Angle:
		return angleInertia(dims), nil
	case Channel:
		h, th, fw := dims[DimHeight], dims[DimThickness], dims[DimFlangeWidth]
		web := th * math.Pow(h, 3) / 12
		flange := fw*math.Pow(th, 3)/12 + fw*th*math.Pow(h/2, 2)
		return web + 2*flange, nil
	case IBeam:
		h, tw := dims[DimHeight], dims[DimWebThickness]
		w, tf := dims[DimWidth], dims[DimFlangeThickness]
		web := tw * math.Pow(h-2*tf, 3) / 12
		flange := w*math.Pow(tf, 3)/12 + w*tf*math.Pow(h/2-tf/2, 2)
		return web + 2*flange, nil
	default:
		return 0, unsupported(t)
	}
}

// SectionModulus computes Sx = Ix / y_max, with y_max the extreme-fiber
// distance from the neutral axis.
func SectionModulus(t Type, dims Dimensions) (float64, error) {
	ix, err := MomentOfInertia(t, dims)
	if err != nil {
		return 0, err
	}

	yBar, err := NeutralAxis(t, dims)
	if err != nil {
		return 0, err
	}
	height, err := OverallHeight(t, dims)
	if err != nil {
		return 0, err
	}
	// Extreme-fiber distance: the farther of the two faces from the
	// neutral axis. For the symmetric types this is simply height/2.
	yMax := math.Max(yBar, height-yBar)
	return ix / yMax, nil
}

// NeutralAxis returns the height of the horizontal centroidal axis above
// the bottom face of the section.
func NeutralAxis(t Type, dims Dimensions) (float64, error) {
	switch t {
	case RoundTube:
		return dims[DimDiameter] / 2, nil
	case SquareTube:
		return dims[DimWidth] / 2, nil
	case RectangularTube, Channel, IBeam:
		return dims[DimHeight] / 2, nil
	case Angle:
		return angleCentroid(dims), nil
	default:
		return 0, unsupported(t)
	}
}

// OverallHeight returns the total depth of the section.
func OverallHeight(t Type, dims Dimensions) (float64, error) {
	switch t {
	case RoundTube:
		return dims[DimDiameter], nil
	case SquareTube:
		return dims[DimWidth], nil
	case RectangularTube, Angle, Channel, IBeam:
		return dims[DimHeight], nil
	default:
		return 0, unsupported(t)
	}
}

// RadiusOfGyration computes √(Ix / Area).
func RadiusOfGyration(t Type, dims Dimensions) (float64, error) {
	area, err := Area(t, dims)
	if err != nil {
		return 0, err
	}
	ix, err := MomentOfInertia(t, dims)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(ix / area), nil
}

// WeightPerLength computes the weight per unit length in kg/m. Dimensions
// are in mm and density in kg/m³; the caller supplies the density, the
// calculator performs no material lookup.
func WeightPerLength(t Type, dims Dimensions, density float64) (float64, error) {
	area, err := Area(t, dims)
	if err != nil {
		return 0, err
	}
	areaM2 := area / 1e6
	return areaM2 * density, nil
}

// Calculate bundles the geometric properties for a validated dimension set.
func Calculate(t Type, dims Dimensions) (*Properties, error) {
	area, err := Area(t, dims)
	if err != nil {
		return nil, err
	}
	ix, err := MomentOfInertia(t, dims)
	if err != nil {
		return nil, err
	}
	sx, err := SectionModulus(t, dims)
	if err != nil {
		return nil, err
	}
	return &Properties{
		Area:             area,
		MomentOfInertia:  ix,
		SectionModulus:   sx,
		RadiusOfGyration: math.Sqrt(ix / area),
	}, nil
}

// angleCentroid computes the neutral-axis height ȳ (from the bottom face)
// of an angle section from the first moments of its two rectangular legs:
// the vertical leg h·t about h/2 and the horizontal leg b·t about t/2.
// Both the inertia and section-modulus paths use this single helper.
func angleCentroid(dims Dimensions) float64 {
	h, b, th := dims[DimHeight], dims[DimWidth], dims[DimThickness]
	vertArea := h * th
	horizArea := b * th
	firstMoment := vertArea*(h/2) + horizArea*(th/2)
	return firstMoment / (vertArea + horizArea)
}

// angleInertia composes Ix of an angle from its two legs by the
// parallel-axis theorem about the shared centroid.
func angleInertia(dims Dimensions) float64 {
	h, b, th := dims[DimHeight], dims[DimWidth], dims[DimThickness]
	yBar := angleCentroid(dims)

	vertArea := h * th
	vertOwn := th * math.Pow(h, 3) / 12
	vert := vertOwn + vertArea*math.Pow(h/2-yBar, 2)

	horizArea := b * th
	horizOwn := b * math.Pow(th, 3) / 12
	horiz := horizOwn + horizArea*math.Pow(yBar-th/2, 2)

	return vert + horiz
}
