package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/alexiusacademia/gosection/internal/profile"
)

// ExportImage draws the cross-section outline with its neutral axis and
// saves it to filename. The format follows the extension (.png, .svg,
// .pdf); anything else falls back to PNG.
func ExportImage(t profile.Type, dims profile.Dimensions, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cross-Section: %s", t)
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	outer, inner, err := outlines(t, dims)
	if err != nil {
		return err
	}

	section, err := plotter.NewPolygon(outer)
	if err != nil {
		return err
	}
	section.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	section.LineStyle.Width = vg.Points(2)
	section.LineStyle.Color = color.Black
	p.Add(section)

	if len(inner) >= 3 {
		void, err := plotter.NewPolygon(inner)
		if err != nil {
			return err
		}
		void.Color = color.White
		void.LineStyle.Width = vg.Points(1.5)
		void.LineStyle.Color = color.Black
		p.Add(void)
	}

	width, err := overallWidth(t, dims)
	if err != nil {
		return err
	}
	yBar, err := profile.NeutralAxis(t, dims)
	if err != nil {
		return err
	}

	naLine, err := plotter.NewLine(plotter.XYs{
		{X: -width * 0.1, Y: yBar},
		{X: width * 1.1, Y: yBar},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: width * 1.12, Y: yBar}},
		Labels: []string{fmt.Sprintf("N.A. ȳ=%.1fmm", yBar)},
	})
	if err != nil {
		return err
	}
	p.Add(label)

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	size := 6 * vg.Inch
	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(size, size, filename)
	default:
		return p.Save(size, size, filename+".png")
	}
}

// outlines builds the outer boundary polygon and, for hollow sections, the
// inner void polygon. Coordinates are mm, origin at the bottom-left of the
// bounding box.
func outlines(t profile.Type, dims profile.Dimensions) (outer, inner plotter.XYs, err error) {
	switch t {
	case profile.RoundTube:
		r := dims[profile.DimDiameter] / 2
		rIn := r - dims[profile.DimThickness]
		return circle(r, r, r), circle(r, r, rIn), nil

	case profile.SquareTube:
		w, th := dims[profile.DimWidth], dims[profile.DimThickness]
		return rect(0, 0, w, w), rect(th, th, w-th, w-th), nil

	case profile.RectangularTube:
		w, h, th := dims[profile.DimWidth], dims[profile.DimHeight], dims[profile.DimThickness]
		return rect(0, 0, w, h), rect(th, th, w-th, h-th), nil

	case profile.Angle:
		w, h, th := dims[profile.DimWidth], dims[profile.DimHeight], dims[profile.DimThickness]
		outer = plotter.XYs{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: th},
			{X: th, Y: th}, {X: th, Y: h}, {X: 0, Y: h},
		}
		return outer, nil, nil

	case profile.Channel:
		h, th := dims[profile.DimHeight], dims[profile.DimThickness]
		fw := dims[profile.DimFlangeWidth]
		w := th + fw
		outer = plotter.XYs{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: th},
			{X: th, Y: th}, {X: th, Y: h - th}, {X: w, Y: h - th},
			{X: w, Y: h}, {X: 0, Y: h},
		}
		return outer, nil, nil

	case profile.IBeam:
		w, h := dims[profile.DimWidth], dims[profile.DimHeight]
		tw, tf := dims[profile.DimWebThickness], dims[profile.DimFlangeThickness]
		left, right := w/2-tw/2, w/2+tw/2
		outer = plotter.XYs{
			{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: tf},
			{X: right, Y: tf}, {X: right, Y: h - tf}, {X: w, Y: h - tf},
			{X: w, Y: h}, {X: 0, Y: h}, {X: 0, Y: h - tf},
			{X: left, Y: h - tf}, {X: left, Y: tf}, {X: 0, Y: tf},
		}
		return outer, nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported profile type %q", t)
	}
}

func rect(x0, y0, x1, y1 float64) plotter.XYs {
	return plotter.XYs{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
}

func circle(cx, cy, r float64) plotter.XYs {
	const segments = 64
	pts := make(plotter.XYs, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		pts[i] = plotter.XY{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	return pts
}
