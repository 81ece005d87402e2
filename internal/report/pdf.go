// Package report exports computed section properties as PDF calculation
// reports and XLSX property tables.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gosection/internal/profile"
)

// Entry is one computed profile in a report.
type Entry struct {
	Name       string
	Profile    profile.Type
	Dimensions profile.Dimensions // mm
	Material   string
	Density    float64 // kg/m³
	Properties *profile.Properties
	Weight     float64 // kg/m
}

// WritePDF writes a calculation report with one block per entry.
func WritePDF(path, title string, entries []Entry) error {
	if title == "" {
		title = "Section Properties Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Profiles: %d", len(entries)))
	pdf.Ln(10)

	for i, e := range entries {
		if pdf.GetY() > 240 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 12)
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("Profile %d", i+1)
		}
		pdf.Cell(0, 8, fmt.Sprintf("%s  (%s)", name, e.Profile))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "", 10)
		for _, d := range sortedDimensions(e.Dimensions) {
			pdf.Cell(0, 5, fmt.Sprintf("    %s = %g mm", d.name, d.value))
			pdf.Ln(5)
		}
		if e.Material != "" {
			pdf.Cell(0, 5, fmt.Sprintf("    material = %s (%.0f kg/m3)", e.Material, e.Density))
			pdf.Ln(5)
		}
		pdf.Ln(2)

		if e.Properties != nil {
			pdf.Cell(0, 5, fmt.Sprintf("    Area            A  = %.3f mm2", e.Properties.Area))
			pdf.Ln(5)
			pdf.Cell(0, 5, fmt.Sprintf("    Inertia         Ix = %.3f mm4", e.Properties.MomentOfInertia))
			pdf.Ln(5)
			pdf.Cell(0, 5, fmt.Sprintf("    Section modulus Sx = %.3f mm3", e.Properties.SectionModulus))
			pdf.Ln(5)
			pdf.Cell(0, 5, fmt.Sprintf("    Gyration radius rx = %.3f mm", e.Properties.RadiusOfGyration))
			pdf.Ln(5)
		}
		if e.Weight > 0 {
			pdf.Cell(0, 5, fmt.Sprintf("    Weight             = %.4f kg/m", e.Weight))
			pdf.Ln(5)
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	return nil
}

type dimension struct {
	name  string
	value float64
}

func sortedDimensions(dims profile.Dimensions) []dimension {
	out := make([]dimension, 0, len(dims))
	for name, value := range dims {
		out = append(out, dimension{name: name, value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
