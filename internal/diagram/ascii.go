// Package diagram renders profile cross-sections: an ASCII sketch for the
// terminal and a plot image export for files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosection/internal/profile"
)

// Grid size of the ASCII sketch. Columns are doubled against rows to
// compensate for terminal character aspect.
const (
	asciiRows = 18
	asciiCols = 36
)

// DrawASCII renders a proportional cross-section sketch for a validated
// dimension set, with the neutral axis marked.
func DrawASCII(t profile.Type, dims profile.Dimensions) (string, error) {
	width, err := overallWidth(t, dims)
	if err != nil {
		return "", err
	}
	height, err := profile.OverallHeight(t, dims)
	if err != nil {
		return "", err
	}
	yBar, err := profile.NeutralAxis(t, dims)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  CROSS-SECTION: %s (%.0f × %.0f mm)\n", t, width, height))
	sb.WriteString("  " + strings.Repeat("─", asciiCols+2) + "\n")

	naRow := asciiRows - 1 - int(yBar/height*float64(asciiRows-1)+0.5)
	if naRow < 0 {
		naRow = 0
	}
	if naRow >= asciiRows {
		naRow = asciiRows - 1
	}

	for row := 0; row < asciiRows; row++ {
		sb.WriteString("  ")
		// Row 0 is the top face of the section.
		y := height * (float64(asciiRows-1-row) + 0.5) / float64(asciiRows)
		for col := 0; col < asciiCols; col++ {
			x := width * (float64(col) + 0.5) / float64(asciiCols)
			if isSolid(t, dims, x, y) {
				sb.WriteString("░")
			} else {
				sb.WriteString(" ")
			}
		}
		if row == naRow {
			sb.WriteString(fmt.Sprintf("  ◄─ N.A. at ȳ = %.1f mm", yBar))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("  " + strings.Repeat("─", asciiCols+2) + "\n")
	return sb.String(), nil
}

// DrawSummaryBox frames a result summary with a double border.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// overallWidth returns the drawn width of the section.
func overallWidth(t profile.Type, dims profile.Dimensions) (float64, error) {
	switch t {
	case profile.RoundTube:
		return dims[profile.DimDiameter], nil
	case profile.SquareTube, profile.RectangularTube, profile.Angle, profile.IBeam:
		return dims[profile.DimWidth], nil
	case profile.Channel:
		return dims[profile.DimThickness] + dims[profile.DimFlangeWidth], nil
	default:
		return 0, fmt.Errorf("unsupported profile type %q", t)
	}
}

// isSolid reports whether the point (x from left, y from bottom, mm) lies
// in the material of the cross-section.
func isSolid(t profile.Type, dims profile.Dimensions, x, y float64) bool {
	switch t {
	case profile.RoundTube:
		r := dims[profile.DimDiameter] / 2
		rIn := r - dims[profile.DimThickness]
		dx, dy := x-r, y-r
		d2 := dx*dx + dy*dy
		return d2 <= r*r && d2 >= rIn*rIn
	case profile.SquareTube:
		w, th := dims[profile.DimWidth], dims[profile.DimThickness]
		return inBox(x, y, w, w) && !inInnerBox(x, y, w, w, th)
	case profile.RectangularTube:
		w, h, th := dims[profile.DimWidth], dims[profile.DimHeight], dims[profile.DimThickness]
		return inBox(x, y, w, h) && !inInnerBox(x, y, w, h, th)
	case profile.Angle:
		w, h, th := dims[profile.DimWidth], dims[profile.DimHeight], dims[profile.DimThickness]
		return inBox(x, y, w, h) && (x <= th || y <= th)
	case profile.Channel:
		h, th := dims[profile.DimHeight], dims[profile.DimThickness]
		fw := dims[profile.DimFlangeWidth]
		if !inBox(x, y, th+fw, h) {
			return false
		}
		return x <= th || y <= th || y >= h-th
	case profile.IBeam:
		w, h := dims[profile.DimWidth], dims[profile.DimHeight]
		tw, tf := dims[profile.DimWebThickness], dims[profile.DimFlangeThickness]
		if !inBox(x, y, w, h) {
			return false
		}
		if y <= tf || y >= h-tf {
			return true
		}
		return x >= w/2-tw/2 && x <= w/2+tw/2
	default:
		return false
	}
}

func inBox(x, y, w, h float64) bool {
	return x >= 0 && x <= w && y >= 0 && y <= h
}

func inInnerBox(x, y, w, h, th float64) bool {
	return x > th && x < w-th && y > th && y < h-th
}
