package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosection/internal/profile"
)

const sheetName = "Profiles"

var xlsxHeader = []string{
	"Name", "Profile", "Material", "Area (mm2)", "Ix (mm4)", "Sx (mm3)", "rx (mm)", "Weight (kg/m)",
}

// WriteXLSX writes a property table with one row per entry.
func WriteXLSX(path string, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, title := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return err
		}
	}

	for row, e := range entries {
		props := e.Properties
		if props == nil {
			props = &profile.Properties{}
		}
		values := []interface{}{
			e.Name,
			string(e.Profile),
			e.Material,
			round3(props.Area),
			round3(props.MomentOfInertia),
			round3(props.SectionModulus),
			round3(props.RadiusOfGyration),
			round3(e.Weight),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

func round3(v float64) float64 {
	return float64(int64(v*1000+0.5)) / 1000
}
