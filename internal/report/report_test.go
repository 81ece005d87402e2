package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gosection/internal/profile"
)

func sampleEntries() []Entry {
	return []Entry{
		{
			Name:    "chord",
			Profile: profile.RoundTube,
			Dimensions: profile.Dimensions{
				profile.DimDiameter:  100,
				profile.DimThickness: 5,
			},
			Material: "steel S235",
			Density:  7850,
			Properties: &profile.Properties{
				Area:             1492.257,
				MomentOfInertia:  1688010.958,
				SectionModulus:   33760.219,
				RadiusOfGyration: 33.634,
			},
			Weight: 11.714,
		},
		{
			Name:    "post",
			Profile: profile.SquareTube,
			Dimensions: profile.Dimensions{
				profile.DimWidth:     100,
				profile.DimThickness: 5,
			},
			Properties: &profile.Properties{Area: 1900},
		},
	}
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")

	require.NoError(t, WritePDF(path, "Truss Calculation", sampleEntries()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	head := make([]byte, 5)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = f.Read(head)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(head))
}

func TestWritePDF_EmptyTitleAndEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, WritePDF(path, "", nil))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.xlsx")

	require.NoError(t, WriteXLSX(path, sampleEntries()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, xlsxHeader, rows[0])
	assert.Equal(t, "chord", rows[1][0])
	assert.Equal(t, "round_tube", rows[1][1])
	assert.Equal(t, "1492.257", rows[1][3])
	assert.Equal(t, "11.714", rows[1][7])
	assert.Equal(t, "post", rows[2][0])
}

func TestWriteXLSX_NilPropertiesRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.xlsx")

	entries := []Entry{{Name: "raw", Profile: profile.Angle}}
	require.NoError(t, WriteXLSX(path, entries))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	area, err := f.GetCellValue(sheetName, "D2")
	require.NoError(t, err)
	assert.Equal(t, "0", area)
}
