package material

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLibrary = `
materials:
  - type: steel
    grade: S460
    density: 7850
    yield_strength: 460
    tensile_strength: 540
    elastic_modulus: 210000
  - type: titanium
    grade: Grade5
    density: 4430
    yield_strength: 880
    tensile_strength: 950
    elastic_modulus: 113800
`

func TestLoadLibraryFromReader(t *testing.T) {
	materials, err := LoadLibraryFromReader(strings.NewReader(sampleLibrary))
	require.NoError(t, err)
	require.Len(t, materials, 2)

	assert.Equal(t, "steel S460", materials[0].Name())
	assert.InDelta(t, 4430, materials[1].Density, 1e-9)
}

func TestLoadLibraryFromReader_RejectsInvalidEntries(t *testing.T) {
	bad := `
materials:
  - type: steel
    grade: S460
    density: 0
`
	_, err := LoadLibraryFromReader(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")
}

func TestLoadLibraryFromReader_RejectsEmpty(t *testing.T) {
	_, err := LoadLibraryFromReader(strings.NewReader("materials: []"))
	assert.Error(t, err)
}

func TestLoadLibrary_MissingFile(t *testing.T) {
	_, err := LoadLibrary("/no/such/materials.yaml")
	assert.Error(t, err)
}
