package material

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// libraryFile is the YAML shape of a user material library.
type libraryFile struct {
	Materials []Material `yaml:"materials"`
}

// LoadLibrary reads a YAML material library file and returns its validated
// materials. A library with any invalid entry is rejected as a whole.
func LoadLibrary(path string) ([]Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open material library: %w", err)
	}
	defer f.Close()

	return LoadLibraryFromReader(f)
}

// LoadLibraryFromReader decodes a material library from an io.Reader.
func LoadLibraryFromReader(r io.Reader) ([]Material, error) {
	var lib libraryFile
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&lib); err != nil {
		return nil, fmt.Errorf("failed to decode material library YAML: %w", err)
	}
	if len(lib.Materials) == 0 {
		return nil, fmt.Errorf("material library contains no materials")
	}
	for i, m := range lib.Materials {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("material %d: %w", i+1, err)
		}
	}
	return lib.Materials, nil
}
