package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gosection/internal/material"
)

var materialCmd = &cobra.Command{
	Use:   "material",
	Short: "Material library",
	Long: `Inspect the material library used for weight calculations.

The built-in library covers common structural steels, stainless and
aluminum. Additional materials can be loaded from a YAML file named in the
config as materials_file:

  materials:
    - type: steel
      grade: S460
      density: 7850
      yield_strength: 460
      tensile_strength: 540
      elastic_modulus: 210000

Subcommands:
  list - List all materials
  show - Show one material in detail`,
}

func init() {
	rootCmd.AddCommand(materialCmd)
}

// openMaterialStore builds the material store, merging a configured user
// library on top of the built-ins. A broken library file fails the command
// rather than being silently ignored.
func openMaterialStore() (*material.Store, error) {
	store := material.NewStore(nil, logger)

	path := viper.GetString("materials_file")
	if path == "" {
		return store, nil
	}

	extra, err := material.LoadLibrary(path)
	if err != nil {
		return nil, err
	}
	for _, m := range extra {
		if _, err := store.Create(m); err != nil {
			return nil, err
		}
	}
	return store, nil
}
