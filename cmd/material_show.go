package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/units"
)

var showWeightUnit string

var materialShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one material in detail",
	Long: `Show a material's full property set.

Example:
  gosection material show "steel S355"
  gosection material show "aluminum 6061-T6" --weight-unit lb`,
	Args: cobra.ExactArgs(1),
	RunE: runMaterialShow,
}

func init() {
	materialCmd.AddCommand(materialShowCmd)

	materialShowCmd.Flags().StringVar(&showWeightUnit, "weight-unit", "kg", "Unit for the density display")
}

func runMaterialShow(cmd *cobra.Command, args []string) error {
	store, err := openMaterialStore()
	if err != nil {
		return err
	}

	rec, err := store.GetByName(args[0])
	if err != nil {
		return err
	}

	density, err := units.Convert(rec.Density, "kg", showWeightUnit, units.Weight)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material:\t%s\n", rec.Name())
	fmt.Fprintf(w, "  Type:\t%s\n", rec.Type)
	fmt.Fprintf(w, "  Grade:\t%s\n", rec.Grade)
	fmt.Fprintf(w, "  Density:\t%.3f %s/m³\n", density, showWeightUnit)
	fmt.Fprintf(w, "  Yield strength:\t%.0f MPa\n", rec.YieldStrength)
	fmt.Fprintf(w, "  Tensile strength:\t%.0f MPa\n", rec.TensileStrength)
	fmt.Fprintf(w, "  Elastic modulus:\t%.0f MPa\n", rec.ElasticModulus)
	w.Flush()
	fmt.Println()
	return nil
}
