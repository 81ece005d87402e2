package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var materialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all materials in the library",
	RunE:  runMaterialList,
}

func init() {
	materialCmd.AddCommand(materialListCmd)
}

func runMaterialList(cmd *cobra.Command, args []string) error {
	store, err := openMaterialStore()
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tDENSITY (kg/m³)\tYIELD (MPa)\tTENSILE (MPa)\tE (MPa)")
	for _, rec := range store.List() {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.0f\n",
			rec.Name(), rec.Density, rec.YieldStrength, rec.TensileStrength, rec.ElasticModulus)
	}
	w.Flush()
	fmt.Println()
	return nil
}
