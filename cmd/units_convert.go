package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/units"
)

var (
	convertFrom string
	convertTo   string
	convertKind string
)

var unitsConvertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert a value between two units",
	Long: `Convert a scalar value between two units of the same kind.

Examples:
  gosection units convert 1000 --from mm --to m
  gosection units convert 1 --from in --to mm
  gosection units convert 2.5 --from kg --to lb --kind weight`,
	Args: cobra.ExactArgs(1),
	RunE: runUnitsConvert,
}

func init() {
	unitsCmd.AddCommand(unitsConvertCmd)

	unitsConvertCmd.Flags().StringVar(&convertFrom, "from", "", "Source unit [required]")
	unitsConvertCmd.Flags().StringVar(&convertTo, "to", "", "Target unit [required]")
	unitsConvertCmd.Flags().StringVar(&convertKind, "kind", "length", "Unit kind: length, weight, area, volume")

	unitsConvertCmd.MarkFlagRequired("from")
	unitsConvertCmd.MarkFlagRequired("to")
}

func runUnitsConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("value %q is not numeric", args[0])
	}

	result, err := units.Convert(value, convertFrom, convertTo, units.Kind(convertKind))
	if err != nil {
		return err
	}

	fmt.Printf("%g %s = %g %s\n", value, convertFrom, result, convertTo)
	return nil
}
