package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gosection/internal/profile"
	"github.com/alexiusacademia/gosection/internal/units"
)

var (
	checkType string
	checkDims dimensionFlags
	checkUnit string
)

var profileCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a dimension set without computing",
	Long: `Run the dimension validator for a profile type and print every
error and warning it finds, in discovery order.

Examples:
  gosection profile check --type round_tube --diameter 100 --thickness 60
  gosection profile check --type i_beam --width 150 --height 300`,
	RunE: runProfileCheck,
}

func init() {
	profileCmd.AddCommand(profileCheckCmd)

	profileCheckCmd.Flags().StringVarP(&checkType, "type", "t", "", "Profile type [required]")
	checkDims.register(profileCheckCmd.Flags())
	profileCheckCmd.Flags().StringVarP(&checkUnit, "unit", "u", "", "Input length unit (default from config, mm)")

	profileCheckCmd.MarkFlagRequired("type")
}

func runProfileCheck(cmd *cobra.Command, args []string) error {
	unit := checkUnit
	if unit == "" {
		unit = viper.GetString("default_unit")
	}

	dims, err := units.ConvertDimensions(checkDims.collect(cmd.Flags()), unit, "mm")
	if err != nil {
		return err
	}

	// The validator handles unknown types itself; no ParseType here so the
	// short-circuit error path is exercised the same way the UI would.
	result := profile.Validate(profile.Type(checkType), dims)

	fmt.Println()
	if result.IsValid {
		fmt.Printf("  ✓ %s dimension set is valid", checkType)
		if len(result.Warnings) > 0 {
			fmt.Printf(" (%d warning(s))", len(result.Warnings))
		}
		fmt.Println()
	} else {
		fmt.Printf("  ✗ %s dimension set is NOT valid\n", checkType)
	}
	fmt.Println()
	printValidation(result)

	if !result.IsValid {
		return fmt.Errorf("%d validation error(s)", len(result.Errors))
	}
	return nil
}
