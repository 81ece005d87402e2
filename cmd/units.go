package cmd

import (
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Unit conversion between length, weight, area and volume units",
	Long: `Convert values between units of the same kind using fixed factor
tables. Base units are mm (length), kg (weight), mm² (area), mm³ (volume).

Subcommands:
  convert - Convert a value between two units`,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
