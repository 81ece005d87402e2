package cmd

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/profile"
	"github.com/alexiusacademia/gosection/internal/sweep"
)

var (
	sweepType  string
	sweepDims  dimensionFlags
	sweepDim   string
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
)

var profileSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Chart section properties while varying one dimension",
	Long: `Vary a single dimension across a range and chart the resulting
area and moment of inertia. Steps that fail validation are skipped.

Examples:
  # How does wall thickness drive the inertia of a 100mm round tube?
  gosection profile sweep --type round_tube --diameter 100 \
    --dim thickness --from 2 --to 20 --steps 30`,
	RunE: runProfileSweep,
}

func init() {
	profileCmd.AddCommand(profileSweepCmd)

	profileSweepCmd.Flags().StringVarP(&sweepType, "type", "t", "", "Profile type [required]")
	sweepDims.register(profileSweepCmd.Flags())
	profileSweepCmd.Flags().StringVar(&sweepDim, "dim", "", "Dimension to vary [required]")
	profileSweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "Range start (mm) [required]")
	profileSweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "Range end (mm) [required]")
	profileSweepCmd.Flags().IntVar(&sweepSteps, "steps", 25, "Number of sweep steps")

	profileSweepCmd.MarkFlagRequired("type")
	profileSweepCmd.MarkFlagRequired("dim")
	profileSweepCmd.MarkFlagRequired("from")
	profileSweepCmd.MarkFlagRequired("to")
}

func runProfileSweep(cmd *cobra.Command, args []string) error {
	t, err := profile.ParseType(sweepType)
	if err != nil {
		return err
	}

	series, err := sweep.Run(t, sweepDims.collect(cmd.Flags()), sweepDim, sweepFrom, sweepTo, sweepSteps)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  %s: %s from %g to %g mm (%d valid steps",
		t, series.Dimension, sweepFrom, sweepTo, len(series.Values))
	if series.Skipped > 0 {
		fmt.Printf(", %d skipped as invalid", series.Skipped)
	}
	fmt.Println(")")

	fmt.Println()
	fmt.Println("  AREA (mm²)")
	fmt.Println(asciigraph.Plot(series.Area,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(3)))

	fmt.Println()
	fmt.Println("  MOMENT OF INERTIA Ix (mm⁴)")
	fmt.Println(asciigraph.Plot(series.Inertia,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Offset(3)))

	fmt.Println()
	return nil
}
