package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gosection/internal/diagram"
	"github.com/alexiusacademia/gosection/internal/material"
	"github.com/alexiusacademia/gosection/internal/profile"
	"github.com/alexiusacademia/gosection/internal/report"
	"github.com/alexiusacademia/gosection/internal/units"
)

var (
	calcType     string
	calcDims     dimensionFlags
	calcUnit     string
	calcMaterial string
	calcDensity  float64
	calcSketch   bool
	calcImage    string
	calcReport   string
)

var profileCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute section properties of a profile",
	Long: `Compute area, moment of inertia (Ix), section modulus (Sx), radius
of gyration and weight per unit length for a profile.

Dimensions are validated before calculation; an invalid dimension set is
rejected with the full list of problems.

Examples:
  # 100x5 round tube in mm, default material
  gosection profile calc --type round_tube --diameter 100 --thickness 5

  # I-beam with an S355 material and a PDF report
  gosection profile calc --type i_beam --width 150 --height 300 \
    --web-thickness 8 --flange-thickness 12 --material "steel S355" \
    --report beam.pdf

  # Inch input, cross-section sketch
  gosection profile calc --type square_tube --width 4 --thickness 0.25 \
    --unit in --sketch`,
	RunE: runProfileCalc,
}

func init() {
	profileCmd.AddCommand(profileCalcCmd)

	profileCalcCmd.Flags().StringVarP(&calcType, "type", "t", "", "Profile type [required]")
	calcDims.register(profileCalcCmd.Flags())

	profileCalcCmd.Flags().StringVarP(&calcUnit, "unit", "u", "", "Input length unit (default from config, mm)")
	profileCalcCmd.Flags().StringVarP(&calcMaterial, "material", "m", "", "Material name, e.g. \"steel S355\"")
	profileCalcCmd.Flags().Float64Var(&calcDensity, "density", 0, "Material density in kg/m³ (overrides --material)")
	profileCalcCmd.Flags().BoolVar(&calcSketch, "sketch", false, "Print an ASCII cross-section sketch")
	profileCalcCmd.Flags().StringVar(&calcImage, "image", "", "Export a cross-section diagram (.png/.svg/.pdf)")
	profileCalcCmd.Flags().StringVar(&calcReport, "report", "", "Export a PDF calculation report")

	profileCalcCmd.MarkFlagRequired("type")
}

func runProfileCalc(cmd *cobra.Command, args []string) error {
	t, err := profile.ParseType(calcType)
	if err != nil {
		return err
	}

	unit := calcUnit
	if unit == "" {
		unit = viper.GetString("default_unit")
	}

	dims, err := units.ConvertDimensions(calcDims.collect(cmd.Flags()), unit, "mm")
	if err != nil {
		return err
	}

	result := profile.Validate(t, dims)
	printValidation(result)
	if !result.IsValid {
		return fmt.Errorf("dimension set is not valid for %s", t)
	}

	materialName, density := resolveDensity()
	props, err := profile.Calculate(t, dims)
	if err != nil {
		return err
	}
	weight, err := profile.WeightPerLength(t, dims, density)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PROFILE SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Profile type:\t%s\n", t)
	for _, name := range dimensionOrder(t) {
		if value, ok := dims[name]; ok {
			fmt.Fprintf(w, "  %s:\t%.2f mm\n", name, value)
		}
	}
	fmt.Fprintf(w, "  Material:\t%s\n", materialName)
	fmt.Fprintf(w, "  Density:\t%.0f kg/m³\n", density)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Area (A):\t%.3f mm²\n", props.Area)
	fmt.Fprintf(w, "  Moment of inertia (Ix):\t%.3f mm⁴\n", props.MomentOfInertia)
	fmt.Fprintf(w, "  Section modulus (Sx):\t%.3f mm³\n", props.SectionModulus)
	fmt.Fprintf(w, "  Radius of gyration (rx):\t%.3f mm\n", props.RadiusOfGyration)
	fmt.Fprintf(w, "  Weight:\t%.4f kg/m\n", weight)
	w.Flush()

	if calcSketch {
		sketch, err := diagram.DrawASCII(t, dims)
		if err != nil {
			return err
		}
		fmt.Println(sketch)
	}

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("SUMMARY", []string{
		fmt.Sprintf("A  = %.1f mm²", props.Area),
		fmt.Sprintf("Ix = %.1f mm⁴", props.MomentOfInertia),
		fmt.Sprintf("Sx = %.1f mm³", props.SectionModulus),
		fmt.Sprintf("W  = %.3f kg/m", weight),
	}))

	if calcImage != "" {
		if err := diagram.ExportImage(t, dims, calcImage); err != nil {
			return err
		}
		fmt.Printf("\n  Cross-section diagram saved to %s\n", calcImage)
	}

	if calcReport != "" {
		entry := report.Entry{
			Profile:    t,
			Dimensions: dims,
			Material:   materialName,
			Density:    density,
			Properties: props,
			Weight:     weight,
		}
		if err := report.WritePDF(calcReport, "", []report.Entry{entry}); err != nil {
			return err
		}
		fmt.Printf("\n  Calculation report saved to %s\n", calcReport)
	}

	return nil
}

// resolveDensity picks the density source: explicit --density wins, then
// --material, then the configured default_density or default material.
func resolveDensity() (string, float64) {
	if calcDensity > 0 {
		return "(explicit density)", calcDensity
	}
	if calcMaterial == "" {
		if d := viper.GetFloat64("default_density"); d > 0 {
			return "(configured density)", d
		}
	}

	name := calcMaterial
	if name == "" {
		name = viper.GetString("default_material")
	}

	store := material.NewStore(nil, logger)
	if rec, err := store.GetByName(name); err == nil {
		return rec.Name(), rec.Density
	}
	return fmt.Sprintf("%s (unknown, steel density assumed)", name), material.DefaultDensity
}

// dimensionOrder lists the display order of dimensions for a type.
func dimensionOrder(t profile.Type) []string {
	spec, err := profile.SpecFor(t)
	if err != nil {
		return nil
	}
	return append(append([]string{}, spec.Required...), spec.Optional...)
}

func printValidation(result *profile.ValidationResult) {
	for _, warning := range result.Warnings {
		fmt.Printf("  ⚠ %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Printf("  ✗ %s\n", e)
	}
}
