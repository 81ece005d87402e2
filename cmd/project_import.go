package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/project"
	"github.com/alexiusacademia/gosection/internal/report"
)

var (
	importFile   string
	importXLSX   string
	importReport string
)

var projectImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a project file and compute its components",
	Long: `Parse a JSON or XML project file, validate every component and
compute its section properties. Records that fail validation are skipped
and listed; the rest are computed and can be exported.

Examples:
  gosection project import --file frame.json
  gosection project import --file frame.xml --xlsx frame.xlsx --report frame.pdf`,
	RunE: runProjectImport,
}

func init() {
	projectCmd.AddCommand(projectImportCmd)

	projectImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "Project file (.json or .xml) [required]")
	projectImportCmd.Flags().StringVar(&importXLSX, "xlsx", "", "Export the property table as XLSX")
	projectImportCmd.Flags().StringVar(&importReport, "report", "", "Export a PDF calculation report")

	projectImportCmd.MarkFlagRequired("file")
}

func runProjectImport(cmd *cobra.Command, args []string) error {
	materials, err := openMaterialStore()
	if err != nil {
		return err
	}

	importer := project.NewImporter(materials, logger)
	result, err := importer.ImportFile(importFile)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     PROJECT IMPORT: %s\n", result.Project)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  NAME\tPROFILE\tAREA (mm²)\tIx (mm⁴)\tSx (mm³)\tWEIGHT (kg/m)")
	for _, e := range result.Entries {
		fmt.Fprintf(w, "  %s\t%s\t%.1f\t%.1f\t%.1f\t%.3f\n",
			e.Name, e.Profile,
			e.Properties.Area, e.Properties.MomentOfInertia,
			e.Properties.SectionModulus, e.Weight)
	}
	w.Flush()

	for _, e := range result.Entries {
		for _, warning := range e.Warnings {
			fmt.Printf("  ⚠ %s: %s\n", e.Name, warning)
		}
	}

	fmt.Println()
	fmt.Printf("  Imported %d component(s)", len(result.Entries))
	if result.Skipped > 0 {
		fmt.Printf(", skipped %d:\n", result.Skipped)
		for _, e := range result.Errors {
			fmt.Printf("    ✗ %s\n", e)
		}
	} else {
		fmt.Println()
	}

	if importXLSX != "" || importReport != "" {
		entries := make([]report.Entry, 0, len(result.Entries))
		for _, e := range result.Entries {
			entries = append(entries, report.Entry{
				Name:       e.Name,
				Profile:    e.Profile,
				Dimensions: e.Dimensions,
				Material:   e.Material,
				Density:    e.Density,
				Properties: e.Properties,
				Weight:     e.Weight,
			})
		}
		if importXLSX != "" {
			if err := report.WriteXLSX(importXLSX, entries); err != nil {
				return err
			}
			fmt.Printf("  Property table saved to %s\n", importXLSX)
		}
		if importReport != "" {
			title := fmt.Sprintf("Section Properties Report: %s", result.Project)
			if err := report.WritePDF(importReport, title, entries); err != nil {
				return err
			}
			fmt.Printf("  Calculation report saved to %s\n", importReport)
		}
	}

	fmt.Println()
	return nil
}
