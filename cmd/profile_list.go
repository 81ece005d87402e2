package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gosection/internal/profile"
)

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profile types and their dimension requirements",
	Run:   runProfileList,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
}

func runProfileList(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SUPPORTED PROFILE TYPES")
	fmt.Println("═══════════════════════════════════════════════════════════════")

	for _, t := range profile.Types {
		spec, err := profile.SpecFor(t)
		if err != nil {
			continue
		}

		fmt.Printf("\n%s (%s)\n", t, spec.Category)
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Required:\t%s\n", strings.Join(spec.Required, ", "))
		if len(spec.Optional) > 0 {
			fmt.Fprintf(w, "  Optional:\t%s\n", strings.Join(spec.Optional, ", "))
		}
		for _, name := range dimensionOrder(t) {
			if r, ok := spec.Ranges[name]; ok {
				fmt.Fprintf(w, "  Range %s:\t%g – %g mm\n", name, r.Min, r.Max)
			}
		}
		for _, c := range spec.Constraints {
			fmt.Fprintf(w, "  Constraint:\t%s\n", c.Expr)
		}
		w.Flush()
	}
	fmt.Println()
}
