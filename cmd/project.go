package cmd

import (
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project file import and batch calculation",
	Long: `Import calculator project files and compute every component in
them.

A project file lists components with their profile type, dimensions and
material, in JSON or XML form:

{
  "name": "Workshop Frame",
  "unit": "mm",
  "components": [
    {
      "name": "main chord",
      "profile": "round_tube",
      "material": "steel S355",
      "dimensions": {"diameter": 100, "thickness": 5}
    }
  ]
}

Subcommands:
  import - Import a project file and compute its components`,
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
