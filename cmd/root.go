package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gosection/internal/version"
)

var (
	cfgFile string
	verbose bool

	// logger is Nop unless --verbose is given. Commands that talk to the
	// stores and the importer pass it down.
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gosection",
	Short: "Structural Profile Section Properties Calculator",
	Long: `gosection - Go Structural Profile Calculator

A CLI tool for computing geometric and physical properties of standard
structural profile cross-sections: round, square and rectangular tubes,
angles, channels and I-beams.

This tool helps structural engineers and fabricators compute:
  - Cross-sectional area
  - Moment of inertia about the strong axis (Ix)
  - Section modulus (Sx)
  - Radius of gyration
  - Weight per unit length from the material density

Dimensions are validated against engineering constraints before any
calculation is attempted.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosection v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Structural Profile Calculator                        ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for computing section properties of standard")
		fmt.Println("  structural profiles.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Area, inertia, section modulus and radius of gyration")
		fmt.Println("    • Dimension validation with per-profile geometric rules")
		fmt.Println("    • Built-in material library and weight calculation")
		fmt.Println("    • Unit conversion, project import, PDF/XLSX export")
		fmt.Println()
		fmt.Println("  Use 'gosection --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, setupLogging)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gosection.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// initConfig loads configuration defaults (default_unit, default_material,
// materials_file) from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".gosection")
		}
	}

	viper.SetEnvPrefix("gosection")
	viper.AutomaticEnv()

	viper.SetDefault("default_unit", "mm")
	viper.SetDefault("default_material", "steel S235")
	viper.SetDefault("default_density", 0.0)

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()
}

func setupLogging() {
	if !verbose {
		return
	}
	l, err := zap.NewDevelopment()
	if err == nil {
		logger = l
	}
}
