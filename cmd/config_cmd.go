package cmd

import (
	"fmt"
	"strings"

	"nsfgrants/internal/config"
	"nsfgrants/internal/pipeline"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", cfg.General.DataDir)
	fmt.Printf("    Default year:   %d\n", cfg.General.DefaultYear)
	if len(cfg.General.Years) > 0 {
		years := make([]string, len(cfg.General.Years))
		for i, y := range cfg.General.Years {
			years[i] = fmt.Sprintf("%d", y)
		}
		fmt.Printf("    Export years:   %s\n", strings.Join(years, ", "))
	}
	fmt.Println()

	fmt.Println("  [Files]")
	fmt.Printf("    Terminations:  %s\n", cfg.Files.Terminations)
	fmt.Printf("    Election 2020: %s\n", cfg.Files.Election2020)
	fmt.Printf("    Election 2024: %s\n", cfg.Files.Election2024)
	fmt.Printf("    Clean output:  %s\n", cfg.Files.CleanOutput)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Printf("  Cache: %s\n", pipeline.CachePath())
	return nil
}
