package cmd

import (
	"fmt"
	"path/filepath"

	"nsfgrants/internal/source"

	"github.com/spf13/cobra"
)

var flagCleanOutput string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Run the pipeline and export the cleaned dataset as CSV",
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&flagCleanOutput, "output", "o", "", "Output path (default: clean_output from config, inside the data dir)")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	out := flagCleanOutput
	if out == "" {
		out = filepath.Join(flagDataDir, cfg.Files.CleanOutput)
	}

	if err := source.WriteCleanCSV(result.Records, out); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	fmt.Printf("  Wrote %d grants to %s\n", len(result.Records), out)
	if !result.Report.Empty() {
		fmt.Printf("  %d records skipped during cleaning. Run `nsfgrants report` for details.\n",
			result.Report.SkippedRecords())
	}
	return nil
}
