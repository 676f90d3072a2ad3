package cmd

import (
	"fmt"

	"nsfgrants/internal/cli"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Data quality report from the last pipeline run",
	Long:  "Lists unmatched terminations, cross-export amount conflicts, skipped records, and unknown state codes. Implies --no-cache since cached loads carry no report.",
	RunE:  runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	// A cache hit skips the pipeline stages that produce the report
	flagNoCache = true

	result, err := loadData()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DATA QUALITY"))
	fmt.Println()

	rep := result.Report
	if rep.Empty() {
		fmt.Println("  Clean run: every record parsed, matched, and kept.")
		return nil
	}

	for _, line := range rep.Lines() {
		fmt.Println(cli.RenderWarning(line))
	}
	fmt.Println()
	fmt.Printf("  %d grants kept, %d skipped.\n", len(result.Records), rep.SkippedRecords())
	return nil
}
