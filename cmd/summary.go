package cmd

import (
	"fmt"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Dataset-wide totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	if len(result.Records) == 0 {
		fmt.Println("\n  No grants found in the data directory.")
		return nil
	}

	stats := pipeline.Summarize(result.Records)

	fmt.Println()
	fmt.Println(cli.RenderTitle("NSF GRANT AWARDS"))
	fmt.Println()

	termPct := 0.0
	if stats.TotalGrants > 0 {
		termPct = float64(stats.TerminatedGrants) / float64(stats.TotalGrants) * 100
	}

	rows := [][]string{
		{"Grants", cli.FormatNumber(int64(stats.TotalGrants))},
		{"Total Funding", cli.FormatAmount(stats.TotalFunding)},
		{"States", cli.FormatNumber(int64(stats.States))},
		{"Main Directorates", cli.FormatNumber(int64(stats.Directorates))},
		{"---"},
		{"Terminated", fmt.Sprintf("%s  (%s)", cli.FormatNumber(int64(stats.TerminatedGrants)), cli.FormatPercent(termPct))},
		{"Terminated Funding", cli.FormatMillions(stats.TerminatedFunding)},
	}

	fmt.Println(cli.RenderTable(cli.Table{Rows: rows}))

	// Active-by-year trend
	values := make([]float64, len(stats.ActiveByYear))
	for i, yc := range stats.ActiveByYear {
		values[i] = float64(yc.Count)
	}
	fmt.Printf("  Active by year  %s", cli.RenderSparkline(values))
	for _, yc := range stats.ActiveByYear {
		fmt.Printf("  %s:%s", cli.FormatYear(yc.Year), cli.FormatNumber(int64(yc.Count)))
	}
	fmt.Println()

	if !result.Report.Empty() {
		fmt.Println()
		fmt.Printf("  %d records skipped during cleaning. Run `nsfgrants report` for details.\n",
			result.Report.SkippedRecords())
	}
	return nil
}
