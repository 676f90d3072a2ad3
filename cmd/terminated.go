package cmd

import (
	"fmt"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagTerminatedLimit int

var terminatedCmd = &cobra.Command{
	Use:   "terminated",
	Short: "States ranked by terminated grants",
	RunE:  runTerminated,
}

func init() {
	terminatedCmd.Flags().IntVarP(&flagTerminatedLimit, "limit", "l", 15, "Number of states to show (0 for all)")
	rootCmd.AddCommand(terminatedCmd)
}

func runTerminated(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	ranking := pipeline.TerminationRanking(result.Records)
	if len(ranking) == 0 {
		fmt.Println("\n  No terminated grants found.")
		return nil
	}
	if flagTerminatedLimit > 0 && len(ranking) > flagTerminatedLimit {
		ranking = ranking[:flagTerminatedLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("TERMINATED GRANTS · %d", model.LastYear)))
	fmt.Println()

	maxVal := float64(ranking[0].Terminated)
	for _, st := range ranking {
		label := fmt.Sprintf("%s (%s)", st.StateName, st.State)
		fmt.Println(cli.RenderHorizontalBar(label, float64(st.Terminated), maxVal, 40))
	}

	stats := pipeline.Summarize(result.Records)
	fmt.Println()
	fmt.Printf("  %s grants terminated nationwide, %s in affected funding.\n",
		cli.FormatNumber(int64(stats.TerminatedGrants)),
		cli.FormatAmount(stats.TerminatedFunding))
	return nil
}
