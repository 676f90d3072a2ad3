package cmd

import (
	"fmt"
	"sort"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagStatesLimit int

var statesCmd = &cobra.Command{
	Use:   "states",
	Short: "Per-state activity for a year",
	RunE:  runStates,
}

func init() {
	statesCmd.Flags().IntVarP(&flagStatesLimit, "limit", "l", 20, "Number of states to show (0 for all)")
	rootCmd.AddCommand(statesCmd)
}

func runStates(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	facts := pipeline.ExpandFacts(result.Records)
	stats := pipeline.AggregateStates(facts)

	var rows []model.StateYearStats
	for _, s := range stats {
		if s.Year == flagYear {
			rows = append(rows, s)
		}
	}
	if len(rows) == 0 {
		fmt.Printf("\n  No grants active in %d.\n", flagYear)
		return nil
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ActiveGrants > rows[j].ActiveGrants
	})
	if flagStatesLimit > 0 && len(rows) > flagStatesLimit {
		rows = rows[:flagStatesLimit]
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("STATES · %d", flagYear)))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"State", "Active", "Funding", "Terminated", "Term %", "Lean"},
	}
	for _, s := range rows {
		terminated := "-"
		termPct := "-"
		if flagYear == model.LastYear {
			terminated = cli.FormatNumber(int64(s.Terminated))
			termPct = cli.FormatPercent(s.TerminatedPct)
		}
		lean := string(s.Alignment)
		if lean == "" {
			lean = "-"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%s (%s)", s.StateName, s.State),
			cli.FormatNumber(int64(s.ActiveGrants)),
			cli.FormatAmount(s.TotalFunding),
			terminated,
			termPct,
			lean,
		})
	}

	fmt.Println(cli.RenderTable(table))
	return nil
}
