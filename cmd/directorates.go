package cmd

import (
	"fmt"
	"sort"

	"nsfgrants/internal/cli"
	"nsfgrants/internal/model"
	"nsfgrants/internal/pipeline"

	"github.com/spf13/cobra"
)

var directoratesCmd = &cobra.Command{
	Use:   "directorates",
	Short: "Per-directorate termination rates",
	RunE:  runDirectorates,
}

func init() {
	rootCmd.AddCommand(directoratesCmd)
}

func runDirectorates(_ *cobra.Command, _ []string) error {
	result, err := loadData()
	if err != nil {
		return err
	}

	facts := pipeline.ExpandFacts(result.Records)
	stats := pipeline.AggregateDirectorates(facts)

	var rows []model.DirectorateYearStats
	for _, d := range stats {
		if d.Year == model.LastYear {
			rows = append(rows, d)
		}
	}
	if len(rows) == 0 {
		fmt.Println("\n  No directorate activity found.")
		return nil
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TerminatedPct > rows[j].TerminatedPct
	})

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DIRECTORATES · %d", model.LastYear)))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Directorate", "Active", "Terminated", "Term %"},
	}
	for _, d := range rows {
		table.Rows = append(table.Rows, []string{
			d.Directorate,
			cli.FormatNumber(int64(d.ActiveGrants)),
			cli.FormatNumber(int64(d.Terminated)),
			cli.FormatPercent(d.TerminatedPct),
		})
	}

	fmt.Println(cli.RenderTable(table))
	return nil
}
