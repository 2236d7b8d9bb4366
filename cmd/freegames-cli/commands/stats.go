package commands

import (
	"fmt"
	"os"

	"freegames-backend/lib/serviceutil"
	"freegames-backend/lib/timeline"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints giveaway totals and the per-year breakdown.",
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to load dataset", err)
		}

		s := snap.Statistics
		fmt.Printf("last updated:    %s\n", snap.LastUpdated)
		fmt.Printf("total games:     %d\n", s.TotalGames)
		fmt.Printf("promotions:      %d\n", s.TotalPromotions)
		fmt.Printf("games per week:  %.1f\n", s.AvgGamesPerWeek)
		fmt.Printf("free right now:  %d\n\n", len(snap.CurrentGames))

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Year", "Games"})
		for _, year := range timeline.ChartFromSummary(s.GamesByYear).Years {
			t.AppendRow(table.Row{year.Year, year.Count})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
