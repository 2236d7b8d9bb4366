package commands

import (
	"os"

	"freegames-backend/lib/serviceutil"
	"freegames-backend/lib/timeline"
	"freegames-backend/lib/timezone"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(upcomingCmd)
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "Prints current and announced giveaways with their countdowns.",
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to load dataset", err)
		}
		now := timezone.Now()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Game", "Status"})
		for _, g := range snap.CurrentGames {
			t.AppendRow(table.Row{g.Name, timeline.FormatRemaining(now, g.EndDate, timezone.Location)})
		}
		for _, g := range snap.UpcomingGames {
			t.AppendRow(table.Row{g.Name, timeline.FormatUntilStart(now, g.StartDate, timezone.Location)})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
