package commands

import (
	"fmt"

	"freegames-backend/lib/serviceutil"
	"freegames-backend/lib/timeline"
	"freegames-backend/lib/timezone"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates an artifact and reports records the site will degrade on.",
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			serviceutil.Fatal("dataset failed validation", err)
		}

		var badDates, missingImages, unrated int
		for _, g := range snap.AllGames {
			if _, ok := timeline.ParseDate(g.FirstFreeDate, timezone.Location); !ok {
				badDates++
			}
			if g.Image == "" {
				missingImages++
			}
			if g.Rating == 0 {
				unrated++
			}
		}

		fmt.Printf("records:                 %d\n", len(snap.AllGames))
		fmt.Printf("unparsable dates:        %d (excluded from year filters)\n", badDates)
		fmt.Printf("missing images:          %d (placeholder rendered)\n", missingImages)
		fmt.Printf("unrated:                 %d (sort as lowest)\n", unrated)

		tba := 0
		for _, g := range snap.UpcomingGames {
			if g.StartDate == "" {
				tba++
			}
		}
		fmt.Printf("upcoming without dates:  %d (shown as %q)\n", tba, timeline.DateTBA)
	},
}
