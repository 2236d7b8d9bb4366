package commands

import (
	"fmt"

	"freegames-backend/lib/serviceutil"
	"freegames-backend/lib/timeline"
	"freegames-backend/lib/timezone"

	"github.com/spf13/cobra"
)

var (
	searchFlag *string
	yearFlag   *string
	sortFlag   *string
	pagesFlag  *int
)

func init() {
	searchFlag = timelineCmd.Flags().String("search", "", "Case-insensitive name filter.")
	yearFlag = timelineCmd.Flags().String("year", "all", "Restrict to one calendar year.")
	sortFlag = timelineCmd.Flags().String("sort", "newest", "One of newest|oldest|alpha|rating.")
	pagesFlag = timelineCmd.Flags().Int("pages", 1, "How many load-more batches to print.")
	rootCmd.AddCommand(timelineCmd)
}

var timelineCmd = &cobra.Command{
	Use:   "timeline [--search <term>] [--year <year>] [--sort <order>] [--pages <n>]",
	Short: "Prints the grouped giveaway timeline the way the site renders it.",
	Run: func(cmd *cobra.Command, args []string) {
		snap, err := loadSnapshot(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to load dataset", err)
		}

		state := timeline.FilterState{
			Search: *searchFlag,
			Year:   *yearFlag,
			Sort:   timeline.SortOrder(*sortFlag),
		}.Normalize()

		filtered := timeline.Apply(snap.AllGames, state, timezone.Location)
		cursor := timeline.NewCursor(timeline.Group(filtered, timezone.Location), timeline.DefaultBatchSize)

		if len(filtered) == 0 {
			fmt.Println("no games match the given filters")
			if suggestion := timeline.Suggest(state.Search, snap.AllGames); suggestion != "" {
				fmt.Printf("did you mean %q?\n", suggestion)
			}
			return
		}

		for i := 0; i < *pagesFlag; i++ {
			groups := cursor.Next()
			if groups == nil {
				break
			}
			for _, year := range groups {
				fmt.Printf("== %s (%d games)\n", year.Label(), year.Count)
				for _, month := range year.Months {
					fmt.Printf("  -- %s\n", month.Month)
					for _, g := range month.Games {
						line := "     " + g.Name
						if g.Rating > 0 {
							line += fmt.Sprintf("  (%.1f)", g.Rating)
						}
						fmt.Println(line)
					}
				}
			}
		}

		if cursor.HasMore() {
			fmt.Printf("... %s\n", cursor.Label())
		}
	},
}
