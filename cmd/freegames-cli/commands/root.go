package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"freegames-backend/lib/dataset"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "freegames-cli",
	Short: "freegames-cli inspects a published free-games dataset artifact.",
}

var dataSource *string

func init() {
	dataSource = rootCmd.PersistentFlags().String(
		"data", "website/data/games.json",
		"Path or URL of the games.json artifact.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSnapshot(ctx context.Context) (*dataset.Snapshot, error) {
	src := *dataSource
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return dataset.Fetch(ctx, src)
	}
	return dataset.LoadFile(src)
}
