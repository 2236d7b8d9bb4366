package timeline

import (
	"testing"
	"time"

	"freegames-backend/lib/dataset"

	"github.com/google/go-cmp/cmp"
)

func TestChartFromSummaryAscending(t *testing.T) {
	chart := ChartFromSummary(map[string]int{
		"2022": 89,
		"2018": 16,
		"2020": 103,
	})

	expect := []YearCount{
		{Year: "2018", Count: 16},
		{Year: "2020", Count: 103},
		{Year: "2022", Count: 89},
	}
	diff := cmp.Diff(expect, chart.Years)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestChartFromGames(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "A", "2020-01-01"),
		game(2, "B", "2020-08-09"),
		game(3, "C", "2019-12-26"),
		game(4, "D", "broken date"),
	}

	chart := ChartFromGames(games, time.UTC)
	expect := []YearCount{
		{Year: "2019", Count: 1},
		{Year: "2020", Count: 2},
	}
	diff := cmp.Diff(expect, chart.Years)
	if diff != "" {
		t.Fatal(diff)
	}
}

// the chart axis stays ascending no matter how the list is sorted
func TestChartOrderIndependentOfSort(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "A", "2022-01-01"),
		game(2, "B", "2018-01-01"),
		game(3, "C", "2020-01-01"),
	}

	for _, order := range []SortOrder{SortNewest, SortOldest, SortAlpha, SortRating} {
		filtered := Apply(games, FilterState{Year: YearAll, Sort: order}, time.UTC)
		chart := ChartFromGames(filtered, time.UTC)
		years := make([]string, len(chart.Years))
		for i, y := range chart.Years {
			years[i] = y.Year
		}
		diff := cmp.Diff([]string{"2018", "2020", "2022"}, years)
		if diff != "" {
			t.Fatalf("order %s: %s", order, diff)
		}
	}
}

func TestChartFromEmpty(t *testing.T) {
	chart := ChartFromGames(nil, time.UTC)
	if len(chart.Years) != 0 {
		t.Fatalf("expected empty chart, got %+v", chart.Years)
	}
}
