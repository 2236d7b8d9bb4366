package timeline

import (
	"sort"
	"strconv"
	"time"

	"freegames-backend/lib/dataset"
)

type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// ChartData feeds the per-year bar chart. Years are always ascending on
// the axis, independent of whatever sort order the list is in.
type ChartData struct {
	Years []YearCount `json:"years"`
}

// ChartFromSummary builds the initial chart from the precomputed
// whole-dataset summary in the artifact.
func ChartFromSummary(gamesByYear map[string]int) ChartData {
	years := make([]string, 0, len(gamesByYear))
	for y := range gamesByYear {
		years = append(years, y)
	}
	sort.Slice(years, func(i, j int) bool {
		return yearValue(years[i]) < yearValue(years[j])
	})

	out := ChartData{Years: make([]YearCount, 0, len(years))}
	for _, y := range years {
		out.Years = append(out.Years, YearCount{Year: y, Count: gamesByYear[y]})
	}
	return out
}

// ChartFromGames recounts per-year totals from whatever list is currently
// displayed. Records without a parsable date have no year to chart and
// are skipped.
func ChartFromGames(games []dataset.GameRecord, loc *time.Location) ChartData {
	byYear := map[string]int{}
	for _, g := range games {
		t, ok := ParseDate(g.FirstFreeDate, loc)
		if !ok {
			continue
		}
		byYear[strconv.Itoa(t.Year())]++
	}
	return ChartFromSummary(byYear)
}

func yearValue(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
