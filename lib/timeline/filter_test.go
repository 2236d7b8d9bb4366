package timeline

import (
	"testing"
	"time"

	"freegames-backend/lib/dataset"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func game(id int64, name, date string) dataset.GameRecord {
	return dataset.GameRecord{Id: id, Name: name, FirstFreeDate: date}
}

func names(games []dataset.GameRecord) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Name
	}
	return out
}

func TestApplyYearFilter(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Alpha", "2019-06-01"),
		game(2, "Beta", "2020-01-15"),
		game(3, "Gamma", "2020-12-25"),
	}

	out := Apply(games, FilterState{Year: "2020", Sort: SortNewest}, time.UTC)
	diff := cmp.Diff([]string{"Gamma", "Beta"}, names(out))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestApplySearch(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "SimCity", ""),
		game(2, "Portal", ""),
		game(3, "Simon", ""),
	}

	out := Apply(games, FilterState{Search: "sim", Year: YearAll, Sort: SortNewest}, time.UTC)
	// all dates are equally invalid so the stable sort keeps the
	// records' original relative order
	diff := cmp.Diff([]string{"SimCity", "Simon"}, names(out))
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestApplySearchTrimsAndIgnoresCase(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Celeste", "2019-08-29"),
		game(2, "Control", "2021-06-10"),
	}

	out := Apply(games, FilterState{Search: "  CELESTE  ", Year: YearAll, Sort: SortNewest}, time.UTC)
	require.Equal(t, []string{"Celeste"}, names(out))
}

func TestApplyIdempotent(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Alpha", "2019-06-01"),
		game(2, "Beta", "2020-01-15"),
		game(3, "Gamma", "not-a-date"),
		game(4, "Delta", "2020-12-25"),
	}

	for _, state := range []FilterState{
		{Year: YearAll, Sort: SortNewest},
		{Year: "2020", Sort: SortOldest},
		{Search: "a", Year: YearAll, Sort: SortAlpha},
		{Year: YearAll, Sort: SortRating},
	} {
		once := Apply(games, state, time.UTC)
		twice := Apply(once, state, time.UTC)
		diff := cmp.Diff(once, twice)
		if diff != "" {
			t.Fatalf("state %+v not idempotent: %s", state, diff)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Alpha", "2019-06-01"),
		game(2, "Beta", "2020-01-15"),
	}

	Apply(games, FilterState{Year: YearAll, Sort: SortOldest}, time.UTC)
	require.Equal(t, []string{"Alpha", "Beta"}, names(games))
}

func TestSortNewestPutsMalformedDatesLast(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Broken", "????"),
		game(2, "Old", "2018-05-01"),
		game(3, "New", "2024-02-01"),
	}

	out := Apply(games, FilterState{Year: YearAll, Sort: SortNewest}, time.UTC)
	require.Equal(t, []string{"New", "Old", "Broken"}, names(out))

	out = Apply(games, FilterState{Year: YearAll, Sort: SortOldest}, time.UTC)
	require.Equal(t, []string{"Broken", "Old", "New"}, names(out))
}

func TestYearFilterDropsMalformedDates(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Broken", "2020-13-45"),
		game(2, "Kept", "2020-03-19"),
	}

	out := Apply(games, FilterState{Year: "2020", Sort: SortNewest}, time.UTC)
	require.Equal(t, []string{"Kept"}, names(out))

	// but the unfiltered set still contains them
	out = Apply(games, FilterState{Year: YearAll, Sort: SortNewest}, time.UTC)
	require.Len(t, out, 2)
}

func TestSortAlpha(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "cherry", ""),
		game(2, "Apple", ""),
		game(3, "banana", ""),
	}

	out := Apply(games, FilterState{Year: YearAll, Sort: SortAlpha}, time.UTC)
	require.Equal(t, []string{"Apple", "banana", "cherry"}, names(out))
}

func TestSortRating(t *testing.T) {
	games := []dataset.GameRecord{
		{Id: 1, Name: "Unrated", Rating: 0},
		{Id: 2, Name: "Great", Rating: 4.8},
		{Id: 3, Name: "Fine", Rating: 3.2},
		{Id: 4, Name: "AlsoUnrated"},
	}

	out := Apply(games, FilterState{Year: YearAll, Sort: SortRating}, time.UTC)
	require.Equal(t, []string{"Great", "Fine", "Unrated", "AlsoUnrated"}, names(out))
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	games := []dataset.GameRecord{
		{Id: 1, Name: "First", Rating: 4, FirstFreeDate: "2022-01-06"},
		{Id: 2, Name: "Second", Rating: 4, FirstFreeDate: "2022-01-06"},
		{Id: 3, Name: "Third", Rating: 4, FirstFreeDate: "2022-01-06"},
	}

	for _, order := range []SortOrder{SortNewest, SortOldest, SortRating} {
		out := Apply(games, FilterState{Year: YearAll, Sort: order}, time.UTC)
		require.Equal(t, []string{"First", "Second", "Third"}, names(out), "order %s", order)
	}
}

func TestUnknownSortFallsBackToNewest(t *testing.T) {
	games := []dataset.GameRecord{
		game(1, "Old", "2018-05-01"),
		game(2, "New", "2024-02-01"),
	}

	out := Apply(games, FilterState{Year: YearAll, Sort: SortOrder("definitely-not-a-sort")}, time.UTC)
	require.Equal(t, []string{"New", "Old"}, names(out))
}
