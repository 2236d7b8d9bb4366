package timeline

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"freegames-backend/lib/dataset"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortAlpha  SortOrder = "alpha"
	SortRating SortOrder = "rating"
)

// YearAll disables the year filter.
const YearAll = "all"

// FilterState is the one piece of user-driven state: what the visitor
// typed, which year they picked and how they want the list ordered.
// It round-trips through the URL, so every field tolerates junk input.
type FilterState struct {
	Search string
	Year   string
	Sort   SortOrder
}

func DefaultState() FilterState {
	return FilterState{Year: YearAll, Sort: SortNewest}
}

// Normalize maps missing or unrecognized values onto defaults. State can
// arrive from an untrusted URL, so this never rejects, it only repairs.
func (s FilterState) Normalize() FilterState {
	if s.Year == "" || !isYearString(s.Year) {
		s.Year = YearAll
	}
	switch s.Sort {
	case SortNewest, SortOldest, SortAlpha, SortRating:
	default:
		s.Sort = SortNewest
	}
	return s
}

func (s FilterState) IsDefault() bool {
	d := DefaultState()
	return strings.TrimSpace(s.Search) == "" && s.Year == d.Year && s.Sort == d.Sort
}

func isYearString(s string) bool {
	if s == YearAll {
		return true
	}
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// Apply runs the filter/sort pipeline: search narrowing, then the year
// filter, then a stable sort. Pure, the input slice is never mutated.
//
// Records whose firstFreeDate does not parse are dropped by the year
// filter (they have no provable year) but survive "all", where the date
// sorts as older-than-everything.
func Apply(games []dataset.GameRecord, state FilterState, loc *time.Location) []dataset.GameRecord {
	state = state.Normalize()

	out := make([]dataset.GameRecord, 0, len(games))
	term := strings.ToLower(strings.TrimSpace(state.Search))
	for _, g := range games {
		if term != "" && !strings.Contains(strings.ToLower(g.Name), term) {
			continue
		}
		if state.Year != YearAll {
			t, ok := ParseDate(g.FirstFreeDate, loc)
			if !ok || strconv.Itoa(t.Year()) != state.Year {
				continue
			}
		}
		out = append(out, g)
	}

	sortGames(out, state.Sort, loc)
	return out
}

func sortGames(games []dataset.GameRecord, order SortOrder, loc *time.Location) {
	switch order {
	case SortOldest:
		sortByDate(games, loc, false)
	case SortAlpha:
		coll := collate.New(language.English, collate.Loose)
		sort.SliceStable(games, func(i, j int) bool {
			return coll.CompareString(games[i].Name, games[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].Rating > games[j].Rating
		})
	default: // newest, also the fallback for unknown orders
		sortByDate(games, loc, true)
	}
}

// sortByDate parses each record's firstFreeDate once up front. Malformed
// dates become the zero time, which orders them as the oldest possible
// value without ever failing the comparator.
func sortByDate(games []dataset.GameRecord, loc *time.Location, newestFirst bool) {
	keys := make([]time.Time, len(games))
	for i, g := range games {
		t, _ := ParseDate(g.FirstFreeDate, loc)
		keys[i] = t
	}

	order := make([]int, len(games))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		if newestFirst {
			return keys[order[j]].Before(keys[order[i]])
		}
		return keys[order[i]].Before(keys[order[j]])
	})

	sorted := make([]dataset.GameRecord, len(games))
	for i, idx := range order {
		sorted[i] = games[idx]
	}
	copy(games, sorted)
}
