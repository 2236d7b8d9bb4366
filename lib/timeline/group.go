package timeline

import (
	"sort"
	"strconv"
	"time"

	"freegames-backend/lib/dataset"
)

// MonthGroup holds one month's games in the exact order the pipeline
// produced them. Grouping never re-sorts.
type MonthGroup struct {
	Month time.Month           `json:"month"`
	Games []dataset.GameRecord `json:"games"`
}

type YearGroup struct {
	// zero means the records carried no parsable date; that group always
	// renders last, labelled "Undated"
	Year   int          `json:"year"`
	Months []MonthGroup `json:"months"`
	Count  int          `json:"count"`
}

func (g YearGroup) Label() string {
	if g.Year == 0 {
		return "Undated"
	}
	return strconv.Itoa(g.Year)
}

// Group partitions an already filtered and sorted list into the fixed
// display hierarchy: years descending, months descending within a year
// (December above January), input order preserved within a month.
func Group(games []dataset.GameRecord, loc *time.Location) []YearGroup {
	type yearAcc struct {
		months map[time.Month][]dataset.GameRecord
		count  int
	}
	years := map[int]*yearAcc{}

	for _, g := range games {
		year := 0
		month := time.January
		t, ok := ParseDate(g.FirstFreeDate, loc)
		if ok {
			year = t.Year()
			month = t.Month()
		}
		acc := years[year]
		if acc == nil {
			acc = &yearAcc{months: map[time.Month][]dataset.GameRecord{}}
			years[year] = acc
		}
		acc.months[month] = append(acc.months[month], g)
		acc.count++
	}

	order := make([]int, 0, len(years))
	for y := range years {
		order = append(order, y)
	}
	sort.Slice(order, func(i, j int) bool {
		// descending, with the undated bucket pushed to the very end
		if order[i] == 0 {
			return false
		}
		if order[j] == 0 {
			return true
		}
		return order[i] > order[j]
	})

	out := make([]YearGroup, 0, len(order))
	for _, y := range order {
		acc := years[y]
		group := YearGroup{Year: y, Count: acc.count}
		for m := time.December; m >= time.January; m-- {
			games, ok := acc.months[m]
			if ok {
				group.Months = append(group.Months, MonthGroup{Month: m, Games: games})
			}
		}
		out = append(out, group)
	}
	return out
}

// Flatten walks the hierarchy in display order. Mostly useful to assert
// the order-preservation property and to drive text renderers.
func Flatten(groups []YearGroup) []dataset.GameRecord {
	var out []dataset.GameRecord
	for _, y := range groups {
		for _, m := range y.Months {
			out = append(out, m.Games...)
		}
	}
	return out
}
