package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/New_York")
	if err != nil {
		panic(err)
	}
}

// force timezone to be eastern because epic rotates its weekly free games
// at 11AM ET, so year/month bucketing has to stay in that frame no matter
// where the server ends up running
func Now() time.Time {
	return time.Now().In(Location)
}

// PromotionWeek returns the boundaries of the giveaway week containing t.
// Epic rotates on thursdays, so the week runs thursday..wednesday.
func PromotionWeek(t time.Time) (time.Time, time.Time) {
	t = t.In(Location)
	daysSinceThursday := (int(t.Weekday()) - int(time.Thursday) + 7) % 7
	start := time.Date(t.Year(), t.Month(), t.Day()-daysSinceThursday, 0, 0, 0, 0, Location)
	stop := start.AddDate(0, 0, 6)
	return start, stop
}
