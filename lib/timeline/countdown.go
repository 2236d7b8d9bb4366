package timeline

import (
	"fmt"
	"time"
)

// CountdownInterval is how often rendered countdowns are recomputed.
const CountdownInterval = time.Minute

// DateTBA is shown when a promotion has no announced timestamp at all.
const DateTBA = "Date TBA"

// FormatRemaining renders the time left until a promotion's end
// timestamp. A missing timestamp is "Date TBA", a malformed or elapsed
// one is "Expired". The unit coarsens with distance: days+hours, then
// hours+minutes, then whole minutes.
func FormatRemaining(now time.Time, raw string, loc *time.Location) string {
	if raw == "" {
		return DateTBA
	}
	target, ok := ParseDate(raw, loc)
	if !ok {
		return "Expired"
	}
	left := target.Sub(now)
	if left <= 0 {
		return "Expired"
	}

	if left >= 24*time.Hour {
		days := int(left / (24 * time.Hour))
		hours := int(left % (24 * time.Hour) / time.Hour)
		return fmt.Sprintf("%dd %dh remaining", days, hours)
	}
	if left >= time.Hour {
		hours := int(left / time.Hour)
		minutes := int(left % time.Hour / time.Minute)
		return fmt.Sprintf("%dh %dm remaining", hours, minutes)
	}
	minutes := int(left / time.Minute)
	if minutes == 1 {
		return "1 minute remaining"
	}
	return fmt.Sprintf("%d minutes remaining", minutes)
}

// FormatUntilStart renders how far away an upcoming promotion is.
func FormatUntilStart(now time.Time, raw string, loc *time.Location) string {
	if raw == "" {
		return DateTBA
	}
	target, ok := ParseDate(raw, loc)
	if !ok {
		return DateTBA
	}
	left := target.Sub(now)
	if left <= 0 {
		return "Available now"
	}
	days := int(left / (24 * time.Hour))
	if left%(24*time.Hour) > 0 {
		days++
	}
	if days == 1 {
		return "Starts in 1 day"
	}
	return fmt.Sprintf("Starts in %d days", days)
}
