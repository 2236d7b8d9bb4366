// Package timeline is the client-side engine behind the browsing site:
// the filter/sort pipeline, the year/month grouping, incremental "load
// more" pagination, the per-year chart data, countdown refresh and the
// shareable-URL state codec. Everything here operates on an immutable
// dataset snapshot and emits view models, never markup.
package timeline

import (
	"time"
)

// the scrape pipeline has exported dates in a few shapes over the years,
// so every date that enters the engine goes through this list
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses an exported date string in the site's display timezone.
// The second return is false for empty or malformed input; callers decide
// whether that means "drop the record" (year filter) or "sort last".
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, raw, loc)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}
