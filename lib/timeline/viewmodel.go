package timeline

// TimelinePage is what a rendering adapter receives per render step. When
// Reset is set the adapter clears previously rendered output first (the
// filter state changed); otherwise Groups is appended to what is already
// on screen (a "load more" step).
type TimelinePage struct {
	Reset  bool        `json:"reset"`
	Groups []YearGroup `json:"groups"`

	DisplayedCount int `json:"displayedCount"`
	TotalCount     int `json:"totalCount"`

	// HasMore keeps the load-more control visible, captioned MoreLabel
	HasMore   bool   `json:"hasMore"`
	MoreLabel string `json:"moreLabel,omitempty"`

	// Empty asks for the explicit no-results indicator instead of an
	// empty grid; Suggestion optionally carries a "did you mean" name
	Empty      bool   `json:"empty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// CountdownUpdate refreshes the remaining-time string of one rendered
// promotion.
type CountdownUpdate struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	Remaining string `json:"remaining"`
}

// Observers is the typed set of optional subscriber callbacks, registered
// once at engine construction. A nil field simply means the page has no
// such surface mounted. Callbacks run synchronously on the goroutine that
// triggered them and must not call back into the engine.
type Observers struct {
	// Timeline receives the grouped game list, incrementally
	Timeline func(TimelinePage)
	// Chart receives per-year counts whenever the filtered set changes
	Chart func(ChartData)
	// Countdown receives refreshed remaining-time strings
	Countdown func([]CountdownUpdate)
	// Query receives the canonical query string after each state change,
	// for history replacement (never navigation)
	Query func(string)
}
