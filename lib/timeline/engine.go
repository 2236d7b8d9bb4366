package timeline

import (
	"context"
	"fmt"
	"sync"
	"time"

	"freegames-backend/lib/dataset"
	"freegames-backend/lib/timezone"

	"github.com/jonboulle/clockwork"
)

// DefaultDebounceDelay is how long search input must stay quiet before a
// re-filter runs. Only the trailing edge of a typing burst triggers the
// pipeline.
const DefaultDebounceDelay = 300 * time.Millisecond

type Options struct {
	// Clock defaults to the real clock; tests inject a fake one
	Clock    clockwork.Clock
	Location *time.Location

	BatchSize         int
	DebounceDelay     time.Duration
	CountdownInterval time.Duration
}

// Engine is one page session's state machine. It owns the only mutable
// state there is: the live FilterState and the render cursor, both
// mutated exclusively through the methods below. The dataset snapshot is
// referenced, never copied or modified.
type Engine struct {
	clock  clockwork.Clock
	loc    *time.Location
	batch  int
	every  time.Duration
	obs    Observers
	search *debouncer

	mu       sync.Mutex
	snap     *dataset.Snapshot
	state    FilterState
	filtered []dataset.GameRecord
	cursor   *Cursor
}

// NewEngine builds an engine over a loaded snapshot. It refuses a nil or
// invalid snapshot: a failed dataset load has to surface as a status
// message, never as an engine running over partial data.
func NewEngine(snap *dataset.Snapshot, obs Observers, opts Options) (*Engine, error) {
	if snap == nil {
		return nil, fmt.Errorf("timeline: nil dataset snapshot")
	}
	err := snap.Validate()
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	loc := opts.Location
	if loc == nil {
		loc = timezone.Location
	}
	batch := opts.BatchSize
	if batch <= 0 {
		batch = DefaultBatchSize
	}
	delay := opts.DebounceDelay
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	every := opts.CountdownInterval
	if every <= 0 {
		every = CountdownInterval
	}

	return &Engine{
		clock:  clock,
		loc:    loc,
		batch:  batch,
		every:  every,
		obs:    obs,
		search: newDebouncer(clock, delay),
		snap:   snap,
		state:  DefaultState(),
	}, nil
}

// Restore initializes the view from a shared URL's query string and
// performs the initial render: the first timeline batch, the chart from
// the precomputed whole-dataset summary, and a countdown pass.
func (e *Engine) Restore(rawQuery string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.search.Cancel()
	e.state = DecodeQuery(rawQuery)

	if e.obs.Chart != nil {
		e.obs.Chart(ChartFromSummary(e.snap.Statistics.GamesByYear))
	}
	e.applyLocked(false)
	e.emitCountdownLocked()
}

// SetSearch records a keystroke. The actual re-filter runs only once the
// input has been quiet for the debounce delay; every call cancels and
// reschedules the single pending apply.
func (e *Engine) SetSearch(term string) {
	e.search.Schedule(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.state.Search = term
		e.applyLocked(true)
	})
}

func (e *Engine) SetYear(year string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Year = year
	e.state = e.state.Normalize()
	e.applyLocked(true)
}

func (e *Engine) SetSort(order SortOrder) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Sort = order
	e.state = e.state.Normalize()
	e.applyLocked(true)
}

// LoadMore advances the cursor one batch. If a filter change landed since
// the last render the cursor was already rebuilt, so a stale load-more
// can never append old results.
func (e *Engine) LoadMore() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cursor == nil || !e.cursor.HasMore() {
		return
	}
	groups := e.cursor.Next()
	if e.obs.Timeline == nil {
		return
	}
	page := TimelinePage{
		Groups:         groups,
		DisplayedCount: e.cursor.Displayed(),
		TotalCount:     e.cursor.Total(),
		HasMore:        e.cursor.HasMore(),
	}
	if page.HasMore {
		page.MoreLabel = e.cursor.Label()
	}
	e.obs.Timeline(page)
}

// State returns a copy of the live filter state.
func (e *Engine) State() FilterState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// QueryString encodes the live state for history replacement.
func (e *Engine) QueryString() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return EncodeQuery(e.state)
}

// RunCountdown re-renders every remaining-time string once per interval
// until the context ends. Runs the caller's goroutine.
func (e *Engine) RunCountdown(ctx context.Context) {
	if e.obs.Countdown == nil {
		return
	}

	ticker := e.clock.NewTicker(e.every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			e.mu.Lock()
			e.emitCountdownLocked()
			e.mu.Unlock()
		}
	}
}

// applyLocked is the one place the pipeline runs: filter, sort, group,
// rebuild the cursor, reveal the first batch. The previous cursor is
// discarded wholesale, which is what invalidates any in-flight load-more
// sequence.
func (e *Engine) applyLocked(emitChart bool) {
	e.filtered = Apply(e.snap.AllGames, e.state, e.loc)
	groups := Group(e.filtered, e.loc)
	e.cursor = NewCursor(groups, e.batch)

	if e.obs.Timeline != nil {
		page := TimelinePage{
			Reset:          true,
			Groups:         e.cursor.Next(),
			TotalCount:     e.cursor.Total(),
			DisplayedCount: e.cursor.Displayed(),
		}
		page.HasMore = e.cursor.HasMore()
		if page.HasMore {
			page.MoreLabel = e.cursor.Label()
		}
		if len(e.filtered) == 0 {
			page.Empty = true
			page.Suggestion = Suggest(e.state.Search, e.snap.AllGames)
		}
		e.obs.Timeline(page)
	}
	if emitChart && e.obs.Chart != nil {
		e.obs.Chart(ChartFromGames(e.filtered, e.loc))
	}
	if e.obs.Query != nil {
		e.obs.Query(EncodeQuery(e.state))
	}
}

func (e *Engine) emitCountdownLocked() {
	if e.obs.Countdown == nil {
		return
	}
	now := e.clock.Now()

	var updates []CountdownUpdate
	for _, g := range e.snap.CurrentGames {
		updates = append(updates, CountdownUpdate{
			Id:        g.Id,
			Name:      g.Name,
			Remaining: FormatRemaining(now, g.EndDate, e.loc),
		})
	}
	for _, g := range e.snap.UpcomingGames {
		updates = append(updates, CountdownUpdate{
			Id:        g.Id,
			Name:      g.Name,
			Remaining: FormatUntilStart(now, g.StartDate, e.loc),
		})
	}
	if len(updates) > 0 {
		e.obs.Countdown(updates)
	}
}
