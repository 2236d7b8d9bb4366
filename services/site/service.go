// Package site serves the browsing site's JSON API. Every endpoint is a
// stateless projection of the loaded dataset snapshot through the
// timeline engine's pipeline, driven by the same query-string state the
// client-side engine encodes.
package site

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"freegames-backend/lib/dataset"
	"freegames-backend/lib/timeline"
	"freegames-backend/lib/timezone"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/site")

type Service struct {
	snap  *dataset.Snapshot
	loc   *time.Location
	batch int
	now   func() time.Time
}

func NewService(snap *dataset.Snapshot) (Service, error) {
	if err := snap.Validate(); err != nil {
		return Service{}, err
	}
	return Service{
		snap:  snap,
		loc:   timezone.Location,
		batch: timeline.DefaultBatchSize,
		now:   timezone.Now,
	}, nil
}

func (s Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/timeline", s.handleTimeline)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/current", s.handleCurrent)
	mux.HandleFunc("/api/upcoming", s.handleUpcoming)
	mux.HandleFunc("/api/health", s.handleHealth)
}

type TimelineResponse struct {
	// Query is the canonical re-encoding of the filter state; clients
	// use it for history replacement
	Query          string               `json:"query"`
	Groups         []timeline.YearGroup `json:"groups"`
	DisplayedCount int                  `json:"displayedCount"`
	TotalCount     int                  `json:"totalCount"`
	HasMore        bool                 `json:"hasMore"`
	MoreLabel      string               `json:"moreLabel,omitempty"`
	Empty          bool                 `json:"empty"`
	Suggestion     string               `json:"suggestion,omitempty"`
}

func (s Service) handleTimeline(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "Timeline")
	defer span.End()

	// malformed query state is repaired, never rejected
	state := timeline.DecodeQuery(r.URL.RawQuery)
	pages := clampPages(r.URL.Query().Get("pages"))
	span.SetAttributes(
		attribute.String("search", state.Search),
		attribute.String("year", state.Year),
		attribute.String("sort", string(state.Sort)),
		attribute.Int("pages", pages),
	)

	filtered := timeline.Apply(s.snap.AllGames, state, s.loc)
	cursor := timeline.NewCursor(timeline.Group(filtered, s.loc), s.batch)

	var groups []timeline.YearGroup
	for i := 0; i < pages; i++ {
		step := cursor.Next()
		if step == nil {
			break
		}
		groups = append(groups, step...)
	}

	res := TimelineResponse{
		Query:          timeline.EncodeQuery(state),
		Groups:         groups,
		DisplayedCount: cursor.Displayed(),
		TotalCount:     cursor.Total(),
		HasMore:        cursor.HasMore(),
	}
	if res.HasMore {
		res.MoreLabel = cursor.Label()
	}
	if len(filtered) == 0 {
		res.Empty = true
		res.Suggestion = timeline.Suggest(state.Search, s.snap.AllGames)
	}
	writeJson(w, res)
}

func (s Service) handleStats(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "Stats")
	defer span.End()

	state := timeline.DecodeQuery(r.URL.RawQuery)
	if state.IsDefault() {
		// the unfiltered chart comes straight from the precomputed
		// whole-dataset summary
		writeJson(w, timeline.ChartFromSummary(s.snap.Statistics.GamesByYear))
		return
	}
	filtered := timeline.Apply(s.snap.AllGames, state, s.loc)
	writeJson(w, timeline.ChartFromGames(filtered, s.loc))
}

type PromotionView struct {
	dataset.GameRecord
	PlatformLabel string `json:"platformLabel"`
	Remaining     string `json:"remaining"`
}

func (s Service) handleCurrent(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "Current")
	defer span.End()

	now := s.now()
	out := make([]PromotionView, 0, len(s.snap.CurrentGames))
	for _, g := range s.snap.CurrentGames {
		out = append(out, PromotionView{
			GameRecord:    g,
			PlatformLabel: dataset.PlatformLabel(g.Platform),
			Remaining:     timeline.FormatRemaining(now, g.EndDate, s.loc),
		})
	}
	writeJson(w, out)
}

func (s Service) handleUpcoming(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "Upcoming")
	defer span.End()

	now := s.now()
	out := make([]PromotionView, 0, len(s.snap.UpcomingGames))
	for _, g := range s.snap.UpcomingGames {
		out = append(out, PromotionView{
			GameRecord:    g,
			PlatformLabel: dataset.PlatformLabel(g.Platform),
			Remaining:     timeline.FormatUntilStart(now, g.StartDate, s.loc),
		})
	}
	writeJson(w, out)
}

type HealthResponse struct {
	LastUpdated   string `json:"lastUpdated"`
	TotalGames    int    `json:"totalGames"`
	CurrentCount  int    `json:"currentCount"`
	UpcomingCount int    `json:"upcomingCount"`
}

func (s Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJson(w, HealthResponse{
		LastUpdated:   s.snap.LastUpdated,
		TotalGames:    len(s.snap.AllGames),
		CurrentCount:  len(s.snap.CurrentGames),
		UpcomingCount: len(s.snap.UpcomingGames),
	})
}

// clampPages keeps the batch-count parameter sane: at least one batch,
// never more than could possibly exist.
func clampPages(raw string) int {
	pages, err := strconv.Atoi(raw)
	if err != nil || pages < 1 {
		return 1
	}
	if pages > 1000 {
		return 1000
	}
	return pages
}

func writeJson(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		slog.Warn("failed to write response", "err", err)
	}
}
