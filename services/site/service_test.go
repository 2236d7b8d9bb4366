package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"freegames-backend/lib/testutil"
	"freegames-backend/lib/timeline"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (Service, *http.ServeMux) {
	cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "services/site"})
	t.Cleanup(cleanup)

	service, err := NewService(testutil.Snapshot())
	require.NoError(t, err)
	service.loc = time.UTC
	service.now = func() time.Time {
		return time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	}

	mux := http.NewServeMux()
	service.RegisterRoutes(mux)
	return service, mux
}

func get[T any](t *testing.T, mux *http.ServeMux, url string) T {
	t.Helper()
	req := httptest.NewRequest("GET", url, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, 200, rec.Code, "GET %s", url)

	var out T
	err := json.Unmarshal(rec.Body.Bytes(), &out)
	require.NoError(t, err)
	return out
}

func flatNames(groups []timeline.YearGroup) []string {
	var out []string
	for _, g := range timeline.Flatten(groups) {
		out = append(out, g.Name)
	}
	return out
}

func TestTimelineFilteredAndSorted(t *testing.T) {
	_, mux := setup(t)

	res := get[TimelineResponse](t, mux, "/api/timeline?year=2021&sort=alpha")
	require.Equal(t, "sort=alpha&year=2021", res.Query)
	require.Equal(t, []string{"Alan Wake", "Banner Saga"}, flatNames(res.Groups))
	require.Equal(t, 2, res.TotalCount)
	require.False(t, res.HasMore)
	require.False(t, res.Empty)
}

func TestTimelineDefaultIsNewestFirst(t *testing.T) {
	_, mux := setup(t)

	res := get[TimelineResponse](t, mux, "/api/timeline")
	require.Equal(t, "", res.Query)
	require.Equal(t,
		[]string{"Banner Saga", "Alan Wake", "Hades", "Celeste", "Portal"},
		flatNames(res.Groups))
}

func TestTimelineRepairsJunkQuery(t *testing.T) {
	_, mux := setup(t)

	res := get[TimelineResponse](t, mux, "/api/timeline?year=20x7&sort=fastest&utm_source=x")
	// junk state normalizes to defaults instead of failing
	require.Equal(t, "", res.Query)
	require.Equal(t, 5, res.TotalCount)
}

func TestTimelinePagination(t *testing.T) {
	service, mux := setup(t)
	service.batch = 2
	freshMux := http.NewServeMux()
	service.RegisterRoutes(freshMux)
	mux = freshMux

	res := get[TimelineResponse](t, mux, "/api/timeline")
	require.Equal(t, 2, res.DisplayedCount)
	require.True(t, res.HasMore)
	require.Equal(t, "2 of 5 shown", res.MoreLabel)

	res = get[TimelineResponse](t, mux, "/api/timeline?pages=2")
	require.Equal(t, 4, res.DisplayedCount)
	require.True(t, res.HasMore)

	res = get[TimelineResponse](t, mux, "/api/timeline?pages=99")
	require.Equal(t, 5, res.DisplayedCount)
	require.False(t, res.HasMore)
	require.Empty(t, res.MoreLabel)
}

func TestTimelineEmptyResult(t *testing.T) {
	_, mux := setup(t)

	res := get[TimelineResponse](t, mux, "/api/timeline?search=hadess")
	require.True(t, res.Empty)
	require.Equal(t, 0, res.TotalCount)
	require.Equal(t, "Hades", res.Suggestion)
}

func TestStats(t *testing.T) {
	_, mux := setup(t)

	// unfiltered: straight from the precomputed summary, ascending
	chart := get[timeline.ChartData](t, mux, "/api/stats")
	require.Equal(t, []timeline.YearCount{
		{Year: "2019", Count: 1},
		{Year: "2020", Count: 2},
		{Year: "2021", Count: 2},
	}, chart.Years)

	// filtered: recounted from the filtered list
	chart = get[timeline.ChartData](t, mux, "/api/stats?search=hades")
	require.Equal(t, []timeline.YearCount{{Year: "2020", Count: 1}}, chart.Years)
}

func TestCurrentAndUpcoming(t *testing.T) {
	_, mux := setup(t)

	current := get[[]PromotionView](t, mux, "/api/current")
	require.Len(t, current, 1)
	require.Equal(t, "NowFree", current[0].Name)
	require.Equal(t, "1d 0h remaining", current[0].Remaining)
	require.Equal(t, "PC", current[0].PlatformLabel)

	upcoming := get[[]PromotionView](t, mux, "/api/upcoming")
	require.Len(t, upcoming, 1)
	require.Equal(t, "Starts in 4 days", upcoming[0].Remaining)
}

func TestHealth(t *testing.T) {
	_, mux := setup(t)

	health := get[HealthResponse](t, mux, "/api/health")
	require.Equal(t, 5, health.TotalGames)
	require.Equal(t, 1, health.CurrentCount)
	require.Equal(t, 1, health.UpcomingCount)
	require.Equal(t, "2026-01-01T00:00:00Z", health.LastUpdated)
}
