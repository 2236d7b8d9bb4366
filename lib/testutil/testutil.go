package testutil

import (
	"testing"

	"freegames-backend/lib/dataset"
	"freegames-backend/lib/telemetry"
)

type ServiceParams struct {
	Name string
}

// SetupService prepares telemetry for a service test. The returned
// cleanup flushes whatever telemetry was configured.
func SetupService(t testing.TB, params ServiceParams) func() {
	return telemetry.SetupForTesting(t, "test:"+params.Name)
}

// Snapshot returns a small but fully populated dataset snapshot shared
// by service-level tests: five games over three years, one game free
// right now and one announced for later.
func Snapshot() *dataset.Snapshot {
	return &dataset.Snapshot{
		LastUpdated: "2026-01-01T00:00:00Z",
		Statistics: dataset.Statistics{
			TotalGames:      5,
			TotalPromotions: 6,
			AvgGamesPerWeek: 1.8,
			GamesByYear:     map[string]int{"2019": 1, "2020": 2, "2021": 2},
		},
		CurrentGames: []dataset.GameRecord{
			{Id: 100, Name: "NowFree", Link: "https://store.example/now-free", Platform: "PC", EndDate: "2026-01-02T12:00:00"},
		},
		UpcomingGames: []dataset.GameRecord{
			{Id: 200, Name: "SoonFree", Link: "https://store.example/soon-free", Platform: "PC", StartDate: "2026-01-05T12:00:00"},
		},
		AllGames: []dataset.GameRecord{
			{Id: 1, Name: "Portal", Platform: "PC", Rating: 4.9, FirstFreeDate: "2019-06-01"},
			{Id: 2, Name: "Hades", Platform: "PC", Rating: 4.8, FirstFreeDate: "2020-09-17"},
			{Id: 3, Name: "Celeste", Platform: "PC", Rating: 4.6, FirstFreeDate: "2020-01-02"},
			{Id: 4, Name: "Alan Wake", Platform: "PC", Rating: 4.1, FirstFreeDate: "2021-02-11"},
			{Id: 5, Name: "Banner Saga", Platform: "PC", Rating: 3.9, FirstFreeDate: "2021-07-08"},
		},
	}
}
